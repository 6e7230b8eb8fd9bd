package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	cabecalhoRequestID = "X-Request-ID"
	chaveRequestID     = "requestID"
)

// RequestID garante um identificador único por requisição
// Reaproveita o X-Request-ID enviado pelo cliente quando presente
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(cabecalhoRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(chaveRequestID, id)
		c.Header(cabecalhoRequestID, id)
		c.Next()
	}
}

// GetRequestID devolve o identificador da requisição atual
func GetRequestID(c *gin.Context) string {
	if valor, ok := c.Get(chaveRequestID); ok {
		if id, ok := valor.(string); ok {
			return id
		}
	}
	return ""
}
