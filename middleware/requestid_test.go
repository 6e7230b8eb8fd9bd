package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_GeraQuandoAusente(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var visto string
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		visto = GetRequestID(c)
		c.String(200, "pong")
	})

	req := httptest.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	id := w.Header().Get("X-Request-ID")
	require.NotEmpty(t, id)
	assert.Equal(t, id, visto)

	// O identificador gerado é um UUID válido
	_, err := uuid.Parse(id)
	assert.NoError(t, err)

	// Outra requisição ganha outro identificador
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, httptest.NewRequest("GET", "/ping", nil))
	assert.NotEqual(t, id, w2.Header().Get("X-Request-ID"))
}

func TestRequestID_ReaproveitaDoCliente(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(200, GetRequestID(c))
	})

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "abc-123", w.Body.String())
}
