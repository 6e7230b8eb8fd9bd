package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErroResponse corpo de erro padrão da API
type ErroResponse struct {
	Message string `json:"message" example:"Despesa não encontrada na base"`
}

// RemocaoResponse confirmação de remoção de uma despesa
type RemocaoResponse struct {
	Message string `json:"message" example:"Despesa removida"`
	ID      uint   `json:"id" example:"1"`
}

// Erro resposta de erro com o status informado
func Erro(c *gin.Context, status int, mensagem string) {
	c.JSON(status, ErroResponse{Message: mensagem})
}

// BadRequest erro 400
func BadRequest(c *gin.Context, mensagem string) {
	Erro(c, http.StatusBadRequest, mensagem)
}

// NotFound erro 404
func NotFound(c *gin.Context, mensagem string) {
	Erro(c, http.StatusNotFound, mensagem)
}

// Conflict erro 409
func Conflict(c *gin.Context, mensagem string) {
	Erro(c, http.StatusConflict, mensagem)
}

// InternalError erro 500
func InternalError(c *gin.Context, mensagem string) {
	Erro(c, http.StatusInternalServerError, mensagem)
}
