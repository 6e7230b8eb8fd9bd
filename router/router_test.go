package router

import (
	"net/http/httptest"
	"testing"

	"github.com/sampconrad/sistema-despesas-api/config"

	"github.com/stretchr/testify/assert"
)

func TestSetupRouter_RaizRedirecionaParaDocumentacao(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{Mode: "test"}}
	r := SetupRouter(cfg, nil)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 302, w.Code)
	assert.Equal(t, "/swagger/index.html", w.Header().Get("Location"))
}

func TestSetupRouter_Health(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{Mode: "test"}}
	r := SetupRouter(cfg, nil)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
