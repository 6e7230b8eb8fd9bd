package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeErrorMessage(t *testing.T) {
	fallback := "operação falhou"
	testErr := errors.New("internal database error")

	// err nil devolve o fallback
	assert.Equal(t, fallback, SafeErrorMessage(nil, fallback))

	// modo release devolve o fallback, sem expor detalhes
	GlobalConfig = &Config{Server: ServerConfig{Mode: "release"}}
	defer func() { GlobalConfig = nil }()
	assert.Equal(t, fallback, SafeErrorMessage(testErr, fallback))

	// modo debug devolve err.Error()
	GlobalConfig = &Config{Server: ServerConfig{Mode: "debug"}}
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))

	// GlobalConfig nil é tratado como ambiente de desenvolvimento
	GlobalConfig = nil
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))
}

func TestLoadConfig_PadraoEmbutido(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	defer func() { GlobalConfig = nil }()

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "./data/despesas.db", cfg.Database.Path)
	assert.Same(t, GlobalConfig, cfg)
}

func TestLoadConfig_VariavelDeAmbiente(t *testing.T) {
	t.Setenv("DESPESAS_SERVER_PORT", ":9090")
	t.Setenv("DESPESAS_DATABASE_DRIVER", "mysql")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	defer func() { GlobalConfig = nil }()

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
}
