package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTipoDespesa(t *testing.T) {
	// todos os rótulos aceitos
	for _, tipo := range TiposDespesa() {
		parsed, err := ParseTipoDespesa(string(tipo))
		require.NoError(t, err)
		assert.Equal(t, tipo, parsed)
	}

	// qualquer outro valor é rejeitado
	for _, valor := range []string{"", "PIXE", "crédito fixo", "BOLETOS", "CARTÃO"} {
		_, err := ParseTipoDespesa(valor)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTipoDespesaInvalido)
	}
}

func TestTipoDespesaValido(t *testing.T) {
	assert.True(t, TipoCreditoParcelado.Valido())
	assert.True(t, TipoBoleto.Valido())
	assert.False(t, TipoDespesa("DÉBITO").Valido())
	assert.False(t, TipoDespesa("").Valido())
}

func TestTiposDespesa(t *testing.T) {
	tipos := TiposDespesa()
	require.Len(t, tipos, 4)
	assert.Equal(t, TipoCreditoFixo, tipos[0])
	assert.Equal(t, TipoCreditoParcelado, tipos[1])
	assert.Equal(t, TipoPix, tipos[2])
	assert.Equal(t, TipoBoleto, tipos[3])
}
