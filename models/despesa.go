package models

import (
	"errors"
	"fmt"
	"time"
)

// TipoDespesa categoria da despesa; o valor da constante é o rótulo
// usado na API e persistido no banco
type TipoDespesa string

const (
	TipoCreditoFixo      TipoDespesa = "CRÉDITO FIXO"
	TipoCreditoParcelado TipoDespesa = "CRÉDITO PARCELADO"
	TipoPix              TipoDespesa = "PIX"
	TipoBoleto           TipoDespesa = "BOLETO"
)

// ErrTipoDespesaInvalido valor de tipo fora da lista aceita
var ErrTipoDespesaInvalido = errors.New("tipo de despesa inválido")

// ParseTipoDespesa converte o valor recebido no formulário para o tipo
// correspondente; a lista de tipos é fechada, qualquer outro valor é erro
func ParseTipoDespesa(valor string) (TipoDespesa, error) {
	switch valor {
	case string(TipoCreditoFixo):
		return TipoCreditoFixo, nil
	case string(TipoCreditoParcelado):
		return TipoCreditoParcelado, nil
	case string(TipoPix):
		return TipoPix, nil
	case string(TipoBoleto):
		return TipoBoleto, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrTipoDespesaInvalido, valor)
	}
}

// Valido informa se o tipo pertence à lista aceita
func (t TipoDespesa) Valido() bool {
	_, err := ParseTipoDespesa(string(t))
	return err == nil
}

// TiposDespesa lista os tipos aceitos, na ordem canônica
func TiposDespesa() []TipoDespesa {
	return []TipoDespesa{
		TipoCreditoFixo,
		TipoCreditoParcelado,
		TipoPix,
		TipoBoleto,
	}
}

// Despesa despesa mensal registrada
type Despesa struct {
	ID            uint        `json:"id" gorm:"primaryKey;autoIncrement"`
	Tipo          TipoDespesa `json:"tipo" gorm:"size:20;not null"`
	Titulo        string      `json:"titulo" gorm:"size:100;not null"`
	Valor         float64     `json:"valor" gorm:"type:decimal(10,2);not null"`
	DiaVencimento int         `json:"dia_vencimento" gorm:"not null"`
	Parcelas      *int        `json:"parcelas"`
	Paga          bool        `json:"paga" gorm:"not null;default:false"`
	DataInsercao  time.Time   `json:"data_insercao" gorm:"not null;autoCreateTime"`
}

// TableName define o nome da tabela
func (Despesa) TableName() string {
	return "despesas"
}
