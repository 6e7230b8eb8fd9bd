package database

import (
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/sampconrad/sistema-despesas-api/models"
)

func TestTraduzErro(t *testing.T) {
	// nil passa direto
	assert.NoError(t, traduzErro(nil))

	// erros já normalizados pelo gorm
	assert.ErrorIs(t, traduzErro(gorm.ErrRecordNotFound), models.ErrDespesaNaoEncontrada)
	assert.ErrorIs(t, traduzErro(gorm.ErrDuplicatedKey), models.ErrConflitoIntegridade)
	assert.ErrorIs(t, traduzErro(gorm.ErrForeignKeyViolated), models.ErrConflitoIntegridade)

	// código numérico do driver MySQL
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry '1' for key 'PRIMARY'"}
	assert.ErrorIs(t, traduzErro(dup), models.ErrConflitoIntegridade)

	// outros códigos do MySQL não são conflito
	down := &mysql.MySQLError{Number: 1040, Message: "Too many connections"}
	assert.NotErrorIs(t, traduzErro(down), models.ErrConflitoIntegridade)

	// o sqlite informa violações apenas na mensagem
	sqliteErr := errors.New("UNIQUE constraint failed: despesas.id")
	assert.ErrorIs(t, traduzErro(sqliteErr), models.ErrConflitoIntegridade)

	// erros desconhecidos passam adiante sem alteração
	outro := errors.New("connection refused")
	assert.Equal(t, outro, traduzErro(outro))
}
