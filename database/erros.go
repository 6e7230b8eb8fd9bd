package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/sampconrad/sistema-despesas-api/models"
)

// Números de erro do MySQL que indicam violação de integridade
const (
	mysqlErrChaveDuplicada   = 1062
	mysqlErrChaveEstrangeira = 1452
)

// traduzErro converte erros do gorm e dos drivers nos erros de domínio.
// Erros que não têm tradução passam adiante sem alteração.
func traduzErro(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrDespesaNaoEncontrada
	}

	// Com TranslateError o gorm já normaliza a maioria dos drivers
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %v", models.ErrConflitoIntegridade, err)
	}

	// Código numérico do driver MySQL, para versões sem tradução
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrChaveDuplicada, mysqlErrChaveEstrangeira:
			return fmt.Errorf("%w: %v", models.ErrConflitoIntegridade, err)
		}
		return err
	}

	// O sqlite informa violações apenas na mensagem
	if strings.Contains(strings.ToLower(err.Error()), "constraint") {
		return fmt.Errorf("%w: %v", models.ErrConflitoIntegridade, err)
	}

	return err
}
