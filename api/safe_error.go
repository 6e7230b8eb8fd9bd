package api

import (
	"github.com/sampconrad/sistema-despesas-api/config"
)

// SafeErrorMessage em produção não expõe detalhes internos dos erros ao cliente
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}
