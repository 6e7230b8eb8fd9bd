package router

import (
	"net/http"

	"github.com/sampconrad/sistema-despesas-api/api"
	"github.com/sampconrad/sistema-despesas-api/config"
	_ "github.com/sampconrad/sistema-despesas-api/docs"
	"github.com/sampconrad/sistema-despesas-api/middleware"
	"github.com/sampconrad/sistema-despesas-api/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter monta as rotas da API
func SetupRouter(cfg *config.Config, svc *service.DespesaService) *gin.Engine {
	// Modo de execução
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	r.Use(CORSMiddleware())
	r.Use(middleware.RequestID())

	// A raiz redireciona para a documentação
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/swagger/index.html")
	})

	// Documentação Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas de despesa
	despesaHandler := api.NewDespesaHandler(svc)
	r.POST("/despesa", despesaHandler.Criar)
	r.GET("/despesas", despesaHandler.Listar)
	r.GET("/despesa", despesaHandler.Buscar)
	r.PUT("/despesa", despesaHandler.Atualizar)
	r.DELETE("/despesa", despesaHandler.Remover)

	// Exportação
	exportHandler := api.NewExportHandler(svc)
	r.GET("/despesas/exportar/csv", exportHandler.ExportarCSV)
	r.GET("/despesas/exportar/excel", exportHandler.ExportarExcel)

	// Verificação de saúde
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware middleware de CORS
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
