package main

import (
	"flag"
	"log"
	"strings"

	"github.com/sampconrad/sistema-despesas-api/config"
	"github.com/sampconrad/sistema-despesas-api/database"
	"github.com/sampconrad/sistema-despesas-api/router"
	"github.com/sampconrad/sistema-despesas-api/service"

	"github.com/joho/godotenv"
)

// @title API de Despesas Mensais
// @version 1.0
// @description Serviço de cadastro e acompanhamento de despesas mensais
// @BasePath /

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "caminho do arquivo de configuração externo (opcional)")
	flag.StringVar(&configFile, "c", "", "caminho do arquivo de configuração externo (abreviado)")
	flag.StringVar(&port, "port", "", "porta de escuta, ex.: 8080 ou :8080")
	flag.StringVar(&port, "p", "", "porta de escuta (abreviado)")
	flag.BoolVar(&showVersion, "version", false, "mostra a versão")
	flag.BoolVar(&showVersion, "v", false, "mostra a versão (abreviado)")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("Sistema de despesas v1.0.0")
		return
	}

	// Variáveis definidas em .env valem como ambiente, quando o arquivo existir
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando o ambiente atual")
	}

	// Carrega a configuração (embutida + sobreposição externa opcional)
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("Falha ao carregar configuração: %v", err)
	}

	// A porta da linha de comando tem prioridade sobre a configuração
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("Porta definida pela linha de comando: %s", port)
	}

	config.PrintConfig()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Falha ao inicializar o banco de dados: %v", err)
	}

	svc := service.NewDespesaService(database.NewDespesaStore(db))

	r := router.SetupRouter(cfg, svc)

	log.Printf("==========================================")
	log.Printf("  Sistema de despesas no ar")
	log.Printf("==========================================")
	log.Printf("  Documentação: http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  Despesas:     http://localhost%s/despesas", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("Falha ao subir o servidor: %v", err)
	}
}
