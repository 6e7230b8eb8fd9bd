package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/sampconrad/sistema-despesas-api/config"
	"github.com/sampconrad/sistema-despesas-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open abre a conexão com o banco configurado e executa as migrações.
// A conexão é devolvida ao chamador para ser injetada onde for preciso;
// não existe handle global de banco.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dial, err := montarDialector(cfg.Database)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// Normaliza os erros dos drivers (chave duplicada etc.)
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar ao banco de dados: %w", err)
	}

	// Configura o pool de conexões
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	// Migração automática das tabelas
	if err := db.AutoMigrate(&models.Despesa{}); err != nil {
		return nil, err
	}

	log.Println("Banco de dados inicializado")
	return db, nil
}

// montarDialector escolhe o dialector do gorm conforme o driver configurado
func montarDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "", "sqlite":
		// Garante que o diretório do arquivo do banco exista
		if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("falha ao criar diretório do banco: %w", err)
			}
		}
		return sqlite.Open(cfg.Path), nil
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
			cfg.Username,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
		)
		return mysql.Open(dsn), nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=America/Sao_Paulo",
			cfg.Host,
			cfg.Port,
			cfg.Username,
			cfg.Password,
			cfg.DBName,
		)
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("driver de banco desconhecido: %q", cfg.Driver)
	}
}
