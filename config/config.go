package config

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config configuração da aplicação
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
}

// ServerConfig configuração do servidor HTTP
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig configuração do banco de dados
// Driver aceita sqlite, mysql ou postgres; Path só se aplica ao sqlite
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Charset  string `mapstructure:"charset"`
	Path     string `mapstructure:"path"`
}

var (
	// GlobalConfig instância global da configuração
	GlobalConfig *Config
)

// LoadConfig carrega a configuração
// Prioridade: variáveis de ambiente > arquivo externo > padrão embutido
// configPath: caminho opcional de um arquivo de configuração externo
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// 1. Carrega primeiro a configuração padrão embutida
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("falha ao ler configuração embutida: %w", err)
	}
	log.Println("Configuração padrão embutida carregada")

	// 2. Tenta carregar um arquivo externo (opcional, sobrepõe o padrão)
	if configPath != "" {
		// Caminho informado explicitamente
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("Aviso: não foi possível ler o arquivo %s: %v", configPath, err)
		} else {
			log.Printf("Arquivo de configuração mesclado: %s", configPath)
		}
	} else {
		// Procura um arquivo externo nos caminhos conhecidos
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/despesas")
		externalViper.AddConfigPath("$HOME/.despesas")

		if err := externalViper.ReadInConfig(); err == nil {
			// Arquivo encontrado, mescla a configuração
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				log.Printf("Aviso: falha ao mesclar configuração externa: %v", err)
			} else {
				log.Printf("Arquivo de configuração mesclado: %s", externalViper.ConfigFileUsed())
			}
		}
	}

	// 3. Variáveis de ambiente sobrepõem tudo (DESPESAS_SERVER_PORT etc.)
	v.SetEnvPrefix("DESPESAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Desserializa a configuração
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("falha ao interpretar configuração: %w", err)
	}

	// Guarda na variável global
	GlobalConfig = &cfg

	return &cfg, nil
}

// MustLoadConfig carrega a configuração ou encerra com panic
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("falha ao carregar configuração: %v", err))
	}
	return cfg
}

// GetConfig retorna a configuração global
func GetConfig() *Config {
	if GlobalConfig == nil {
		panic("configuração não inicializada, chame LoadConfig antes")
	}
	return GlobalConfig
}

// PrintConfig imprime a configuração atual (sem dados sensíveis)
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	log.Printf("Configuração atual:")
	log.Printf("  Servidor: %s (modo: %s)", GlobalConfig.Server.Port, GlobalConfig.Server.Mode)
	if GlobalConfig.Database.Driver == "sqlite" {
		log.Printf("  Banco de dados: sqlite (%s)", GlobalConfig.Database.Path)
	} else {
		log.Printf("  Banco de dados: %s %s@%s:%s/%s",
			GlobalConfig.Database.Driver,
			GlobalConfig.Database.Username,
			GlobalConfig.Database.Host,
			GlobalConfig.Database.Port,
			GlobalConfig.Database.DBName)
	}
}

// SafeErrorMessage em modo release devolve só a mensagem genérica, sem expor
// detalhes internos do erro; em desenvolvimento devolve o erro original
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}
