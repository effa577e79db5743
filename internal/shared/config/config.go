package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	SourceCSV      = "csv"
	SourceDatabase = "database"
)

type Config struct {
	Port     string
	Env      string
	LogLevel string

	DatabaseURL string

	// Dataset
	DatasetSource         string // "csv" or "database"
	DatasetPath           string
	DatasetReloadSchedule string // cron spec, empty disables

	// Insight
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string

	CORSOrigins string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("⚠️ .env file not found, using system environment variables")
	}
	return FromEnv()
}

// FromEnv reads the config from the process environment and applies defaults
func FromEnv() *Config {
	cfg := &Config{
		Port:                  os.Getenv("PORT"),
		Env:                   os.Getenv("ENV"),
		LogLevel:              os.Getenv("LOG_LEVEL"),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		DatasetSource:         strings.ToLower(os.Getenv("DATASET_SOURCE")),
		DatasetPath:           os.Getenv("DATASET_PATH"),
		DatasetReloadSchedule: os.Getenv("DATASET_RELOAD_SCHEDULE"),
		OpenAIKey:             os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:           os.Getenv("OPENAI_MODEL"),
		OpenAIBaseURL:         os.Getenv("OPENAI_BASE_URL"),
		CORSOrigins:           os.Getenv("CORS_ORIGINS"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.DatasetSource == "" {
		cfg.DatasetSource = SourceCSV
	}
	if cfg.DatasetPath == "" {
		cfg.DatasetPath = "data/hvstat_africa_data_v1.0.csv"
	}
	if cfg.OpenAIModel == "" {
		cfg.OpenAIModel = "gpt-4o-mini"
	}
	if cfg.CORSOrigins == "" {
		cfg.CORSOrigins = "*"
	}

	return cfg
}

// IsProduction reports whether ENV is production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
