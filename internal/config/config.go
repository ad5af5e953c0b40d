package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir     string `mapstructure:"DATA_DIR"`
	Environment string `mapstructure:"ENV"`
}

func LoadConfig() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Читаем напрямую из переменных окружения (после godotenv.Load они там)
	cfg := &Config{
		DataDir:     os.Getenv("DATA_DIR"),
		Environment: os.Getenv("ENV"),
	}

	// Устанавливаем дефолтные значения
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	return cfg, nil
}
