package config

import (
	"os"
	"time"

	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string
	Database DatabaseConfig
	Auth     AuthConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type AuthConfig struct {
	// JWTSecret подписывает токены; один и тот же секрет на всех инстансах
	JWTSecret string
	TokenTTL  time.Duration
	// PrivateBoardPolicy - поведение GET /boards/{id} для чужой приватной доски
	PrivateBoardPolicy domain.PrivateBoardPolicy
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		HTTPPort: getEnv("HTTP_PORT", "8080"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "taskboard"),
			Password: getEnv("DB_PASSWORD", "taskboard"),
			DBName:   getEnv("DB_NAME", "taskboard"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Auth: AuthConfig{
			JWTSecret:          getEnv("JWT_SECRET", "dev-secret"),
			TokenTTL:           getDuration("TOKEN_TTL", 24*time.Hour),
			PrivateBoardPolicy: getPolicy("PRIVATE_BOARD_POLICY"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getPolicy(key string) domain.PrivateBoardPolicy {
	if os.Getenv(key) == string(domain.PolicyForbid) {
		return domain.PolicyForbid
	}
	return domain.PolicyRedact
}
