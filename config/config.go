package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Port         string
	ClientOrigin string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	JWTSecret    string
}

func Load() *Config {
	// Optional .env overlay for local development; real deployments set the
	// environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration overrides from .env")
	}

	return &Config{
		Port:         getEnv("PORT", "3000"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "quizzo"),
		DBPassword:   getEnv("DB_PASSWORD", "quizzo123"),
		DBName:       getEnv("DB_NAME", "quizzo"),
		// Insecure fallback kept for parity with the original deployment;
		// production must set JWT_SECRET.
		JWTSecret: getEnv("JWT_SECRET", "secret"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	// TranslateError lets the services detect unique-constraint violations
	// via gorm.ErrDuplicatedKey instead of driver-specific error codes.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}
