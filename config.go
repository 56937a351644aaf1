package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config collects everything the process reads from the environment.
// It is built once in main and passed down explicitly.
type Config struct {
	Port       string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	JWTSecret  string
	// BaseURL prefixes generated image URLs.
	BaseURL         string
	DefaultCurrency string
	// StockEnabled toggles the optional stock subsystem; when off,
	// products report zero available quantity.
	StockEnabled bool
}

func loadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded:", err)
	}

	cfg := Config{
		Port:            getenv("PORT", "8080"),
		DBHost:          getenv("DB_HOST", "localhost"),
		DBPort:          getenv("DB_PORT", "5432"),
		DBUser:          getenv("DB_USER", "postgres"),
		DBPassword:      getenv("DB_PASSWORD", "postgres"),
		DBName:          getenv("DB_NAME", "customer_api"),
		DBSSLMode:       getenv("DB_SSLMODE", "disable"),
		JWTSecret:       getenv("JWT_SECRET", "dev-insecure-secret-change-me"),
		BaseURL:         getenv("BASE_URL", "http://localhost:8080"),
		DefaultCurrency: getenv("DEFAULT_CURRENCY", "USD"),
		StockEnabled:    getenv("STOCK_ENABLED", "true") == "true",
	}
	return cfg
}

func (c Config) dsn() string {
	return fmt.Sprintf(
		"host=%s user=%s password='%s' dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
