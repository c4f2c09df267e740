package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server Settings
	AppPort string
	HOST    string

	// Storage Settings
	DatabaseURL string
	RedisAddr   string
	DBReset     bool

	// JWT Settings
	JWTSecret     string
	JWTExpiration string

	// External Services
	ViaCEPBaseURL string

	// CORS Settings
	CORSAllowOrigins []string
	CORSAllowMethods []string
	CORSAllowHeaders []string
}

func LoadConfig() *Config {
	// .env is optional; real environment variables win either way
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	config := &Config{
		AppPort:     getEnv("PORT", "3000"),
		HOST:        getEnv("HOST", "0.0.0.0"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		// Destructive; only for development databases
		DBReset: os.Getenv("DB_RESET") == "true",

		JWTSecret:     getEnv("JWT_SECRET", "sua_chave_secreta_aqui"),
		JWTExpiration: getEnv("JWT_EXPIRES_IN", "168h"),

		ViaCEPBaseURL: getEnv("VIACEP_BASE_URL", "https://viacep.com.br"),

		CORSAllowOrigins: []string{"*"},
		CORSAllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		CORSAllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}

	return config
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
