package config

import (
	"encoding/base64"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	PasetoSecret string
}

// LoadConfig loads configuration from the environment (and .env when
// present). It fails fast on a malformed PASETO secret.
func LoadConfig() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file found, using system environment variables")
	}

	secretBase64 := getEnv("PASETO_SECRET", "")
	if secretBase64 == "" {
		log.Fatal("PASETO_SECRET is not set; generate one with pkg/utils.GenerateBase64Key")
	}

	secretBytes, err := base64.URLEncoding.DecodeString(secretBase64)
	if err != nil {
		log.Fatalf("PASETO_SECRET is not a valid base64 URL-encoded string: %v", err)
	}
	if len(secretBytes) != 32 {
		log.Fatalf("PASETO_SECRET (decoded) must be exactly 32 bytes long, got %d", len(secretBytes))
	}

	return &AppConfig{
		Port:         getEnv("PORT", "3000"),
		PasetoSecret: secretBase64,
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
