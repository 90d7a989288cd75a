package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	PORT                string
	DB_URL              string
	DB_NAME             string
	ACCESS_TOKEN_SECRET string
	KAFKA_ADDRESS       string
	ES_URL              string
	ES_USER             string
	ES_PASSWORD         string
	LOG_LEVEL           string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		PORT:                os.Getenv("PORT"),
		DB_URL:              os.Getenv("DB_URL"),
		DB_NAME:             envDefault("DB_NAME", "PrimeMotors"),
		ACCESS_TOKEN_SECRET: os.Getenv("ACCESS_TOKEN_SECRET"),
		KAFKA_ADDRESS:       os.Getenv("KAFKA_ADDRESS"),
		ES_URL:              os.Getenv("ES_URL"),
		ES_USER:             os.Getenv("ES_USER"),
		ES_PASSWORD:         os.Getenv("ES_PASSWORD"),
		LOG_LEVEL:           envDefault("LOG_LEVEL", "info"),
	}

	MustNonEmpty(config.PORT, "PORT")
	MustNonEmpty(config.DB_URL, "DB_URL")
	MustNonEmpty(config.ACCESS_TOKEN_SECRET, "ACCESS_TOKEN_SECRET")

	return config, nil
}

func MustNonEmpty(value, envName string) {
	if value == "" {
		log.Fatalf("missing required env %s", envName)
	}
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
