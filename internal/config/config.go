package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DB_USER       string
	DB_PASSWORD   string
	DB_HOST       string
	DB_NAME       string
	MONGO_URI     string
	PORT          string
	KAFKA_ADDRESS string
	LOG_LEVEL     string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		DB_USER:       os.Getenv("DB_USER"),
		DB_PASSWORD:   os.Getenv("DB_PASSWORD"),
		DB_HOST:       os.Getenv("DB_HOST"),
		DB_NAME:       os.Getenv("DB_NAME"),
		MONGO_URI:     os.Getenv("MONGO_URI"),
		PORT:          os.Getenv("PORT"),
		KAFKA_ADDRESS: os.Getenv("KAFKA_ADDRESS"),
		LOG_LEVEL:     os.Getenv("LOG_LEVEL"),
	}

	if config.PORT == "" {
		config.PORT = "4000"
	}
	if config.DB_NAME == "" {
		config.DB_NAME = "easy-shop"
	}

	return config, nil
}

// MongoURI prefers an explicit MONGO_URI and otherwise assembles the
// connection string from the credential parts.
func (c *Config) MongoURI() string {
	if c.MONGO_URI != "" {
		return c.MONGO_URI
	}
	return fmt.Sprintf(
		"mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		c.DB_USER, c.DB_PASSWORD, c.DB_HOST,
	)
}
