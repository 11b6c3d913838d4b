package config

import (
	"fmt"
	"log"
	"os"
)

// Config holds every runtime option the server reads from the environment.
type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	Port       string
}

// Load reads the enumerated environment variables. Database credentials and
// the signing secret are required; the port falls back to 3000.
func Load() *Config {
	return &Config{
		DBHost:     mustGetEnv("DATABASE_HOST"),
		DBUser:     mustGetEnv("DATABASE_USER"),
		DBPassword: mustGetEnv("DATABASE_PASSWORD"),
		DBName:     mustGetEnv("DATABASE_NAME"),
		JWTSecret:  mustGetEnv("JWT_SECRET"),
		Port:       getEnv("PORT", "3000"),
	}
}

// DSN builds the postgres connection string from the individual parts.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName)
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}
