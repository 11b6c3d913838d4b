package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_HOST", "localhost")
	t.Setenv("DATABASE_USER", "tracker")
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("DATABASE_NAME", "equiptrack")
	t.Setenv("JWT_SECRET", "signing-secret")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "4000")

	cfg := Load()
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "tracker", cfg.DBUser)
	assert.Equal(t, "secret", cfg.DBPassword)
	assert.Equal(t, "equiptrack", cfg.DBName)
	assert.Equal(t, "signing-secret", cfg.JWTSecret)
	assert.Equal(t, "4000", cfg.Port)
}

func TestLoadDefaultPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "")

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db.internal",
		DBUser:     "tracker",
		DBPassword: "secret",
		DBName:     "equiptrack",
	}
	assert.Equal(t,
		"host=db.internal user=tracker password=secret dbname=equiptrack sslmode=disable",
		cfg.DSN())
}
