package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	return &Config{
		ServerPort: "8080",
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "postgres",
		DBName:     "ovenledger",
		JWTSecret:  "secret",
	}
}

func TestValidateConfig(t *testing.T) {
	require.NoError(t, ValidateConfig(validTestConfig()))
}

func TestValidateConfigMissingFields(t *testing.T) {
	for _, mutate := range []func(*Config){
		func(c *Config) { c.ServerPort = "" },
		func(c *Config) { c.DBHost = "" },
		func(c *Config) { c.DBPort = "" },
		func(c *Config) { c.DBUser = "" },
		func(c *Config) { c.DBName = "" },
		func(c *Config) { c.JWTSecret = "" },
	} {
		cfg := validTestConfig()
		mutate(cfg)
		assert.Error(t, ValidateConfig(cfg))
	}
}

func TestLoadConfigDevelopmentDefaults(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "ovenledger", cfg.DBName)
	assert.Equal(t, "migrations", cfg.MigrationsDir)
}
