package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

const (
	// ArchivePageSize limits how many finished games one archive request
	// returns.
	ArchivePageSize = 50
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost        string
	ServerPort        string
	RedisURL          string
	PostgresURL       string
	BasicAuthUsername string
	BasicAuthPassword string
	Token             string
	Prefork           bool
}

// LoadServerConfig loads configuration from environment variables. A .env
// file in the working directory is loaded first when present.
func LoadServerConfig() *ServerConfig {
	_ = godotenv.Load()

	return &ServerConfig{
		ServerHost:        getEnvMust("OTHELLO_SERVER_HOST"),
		ServerPort:        getEnvMust("OTHELLO_SERVER_PORT"),
		RedisURL:          getEnvMust("OTHELLO_REDIS_URL"),
		PostgresURL:       getEnvMust("OTHELLO_POSTGRES_URL"),
		BasicAuthUsername: getEnvMust("OTHELLO_SERVER_BASIC_AUTH_USER"),
		BasicAuthPassword: getEnvMust("OTHELLO_SERVER_BASIC_AUTH_PASS"),
		Token:             getEnvMust("OTHELLO_SERVER_TOKEN"),
		Prefork:           getEnvMustBool("OTHELLO_SERVER_PREFORK"),
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvMustBool(key string) bool {
	value := getEnvMust(key)

	if value != "true" && value != "false" {
		slog.Error("Cannot load environment variable, it must be \"true\" or \"false\"", "key", key, "value", value)
		os.Exit(1)
	}

	return value == "true"
}
