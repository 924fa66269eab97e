package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Host          string
	Port          string
	DBDriver      string
	DBPath        string
	DatabaseURL   string
	DBLog         bool
	DefaultFilter string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	dbLog, _ := strconv.ParseBool(getEnv("TODO_DB_LOG", "false"))

	return &Config{
		Host:          getEnv("TODO_HOST", "127.0.0.1"),
		Port:          getEnv("PORT", "8080"),
		DBDriver:      strings.ToLower(getEnv("TODO_DB_DRIVER", DriverSQLite)),
		DBPath:        expandHome(getEnv("TODO_DB_PATH", "todo_list.db")),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		DBLog:         dbLog,
		DefaultFilter: getEnv("TODO_DEFAULT_FILTER", "category"),
	}
}

// Addr returns the host:port the window is served on
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
