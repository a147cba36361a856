package database

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds database configuration
type Config struct {
	Driver   string
	Path     string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// NewConfig creates a new database configuration
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist, we'll use defaults or environment variables
		fmt.Println("Warning: .env file not found")
	}

	cfg := &Config{
		Driver:   getEnv("DB_DRIVER", DriverSQLite),
		Path:     getEnv("DB_PATH", "verde.db"),
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "verde"),
		Password: getEnv("DB_PASSWORD", "verde"),
		DBName:   getEnv("DB_NAME", "verde"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
	if cfg.Driver != DriverSQLite && cfg.Driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (use %s or %s)", cfg.Driver, DriverSQLite, DriverPostgres)
	}
	return cfg, nil
}

// DSN returns the PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// URL returns the PostgreSQL URL form used by golang-migrate.
func (c *Config) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
