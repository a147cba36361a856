package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// DefaultStateKey is the key the ledger state is stored under.
const DefaultStateKey = "verde_financas_state"

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Ledger
	StateKey      string
	Currency      string
	PaymentPrefix string
	SeedFile      string

	// Event forwarding; disabled when AMQPURL is empty
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		StateKey:      getEnv("STATE_KEY", DefaultStateKey),
		Currency:      getEnv("CURRENCY", "BRL"),
		PaymentPrefix: getEnvRaw("PAYMENT_PREFIX", "Payment: "),
		SeedFile:      getEnv("SEED_FILE", ""),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "verde"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "verde.events"),
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// AMQPEnabled reports whether event forwarding is configured.
func (c *Config) AMQPEnabled() bool {
	return c.AMQPURL != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvRaw is like getEnv but keeps a value that is set to the empty string,
// so a prefix can be disabled explicitly.
func getEnvRaw(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
