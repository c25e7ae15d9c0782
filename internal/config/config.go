package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all starscope configuration. Only the connector and logging
// read the environment; the classification core takes no configuration
// beyond its CLI arguments.
type Config struct {
	Connector ConnectorConfig
	LogLevel  string
}

// ConnectorConfig holds hosting-provider connection settings.
type ConnectorConfig struct {
	Provider  string
	Token     string
	Username  string
	Endpoint  string  // override for tests and proxies; empty selects the provider default
	PerPage   int     // page size for starred pagination
	TopicRate float64 // topic calls per second
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Connector: ConnectorConfig{
			Provider:  getenv("STARSCOPE_PROVIDER", "github"),
			Token:     os.Getenv("GITHUB_TOKEN"),
			Username:  os.Getenv("STARSCOPE_USERNAME"),
			Endpoint:  os.Getenv("STARSCOPE_ENDPOINT"),
			PerPage:   getenvInt("STARSCOPE_PER_PAGE", 100),
			TopicRate: getenvFloat("STARSCOPE_TOPIC_RATE", 1),
		},
		LogLevel: getenv("STARSCOPE_LOG_LEVEL", "info"),
	}
}

// Validate checks field ranges. Credentials are not checked here — only the
// commands that reach the network require them, and the connector reports
// what is missing when it is constructed.
func (c Config) Validate() error {
	var problems []string
	if c.Connector.PerPage < 1 || c.Connector.PerPage > 100 {
		problems = append(problems, fmt.Sprintf("per_page must be between 1 and 100, got %d", c.Connector.PerPage))
	}
	if c.Connector.TopicRate <= 0 {
		problems = append(problems, fmt.Sprintf("topic rate must be positive, got %g", c.Connector.TopicRate))
	}
	if len(problems) > 0 {
		return fmt.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
