package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config contains runtime settings for the samples and the MCP server
type Config struct {
	LogLevel string
	Host     string // default 0.0.0.0
	Port     string // default PORT env or 8080
	Jobs     struct {
		Endpoint        string
		CredentialsPath string
		APIKey          string
		Domain          string
		Timeout         time.Duration
	} // job discovery API settings
	Neo4j struct {
		URI      string
		Username string
		Password string
	} // optional; all three or none
}

// Load populates config from environment variables, reading .env first when present
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		LogLevel: "info",
		Host:     "0.0.0.0",
		Port:     "8080",
	}
	cfg.Jobs.Domain = "www.google.com"
	cfg.Jobs.Timeout = 30 * time.Second

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("MCP_HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	cfg.Jobs.Endpoint = os.Getenv("JOBS_ENDPOINT")
	cfg.Jobs.APIKey = os.Getenv("JOBS_API_KEY")
	if v := os.Getenv("JOBS_CREDENTIALS_PATH"); v != "" {
		cfg.Jobs.CredentialsPath = v
	} else {
		cfg.Jobs.CredentialsPath = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	}
	if v := os.Getenv("JOBS_DOMAIN"); v != "" {
		cfg.Jobs.Domain = v
	}
	if v := os.Getenv("JOBS_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid JOBS_TIMEOUT %q: %w", v, err)
		}
		cfg.Jobs.Timeout = d
	}

	cfg.Neo4j.URI = os.Getenv("NEO4J_URI")
	cfg.Neo4j.Username = os.Getenv("NEO4J_USERNAME")
	cfg.Neo4j.Password = os.Getenv("NEO4J_PASSWORD")

	var missingVars []string

	if cfg.Jobs.CredentialsPath == "" && cfg.Jobs.APIKey == "" {
		missingVars = append(missingVars, "JOBS_CREDENTIALS_PATH or JOBS_API_KEY")
	}

	if cfg.Neo4jEnabled() {
		if cfg.Neo4j.URI == "" {
			missingVars = append(missingVars, "NEO4J_URI")
		}

		if cfg.Neo4j.Username == "" {
			missingVars = append(missingVars, "NEO4J_USERNAME")
		}

		if cfg.Neo4j.Password == "" {
			missingVars = append(missingVars, "NEO4J_PASSWORD")
		}
	}

	if len(missingVars) > 0 {
		return cfg, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	return cfg, nil
}

// Neo4jEnabled reports whether any Neo4j setting was provided
func (c Config) Neo4jEnabled() bool {
	return c.Neo4j.URI != "" || c.Neo4j.Username != "" || c.Neo4j.Password != ""
}
