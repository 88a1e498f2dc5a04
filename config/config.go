package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration, resolved once at startup.
type Config struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	AppHost     string `env:"APP_HOST" envDefault:"0.0.0.0"`
	AppPort     string `env:"APP_PORT" envDefault:"3000"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"facilpay-api"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"*"`

	LogLevel         string `env:"LOG_LEVEL"`
	LogDir           string `env:"LOG_DIR" envDefault:"logs"`
	LogMaxSizeMB     int    `env:"LOG_MAX_SIZE" envDefault:"10"`
	LogRetentionDays int    `env:"LOG_RETENTION_DAYS" envDefault:"14"`
	LogPretty        *bool  `env:"LOG_PRETTY"`
	LogBody          bool   `env:"LOG_BODY" envDefault:"false"`
	LogResponseBody  bool   `env:"LOG_RESPONSE_BODY" envDefault:"false"`
	LogBodyMaxLength int    `env:"LOG_BODY_MAX_LENGTH" envDefault:"2048"`

	JWTSecret       string `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	JWTExpiresHours int    `env:"JWT_EXPIRES_IN" envDefault:"24"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBDatabase string `env:"DB_DATABASE" envDefault:"facilpay"`
	DBUsername string `env:"DB_USERNAME" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:""`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Attempt to load .env file for local development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction reports whether the app runs in a production-like environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ResolvedLogLevel returns the configured level, defaulting to info in
// production and debug everywhere else.
func (c *Config) ResolvedLogLevel() string {
	if c.LogLevel != "" {
		return c.LogLevel
	}
	if c.IsProduction() {
		return "info"
	}
	return "debug"
}

// ResolvedLogPretty returns the pretty-console flag, defaulting to enabled
// outside production.
func (c *Config) ResolvedLogPretty() bool {
	if c.LogPretty != nil {
		return *c.LogPretty
	}
	return !c.IsProduction()
}
