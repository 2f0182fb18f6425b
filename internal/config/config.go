package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the full service configuration, parsed from the environment.
type Config struct {
	Port           string   `env:"PORT" envDefault:"5000"`
	Env            string   `env:"APP_ENV" envDefault:"development"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	// CronSecret, when set, is required in the X-Cron-Secret header on the
	// cron, test and debug endpoints.
	CronSecret string `env:"CRON_SECRET"`

	MongoURL            string        `env:"MONGODB_URL,required"`
	MongoDatabase       string        `env:"MONGODB_DATABASE" envDefault:"vetbridge"`
	MongoConnectTimeout time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
	MongoRetryAttempts  int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`
	MongoRetryInterval  time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"5s"`

	SendGridAPIKey string `env:"SENDGRID_API_KEY,required"`
	FromEmail      string `env:"SENDGRID_FROM_EMAIL" envDefault:"support@vetbridge.example.com"`
	FromName       string `env:"SENDGRID_FROM_NAME" envDefault:"VetBridge"`
	SupportEmail   string `env:"SUPPORT_EMAIL" envDefault:"support@vetbridge.example.com"`

	// SweepCron is the internal schedule for reminder sweeps, in UTC.
	SweepCron string `env:"REMINDER_SWEEP_CRON" envDefault:"*/2 * * * *"`

	PDFTimeout time.Duration `env:"PDF_RENDER_TIMEOUT" envDefault:"30s"`
}

// Load reads an optional .env file and parses the environment.
func Load() (*Config, error) {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
