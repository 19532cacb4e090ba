package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	// Listening ports used when PORT is not set.
	DefaultDevelopmentPort = "5000"
	DefaultProductionPort  = "8000"

	developmentSecretKey = "dev-secret-key-change-in-production"
)

var ErrMissingSecretKey = errors.New("SECRET_KEY must be set in production")

// Config is built once at startup and passed to every component that needs it.
// Nothing reads the environment after LoadConfig returns.
type Config struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	Port      string `env:"PORT"`
	SecretKey string `env:"SECRET_KEY"`
	SiteName  string `env:"SITE_NAME" envDefault:"PhysioWell"`
	// SMTP relay (STARTTLS + AUTH). The username doubles as the From address.
	SMTPHost     string `env:"MAIL_SERVER" envDefault:"smtp.gmail.com"`
	SMTPPort     string `env:"MAIL_PORT" envDefault:"587"`
	SMTPUsername string `env:"MAIL_USERNAME"`
	SMTPPassword string `env:"MAIL_PASSWORD"`
	// Practice mailbox that receives notifications. Falls back to SMTPUsername.
	ContactEmailTo string `env:"MAIL_DEFAULT_RECIPIENT"`
}

func LoadConfig() (*Config, error) {
	// .env is optional; deployments set real environment variables
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	if cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
		log.Println("WARNING: MAIL_USERNAME/MAIL_PASSWORD not set. Form notifications will not be emailed.")
	}

	return cfg, nil
}

func (c *Config) normalize() error {
	c.Env = strings.ToLower(strings.TrimSpace(c.Env))
	switch c.Env {
	case EnvDevelopment, EnvProduction:
	case "dev", "":
		c.Env = EnvDevelopment
	case "prod":
		c.Env = EnvProduction
	default:
		return fmt.Errorf("unknown APP_ENV %q (want %s or %s)", c.Env, EnvDevelopment, EnvProduction)
	}

	if c.Port == "" {
		c.Port = DefaultDevelopmentPort
		if c.IsProduction() {
			c.Port = DefaultProductionPort
		}
	}

	if c.SecretKey == "" {
		if c.IsProduction() {
			return ErrMissingSecretKey
		}
		c.SecretKey = developmentSecretKey
	}

	c.ContactEmailTo = strings.TrimSpace(c.ContactEmailTo)
	if c.ContactEmailTo == "" {
		c.ContactEmailTo = c.SMTPUsername
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}
