package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"portfolio-backend/utils"
)

// Config holds everything the process reads from the environment.
// It is loaded once in main and injected; no other package touches os.Getenv.
type Config struct {
	Port  string `env:"PORT" envDefault:"8080"`
	DBUrl string `env:"DB_URL"`
	SMTP  SMTPConfig
}

// SMTPConfig configures the outbound mail transport.
type SMTPConfig struct {
	Host     string `env:"EMAIL_HOST" envDefault:"smtp.gmail.com"`
	Port     string `env:"EMAIL_PORT" envDefault:"587"`
	User     string `env:"EMAIL_USER"`
	Password string `env:"EMAIL_PASS"`
	From     string `env:"EMAIL_FROM"`
	To       string `env:"EMAIL_TO"`
}

// Configured reports whether the transport has credentials. Missing
// credentials disable notifications, they are not a startup error.
func (s SMTPConfig) Configured() bool {
	return s.User != "" && s.Password != ""
}

// Addr returns the host:port dial address of the SMTP server.
func (s SMTPConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// Load reads the optional .env file and parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		utils.LogInfo("No .env file found, using the system environment")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.User
	}

	return cfg, nil
}
