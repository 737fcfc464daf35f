package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment   = "development"
	EnvProduction    = "production"
	DefaultSecretKey = "dev-secret-key-change-in-production"
)

type Config struct {
	SecretKey string `env:"SECRET_KEY" envDefault:"dev-secret-key-change-in-production"`
	AppPort   string `env:"PORT" envDefault:"5000"`
	AppEnv    string `env:"APP_ENV" envDefault:"development"`
	Database  DatabaseConfig
}

type DatabaseConfig struct {
	Host         string        `env:"DB_HOST" envDefault:"localhost"`
	Port         string        `env:"DB_PORT" envDefault:"5432"`
	Name         string        `env:"DB_NAME" envDefault:"leadsdb"`
	User         string        `env:"DB_USER" envDefault:"postgres"`
	Password     string        `env:"DB_PASSWORD" envDefault:"postgres"`
	SSLMode      string        `env:"DB_SSLMODE" envDefault:"disable"`
	Timeout      time.Duration `env:"DB_TIMEOUT" envDefault:"5s"`
	MaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
}

// Load reads a .env file when one is present and parses the environment into a Config.
func Load() (Config, error) {
	if err := LoadEnv(); err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadEnv seeds the process environment from .env. A missing file is fine.
func LoadEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func (c Config) Debug() bool {
	return c.AppEnv == EnvDevelopment
}

// Validate applies the production baseline: the development secret is refused.
func (c Config) Validate() error {
	if c.AppEnv == EnvProduction && (c.SecretKey == "" || c.SecretKey == DefaultSecretKey) {
		return errors.New("insecure SECRET_KEY in production; set SECRET_KEY")
	}
	if c.Database.Timeout <= 0 {
		return errors.New("DB_TIMEOUT must be positive")
	}
	return nil
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

func (d DatabaseConfig) DSNMasked() string {
	masked := d
	if masked.Password != "" {
		masked.Password = "******"
	}
	return masked.DSN()
}
