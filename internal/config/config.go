package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const devJWTSecret = "dev-secret-change-in-production"

var (
	ErrInsecureSecret = errors.New("JWT_SECRET must be set in production environment")
	ErrLengthBounds   = errors.New("password length bounds must satisfy 0 <= min <= default <= max")
)

type Config struct {
	Port            string        `env:"PORT" env-default:"8080"`
	Env             string        `env:"ENV" env-default:"development"`
	DatabaseDSN     string        `env:"DATABASE_DSN" env-default:"root:password@tcp(127.0.0.1:3306)/passgen?parseTime=true"`
	JWTSecret       string        `env:"JWT_SECRET" env-default:"dev-secret-change-in-production"`
	JWTExpiry       time.Duration `env:"JWT_EXPIRY" env-default:"24h"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`

	// Password bounds are applied by the outer layers before calling the generator.
	Password struct {
		MinLength     int `env:"PASSWORD_MIN_LENGTH" env-default:"4"`
		MaxLength     int `env:"PASSWORD_MAX_LENGTH" env-default:"128"`
		DefaultLength int `env:"PASSWORD_DEFAULT_LENGTH" env-default:"24"`
	}

	RateLimit struct {
		RPS   float64 `env:"RATE_LIMIT_RPS" env-default:"10"`
		Burst int     `env:"RATE_LIMIT_BURST" env-default:"20"`
	}
}

// Load reads the configuration from the environment. A .env file, if any, must already
// have been loaded into the environment.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}

	if cfg.Env == "production" && cfg.JWTSecret == devJWTSecret {
		return Config{}, ErrInsecureSecret
	}

	p := cfg.Password
	if p.MinLength < 0 || p.MinLength > p.DefaultLength || p.DefaultLength > p.MaxLength {
		return Config{}, ErrLengthBounds
	}

	return cfg, nil
}
