package config

import (
	"fmt"
	"net"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Server   ServerConfig   `envPrefix:"SERVER_"`
	Catalog  CatalogConfig  `envPrefix:"CATALOG_"`
	Database DatabaseConfig `envPrefix:"DATABASE_"`
	Log      LogConfig      `envPrefix:"LOG_"`
}

type ServerConfig struct {
	Port              string `env:"PORT" envDefault:"8080"`
	Host              string `env:"HOST" envDefault:"0.0.0.0"`
	PublicDir         string `env:"PUBLIC_DIR" envDefault:"public"`
	CORSOriginPattern string `env:"CORS_ORIGIN_PATTERN" envDefault:".*"`
	Pprof             bool   `env:"PPROF" envDefault:"false"`
	StatsdAddress     string `env:"STATSD_ADDRESS"`
}

// Addr is the listen address built from Host and Port.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

type CatalogConfig struct {
	// Source is a file path, an http(s) URL or a mongodb URI.
	Source         string        `env:"SOURCE,notEmpty" envDefault:"data/produtos.json" validate:"required"`
	LoadTimeout    time.Duration `env:"LOAD_TIMEOUT" envDefault:"10s" validate:"gt=0"`
	Locale         string        `env:"LOCALE" envDefault:"pt-BR"`
	CurrencySymbol string        `env:"CURRENCY_SYMBOL" envDefault:"R$"`
	OrderPhone     string        `env:"ORDER_PHONE" envDefault:"5532991657472"`
	OrderMessage   string        `env:"ORDER_MESSAGE" envDefault:"Olá, tenho interesse no produto: {{.Name}}"`
}

type DatabaseConfig struct {
	Database   string `env:"DATABASE" envDefault:"catalog"`
	Collection string `env:"COLLECTION" envDefault:"produtos"`
}

type LogConfig struct {
	Level string `env:"LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
