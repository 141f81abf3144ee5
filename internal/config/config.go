// Package config loads process configuration from the environment.
package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Addr is the HTTP listen address.
	Addr string `env:"KB_ADDR" envDefault:"127.0.0.1:8000"`
	// DatabasePath is the SQLite database file, created on first write.
	DatabasePath string `env:"KB_DATABASE_PATH" envDefault:"kb.db"`
	// TemplateDir holds the HTML template set loaded at startup.
	TemplateDir string `env:"KB_TEMPLATE_DIR" envDefault:"templates"`
	// StaticDir is served under /static/ with directory listing.
	StaticDir string `env:"KB_STATIC_DIR" envDefault:"static"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
