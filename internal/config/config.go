package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	Docs   DocsConfig
}

type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string
	File   string
}

type DocsConfig struct {
	ServerURL string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 3000)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("LOGGER_FILE", "")
	v.SetDefault("DOCS_SERVER_URL", "http://localhost:3000")

	// Env; PORT is accepted as used by most hosting platforms
	v.AutomaticEnv()
	if err := v.BindEnv("SERVER_PORT", "SERVER_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("bind port env: %w", err)
	}

	port := v.GetInt("SERVER_PORT")
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid server port %q", v.GetString("SERVER_PORT"))
	}

	shutdownTimeout, err := time.ParseDuration(v.GetString("SERVER_SHUTDOWN_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("parse server shutdown timeout: %w", err)
	}
	if shutdownTimeout <= 0 {
		return nil, fmt.Errorf("invalid server shutdown timeout %s", shutdownTimeout)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:            v.GetString("SERVER_HOST"),
			Port:            port,
			ShutdownTimeout: shutdownTimeout,
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
			File:   v.GetString("LOGGER_FILE"),
		},
		Docs: DocsConfig{
			ServerURL: v.GetString("DOCS_SERVER_URL"),
		},
	}

	return cfg, nil
}

// Addr is the listen address of the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
