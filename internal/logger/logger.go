package logger

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"horoscope-service/internal/config"
)

// New builds the process logger. The returned closer releases the log file,
// if one was configured.
func New(cfg config.LoggerConfig) (*log.Logger, io.Closer, error) {
	logger := log.New()

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&log.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05"})
	} else {
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05"})
	}

	if cfg.File == "" {
		logger.SetOutput(os.Stdout)
		return logger, nopCloser{}, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(io.MultiWriter(os.Stdout, f))

	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
