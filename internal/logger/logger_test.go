package logger

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"horoscope-service/internal/config"
)

func TestNew_LevelAndFormat(t *testing.T) {
	logger, closer, err := New(config.LoggerConfig{Level: "debug", Format: "json"})
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, log.DebugLevel, logger.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, logger.Formatter)
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	logger, closer, err := New(config.LoggerConfig{Level: "loud", Format: "text"})
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, log.InfoLevel, logger.GetLevel())
	assert.IsType(t, &log.TextFormatter{}, logger.Formatter)
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	logger, closer, err := New(config.LoggerConfig{Level: "info", Format: "json", File: path})
	require.NoError(t, err)

	logger.WithField("birthdate", "1998-07-27").Info("zodiac sign resolved")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"birthdate":"1998-07-27"`)
	assert.Contains(t, string(data), `"msg":"zodiac sign resolved"`)
}

func TestNew_FileError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "app.log")

	_, _, err := New(config.LoggerConfig{File: path})
	assert.Error(t, err)
}
