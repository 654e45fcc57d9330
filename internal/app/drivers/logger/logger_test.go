package logger

import (
	"testing"

	"healthportal-service/internal/app/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zap.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zap.InfoLevel, parseLevel("verbose"))
}

func TestNewLogrusLogger(t *testing.T) {
	driverConfig := &config.DriverConfig{Logger: config.Logger{Level: "warn"}}
	internalConfig := &config.InternalConfig{App: config.App{Env: "development"}}

	logger := NewLogrusLogger(driverConfig, internalConfig)

	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	_, isText := logger.Formatter.(*logrus.TextFormatter)
	assert.True(t, isText)
}

func TestNewZapLogger(t *testing.T) {
	driverConfig := &config.DriverConfig{Logger: config.Logger{Level: "error"}}
	internalConfig := &config.InternalConfig{App: config.App{Env: "development", Name: "healthportal-service", Version: "v1"}}

	logger := NewZapLogger(driverConfig, internalConfig)

	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.ErrorLevel))
}
