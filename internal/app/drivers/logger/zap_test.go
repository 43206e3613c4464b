package logger

import (
	"konsulin-portal/internal/app/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestPortalZapConfig(t *testing.T) {
	driverConfig := &config.DriverConfig{}
	driverConfig.Logger.OutputFileName = "portal.log"
	driverConfig.Logger.OutputErrorFileName = "portal_error.log"

	tests := []struct {
		name             string
		env              string
		level            string
		expectedLevel    zapcore.Level
		expectedEncoding string
		expectedOutputs  []string
		expectedErrors   []string
		development      bool
	}{
		{name: "development", env: "development", level: "debug", expectedLevel: zapcore.DebugLevel, expectedEncoding: "console", expectedOutputs: []string{"stdout"}, expectedErrors: []string{"stderr"}, development: true},
		{name: "production", env: "production", level: "warn", expectedLevel: zapcore.WarnLevel, expectedEncoding: "json", expectedOutputs: []string{"portal.log"}, expectedErrors: []string{"stderr", "portal_error.log"}},
		{name: "staging with unknown level", env: "staging", level: "loud", expectedLevel: zapcore.InfoLevel, expectedEncoding: "json", expectedOutputs: []string{"stdout"}, expectedErrors: []string{"stderr"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driverConfig.Logger.Level = tt.level
			internalConfig := &config.InternalConfig{App: config.App{Env: tt.env, Version: "v1"}}

			cfg := portalZapConfig(driverConfig, internalConfig)

			assert.Equal(t, tt.expectedLevel, cfg.Level.Level())
			assert.Equal(t, tt.expectedEncoding, cfg.Encoding)
			assert.Equal(t, tt.expectedOutputs, cfg.OutputPaths)
			assert.Equal(t, tt.expectedErrors, cfg.ErrorOutputPaths)
			assert.Equal(t, tt.development, cfg.Development)
			assert.Equal(t, "konsulin-portal", cfg.InitialFields["service"])
			assert.Equal(t, tt.env, cfg.InitialFields["env"])
		})
	}
}
