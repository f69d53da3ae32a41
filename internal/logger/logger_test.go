package logger

import (
	"path/filepath"
	"testing"

	"github.com/aleister1102/pageprobe/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LogConfig
		wantErr bool
	}{
		{
			name: "defaults build a console logger",
			cfg:  config.NewDefaultLogConfig(),
		},
		{
			name: "json format with file output",
			cfg: config.LogConfig{
				LogLevel:  "debug",
				LogFormat: "json",
				LogFile:   filepath.Join(t.TempDir(), "logs", "pageprobe.log"),
			},
		},
		{
			name: "unknown level falls back to info",
			cfg: config.LogConfig{
				LogLevel:  "chatty",
				LogFormat: "console",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zl, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			// A usable logger does not panic on emit.
			zl.Info().Str("component", "test").Msg("logger smoke test")
		})
	}
}

func TestConvertConfig(t *testing.T) {
	cfg := config.LogConfig{
		LogLevel:      "warn",
		LogFormat:     "json",
		LogFile:       "out.log",
		MaxLogSizeMB:  0,
		MaxLogBackups: -1,
	}

	converted := convertConfig(cfg)

	assert.Equal(t, zerolog.WarnLevel, converted.Level)
	assert.Equal(t, FormatJSON, converted.Format)
	assert.True(t, converted.EnableFile)
	assert.Equal(t, 100, converted.MaxSizeMB)
	assert.Equal(t, 3, converted.MaxBackups)
}

func TestBuilderValidation(t *testing.T) {
	builder := NewLoggerBuilder()
	builder.config.EnableFile = true
	builder.config.FilePath = ""

	_, err := builder.Build()
	assert.Error(t, err)
}

func TestLogFormatString(t *testing.T) {
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "console", FormatConsole.String())
	assert.Equal(t, "text", FormatText.String())
	assert.Equal(t, "console", LogFormat(99).String())
}

func TestDefaultLoggerConfigTracksConfigDefaults(t *testing.T) {
	defaults := DefaultLoggerConfig()
	assert.Equal(t, zerolog.InfoLevel, defaults.Level)
	assert.Equal(t, FormatConsole, defaults.Format)
	assert.Equal(t, config.DefaultMaxLogSizeMB, defaults.MaxSizeMB)
	assert.Equal(t, config.DefaultMaxLogBackups, defaults.MaxBackups)
}
