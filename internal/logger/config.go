package logger

import (
	"github.com/aleister1102/pageprobe/internal/config"
	"github.com/rs/zerolog"
)

// LogFormat enumerates the supported log output encodings
type LogFormat int

const (
	FormatJSON LogFormat = iota
	FormatConsole
	FormatText
)

// String returns the config-file spelling of the format
func (lf LogFormat) String() string {
	switch lf {
	case FormatJSON:
		return "json"
	case FormatConsole:
		return "console"
	case FormatText:
		return "text"
	default:
		return "console"
	}
}

// LoggerConfig is the resolved logger setup the builder works from,
// produced by convertConfig out of the raw config.LogConfig strings.
type LoggerConfig struct {
	Level         zerolog.Level
	Format        LogFormat
	EnableConsole bool
	EnableFile    bool
	FilePath      string
	MaxSizeMB     int
	MaxBackups    int
}

// DefaultLoggerConfig mirrors the defaults in the config package:
// console output on stderr, no file rotation until a path is set.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:         zerolog.InfoLevel,
		Format:        FormatConsole,
		EnableConsole: true,
		EnableFile:    false,
		MaxSizeMB:     config.DefaultMaxLogSizeMB,
		MaxBackups:    config.DefaultMaxLogBackups,
	}
}
