package config

import (
	"encoding/json"
	"path/filepath"

	"github.com/aleister1102/pageprobe/internal/common"
	"gopkg.in/yaml.v3"
)

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	LogConfig        LogConfig        `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	BrowserConfig    BrowserConfig    `json:"browser_config,omitempty" yaml:"browser_config,omitempty"`
	ScreenshotConfig ScreenshotConfig `json:"screenshot_config,omitempty" yaml:"screenshot_config,omitempty"`
	HistoryConfig    HistoryConfig    `json:"history_config,omitempty" yaml:"history_config,omitempty"`
	MetricsConfig    MetricsConfig    `json:"metrics_config,omitempty" yaml:"metrics_config,omitempty"`
	ServerConfig     ServerConfig     `json:"server_config,omitempty" yaml:"server_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		LogConfig:        NewDefaultLogConfig(),
		BrowserConfig:    NewDefaultBrowserConfig(),
		ScreenshotConfig: NewDefaultScreenshotConfig(),
		HistoryConfig:    NewDefaultHistoryConfig(),
		MetricsConfig:    NewDefaultMetricsConfig(),
		ServerConfig:     NewDefaultServerConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// It determines the config file path using GetConfigPath and supports both
// JSON and YAML formats. When no config file is found, defaults are used.
func LoadGlobalConfig(providedPath string) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		return cfg, nil
	}

	data, err := readConfigFile(filePath)
	if err != nil {
		return nil, common.WrapError(err, "failed to load config file content")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, common.WrapError(err, "failed to parse config content")
	}

	return cfg, nil
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	ext := filepath.Ext(filePath)
	if isYAMLFile(ext) {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return common.WrapErrorf(err, "failed to parse YAML config file '%s'", filePath)
		}
		return nil
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return common.WrapErrorf(err, "failed to parse JSON config file '%s'", filePath)
	}
	return nil
}

func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}
