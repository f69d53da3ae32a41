package config

// HistoryConfig defines configuration for the invocation history store
type HistoryConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	DBPath  string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// NewDefaultHistoryConfig creates a new HistoryConfig with default values
func NewDefaultHistoryConfig() HistoryConfig {
	return HistoryConfig{
		Enabled: true,
		DBPath:  DefaultHistoryDBPath,
	}
}

// MetricsConfig defines configuration for the heartbeat metrics collector
type MetricsConfig struct {
	Enabled               bool `json:"enabled" yaml:"enabled"`
	HeartbeatIntervalSecs int  `json:"heartbeat_interval_secs,omitempty" yaml:"heartbeat_interval_secs,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultMetricsConfig creates a new MetricsConfig with default values
func NewDefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled:               true,
		HeartbeatIntervalSecs: DefaultHeartbeatIntervalSecs,
	}
}

// ServerConfig defines the identity the server reports during the MCP handshake
type ServerConfig struct {
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

// NewDefaultServerConfig creates a new ServerConfig with default values
func NewDefaultServerConfig() ServerConfig {
	return ServerConfig{
		Name:    DefaultServerName,
		Version: DefaultServerVersion,
	}
}
