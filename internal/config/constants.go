package config

const (
	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Browser Defaults
	DefaultBrowserUserAgent          = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	DefaultBrowserWindowWidth        = 1920
	DefaultBrowserWindowHeight       = 1080
	DefaultNavigationTimeoutSecs     = 30
	DefaultElementWaitTimeoutSecs    = 5
	DefaultBrowserWaitAfterLoadMs    = 500
	DefaultBrowserIgnoreHTTPSErrors  = true

	// Screenshot Defaults
	DefaultScreenshotOutputDir     = "screenshots"
	DefaultScreenshotMaxFileSizeMB = 50

	// History Defaults
	DefaultHistoryDBPath = "data/invocation_history.db"

	// Metrics Defaults
	DefaultHeartbeatIntervalSecs = 60

	// Server Defaults
	DefaultServerName    = "pageprobe"
	DefaultServerVersion = "1.0.0"
)
