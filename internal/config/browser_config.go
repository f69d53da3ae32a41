package config

// BrowserConfig defines configuration for the shared headless browser handle
type BrowserConfig struct {
	ChromePath            string   `json:"chrome_path,omitempty" yaml:"chrome_path,omitempty"`
	UserDataDir           string   `json:"user_data_dir,omitempty" yaml:"user_data_dir,omitempty"`
	UserAgent             string   `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	WindowWidth           int      `json:"window_width,omitempty" yaml:"window_width,omitempty" validate:"omitempty,min=100"`
	WindowHeight          int      `json:"window_height,omitempty" yaml:"window_height,omitempty" validate:"omitempty,min=100"`
	NavigationTimeoutSecs int      `json:"navigation_timeout_secs,omitempty" yaml:"navigation_timeout_secs,omitempty" validate:"omitempty,min=1"`
	ElementWaitSecs       int      `json:"element_wait_secs,omitempty" yaml:"element_wait_secs,omitempty" validate:"omitempty,min=1"`
	WaitAfterLoadMs       int      `json:"wait_after_load_ms,omitempty" yaml:"wait_after_load_ms,omitempty" validate:"omitempty,min=0"`
	IgnoreHTTPSErrors     bool     `json:"ignore_https_errors" yaml:"ignore_https_errors"`
	BrowserArgs           []string `json:"browser_args,omitempty" yaml:"browser_args,omitempty"`
}

// NewDefaultBrowserConfig creates a new BrowserConfig with default values
func NewDefaultBrowserConfig() BrowserConfig {
	return BrowserConfig{
		ChromePath:            "",
		UserDataDir:           "",
		UserAgent:             DefaultBrowserUserAgent,
		WindowWidth:           DefaultBrowserWindowWidth,
		WindowHeight:          DefaultBrowserWindowHeight,
		NavigationTimeoutSecs: DefaultNavigationTimeoutSecs,
		ElementWaitSecs:       DefaultElementWaitTimeoutSecs,
		WaitAfterLoadMs:       DefaultBrowserWaitAfterLoadMs,
		IgnoreHTTPSErrors:     DefaultBrowserIgnoreHTTPSErrors,
		BrowserArgs:           []string{"--no-sandbox", "--disable-dev-shm-usage", "--disable-gpu"},
	}
}
