package inspector

// HealthCheckResult is the outcome of a site health check
type HealthCheckResult struct {
	Success       bool     `json:"success"`
	Error         string   `json:"error,omitempty"`
	URL           string   `json:"url,omitempty"`
	StatusCode    int      `json:"status_code,omitempty"`
	Title         string   `json:"title,omitempty"`
	Description   string   `json:"description,omitempty"`
	LoadTimeMs    int64    `json:"load_time_ms,omitempty"`
	ConsoleErrors []string `json:"console_errors,omitempty"`
}

// ScreenshotResult is the outcome of a full-page screenshot capture
type ScreenshotResult struct {
	Success    bool    `json:"success"`
	Error      string  `json:"error,omitempty"`
	FilePath   string  `json:"file_path,omitempty"`
	Filename   string  `json:"filename,omitempty"`
	FileSizeMB float64 `json:"file_size_mb,omitempty"`
	Width      int     `json:"width,omitempty"`
	Height     int     `json:"height,omitempty"`
}

// ElementCheckResult is the outcome of a CSS selector visibility check
type ElementCheckResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Found   bool   `json:"found"`
	Visible bool   `json:"visible"`
	Text    string `json:"text,omitempty"`
}
