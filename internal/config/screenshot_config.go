package config

// ScreenshotConfig defines configuration for screenshot capture and storage
type ScreenshotConfig struct {
	OutputDir     string `json:"output_dir,omitempty" yaml:"output_dir,omitempty" validate:"omitempty,dirpath"`
	MaxFileSizeMB int    `json:"max_file_size_mb,omitempty" yaml:"max_file_size_mb,omitempty" validate:"omitempty,min=1"`
	FullPage      bool   `json:"full_page" yaml:"full_page"`
}

// NewDefaultScreenshotConfig creates a new ScreenshotConfig with default values
func NewDefaultScreenshotConfig() ScreenshotConfig {
	return ScreenshotConfig{
		OutputDir:     DefaultScreenshotOutputDir,
		MaxFileSizeMB: DefaultScreenshotMaxFileSizeMB,
		FullPage:      true,
	}
}
