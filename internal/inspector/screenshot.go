package inspector

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aleister1102/pageprobe/internal/guard"
	"github.com/go-rod/rod/lib/proto"
)

const screenshotExtension = ".png"

// CaptureScreenshot navigates to the target and writes a full-page PNG
// under the configured output directory. The filename argument is
// optional; when empty a timestamped name is generated, otherwise the
// candidate is sanitized into a single safe path segment.
func (ins *Inspector) CaptureScreenshot(ctx context.Context, target, filename string) ScreenshotResult {
	if validation := guard.ValidateLocator(target); !validation.Allowed {
		return ScreenshotResult{Error: securityRejection(validation.Reason)}
	}

	name := resolveScreenshotName(filename, time.Now())
	outputPath := filepath.Join(ins.screenshotCfg.OutputDir, name)

	navCtx, cancel := context.WithTimeout(ctx, ins.navigationTimeout())
	defer cancel()

	page, err := ins.browser.NewPage(navCtx)
	if err != nil {
		return ScreenshotResult{Error: fmt.Sprintf("failed to open page: %v", err)}
	}
	defer ins.closePage(page)

	if err := page.Navigate(target); err != nil {
		return ScreenshotResult{Error: operationError("navigation failed", err)}
	}
	if err := page.WaitLoad(); err != nil {
		return ScreenshotResult{Error: operationError("page load failed", err)}
	}

	ins.waitAfterLoad()

	data, err := page.Screenshot(ins.screenshotCfg.FullPage, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return ScreenshotResult{Error: fmt.Sprintf("screenshot capture failed: %v", err)}
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return ScreenshotResult{Error: fmt.Sprintf("failed to write screenshot file: %v", err)}
	}

	sizeBytes, err := enforceSizeCeiling(outputPath, ins.screenshotCfg.MaxFileSizeMB)
	if err != nil {
		return ScreenshotResult{Error: err.Error()}
	}

	result := ScreenshotResult{
		Success:    true,
		FilePath:   absolutePath(outputPath),
		Filename:   name,
		FileSizeMB: float64(sizeBytes) / (1024 * 1024),
	}

	if imgConfig, err := png.DecodeConfig(bytes.NewReader(data)); err == nil {
		result.Width = imgConfig.Width
		result.Height = imgConfig.Height
	}

	ins.logger.Info().
		Str("url", target).
		Str("file", result.FilePath).
		Float64("size_mb", result.FileSizeMB).
		Msg("Screenshot captured")

	return result
}

// resolveScreenshotName turns an optional user-supplied filename into a
// safe output name. The timestamped fallback also covers candidates that
// sanitize down to nothing.
func resolveScreenshotName(candidate string, now time.Time) string {
	if strings.TrimSpace(candidate) == "" {
		return timestampedScreenshotName(now)
	}

	name := guard.SanitizeFilename(candidate)
	if strings.Trim(name, "_") == "" {
		return timestampedScreenshotName(now)
	}
	return ensurePNGExtension(name)
}

func timestampedScreenshotName(now time.Time) string {
	return "screenshot_" + now.Format("20060102_150405") + screenshotExtension
}

// ensurePNGExtension appends .png while keeping the name within the
// single-segment length limit the sanitizer guarantees.
func ensurePNGExtension(name string) string {
	if strings.HasSuffix(strings.ToLower(name), screenshotExtension) {
		return name
	}
	const maxBase = 255 - len(screenshotExtension)
	if len(name) > maxBase {
		name = name[:maxBase]
	}
	return name + screenshotExtension
}

// enforceSizeCeiling checks the written file against the configured size
// limit. Oversized files are deleted immediately and reported as a
// failure instead of handing the caller a path to an unusable artifact.
func enforceSizeCeiling(path string, maxSizeMB int) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat screenshot file: %w", err)
	}

	maxBytes := int64(maxSizeMB) * 1024 * 1024
	if info.Size() > maxBytes {
		if removeErr := os.Remove(path); removeErr != nil {
			return 0, fmt.Errorf("screenshot is %.1fMB which exceeds the %dMB limit, and cleanup failed: %v",
				float64(info.Size())/(1024*1024), maxSizeMB, removeErr)
		}
		return 0, fmt.Errorf("screenshot is %.1fMB which exceeds the %dMB limit; the file was deleted",
			float64(info.Size())/(1024*1024), maxSizeMB)
	}

	return info.Size(), nil
}

func absolutePath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
