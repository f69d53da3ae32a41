package inspector

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aleister1102/pageprobe/internal/browser"
	"github.com/aleister1102/pageprobe/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestInspector builds an Inspector backed by an unlaunched browser
// manager. Guard rejections short-circuit before any browser work, so
// these tests never spawn a browser process.
func newTestInspector(t *testing.T) (*Inspector, string) {
	t.Helper()

	outputDir := t.TempDir()
	browserCfg := config.NewDefaultBrowserConfig()
	screenshotCfg := config.NewDefaultScreenshotConfig()
	screenshotCfg.OutputDir = outputDir

	manager := browser.NewManager(browserCfg, zerolog.Nop())
	t.Cleanup(manager.Close)

	return New(manager, browserCfg, screenshotCfg, zerolog.Nop()), outputDir
}

func TestCheckSiteHealthBlockedLocator(t *testing.T) {
	ins, _ := newTestInspector(t)

	tests := []struct {
		name   string
		target string
	}{
		{"localhost", "http://localhost:8080/health"},
		{"metadata endpoint", "http://169.254.169.254/latest/meta-data/"},
		{"private range", "http://10.1.2.3/"},
		{"file scheme", "file:///etc/passwd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ins.CheckSiteHealth(context.Background(), tt.target)

			assert.False(t, result.Success)
			assert.True(t, strings.HasPrefix(result.Error, securityRejectionPrefix),
				"error %q must carry the security rejection prefix", result.Error)
		})
	}
}

func TestCaptureScreenshotBlockedLocatorCreatesNoFile(t *testing.T) {
	ins, outputDir := newTestInspector(t)

	result := ins.CaptureScreenshot(context.Background(), "http://192.168.0.1/admin", "evidence")

	assert.False(t, result.Success)
	assert.True(t, strings.HasPrefix(result.Error, securityRejectionPrefix))
	assert.Empty(t, result.FilePath)

	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "a blocked locator must never create a file")
}

func TestCheckElementBlockedLocator(t *testing.T) {
	ins, _ := newTestInspector(t)

	result := ins.CheckElement(context.Background(), "ftp://example.com/", "#main")

	assert.False(t, result.Success)
	assert.False(t, result.Found)
	assert.True(t, strings.HasPrefix(result.Error, securityRejectionPrefix))
}

func TestResolveScreenshotName(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC)

	tests := []struct {
		name      string
		candidate string
		expected  string
	}{
		{
			name:      "empty candidate gets timestamped name",
			candidate: "",
			expected:  "screenshot_20240315_103045.png",
		},
		{
			name:      "whitespace candidate gets timestamped name",
			candidate: "   ",
			expected:  "screenshot_20240315_103045.png",
		},
		{
			name:      "all-garbage candidate gets timestamped name",
			candidate: "???///",
			expected:  "screenshot_20240315_103045.png",
		},
		{
			name:      "safe candidate keeps name with extension added",
			candidate: "homepage-check",
			expected:  "homepage-check.png",
		},
		{
			name:      "existing png extension preserved",
			candidate: "capture.PNG",
			expected:  "capture.PNG",
		},
		{
			name:      "traversal candidate sanitized",
			candidate: "../../etc/passwd",
			expected:  "_.._etc_passwd.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolveScreenshotName(tt.candidate, now))
		})
	}
}

func TestResolveScreenshotNameLength(t *testing.T) {
	name := resolveScreenshotName(strings.Repeat("a", 5000), time.Now())

	assert.LessOrEqual(t, len(name), 255)
	assert.True(t, strings.HasSuffix(name, ".png"))
}

func TestEnforceSizeCeiling(t *testing.T) {
	t.Run("file under the limit is kept", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "small.png")
		require.NoError(t, os.WriteFile(path, make([]byte, 512), 0644))

		size, err := enforceSizeCeiling(path, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(512), size)
		assert.FileExists(t, path)
	})

	t.Run("oversized file is deleted and reported", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "huge.png")
		require.NoError(t, os.WriteFile(path, make([]byte, 2*1024*1024), 0644))

		_, err := enforceSizeCeiling(path, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds")
		assert.Contains(t, err.Error(), "1MB")
		assert.NoFileExists(t, path)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := enforceSizeCeiling(filepath.Join(t.TempDir(), "gone.png"), 1)
		assert.Error(t, err)
	})
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", truncateText("  short  ", 100))
	assert.Equal(t, strings.Repeat("x", 10), truncateText(strings.Repeat("x", 50), 10))
	// Multi-byte runes are not split.
	assert.Equal(t, "日本", truncateText("日本語テキスト", 2))
}

func TestOperationErrorMapsDeadlines(t *testing.T) {
	msg := operationError("navigation failed", context.DeadlineExceeded)
	assert.Equal(t, "navigation failed: operation timed out", msg)

	wrapped := fmt.Errorf("rod: %w", context.DeadlineExceeded)
	assert.Equal(t, "page load failed: operation timed out", operationError("page load failed", wrapped))

	// Ordinary engine errors pass through untouched.
	msg = operationError("navigation failed", errors.New("net::ERR_NAME_NOT_RESOLVED"))
	assert.Equal(t, "navigation failed: net::ERR_NAME_NOT_RESOLVED", msg)
}
