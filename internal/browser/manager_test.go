package browser

import (
	"context"
	"testing"

	"github.com/aleister1102/pageprobe/internal/common"
	"github.com/aleister1102/pageprobe/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerDoesNotLaunch(t *testing.T) {
	// Creating the manager must be side-effect free; the browser process is
	// launched lazily on first use.
	manager := NewManager(config.NewDefaultBrowserConfig(), zerolog.Nop())

	assert.NotNil(t, manager)
	assert.Nil(t, manager.browser)
}

func TestManagerClosedRejectsPages(t *testing.T) {
	manager := NewManager(config.NewDefaultBrowserConfig(), zerolog.Nop())
	manager.Close()

	_, err := manager.NewPage(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrBrowserUnavailable)
}

func TestBuildLauncherHTTPSErrorHandling(t *testing.T) {
	cfg := config.NewDefaultBrowserConfig()
	cfg.IgnoreHTTPSErrors = true
	l := NewManager(cfg, zerolog.Nop()).buildLauncher()
	_, has := l.GetFlags("ignore-certificate-errors")
	assert.True(t, has)

	cfg.IgnoreHTTPSErrors = false
	l = NewManager(cfg, zerolog.Nop()).buildLauncher()
	_, has = l.GetFlags("ignore-certificate-errors")
	assert.False(t, has)
}

func TestBuildLauncherExtraArgs(t *testing.T) {
	cfg := config.NewDefaultBrowserConfig()
	cfg.BrowserArgs = []string{"--mute-audio", "--lang=en-US"}
	l := NewManager(cfg, zerolog.Nop()).buildLauncher()

	_, has := l.GetFlags("mute-audio")
	assert.True(t, has)

	values, has := l.GetFlags("lang")
	require.True(t, has)
	assert.Contains(t, values, "en-US")
}

func TestManagerCloseIsIdempotent(t *testing.T) {
	manager := NewManager(config.NewDefaultBrowserConfig(), zerolog.Nop())
	manager.Close()
	manager.Close()
}

func TestConsoleCaptureEntries(t *testing.T) {
	capture := &ConsoleCapture{}
	assert.Nil(t, capture.Entries())

	capture.append("ReferenceError: foo is not defined")
	capture.append("")
	capture.append("TypeError: bar")

	entries := capture.Entries()
	assert.Equal(t, []string{"ReferenceError: foo is not defined", "TypeError: bar"}, entries)

	// The returned slice is a copy; mutating it must not affect the capture.
	entries[0] = "mutated"
	assert.Equal(t, "ReferenceError: foo is not defined", capture.Entries()[0])
}

func TestStatusCaptureDefaultsToZero(t *testing.T) {
	capture := &StatusCapture{}
	assert.Equal(t, 0, capture.Status())
}
