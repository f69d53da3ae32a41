// Package browser owns the shared headless browser handle and per-call pages.
package browser

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aleister1102/pageprobe/internal/common"
	"github.com/aleister1102/pageprobe/internal/config"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rs/zerolog"
)

// Manager owns a single browser process shared by all tool calls. The
// process is launched lazily on the first page request and lives until
// Close is called during shutdown. Every call gets its own page.
type Manager struct {
	config  config.BrowserConfig
	logger  zerolog.Logger
	mutex   sync.Mutex
	browser *rod.Browser
	cleanup func()
	closed  bool
}

// NewManager creates a new browser manager. No browser process is started
// until the first call to NewPage.
func NewManager(cfg config.BrowserConfig, logger zerolog.Logger) *Manager {
	return &Manager{
		config: cfg,
		logger: logger.With().Str("component", "BrowserManager").Logger(),
	}
}

// get returns the shared browser handle, launching it on first use.
// The mutex guards only the creation step; page operations run unlocked.
func (m *Manager) get() (*rod.Browser, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.closed {
		return nil, common.WrapError(common.ErrBrowserUnavailable, "manager is closed")
	}
	if m.browser != nil {
		return m.browser, nil
	}

	l := m.buildLauncher()

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	m.browser = browser
	m.cleanup = l.Cleanup
	m.logger.Info().Str("control_url", controlURL).Msg("Headless browser launched")
	return m.browser, nil
}

// buildLauncher translates the browser config into launcher flags
func (m *Manager) buildLauncher() *launcher.Launcher {
	l := launcher.New().Headless(true)

	if m.config.ChromePath != "" {
		l = l.Bin(m.config.ChromePath)
	}
	if m.config.UserDataDir != "" {
		l = l.UserDataDir(m.config.UserDataDir)
	}
	if m.config.IgnoreHTTPSErrors {
		l = l.Set("ignore-certificate-errors")
	}

	for _, arg := range m.config.BrowserArgs {
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if hasValue {
			l = l.Set(flags.Flag(name), value)
		} else {
			l = l.Set(flags.Flag(name))
		}
	}

	return l
}

// NewPage creates an isolated page bound to ctx with the configured
// viewport and user agent. The caller owns the page and must close it.
func (m *Manager) NewPage(ctx context.Context) (*rod.Page, error) {
	browser, err := m.get()
	if err != nil {
		return nil, err
	}

	page, err := browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:  m.config.WindowWidth,
		Height: m.config.WindowHeight,
	}); err != nil {
		m.logger.Warn().Err(err).Msg("Failed to set viewport")
	}

	if m.config.UserAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
			UserAgent: m.config.UserAgent,
		}); err != nil {
			m.logger.Warn().Err(err).Msg("Failed to set user agent")
		}
	}

	return page, nil
}

// Close releases the shared browser process. In-flight pages are not
// cancelled first; their operations fail once the process is gone.
// Safe to call more than once.
func (m *Manager) Close() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.closed {
		return
	}
	m.closed = true

	if m.browser != nil {
		if err := m.browser.Close(); err != nil {
			m.logger.Warn().Err(err).Msg("Failed to close browser")
		}
		m.browser = nil
	}
	if m.cleanup != nil {
		m.cleanup()
		m.cleanup = nil
	}
	m.logger.Info().Msg("Browser manager closed")
}
