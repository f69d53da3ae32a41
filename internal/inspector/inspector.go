// Package inspector implements the three browser-driven inspection
// operations: site health check, full-page screenshot, and CSS selector
// visibility check. Every operation validates its locator through the
// guard before any browser work happens.
package inspector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aleister1102/pageprobe/internal/browser"
	"github.com/aleister1102/pageprobe/internal/common"
	"github.com/aleister1102/pageprobe/internal/config"
	"github.com/go-rod/rod"
	"github.com/rs/zerolog"
)

// securityRejectionPrefix distinguishes guard rejections from operational
// failures in the error string surfaced to callers.
const securityRejectionPrefix = "security rejection: "

// Inspector runs inspection operations against the shared browser handle.
// Per-call failures are converted into structured failure results; they
// never terminate the process or invalidate the browser handle.
type Inspector struct {
	browser       *browser.Manager
	browserCfg    config.BrowserConfig
	screenshotCfg config.ScreenshotConfig
	logger        zerolog.Logger
}

// New creates a new Inspector
func New(
	browserManager *browser.Manager,
	browserCfg config.BrowserConfig,
	screenshotCfg config.ScreenshotConfig,
	logger zerolog.Logger,
) *Inspector {
	return &Inspector{
		browser:       browserManager,
		browserCfg:    browserCfg,
		screenshotCfg: screenshotCfg,
		logger:        logger.With().Str("component", "Inspector").Logger(),
	}
}

// securityRejection formats a guard rejection reason for result errors
func securityRejection(reason string) string {
	return securityRejectionPrefix + reason
}

// operationError formats a browser operation failure for result errors.
// Deadline expiry is reported as the timeout sentinel so callers see a
// stable message regardless of where the engine noticed the deadline.
func operationError(stage string, err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		err = common.ErrTimeout
	}
	return fmt.Sprintf("%s: %v", stage, err)
}

func (ins *Inspector) navigationTimeout() time.Duration {
	secs := ins.browserCfg.NavigationTimeoutSecs
	if secs <= 0 {
		secs = config.DefaultNavigationTimeoutSecs
	}
	return time.Duration(secs) * time.Second
}

func (ins *Inspector) elementWaitTimeout() time.Duration {
	secs := ins.browserCfg.ElementWaitSecs
	if secs <= 0 {
		secs = config.DefaultElementWaitTimeoutSecs
	}
	return time.Duration(secs) * time.Second
}

// waitAfterLoad gives client-side rendering a moment to settle after the
// load event fired.
func (ins *Inspector) waitAfterLoad() {
	if ins.browserCfg.WaitAfterLoadMs > 0 {
		time.Sleep(time.Duration(ins.browserCfg.WaitAfterLoadMs) * time.Millisecond)
	}
}

// closePage closes a per-call page, logging instead of propagating errors;
// the page is disposable and the shared browser stays valid either way.
func (ins *Inspector) closePage(page *rod.Page) {
	if err := page.Close(); err != nil {
		ins.logger.Debug().Err(err).Msg("Failed to close page")
	}
}
