package inspector

import (
	"context"
	"fmt"
	"time"

	"github.com/aleister1102/pageprobe/internal/browser"
	"github.com/aleister1102/pageprobe/internal/guard"
)

// CheckSiteHealth navigates to the target and reports HTTP status, page
// title and description, load time, and console errors observed before
// navigation completed.
func (ins *Inspector) CheckSiteHealth(ctx context.Context, target string) HealthCheckResult {
	if validation := guard.ValidateLocator(target); !validation.Allowed {
		return HealthCheckResult{Error: securityRejection(validation.Reason)}
	}

	navCtx, cancel := context.WithTimeout(ctx, ins.navigationTimeout())
	defer cancel()

	page, err := ins.browser.NewPage(navCtx)
	if err != nil {
		return HealthCheckResult{Error: fmt.Sprintf("failed to open page: %v", err)}
	}
	defer ins.closePage(page)

	// Subscriptions are installed before navigation so the main document
	// response and early console errors are not missed.
	statusCapture := browser.CaptureMainStatus(page)
	consoleCapture := browser.CaptureConsoleErrors(page)

	start := time.Now()
	if err := page.Navigate(target); err != nil {
		return HealthCheckResult{URL: target, Error: operationError("navigation failed", err)}
	}
	if err := page.WaitLoad(); err != nil {
		return HealthCheckResult{URL: target, Error: operationError("page load failed", err)}
	}
	loadTime := time.Since(start)

	ins.waitAfterLoad()

	var meta PageMeta
	if html, err := page.HTML(); err == nil {
		meta = ExtractPageMeta(html)
	} else {
		ins.logger.Warn().Err(err).Str("url", target).Msg("Failed to read rendered HTML")
	}

	result := HealthCheckResult{
		Success:       true,
		URL:           target,
		StatusCode:    statusCapture.Status(),
		Title:         meta.Title,
		Description:   meta.Description,
		LoadTimeMs:    loadTime.Milliseconds(),
		ConsoleErrors: consoleCapture.Entries(),
	}

	ins.logger.Info().
		Str("url", target).
		Int("status_code", result.StatusCode).
		Int64("load_time_ms", result.LoadTimeMs).
		Int("console_errors", len(result.ConsoleErrors)).
		Msg("Site health check completed")

	return result
}
