package inspector

import (
	"context"
	"fmt"
	"strings"

	"github.com/aleister1102/pageprobe/internal/guard"
)

// maxElementTextRunes bounds the text content returned for a matched
// element so huge nodes don't bloat the response.
const maxElementTextRunes = 1000

// CheckElement navigates to the target and probes the given CSS selector.
// A selector that never appears is an ordinary found=false outcome, not a
// failure; only navigation or engine errors fail the operation.
func (ins *Inspector) CheckElement(ctx context.Context, target, selector string) ElementCheckResult {
	if validation := guard.ValidateLocator(target); !validation.Allowed {
		return ElementCheckResult{Error: securityRejection(validation.Reason)}
	}

	navCtx, cancel := context.WithTimeout(ctx, ins.navigationTimeout())
	defer cancel()

	page, err := ins.browser.NewPage(navCtx)
	if err != nil {
		return ElementCheckResult{Error: fmt.Sprintf("failed to open page: %v", err)}
	}
	defer ins.closePage(page)

	if err := page.Navigate(target); err != nil {
		return ElementCheckResult{Error: operationError("navigation failed", err)}
	}
	if err := page.WaitLoad(); err != nil {
		return ElementCheckResult{Error: operationError("page load failed", err)}
	}

	ins.waitAfterLoad()

	element, err := page.Timeout(ins.elementWaitTimeout()).Element(selector)
	if err != nil {
		ins.logger.Debug().Str("selector", selector).Str("url", target).Msg("Selector not found")
		return ElementCheckResult{Success: true, Found: false, Visible: false}
	}
	element = element.CancelTimeout()

	result := ElementCheckResult{Success: true, Found: true}

	if visible, err := element.Visible(); err == nil {
		result.Visible = visible
	} else {
		ins.logger.Debug().Err(err).Str("selector", selector).Msg("Visibility probe failed")
	}

	if text, err := element.Text(); err == nil {
		result.Text = truncateText(text, maxElementTextRunes)
	}

	ins.logger.Info().
		Str("url", target).
		Str("selector", selector).
		Bool("found", result.Found).
		Bool("visible", result.Visible).
		Msg("Element check completed")

	return result
}

// truncateText limits text to maxRunes runes without splitting a rune
func truncateText(text string, maxRunes int) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	return string(runes[:maxRunes])
}
