package browser

import (
	"strings"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// ConsoleCapture collects console errors emitted by one page. The
// subscription lives as long as the page does; entries observed before
// navigation completes are included, in observation order.
type ConsoleCapture struct {
	mutex   sync.Mutex
	entries []string
}

// CaptureConsoleErrors subscribes to error-level console output and
// uncaught exceptions on the given page. Call before navigating so early
// errors are not missed.
func CaptureConsoleErrors(page *rod.Page) *ConsoleCapture {
	capture := &ConsoleCapture{}

	go page.EachEvent(
		func(e *proto.RuntimeConsoleAPICalled) {
			if e.Type != proto.RuntimeConsoleAPICalledTypeError {
				return
			}
			capture.append(formatConsoleArgs(e.Args))
		},
		func(e *proto.RuntimeExceptionThrown) {
			if e.ExceptionDetails == nil {
				return
			}
			capture.append(formatException(e.ExceptionDetails))
		},
	)()

	return capture
}

// Entries returns a copy of the captured console errors
func (cc *ConsoleCapture) Entries() []string {
	cc.mutex.Lock()
	defer cc.mutex.Unlock()

	if len(cc.entries) == 0 {
		return nil
	}
	entries := make([]string, len(cc.entries))
	copy(entries, cc.entries)
	return entries
}

func (cc *ConsoleCapture) append(entry string) {
	if entry == "" {
		return
	}
	cc.mutex.Lock()
	defer cc.mutex.Unlock()
	cc.entries = append(cc.entries, entry)
}

// StatusCapture records the HTTP status of the main document response.
type StatusCapture struct {
	mutex  sync.Mutex
	status int
}

// CaptureMainStatus subscribes to network responses on the given page and
// keeps the status of the first document-type response. Call before
// navigating.
func CaptureMainStatus(page *rod.Page) *StatusCapture {
	capture := &StatusCapture{}

	go page.EachEvent(func(e *proto.NetworkResponseReceived) {
		if e.Type != proto.NetworkResourceTypeDocument || e.Response == nil {
			return
		}
		capture.mutex.Lock()
		if capture.status == 0 {
			capture.status = e.Response.Status
		}
		capture.mutex.Unlock()
	})()

	return capture
}

// Status returns the recorded main-document status, or 0 if none was seen
func (sc *StatusCapture) Status() int {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()
	return sc.status
}

func formatConsoleArgs(args []*proto.RuntimeRemoteObject) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == nil {
			continue
		}
		if arg.Description != "" {
			parts = append(parts, arg.Description)
			continue
		}
		parts = append(parts, arg.Value.String())
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func formatException(details *proto.RuntimeExceptionDetails) string {
	text := details.Text
	if details.Exception != nil && details.Exception.Description != "" {
		if text != "" {
			text += " "
		}
		text += details.Exception.Description
	}
	return strings.TrimSpace(text)
}
