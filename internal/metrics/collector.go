// Package metrics logs a periodic heartbeat with request counters and
// process resource usage.
package metrics

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Collector tracks request counters and emits a heartbeat log line at a
// fixed interval while the server runs.
type Collector struct {
	logger   zerolog.Logger
	interval time.Duration

	processed atomic.Int64
	failed    atomic.Int64

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewCollector creates a new collector with the given heartbeat interval
func NewCollector(interval time.Duration, logger zerolog.Logger) *Collector {
	return &Collector{
		logger:   logger.With().Str("component", "MetricsCollector").Logger(),
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start launches the heartbeat loop
func (c *Collector) Start() {
	c.wg.Add(1)
	go c.heartbeatLoop()
}

// Stop terminates the heartbeat loop and waits for it to exit.
// Safe to call more than once.
func (c *Collector) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
	c.wg.Wait()
}

// RecordProcessed increments the processed request counter
func (c *Collector) RecordProcessed() {
	c.processed.Add(1)
}

// RecordFailed increments the failed request counter
func (c *Collector) RecordFailed() {
	c.failed.Add(1)
}

// Processed returns the number of processed requests
func (c *Collector) Processed() int64 {
	return c.processed.Load()
}

// Failed returns the number of failed requests
func (c *Collector) Failed() int64 {
	return c.failed.Load()
}

func (c *Collector) heartbeatLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.logHeartbeat()
		}
	}
}

func (c *Collector) logHeartbeat() {
	usage := GetResourceUsage()
	c.logger.Info().
		Int64("requests_processed", c.Processed()).
		Int64("requests_failed", c.Failed()).
		Int64("alloc_mb", usage.AllocMB).
		Int("goroutines", usage.Goroutines).
		Float64("system_mem_used_percent", usage.SystemMemUsedPercent).
		Float64("cpu_usage_percent", usage.CPUUsagePercent).
		Msg("Heartbeat")
}
