package metrics

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestCollectorCounters(t *testing.T) {
	collector := NewCollector(time.Hour, zerolog.Nop())

	collector.RecordProcessed()
	collector.RecordProcessed()
	collector.RecordFailed()

	assert.Equal(t, int64(2), collector.Processed())
	assert.Equal(t, int64(1), collector.Failed())
}

func TestCollectorStartStop(t *testing.T) {
	collector := NewCollector(10*time.Millisecond, zerolog.Nop())

	collector.Start()
	time.Sleep(30 * time.Millisecond)
	collector.Stop()
	// A second Stop must not panic.
	collector.Stop()
}

func TestGetResourceUsage(t *testing.T) {
	usage := GetResourceUsage()

	assert.GreaterOrEqual(t, usage.AllocMB, int64(0))
	assert.Greater(t, usage.Goroutines, 0)
}
