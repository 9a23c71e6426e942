package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickBelowInterval(t *testing.T) {
	p := NewProfiler()
	assert.False(t, p.Tick(), "stats must not flush before the interval elapses")
}

func TestTickFlushesAfterInterval(t *testing.T) {
	p := NewProfiler()
	p.updateInterval = time.Millisecond

	p.Tick()
	time.Sleep(5 * time.Millisecond)
	assert.True(t, p.Tick())
	assert.False(t, p.Tick(), "counter resets after a flush")
}
