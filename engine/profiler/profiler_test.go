package profiler

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestTickLogsOncePerInterval(t *testing.T) {
	var buf bytes.Buffer
	p := NewProfiler(zerolog.New(&buf).Level(zerolog.DebugLevel))

	clock := time.Unix(0, 0)
	p.now = func() time.Time { return clock }
	p.lastTime = clock

	for i := 0; i < 59; i++ {
		clock = clock.Add(time.Second / 60)
		assert.False(t, p.Tick(), "tick %d", i)
	}
	assert.Zero(t, buf.Len())

	clock = clock.Add(time.Second / 60)
	assert.True(t, p.Tick())
	assert.InDelta(t, 60, p.Rate(), 0.5)
	assert.Contains(t, buf.String(), `"tps"`)
	assert.Contains(t, buf.String(), `"message":"step stats"`)

	clock = clock.Add(time.Millisecond)
	assert.False(t, p.Tick())
}

func TestTickLogsOnLastTickOfTruncatedPeriods(t *testing.T) {
	for _, rate := range []int{30, 60, 144, 500, 1000} {
		t.Run(fmt.Sprintf("%dHz", rate), func(t *testing.T) {
			p := NewProfiler(zerolog.Nop())
			clock := time.Unix(0, 0)
			p.now = func() time.Time { return clock }
			p.lastTime = clock

			period := time.Second / time.Duration(rate)
			for i := 1; i < rate; i++ {
				clock = clock.Add(period)
				assert.False(t, p.Tick(), "tick %d", i)
			}
			clock = clock.Add(period)
			assert.True(t, p.Tick(), "tick %d", rate)
			assert.InDelta(t, float64(rate), p.Rate(), 0.01)
		})
	}
}
