package engine

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runWithTimeout runs e.Run and fails the test if it does not return in time.
func runWithTimeout(t *testing.T, e Engine) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("engine did not stop")
	}
}

func TestHeadlessFixedStep(t *testing.T) {
	e := NewEngine(WithTickRate(1000), WithLogger(zerolog.Nop()))

	var steps []float32
	e.SetTickCallback(func(dt float32) {
		steps = append(steps, dt)
		if len(steps) == 5 {
			e.Quit()
		}
	})

	runWithTimeout(t, e)

	require.Len(t, steps, 5)
	for _, dt := range steps {
		assert.Equal(t, float32(0.001), dt)
	}
}

func TestSetTickRateWhileRunning(t *testing.T) {
	e := NewEngine(WithTickRate(1000))

	var steps []float32
	e.SetTickCallback(func(dt float32) {
		steps = append(steps, dt)
		switch len(steps) {
		case 2:
			e.SetTickRate(500)
		case 10:
			e.Quit()
		}
	})

	runWithTimeout(t, e)

	require.Len(t, steps, 10)
	assert.Equal(t, float32(0.001), steps[0])
	assert.Equal(t, float32(0.002), steps[len(steps)-1])
	assert.Equal(t, 2*time.Millisecond, e.TickRate())
}

func TestVariableStepMeasuresElapsed(t *testing.T) {
	e := NewEngine(WithTickRate(200), WithFixedStep(false))

	var steps []float32
	e.SetTickCallback(func(dt float32) {
		steps = append(steps, dt)
		if len(steps) == 3 {
			e.Quit()
		}
	})

	runWithTimeout(t, e)

	require.Len(t, steps, 3)
	for _, dt := range steps {
		assert.Greater(t, dt, float32(0))
	}
}

func TestTickCallbackPanicStopsEngine(t *testing.T) {
	e := NewEngine(WithTickRate(1000))
	e.SetTickCallback(func(float32) {
		panic("boom")
	})

	runWithTimeout(t, e)
}

func TestQuitIsIdempotent(t *testing.T) {
	e := NewEngine()
	e.Quit()
	e.Quit()

	runWithTimeout(t, e)
}

func TestTickRateDefaults(t *testing.T) {
	assert.Equal(t, time.Second/60, NewEngine(WithTickRate(-1)).TickRate())

	e := NewEngine()
	e.SetTickRate(0)
	assert.Equal(t, time.Second/60, e.TickRate())

	e.SetTickRate(120)
	assert.Equal(t, time.Duration(float64(time.Second)/120), e.TickRate())
}
