package renderer

import (
	"math"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func assertColor(t *testing.T, want, got wgpu.Color) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, 1e-6)
	assert.InDelta(t, want.G, got.G, 1e-6)
	assert.InDelta(t, want.B, got.B, 1e-6)
	assert.Equal(t, 1.0, got.A)
}

func TestHorizonColor(t *testing.T) {
	assertColor(t, Sky, HorizonColor(1))
	assertColor(t, Ground, HorizonColor(-1))
	assertColor(t, wgpu.Color{R: 0.3, G: 0.375, B: 0.5}, HorizonColor(0))

	// clamped
	assertColor(t, Sky, HorizonColor(3))
	assertColor(t, Ground, HorizonColor(-3))
	assertColor(t, Ground, HorizonColor(float32(math.NaN())))
}

func TestNewRendererRejectsNilSurface(t *testing.T) {
	_, err := NewRenderer(nil, 640, 480)
	assert.Error(t, err)
}
