package renderer

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/Carmen-Shannon/oxy-freefly/common"
)

// Horizon colours: looking straight up shows Sky, straight down shows Ground, level shows the blend.
var (
	Sky    = wgpu.Color{R: 0.35, G: 0.55, B: 0.85, A: 1}
	Ground = wgpu.Color{R: 0.25, G: 0.2, B: 0.15, A: 1}
)

// HorizonColor blends Ground and Sky by the vertical component of the view direction,
// giving a pitch cue without drawing geometry.
//
// Parameters:
//   - forwardY: Y component of the unit forward vector, in [-1, 1]
//
// Returns:
//   - wgpu.Color: the clear colour
func HorizonColor(forwardY float32) wgpu.Color {
	t := (forwardY + 1) / 2
	if t < 0 || !common.IsFinite(t) {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return wgpu.Color{
		R: float64(common.Lerp(float32(Ground.R), float32(Sky.R), t)),
		G: float64(common.Lerp(float32(Ground.G), float32(Sky.G), t)),
		B: float64(common.Lerp(float32(Ground.B), float32(Sky.B), t)),
		A: 1,
	}
}
