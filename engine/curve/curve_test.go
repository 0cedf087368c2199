package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCurveEvaluate(t *testing.T) {
	c := Default()

	cases := []struct {
		name string
		x    float32
		want float32
	}{
		{"below_range", -3, 0.5},
		{"first_key", 0, 0.5},
		{"midpoint", 0.5, 2.125}, // t^3 - 4t^2 + 5t + 0.5
		{"quarter", 0.25, 1.515625},
		{"last_key", 1, 2.5},
		{"above_range", 40, 2.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, c.Evaluate(tc.x), 1e-5)
		})
	}
}

func TestDefaultCurveIsMonotonic(t *testing.T) {
	assert.True(t, Default().IsMonotonic(64))
}

func TestCurveDetectsDecrease(t *testing.T) {
	c := NewCurve(
		Keyframe{Time: 0, Value: 1},
		Keyframe{Time: 1, Value: 0},
	)
	assert.False(t, c.IsMonotonic(8))
}

func TestEmptyAndSingleKeyCurves(t *testing.T) {
	assert.Equal(t, float32(0), NewCurve().Evaluate(0.3))

	single := NewCurve(Keyframe{Time: 2, Value: 7})
	assert.Equal(t, float32(7), single.Evaluate(-1))
	assert.Equal(t, float32(7), single.Evaluate(2))
	assert.Equal(t, float32(7), single.Evaluate(9))
}

func TestNewCurveSortsKeys(t *testing.T) {
	c := NewCurve(
		Keyframe{Time: 2, Value: 4},
		Keyframe{Time: 0, Value: 0},
		Keyframe{Time: 1, Value: 2},
	)

	keys := c.Keys()
	if assert.Len(t, keys, 3) {
		assert.Equal(t, float32(0), keys[0].Time)
		assert.Equal(t, float32(1), keys[1].Time)
		assert.Equal(t, float32(2), keys[2].Time)
	}

	// flat tangents pass through every key
	assert.InDelta(t, 2, c.Evaluate(1), 1e-6)
	assert.InDelta(t, 1, c.Evaluate(0.5), 1e-6)
}

func TestLinearTangentsReproduceLine(t *testing.T) {
	c := NewCurve(
		Keyframe{Time: 0, Value: 0, OutTangent: 2},
		Keyframe{Time: 3, Value: 6, InTangent: 2},
	)
	for _, x := range []float32{0.1, 0.75, 1.5, 2.9} {
		assert.InDelta(t, 2*x, c.Evaluate(x), 1e-4)
	}
}
