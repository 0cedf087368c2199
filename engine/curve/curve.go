package curve

import "sort"

// Keyframe is a single control point of a Curve.
type Keyframe struct {
	// Time is the input coordinate of the key.
	Time float32 `yaml:"time"`
	// Value is the output of the curve at Time.
	Value float32 `yaml:"value"`
	// InTangent is the slope arriving at the key from the left.
	InTangent float32 `yaml:"in_tangent"`
	// OutTangent is the slope leaving the key to the right.
	OutTangent float32 `yaml:"out_tangent"`
}

// Curve is a piecewise cubic Hermite function defined by ordered keyframes.
// Inputs before the first key or after the last key evaluate to that key's value.
// A Curve is immutable once built and safe for concurrent Evaluate calls.
type Curve struct {
	keys []Keyframe
}

// NewCurve builds a Curve from the given keyframes. Keys are copied and sorted by Time.
//
// Parameters:
//   - keys: control points in any order
//
// Returns:
//   - Curve: the curve
func NewCurve(keys ...Keyframe) Curve {
	sorted := make([]Keyframe, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})
	return Curve{keys: sorted}
}

// Default returns the default pointer sensitivity curve: 0.5 at zero movement rising
// steeply to 2.5 at a delta magnitude of 1 and flat afterwards.
//
// Returns:
//   - Curve: the default sensitivity curve
func Default() Curve {
	return NewCurve(
		Keyframe{Time: 0, Value: 0.5, InTangent: 0, OutTangent: 5},
		Keyframe{Time: 1, Value: 2.5, InTangent: 0, OutTangent: 0},
	)
}

// Keys returns a copy of the curve's keyframes in ascending Time order.
//
// Returns:
//   - []Keyframe: the keyframes
func (c Curve) Keys() []Keyframe {
	out := make([]Keyframe, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len returns the number of keyframes.
func (c Curve) Len() int {
	return len(c.keys)
}

// Evaluate returns the curve's value at x. An empty curve evaluates to 0.
//
// Parameters:
//   - x: input coordinate
//
// Returns:
//   - float32: the interpolated value
func (c Curve) Evaluate(x float32) float32 {
	n := len(c.keys)
	if n == 0 {
		return 0
	}
	if x <= c.keys[0].Time {
		return c.keys[0].Value
	}
	if x >= c.keys[n-1].Time {
		return c.keys[n-1].Value
	}

	// first key strictly after x; always in [1, n-1] after the clamps above
	i := sort.Search(n, func(i int) bool {
		return c.keys[i].Time > x
	})
	return hermite(c.keys[i-1], c.keys[i], x)
}

// IsMonotonic reports whether the curve never decreases, sampling each segment.
//
// Parameters:
//   - samplesPerSegment: number of samples taken inside each segment
//
// Returns:
//   - bool: true if no sampled value is lower than its predecessor
func (c Curve) IsMonotonic(samplesPerSegment int) bool {
	if samplesPerSegment < 1 {
		samplesPerSegment = 1
	}
	for i := 1; i < len(c.keys); i++ {
		a, b := c.keys[i-1], c.keys[i]
		prev := a.Value
		for s := 1; s <= samplesPerSegment; s++ {
			x := a.Time + (b.Time-a.Time)*float32(s)/float32(samplesPerSegment)
			v := c.Evaluate(x)
			if v < prev-1e-5 {
				return false
			}
			prev = v
		}
	}
	return true
}

// hermite evaluates the cubic Hermite segment between a and b at x (a.Time < x < b.Time).
// Tangents are slopes in curve units, so they are scaled by the segment width.
func hermite(a, b Keyframe, x float32) float32 {
	dt := b.Time - a.Time
	if dt <= 0 {
		return a.Value
	}
	t := (x - a.Time) / dt
	t2 := t * t
	t3 := t2 * t

	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2

	return h00*a.Value + h10*a.OutTangent*dt + h01*b.Value + h11*b.InTangent*dt
}
