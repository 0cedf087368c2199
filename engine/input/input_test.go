package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-freefly/common"
)

func TestStatePress(t *testing.T) {
	s := State{}.Press(ControlForward, ControlSprint)

	assert.True(t, s.Pressed(ControlForward))
	assert.True(t, s.Pressed(ControlSprint))
	assert.False(t, s.Pressed(ControlBack))
	assert.False(t, s.Pressed(Control(99)))
	assert.Equal(t, 0, Empty.TouchCount())
}

func TestParseControlRoundTrip(t *testing.T) {
	for _, c := range Controls() {
		got, ok := ParseControl(c.String())
		require.True(t, ok, c.String())
		assert.Equal(t, c, got)
	}
	_, ok := ParseControl("jump")
	assert.False(t, ok)
}

func TestTrackerKeysPersistAcrossSnapshots(t *testing.T) {
	tr := NewTracker(nil)
	tr.KeyDown(common.KeyW)
	tr.KeyDown(common.KeyLeftShift)

	first := tr.Snapshot()
	assert.True(t, first.Pressed(ControlForward))
	assert.True(t, first.Pressed(ControlSprint))

	second := tr.Snapshot()
	assert.True(t, second.Pressed(ControlForward))

	tr.KeyUp(common.KeyW)
	assert.False(t, tr.Snapshot().Pressed(ControlForward))
}

func TestTrackerMouseLook(t *testing.T) {
	tr := NewTracker(nil)
	tr.MouseButtonDown(common.MouseButtonRight)
	assert.True(t, tr.Snapshot().Pressed(ControlLook))

	tr.MouseButtonUp(common.MouseButtonRight)
	assert.False(t, tr.Snapshot().Pressed(ControlLook))
}

func TestTrackerPointerDeltaResets(t *testing.T) {
	tr := NewTracker(nil)

	tr.CursorMoved(100, 100) // seed only
	assert.Equal(t, mgl32.Vec2{}, tr.Snapshot().PointerDelta())

	tr.CursorMoved(110, 90)
	tr.CursorMoved(115, 80)
	tr.Scrolled(1)
	tr.Scrolled(0.5)

	s := tr.Snapshot()
	// window y grows downward; snapshot y grows upward
	assert.Equal(t, mgl32.Vec2{15, 20}, s.PointerDelta())
	assert.Equal(t, float32(1.5), s.ScrollDelta())

	next := tr.Snapshot()
	assert.Equal(t, mgl32.Vec2{}, next.PointerDelta())
	assert.Equal(t, float32(0), next.ScrollDelta())
}

func TestTrackerTouchDeltasConsumed(t *testing.T) {
	tr := NewTracker(nil)
	tr.SetTouches([]Touch{{Delta: mgl32.Vec2{3, 4}}})

	s := tr.Snapshot()
	require.Equal(t, 1, s.TouchCount())
	assert.Equal(t, mgl32.Vec2{3, 4}, s.Touch(0).Delta)

	again := tr.Snapshot()
	require.Equal(t, 1, again.TouchCount())
	assert.Equal(t, mgl32.Vec2{}, again.Touch(0).Delta)
}

func TestTrackerBound(t *testing.T) {
	tr := NewTracker(nil)
	assert.True(t, tr.Bound(ControlLook, Binding{Code: common.MouseButtonRight, Mouse: true}))
	assert.False(t, tr.Bound(ControlLook, Binding{Code: common.MouseButtonRight}))
	assert.False(t, tr.Bound(ControlLook, Binding{Code: common.MouseButtonLeft, Mouse: true}))

	tr.SetBindings(Bindings{ControlLook: {{Code: common.MouseButtonLeft, Mouse: true}}})
	assert.True(t, tr.Bound(ControlLook, Binding{Code: common.MouseButtonLeft, Mouse: true}))
}

func TestTrackerReleaseAll(t *testing.T) {
	tr := NewTracker(nil)
	tr.KeyDown(common.KeyW)
	tr.MouseButtonDown(common.MouseButtonRight)
	tr.CursorMoved(10, 10)

	tr.ReleaseAll()
	// first position after a release only seeds
	tr.CursorMoved(500, 500)

	s := tr.Snapshot()
	assert.False(t, s.Pressed(ControlForward))
	assert.False(t, s.Pressed(ControlLook))
	assert.Equal(t, mgl32.Vec2{}, s.PointerDelta())
}

func TestParseBindings(t *testing.T) {
	b, err := ParseBindings(map[string][]string{
		"forward": {"space", "w"},
		"look":    {"mouseleft"},
	})
	require.NoError(t, err)
	assert.Equal(t, []Binding{{Code: common.KeySpace}, {Code: common.KeyW}}, b[ControlForward])
	assert.Equal(t, []Binding{{Code: common.MouseButtonLeft, Mouse: true}}, b[ControlLook])
	assert.Equal(t, DefaultBindings()[ControlBack], b[ControlBack])

	_, err = ParseBindings(map[string][]string{"fly": {"w"}})
	assert.Error(t, err)

	_, err = ParseBindings(map[string][]string{"forward": {"f13"}})
	assert.Error(t, err)
}
