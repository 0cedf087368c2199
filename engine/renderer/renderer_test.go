package renderer

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurfaceConfigurationPicksPreferred(t *testing.T) {
	caps := wgpu.SurfaceCapabilities{
		Formats:      []wgpu.TextureFormat{wgpu.TextureFormatBGRA8UnormSrgb, wgpu.TextureFormatRGBA8Unorm},
		PresentModes: []wgpu.PresentMode{wgpu.PresentModeFifo, wgpu.PresentModeImmediate},
		AlphaModes:   []wgpu.CompositeAlphaMode{wgpu.CompositeAlphaModeOpaque, wgpu.CompositeAlphaModeAuto},
	}

	sc, err := surfaceConfiguration(caps, wgpu.PresentModeImmediate)
	require.NoError(t, err)
	assert.Equal(t, wgpu.TextureFormatBGRA8UnormSrgb, sc.Format)
	assert.Equal(t, wgpu.CompositeAlphaModeOpaque, sc.AlphaMode)
	assert.Equal(t, wgpu.PresentModeImmediate, sc.PresentMode)
	assert.Equal(t, wgpu.TextureUsageRenderAttachment, sc.Usage)
}

func TestSurfaceConfigurationFallsBackToFifo(t *testing.T) {
	caps := wgpu.SurfaceCapabilities{
		Formats:      []wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm},
		PresentModes: []wgpu.PresentMode{wgpu.PresentModeFifo},
		AlphaModes:   []wgpu.CompositeAlphaMode{wgpu.CompositeAlphaModeOpaque},
	}

	sc, err := surfaceConfiguration(caps, wgpu.PresentModeImmediate)
	require.NoError(t, err)
	assert.Equal(t, wgpu.PresentModeFifo, sc.PresentMode)
}

func TestSurfaceConfigurationRejectsEmptyCapabilities(t *testing.T) {
	cases := map[string]wgpu.SurfaceCapabilities{
		"no_capabilities": {},
		"no_formats": {
			AlphaModes: []wgpu.CompositeAlphaMode{wgpu.CompositeAlphaModeOpaque},
		},
		"no_alpha_modes": {
			Formats: []wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm},
		},
	}
	for name, caps := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := surfaceConfiguration(caps, wgpu.PresentModeFifo)
			assert.ErrorIs(t, err, ErrUnsupportedSurface)
		})
	}
}
