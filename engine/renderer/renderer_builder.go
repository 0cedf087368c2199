package renderer

import "github.com/cogentcore/webgpu/wgpu"

// RendererBuilderOption is a functional option for configuring a Renderer.
type RendererBuilderOption func(*rendererImpl)

// WithVSync selects FIFO presentation (true, the default) or immediate presentation.
//
// Parameters:
//   - enabled: true to wait for vertical blank
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithVSync(enabled bool) RendererBuilderOption {
	return func(r *rendererImpl) {
		if enabled {
			r.presentMode = wgpu.PresentModeFifo
		} else {
			r.presentMode = wgpu.PresentModeImmediate
		}
	}
}

// WithClearColor sets the initial clear colour.
func WithClearColor(c wgpu.Color) RendererBuilderOption {
	return func(r *rendererImpl) {
		r.clearColor = c
	}
}
