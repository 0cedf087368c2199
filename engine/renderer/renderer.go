// Package renderer presents frames to a window surface through WebGPU.
// It only clears the surface; scene drawing belongs to the host application.
package renderer

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
)

// ErrUnsupportedSurface is returned when the surface reports no usable format or alpha mode.
var ErrUnsupportedSurface = errors.New("renderer: surface has no supported format or alpha mode")

// Renderer owns a WebGPU device and a window surface and presents one cleared frame per call.
type Renderer interface {
	// Resize reconfigures the surface for a new framebuffer size.
	// Zero sizes (minimized window) suspend presenting until the next non-zero resize.
	//
	// Parameters:
	//   - width, height: framebuffer size in pixels
	Resize(width, height int)

	// SetClearColor sets the colour used to clear the next frames.
	//
	// Parameters:
	//   - c: linear RGBA colour
	SetClearColor(c wgpu.Color)

	// Frame acquires the next surface texture, clears it and presents it.
	//
	// Returns:
	//   - error: error if the surface texture or command encoder could not be acquired
	Frame() error

	// Release frees the surface, device, adapter and instance.
	Release()
}

type rendererImpl struct {
	mu *sync.Mutex

	presentMode wgpu.PresentMode
	format      wgpu.TextureFormat
	alphaMode   wgpu.CompositeAlphaMode

	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	width      int
	height     int
	configured bool
	clearColor wgpu.Color
}

var _ Renderer = &rendererImpl{}

// NewRenderer creates a device compatible with the window surface and configures the surface.
//
// Parameters:
//   - surfaceDescriptor: the window's surface descriptor
//   - width, height: initial framebuffer size in pixels
//   - options: functional options
//
// Returns:
//   - Renderer: the renderer
//   - error: error if no adapter or device is available, or ErrUnsupportedSurface
func NewRenderer(surfaceDescriptor *wgpu.SurfaceDescriptor, width, height int, options ...RendererBuilderOption) (Renderer, error) {
	if surfaceDescriptor == nil {
		return nil, fmt.Errorf("renderer: nil surface descriptor")
	}

	r := &rendererImpl{
		mu:          &sync.Mutex{},
		presentMode: wgpu.PresentModeFifo,
		clearColor:  wgpu.Color{R: 0.1, G: 0.1, B: 0.1, A: 1},
	}
	for _, opt := range options {
		opt(r)
	}

	r.instance = wgpu.CreateInstance(nil)
	r.surface = r.instance.CreateSurface(surfaceDescriptor)

	a, err := r.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: r.surface,
	})
	if err != nil {
		r.Release()
		return nil, fmt.Errorf("renderer: request adapter: %w", err)
	}
	r.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Free-Fly Device",
	})
	if err != nil {
		r.Release()
		return nil, fmt.Errorf("renderer: request device: %w", err)
	}
	r.device = d
	r.queue = d.GetQueue()

	sc, err := surfaceConfiguration(r.surface.GetCapabilities(a), r.presentMode)
	if err != nil {
		r.Release()
		return nil, err
	}
	r.format, r.alphaMode, r.presentMode = sc.Format, sc.AlphaMode, sc.PresentMode

	r.Resize(width, height)
	return r, nil
}

func (r *rendererImpl) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.width, r.height = width, height
	if width <= 0 || height <= 0 {
		r.configured = false
		return
	}

	r.surface.Configure(r.adapter, r.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      r.format,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: r.presentMode,
		AlphaMode:   r.alphaMode,
	})
	r.configured = true
}

// surfaceConfiguration picks the preferred format and alpha mode the surface reports.
// A present mode the surface does not list falls back to FIFO, which every surface supports.
//
// Parameters:
//   - caps: the surface capabilities for the adapter
//   - presentMode: the requested present mode
//
// Returns:
//   - wgpu.SurfaceConfiguration: configuration without a size
//   - error: ErrUnsupportedSurface if no format or alpha mode is reported
func surfaceConfiguration(caps wgpu.SurfaceCapabilities, presentMode wgpu.PresentMode) (wgpu.SurfaceConfiguration, error) {
	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		return wgpu.SurfaceConfiguration{}, ErrUnsupportedSurface
	}
	if len(caps.PresentModes) > 0 && !slices.Contains(caps.PresentModes, presentMode) {
		presentMode = wgpu.PresentModeFifo
	}
	return wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		PresentMode: presentMode,
		AlphaMode:   caps.AlphaModes[0],
	}, nil
}

func (r *rendererImpl) SetClearColor(c wgpu.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearColor = c
}

func (r *rendererImpl) Frame() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.configured {
		return nil
	}

	surfaceTexture, err := r.surface.GetCurrentTexture()
	if err != nil {
		return err
	}
	defer surfaceTexture.Release()

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		return err
	}
	defer view.Release()

	encoder, err := r.device.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: r.clearColor,
			},
		},
	})
	pass.End()
	pass.Release()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		return err
	}
	r.queue.Submit(commandBuffer)
	commandBuffer.Release()

	r.surface.Present()
	return nil
}

func (r *rendererImpl) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.queue != nil {
		r.queue.Release()
		r.queue = nil
	}
	if r.device != nil {
		r.device.Release()
		r.device = nil
	}
	if r.adapter != nil {
		r.adapter.Release()
		r.adapter = nil
	}
	if r.surface != nil {
		r.surface.Release()
		r.surface = nil
	}
	if r.instance != nil {
		r.instance.Release()
		r.instance = nil
	}
	r.configured = false
}
