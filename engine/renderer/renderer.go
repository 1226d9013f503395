package renderer

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
	"github.com/Carmen-Shannon/oxy-showcase/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
)

const gridPipelineLabel = "Grid"

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingClearColor    *wgpu.Color
	msaa                 MSAASampleCount
	lines                []LineVertex

	// linesReady is false when the line pipeline failed to build; frames then only clear.
	linesReady bool
}

// Renderer draws the viewer canvas: a cleared background and a reference grid seen through
// the camera uniform. It never decides when to draw; the engine calls RenderFrame only for
// frames that need a redraw.
type Renderer interface {
	// Resize configures the underlying backend to handle a new surface size.
	// A zero size (minimized window) is ignored.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode sets the present mode applied at the next Resize.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// UpdateCamera uploads the camera uniform used by the next frame.
	//
	// Parameters:
	//   - uniform: the camera's current GPU uniform
	UpdateCamera(uniform camera.GPUCameraUniform)

	// SetLines replaces the drawn line list.
	//
	// Parameters:
	//   - vertices: vertex pairs, one pair per segment
	//
	// Returns:
	//   - error: an error if the vertex buffer could not be created
	SetLines(vertices []LineVertex) error

	// RenderFrame clears the canvas, draws the lines and presents the frame.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	RenderFrame() error

	// Release frees all GPU resources. The renderer must not be used afterwards.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer that draws to the window's surface.
// GPU adapter or device failures panic. A pipeline that fails to build is logged and the
// renderer falls back to presenting an empty, cleared canvas.
//
// Parameters:
//   - backendType: the GPU backend to use
//   - window: the window providing the surface and its initial size
//   - options: functional options for present mode, MSAA, clear color and grid
//
// Returns:
//   - Renderer: the configured renderer
func NewRenderer(backendType RendererBackendType, window window.Window, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		msaa:        MSAA4x,
	}

	for _, opt := range options {
		opt(r)
	}
	if r.lines == nil {
		r.lines = GridLines(10, 1)
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(window.SurfaceDescriptor(), r.forceFallbackAdapter, r.msaa)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}
	if r.pendingClearColor != nil {
		r.backend.SetClearColor(*r.pendingClearColor)
	}
	r.backend.ConfigureSurface(window.Width(), window.Height())

	source := camera.GPUCameraUniformSource + "\n" + gridShaderSource
	if err := r.backend.RegisterLinePipeline(gridPipelineLabel, source, camera.GPUCameraUniformSize); err != nil {
		common.Logger().Error("grid pipeline unavailable, rendering an empty canvas", "error", err)
		return r
	}
	r.linesReady = true
	if err := r.SetLines(r.lines); err != nil {
		common.Logger().Error("grid upload failed", "error", err)
	}
	return r
}

func (r *renderer) Resize(width, height int) {
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) UpdateCamera(uniform camera.GPUCameraUniform) {
	r.backend.WriteCamera(uniform.Bytes())
}

func (r *renderer) SetLines(vertices []LineVertex) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines = vertices
	if !r.linesReady {
		return nil
	}
	return r.backend.UploadLines(common.SliceToBytes(vertices), uint32(len(vertices)))
}

func (r *renderer) RenderFrame() error {
	if err := r.backend.BeginFrame(); err != nil {
		return err
	}
	r.backend.DrawLines()
	r.backend.EndFrame()
	r.backend.Present()
	return nil
}

func (r *renderer) Release() {
	r.backend.Release()
}
