package engine

import (
	"runtime/debug"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
	"github.com/Carmen-Shannon/oxy-showcase/engine/profiler"
	"github.com/Carmen-Shannon/oxy-showcase/engine/renderer"
	"github.com/Carmen-Shannon/oxy-showcase/engine/window"
)

// engine implements the Engine interface.
// Everything runs on the thread that calls Run: input callbacks, the tick callback and rendering.
type engine struct {
	running  bool
	quitOnce sync.Once // Ensures the window is only asked to close once

	window   window.Window
	renderer renderer.Renderer
	camera   camera.Camera

	cameraUploaded bool // the renderer holds the camera's current uniform

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	redrawRequested bool
	frameLimit      time.Duration // minimum frame duration; 0 = uncapped
	lastFrame       time.Time
	now             func() time.Time

	frames  uint64
	redraws uint64
}

// Engine is the main entry point for the engine.
// It runs a single-threaded frame loop that ticks every iteration and renders only when a
// redraw was requested, so a still scene costs no GPU work.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance, or nil if none was configured
	Window() window.Window

	// Renderer returns the renderer drawing the frames.
	//
	// Returns:
	//   - renderer.Renderer: the renderer, or nil if none was configured
	Renderer() renderer.Renderer

	// Camera returns the camera whose uniform is uploaded before each redraw.
	//
	// Returns:
	//   - camera.Camera: the camera, or nil if none was configured
	Camera() camera.Camera

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickCallback registers the function called every frame before rendering.
	// Use this for input-driven state, tweens and anything that may request a redraw.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called after each rendered frame.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetFrameLimit sets the frame rate cap in frames per second.
	// Pass 0 to uncap the loop.
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetFrameLimit(fps float64)

	// RequestRedraw marks the next frame as needing a render. Calls within a frame coalesce.
	RequestRedraw()

	// Frames returns the number of frames run so far.
	Frames() uint64

	// Redraws returns the number of frames that were rendered.
	Redraws() uint64

	// Run starts the main loop on the calling thread and blocks until the window closes.
	// The renderer is released and the window destroyed before Run returns.
	Run()

	// Quit asks the main loop to stop after the current frame.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// When a window is configured, resizes reconfigure the renderer, update the camera aspect
// and request a redraw.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		profiler:        profiler.NewProfiler(),
		frameLimit:      time.Second / 60,
		now:             time.Now,
		redrawRequested: true, // the first frame always draws
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window != nil {
		e.window.SetResizeCallback(e.resize)
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Run() {
	e.running = true
	e.lastFrame = e.now()
	e.window.SetUpdateCallback(e.step)
	e.window.ProcessMessages()
	e.running = false

	if e.renderer != nil {
		e.renderer.Release()
	}
	if err := e.window.Close(); err != nil {
		common.Logger().Warn("window close failed", "error", err)
	}
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		if e.window != nil {
			e.window.RequestClose()
		}
	})
}

// step runs one frame: tick, conditional render, profiling and frame limiting.
func (e *engine) step() {
	start := e.now()
	dt := float32(start.Sub(e.lastFrame).Seconds())
	e.lastFrame = start
	e.frames++

	if e.tickCallback != nil {
		e.tickCallback(dt)
	}

	redrawn := false
	if e.redrawRequested {
		e.redrawRequested = false
		redrawn = e.render(dt)
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick(redrawn)
	}

	if e.frameLimit > 0 {
		if remaining := e.frameLimit - e.now().Sub(start); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

// render brings the camera up to date with its controller, uploads the uniform when it
// changed and draws one frame. A panic or a failed surface acquisition
// skips the frame and requests another, so a transient error never stops the loop.
func (e *engine) render(dt float32) (rendered bool) {
	defer func() {
		if r := recover(); r != nil {
			common.Logger().Error("render recovered from panic", "panic", r, "stack", string(debug.Stack()))
			rendered = false
		}
	}()

	if e.renderer != nil {
		if e.camera != nil && (e.camera.Update() || !e.cameraUploaded) {
			e.renderer.UpdateCamera(e.camera.Uniform())
			e.cameraUploaded = true
		}
		if err := e.renderer.RenderFrame(); err != nil {
			common.Logger().Debug("frame skipped", "error", err)
			e.redrawRequested = true
			return false
		}
	}
	e.redraws++

	if e.renderCallback != nil {
		e.renderCallback(dt)
	}
	return true
}

func (e *engine) resize(width, height int) {
	if e.renderer != nil {
		e.renderer.Resize(width, height)
	}
	if e.camera != nil && width > 0 && height > 0 {
		e.camera.SetAspect(float32(width) / float32(height))
	}
	e.RequestRedraw()
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

func (e *engine) SetFrameLimit(fps float64) {
	e.frameLimit = frameDuration(fps)
}

func (e *engine) RequestRedraw() {
	e.redrawRequested = true
}

func (e *engine) Frames() uint64 {
	return e.frames
}

func (e *engine) Redraws() uint64 {
	return e.redraws
}

func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
