package engine

import (
	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
	"github.com/Carmen-Shannon/oxy-showcase/engine/renderer"
	"github.com/Carmen-Shannon/oxy-showcase/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithWindow sets the window whose message loop drives the engine.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer used for redraws. Without one, redraws are only counted.
//
// Parameters:
//   - r: the renderer
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithCamera sets the camera uploaded to the renderer before each redraw.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithFrameLimit sets the frame rate cap in frames per second.
// The default is 60. Pass 0 to uncap the loop.
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.frameLimit = frameDuration(fps)
	}
}
