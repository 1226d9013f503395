package renderer

import "github.com/cogentcore/webgpu/wgpu"

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingPresentMode = &mode
	}
}

// WithMSAA sets the multisample anti-aliasing sample count for the renderer.
// When not specified, the default is MSAA4x.
//
// Parameters:
//   - count: the MSAASampleCount to use (MSAAOff or MSAA4x)
//
// Returns:
//   - RendererBuilderOption: a function that applies the MSAA option to a renderer
func WithMSAA(count MSAASampleCount) RendererBuilderOption {
	return func(r *renderer) {
		r.msaa = count
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. Requires a software Vulkan ICD such as lavapipe.
//
// Parameters:
//   - force: true to force the software fallback adapter, false to use hardware (default)
//
// Returns:
//   - RendererBuilderOption: a function that applies the force software renderer option to a renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}

// WithClearColor sets the background color of the canvas.
//
// Parameters:
//   - red, green, blue: color components in [0, 1]
//
// Returns:
//   - RendererBuilderOption: a function that applies the clear color to a renderer
func WithClearColor(red, green, blue float64) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingClearColor = &wgpu.Color{R: red, G: green, B: blue, A: 1.0}
	}
}

// WithGrid sets the reference grid drawn under the camera. A halfCells of zero draws only the axes.
//
// Parameters:
//   - halfCells: number of cells from the origin to each edge
//   - spacing: distance between grid lines in world units
//
// Returns:
//   - RendererBuilderOption: a function that applies the grid option to a renderer
func WithGrid(halfCells int, spacing float32) RendererBuilderOption {
	return func(r *renderer) {
		r.lines = GridLines(halfCells, spacing)
	}
}
