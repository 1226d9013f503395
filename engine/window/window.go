package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-showcase/engine/device"
	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides platform windowing and input event handling.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback sets the callback for mouse scroll wheel events.
	//
	// Parameters:
	//   - callback: function receiving scroll delta (positive = wheel up, negative = wheel down)
	SetScrollCallback(callback func(delta float32))

	// SetKeyDownCallback sets the callback for key press and repeat events.
	// Escape is reserved: it closes the window and is never delivered.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetDragCallback sets the callback for pointer movement while the left button is held.
	//
	// Parameters:
	//   - callback: function receiving the cursor movement in pixels since the previous event
	SetDragCallback(callback func(dx, dy float32))

	// SetVisibilityCallback sets the callback for the window becoming hidden or shown.
	// A window is hidden while iconified. Losing focus does not hide it.
	//
	// Parameters:
	//   - callback: function receiving the new visibility
	SetVisibilityCallback(callback func(visible bool))

	// SetTitle replaces the text in the window's title bar.
	//
	// Parameters:
	//   - title: the new title
	SetTitle(title string)

	// PrimaryDisplay reports the metrics of the primary monitor.
	//
	// Returns:
	//   - device.DisplayMetrics: resolution and physical size of the monitor
	//   - error: non-nil if no monitor is connected
	PrimaryDisplay() (device.DisplayMetrics, error)

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// RequestClose asks the message loop to stop after the current iteration.
	// The window stays alive until Close is called.
	RequestClose()

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop on the calling (main) thread.
	// Blocks until the window is closed. Calls the update callback each iteration.
	ProcessMessages()

	// Width returns the current window client area width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current window client area height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// maxWidth is the maximum allowed window width during resize.
	maxWidth int

	// maxHeight is the maximum allowed window height during resize.
	maxHeight int

	// minWidth is the minimum allowed window width during resize.
	minWidth int

	// minHeight is the minimum allowed window height during resize.
	minHeight int

	// width is the current window client area width in pixels.
	width int

	// height is the current window client area height in pixels.
	height int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func()

	// onResize is called when the window is resized.
	onResize func(width, height int)

	// onScroll is called for mouse wheel events.
	// Positive delta = wheel up, negative = wheel down.
	onScroll func(delta float32)

	// onKeyDown is called when a key is pressed or repeats.
	onKeyDown func(keyCode uint32)

	// onDrag is called when the cursor moves with the left button held.
	onDrag func(dx, dy float32)

	// onVisibility is called when the window is iconified or restored.
	onVisibility func(visible bool)

	// dragging is true while the left mouse button is held.
	dragging bool

	// lastX and lastY are the cursor position of the previous drag event.
	lastX, lastY float64

	iconified bool
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window (not yet spawned)
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:     "oxy-showcase",
		maxWidth:  3840,
		maxHeight: 2160,
		minWidth:  320,
		minHeight: 240,
		width:     1280,
		height:    720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetScrollCallback(callback func(delta float32)) {
	w.onScroll = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetDragCallback(callback func(dx, dy float32)) {
	w.onDrag = callback
}

func (w *engineWindow) SetVisibilityCallback(callback func(visible bool)) {
	w.onVisibility = callback
}

func (w *engineWindow) SetTitle(title string) {
	if title == w.title {
		return
	}
	w.title = title
	platformSetTitle(w, title)
}

func (w *engineWindow) PrimaryDisplay() (device.DisplayMetrics, error) {
	return platformPrimaryDisplay()
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) RequestClose() {
	platformRequestClose(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

// pointerButton records a left button press or release at the cursor position x, y.
func (w *engineWindow) pointerButton(pressed bool, x, y float64) {
	w.dragging = pressed
	w.lastX, w.lastY = x, y
}

// pointerMoved reports the movement since the previous event as a drag while the left button is held.
func (w *engineWindow) pointerMoved(x, y float64) {
	if !w.dragging {
		return
	}
	dx, dy := x-w.lastX, y-w.lastY
	w.lastX, w.lastY = x, y
	if w.onDrag != nil && (dx != 0 || dy != 0) {
		w.onDrag(float32(dx), float32(dy))
	}
}

// setIconified notifies the visibility callback when the iconified state changes.
func (w *engineWindow) setIconified(iconified bool) {
	if iconified == w.iconified {
		return
	}
	w.iconified = iconified
	// A button released while hidden never reaches us.
	w.dragging = false
	if w.onVisibility != nil {
		w.onVisibility(!iconified)
	}
}

// focusChanged ends a drag when focus is lost; the button release goes to another window.
func (w *engineWindow) focusChanged(focused bool) {
	if !focused {
		w.dragging = false
	}
}
