package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyP         = 80  // P key (ASCII), enters preview
	KeyX         = 88  // X key (ASCII), activates the exit affordance
	KeyR         = 82  // R key (ASCII), rewinds the page to the top
	KeySpace     = 32  // Spacebar (ASCII), enters preview
	KeyBackspace = 259 // Backspace key (GLFW), activates the exit affordance
	KeyEsc       = 256 // Escape key (GLFW), closes the window
)

// Page navigation keys. Left and right orbit the camera while previewing.
const (
	KeyRight    = 262 // Right arrow (GLFW)
	KeyLeft     = 263 // Left arrow (GLFW)
	KeyDown     = 264 // Down arrow (GLFW)
	KeyUp       = 265 // Up arrow (GLFW)
	KeyPageUp   = 266 // Page Up (GLFW)
	KeyPageDown = 267 // Page Down (GLFW)
	KeyHome     = 268 // Home (GLFW)
	KeyEnd      = 269 // End (GLFW)
)
