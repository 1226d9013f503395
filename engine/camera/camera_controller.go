package camera

import "github.com/Carmen-Shannon/oxy-showcase/common"

// CameraController defines the interface for camera control systems.
// Controllers own positional state (position, target). Camera reads from controller
// and computes view/projection matrices. Automated writers replace the whole pose via
// SetPose; the orbit methods are user controls and only take effect while enabled.
type CameraController interface {
	orbitCameraController

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// Target returns the look-at point.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// Pose returns the current position and target as a single pose.
	//
	// Returns:
	//   - common.Pose: the current pose
	Pose() common.Pose

	// SetPose replaces position and target exactly and re-derives the orbit's spherical
	// coordinates from them so later user orbiting continues from this pose.
	// SetPose is never gated by Enabled.
	//
	// Parameters:
	//   - p: the new pose
	SetPose(p common.Pose)

	// Enabled reports whether user orbit controls are currently accepted.
	//
	// Returns:
	//   - bool: true if orbit/zoom input is applied
	Enabled() bool

	// SetEnabled turns user orbit controls on or off.
	//
	// Parameters:
	//   - enabled: true to accept orbit/zoom input
	SetEnabled(enabled bool)
}

// orbitCameraController defines orbit-specific control methods.
// Provides third-person orbit controls using spherical coordinates (radius, azimuth, elevation)
// relative to the target/pivot point. Every method is a no-op while the controller is disabled.
type orbitCameraController interface {
	// Orbit rotates the camera around the target from a pointer drag.
	// The deltas are scaled by MouseSensitivity.
	//
	// Parameters:
	//   - dx: horizontal pointer movement in pixels
	//   - dy: vertical pointer movement in pixels
	Orbit(dx, dy float32)

	// OrbitLeft rotates the camera left around the target by one orbit speed step.
	OrbitLeft()

	// OrbitRight rotates the camera right around the target by one orbit speed step.
	OrbitRight()

	// Zoom adjusts the camera's distance by modifying orbit radius.
	// Positive delta zooms in (closer to target).
	//
	// Parameters:
	//   - delta: zoom amount scaled by ZoomSpeed
	Zoom(delta float32)

	// Radius returns the current orbit radius (distance from target).
	//
	// Returns:
	//   - float32: current distance from target
	Radius() float32

	// Azimuth returns the current horizontal angle around the Y axis.
	//
	// Returns:
	//   - float32: azimuth in radians
	Azimuth() float32

	// Elevation returns the current vertical angle from the horizontal plane.
	//
	// Returns:
	//   - float32: elevation in radians
	Elevation() float32

	// MouseSensitivity returns the mouse drag sensitivity multiplier.
	//
	// Returns:
	//   - float32: multiplier for mouse movement
	MouseSensitivity() float32
}
