package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/go-gl/mathgl/mgl32"
)

// cameraControllerImpl is the single implementation of CameraController.
// The pose is authoritative. Spherical coordinates are derived from it on every
// SetPose so that user orbiting resumes from wherever an automated writer left the camera.
type cameraControllerImpl struct {
	mu *sync.Mutex

	pose common.Pose

	// Spherical coordinates (offset from target)
	radius    float32
	azimuth   float32 // Horizontal angle around Y axis
	elevation float32 // Vertical angle from horizontal plane

	enabled bool

	// Orbit constraints
	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	// Orbit speed settings
	orbitSpeed       float32
	mouseSensitivity float32
	zoomSpeed        float32
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new camera controller with defaults suited to a
// single model framed near the origin. User controls start disabled.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:   &sync.Mutex{},
		pose: common.NewPose(0, 0, 10, 0, 0, 0),

		minRadius:    0.5,
		maxRadius:    200.0,
		minElevation: float32(-math.Pi/2 + 0.1),
		maxElevation: float32(math.Pi/2 - 0.1),

		orbitSpeed:       0.03,
		mouseSensitivity: 0.005,
		zoomSpeed:        0.5,
	}

	for _, option := range options {
		option(cc)
	}

	cc.syncSpherical()
	return cc
}

// --- internal helpers ---

// syncSpherical derives radius, azimuth and elevation from the current pose.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) syncSpherical() {
	offset := cc.pose.Position.Sub(cc.pose.Target)
	cc.radius = offset.Len()
	if cc.radius < 1e-8 {
		cc.azimuth = 0
		cc.elevation = 0
		return
	}
	sinElev := mgl32.Clamp(offset.Y()/cc.radius, -1, 1)
	cc.elevation = float32(math.Asin(float64(sinElev)))
	cc.azimuth = float32(math.Atan2(float64(offset.X()), float64(offset.Z())))
}

// updatePosition recomputes the camera position from spherical coordinates.
// Must be called whenever radius, azimuth or elevation changes through user input.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) updatePosition() {
	cosElev := float32(math.Cos(float64(cc.elevation)))
	sinElev := float32(math.Sin(float64(cc.elevation)))
	cosAzim := float32(math.Cos(float64(cc.azimuth)))
	sinAzim := float32(math.Sin(float64(cc.azimuth)))

	cc.pose.Position = cc.pose.Target.Add(mgl32.Vec3{
		cc.radius * cosElev * sinAzim,
		cc.radius * sinElev,
		cc.radius * cosElev * cosAzim,
	})
}

// --- CameraController shared methods ---

func (cc *cameraControllerImpl) Position() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pose.Position.Elem()
}

func (cc *cameraControllerImpl) Target() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pose.Target.Elem()
}

func (cc *cameraControllerImpl) Pose() common.Pose {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pose
}

func (cc *cameraControllerImpl) SetPose(p common.Pose) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pose = p
	cc.syncSpherical()
}

func (cc *cameraControllerImpl) Enabled() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.enabled
}

func (cc *cameraControllerImpl) SetEnabled(enabled bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.enabled = enabled
}

// --- orbit methods ---

func (cc *cameraControllerImpl) Orbit(dx, dy float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if !cc.enabled {
		return
	}
	cc.azimuth -= dx * cc.mouseSensitivity
	cc.elevation = mgl32.Clamp(cc.elevation+dy*cc.mouseSensitivity, cc.minElevation, cc.maxElevation)
	cc.updatePosition()
}

func (cc *cameraControllerImpl) OrbitLeft() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if !cc.enabled {
		return
	}
	cc.azimuth -= cc.orbitSpeed
	cc.updatePosition()
}

func (cc *cameraControllerImpl) OrbitRight() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if !cc.enabled {
		return
	}
	cc.azimuth += cc.orbitSpeed
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Zoom(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if !cc.enabled {
		return
	}
	cc.radius = mgl32.Clamp(cc.radius-delta*cc.zoomSpeed, cc.minRadius, cc.maxRadius)
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Radius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.radius
}

func (cc *cameraControllerImpl) Azimuth() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.azimuth
}

func (cc *cameraControllerImpl) Elevation() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.elevation
}

func (cc *cameraControllerImpl) MouseSensitivity() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mouseSensitivity
}
