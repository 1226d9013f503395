package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/go-gl/mathgl/mgl32"
)

// worldUp is the up vector of every view. The viewer never rolls the camera.
var worldUp = mgl32.Vec3{0, 1, 0}

// depthZeroToOne remaps OpenGL clip depth [-1, 1] to the WebGPU range [0, 1].
var depthZeroToOne = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

type cameraImpl struct {
	mu *sync.Mutex

	fov    float32
	aspect float32
	near   float32
	far    float32

	controller CameraController

	lensDirty bool        // fov, aspect or clip planes changed since the last Update
	shown     common.Pose // pose the uniform was computed from
	uniform   GPUCameraUniform
}

// Camera turns the pose owned by its CameraController into the uniform the renderer uploads.
// Pose writers only touch the controller; the camera catches up on Update, which the engine
// calls before every redraw.
type Camera interface {
	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// SetAspect sets the aspect ratio (width / height). The projection is rebuilt on the next Update.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// Controller returns the attached CameraController, or nil.
	Controller() CameraController

	// Update recomputes the uniform when the controller's pose or the lens changed since the
	// previous Update. Without a controller it does nothing.
	//
	// Returns:
	//   - bool: true if the uniform changed
	Update() bool

	// Uniform returns the uniform computed by the most recent Update.
	Uniform() GPUCameraUniform
}

var _ Camera = &cameraImpl{}

// NewCamera creates a Camera with a 45 degree field of view and computes its first
// uniform when a controller is attached through WithController.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:        &sync.Mutex{},
		fov:       math.Pi / 4,
		aspect:    1,
		near:      0.1,
		far:       100,
		lensDirty: true,
		uniform:   GPUCameraUniform{ViewProj: mgl32.Ident4()},
	}
	for _, option := range options {
		option(c)
	}
	c.Update()
	return c
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if aspect == c.aspect {
		return
	}
	c.aspect = aspect
	c.lensDirty = true
}

func (c *cameraImpl) Controller() CameraController {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl) Update() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.controller == nil {
		return false
	}
	pose := c.controller.Pose()
	if !c.lensDirty && pose == c.shown {
		return false
	}
	// A pose looking at its own position has no view direction; keep the last matrices.
	if pose.Position.Sub(pose.Target).Len() < common.PoseEpsilon {
		return false
	}

	view := mgl32.LookAtV(pose.Position, pose.Target, worldUp)
	projection := depthZeroToOne.Mul4(mgl32.Perspective(c.fov, c.aspect, c.near, c.far))
	c.uniform = GPUCameraUniform{
		ViewProj: projection.Mul4(view),
		Eye:      pose.Position,
	}
	c.shown = pose
	c.lensDirty = false
	return true
}

func (c *cameraImpl) Uniform() GPUCameraUniform {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.uniform
}
