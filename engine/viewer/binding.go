package viewer

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
)

// CameraBinding is the session's view of the engine's active camera.
type CameraBinding interface {
	// Pose returns the camera's current pose, including any user orbit.
	Pose() common.Pose

	// SetPose moves the camera to p.
	SetPose(p common.Pose)

	// SetUserControlsEnabled turns the engine's orbit controls on or off.
	SetUserControlsEnabled(enabled bool)

	// MarkSceneDirty asks the engine to redraw the next frame.
	MarkSceneDirty()
}

// cameraBinding writes poses to the camera's controller. The camera picks them up on
// its next Update, together with any user orbit.
type cameraBinding struct {
	ctrl           camera.CameraController
	markSceneDirty func()
}

var _ CameraBinding = &cameraBinding{}

// NewCameraBinding adapts an engine camera for a ViewerSession.
//
// Parameters:
//   - cam: the active camera; must have a controller attached
//   - markSceneDirty: requests a redraw from the engine; may be nil
//
// Returns:
//   - CameraBinding: the binding
//   - error: ErrNotInitialized (wrapped) if the camera or its controller is missing
func NewCameraBinding(cam camera.Camera, markSceneDirty func()) (CameraBinding, error) {
	if cam == nil {
		return nil, fmt.Errorf("%w: no camera", ErrNotInitialized)
	}
	ctrl := cam.Controller()
	if ctrl == nil {
		return nil, fmt.Errorf("%w: camera has no controller", ErrNotInitialized)
	}
	if markSceneDirty == nil {
		markSceneDirty = func() {}
	}
	return &cameraBinding{ctrl: ctrl, markSceneDirty: markSceneDirty}, nil
}

func (b *cameraBinding) Pose() common.Pose {
	return b.ctrl.Pose()
}

func (b *cameraBinding) SetPose(p common.Pose) {
	b.ctrl.SetPose(p)
}

func (b *cameraBinding) SetUserControlsEnabled(enabled bool) {
	b.ctrl.SetEnabled(enabled)
}

func (b *cameraBinding) MarkSceneDirty() {
	b.markSceneDirty()
}

// Presenter controls the page elements around the canvas.
type Presenter interface {
	// SetForegroundVisible shows or hides the foreground content over the canvas.
	SetForegroundVisible(visible bool)

	// SetCanvasInteractive lets pointer input reach the canvas, or not.
	SetCanvasInteractive(interactive bool)

	// SetExitAffordanceVisible shows or hides the control that ends preview mode.
	SetExitAffordanceVisible(visible bool)
}

// NopPresenter ignores every call. It is the default Presenter of a session.
type NopPresenter struct{}

func (NopPresenter) SetForegroundVisible(bool)     {}
func (NopPresenter) SetCanvasInteractive(bool)     {}
func (NopPresenter) SetExitAffordanceVisible(bool) {}
