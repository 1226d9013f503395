package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/go-gl/mathgl/mgl32"
)

var inspectionPose = common.NewPose(13, -2.01, 2.29, 0.11, 0, 0)

func TestSetPoseIsExact(t *testing.T) {
	cc := NewCameraController()
	cc.SetPose(inspectionPose)

	if got := cc.Pose(); got != inspectionPose {
		t.Fatalf("Pose() = %v, want %v", got, inspectionPose)
	}
	want := inspectionPose.Position.Sub(inspectionPose.Target).Len()
	if !mgl32.FloatEqualThreshold(cc.Radius(), want, 1e-4) {
		t.Errorf("Radius() = %v, want %v", cc.Radius(), want)
	}
}

func TestOrbitIgnoredWhileDisabled(t *testing.T) {
	cc := NewCameraController(WithPose(inspectionPose))
	cc.Orbit(40, 12)
	cc.OrbitLeft()
	cc.Zoom(3)

	if got := cc.Pose(); got != inspectionPose {
		t.Fatalf("disabled controller moved: %v", got)
	}
}

func TestOrbitResumesFromPose(t *testing.T) {
	cc := NewCameraController(WithPose(inspectionPose), WithEnabled(true))

	cc.Orbit(0, 0)
	if !cc.Pose().ApproxEqual(inspectionPose) {
		t.Fatalf("zero orbit drifted: %v", cc.Pose())
	}

	radius := cc.Radius()
	cc.OrbitRight()
	got := cc.Pose()
	if got.ApproxEqual(inspectionPose) {
		t.Fatal("OrbitRight did not move the camera")
	}
	if got.Target != inspectionPose.Target {
		t.Errorf("target moved to %v", got.Target)
	}
	if d := got.Position.Sub(got.Target).Len(); !mgl32.FloatEqualThreshold(d, radius, 1e-3) {
		t.Errorf("orbit changed distance: %v, want %v", d, radius)
	}
}

func TestZoomClampsToBounds(t *testing.T) {
	cc := NewCameraController(
		WithPose(common.NewPose(0, 0, 10, 0, 0, 0)),
		WithEnabled(true),
		WithRadiusBounds(2, 20),
	)

	cc.Zoom(1000)
	if r := cc.Radius(); r != 2 {
		t.Errorf("Radius() after zoom in = %v, want 2", r)
	}
	cc.Zoom(-1000)
	if r := cc.Radius(); r != 20 {
		t.Errorf("Radius() after zoom out = %v, want 20", r)
	}
}
