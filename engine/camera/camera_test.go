package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCameraUniformFollowsController(t *testing.T) {
	cc := NewCameraController(WithPose(inspectionPose))
	cam := NewCamera(WithController(cc), WithAspect(16.0/9.0))

	u := cam.Uniform()
	if u.Eye != inspectionPose.Position {
		t.Errorf("Eye = %v, want %v", u.Eye, inspectionPose.Position)
	}
	if u.ViewProj == mgl32.Ident4() {
		t.Error("view-projection matrix was not computed")
	}
	if GPUCameraUniformSize != 80 {
		t.Errorf("GPUCameraUniformSize = %d, want 80", GPUCameraUniformSize)
	}
	if n := len(u.Bytes()); n != 80 {
		t.Errorf("Bytes() length = %d, want 80", n)
	}
}

func TestUpdateFollowsUserOrbit(t *testing.T) {
	cc := NewCameraController(WithPose(inspectionPose), WithEnabled(true))
	cam := NewCamera(WithController(cc))
	before := cam.Uniform()

	cc.Orbit(200, 50)
	if !cam.Update() {
		t.Fatal("Update() = false after the controller was orbited")
	}
	after := cam.Uniform()
	if after.ViewProj == before.ViewProj {
		t.Fatal("orbit moved the controller but the view-projection is unchanged")
	}
	if after.Eye != cc.Pose().Position {
		t.Errorf("Eye = %v, want %v", after.Eye, cc.Pose().Position)
	}
}

func TestUpdateOnlyWhenPoseOrLensChanges(t *testing.T) {
	cam := NewCamera(WithController(NewCameraController(WithPose(inspectionPose))))

	if cam.Update() {
		t.Error("Update() = true with nothing changed")
	}
	cam.SetAspect(2)
	if !cam.Update() {
		t.Error("Update() = false after the aspect changed")
	}
	cam.SetAspect(2)
	if cam.Update() {
		t.Error("Update() = true after setting the same aspect")
	}
}

func TestUpdateWithoutController(t *testing.T) {
	cam := NewCamera()
	if cam.Update() {
		t.Fatal("Update() = true without a controller")
	}
	if cam.Uniform().ViewProj != mgl32.Ident4() {
		t.Fatal("uniform of a camera without a controller is not the identity")
	}
}

func TestProjectionMapsClipPlanesToUnitDepth(t *testing.T) {
	cc := NewCameraController(WithPose(inspectionPose))
	cam := NewCamera(WithController(cc), WithClipPlanes(0.5, 50))
	vp := cam.Uniform().ViewProj

	dir := inspectionPose.Target.Sub(inspectionPose.Position).Normalize()
	depth := func(distance float32) float32 {
		p := inspectionPose.Position.Add(dir.Mul(distance))
		clip := vp.Mul4x1(p.Vec4(1))
		return clip.Z() / clip.W()
	}

	if d := depth(0.5); !mgl32.FloatEqualThreshold(d, 0, 1e-4) {
		t.Errorf("depth at the near plane = %v, want 0", d)
	}
	if d := depth(50); !mgl32.FloatEqualThreshold(d, 1, 1e-3) {
		t.Errorf("depth at the far plane = %v, want 1", d)
	}
}
