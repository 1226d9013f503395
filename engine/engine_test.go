package engine

import (
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
	"github.com/Carmen-Shannon/oxy-showcase/engine/renderer"
)

// recordingRenderer keeps every uploaded camera uniform and counts frames.
type recordingRenderer struct {
	uploads []camera.GPUCameraUniform
	frames  int
}

func (r *recordingRenderer) Resize(width, height int) {}
func (r *recordingRenderer) SetPresentMode(mode renderer.PresentMode) {}
func (r *recordingRenderer) SetLines(vertices []renderer.LineVertex) error { return nil }
func (r *recordingRenderer) Release() {}

func (r *recordingRenderer) UpdateCamera(uniform camera.GPUCameraUniform) {
	r.uploads = append(r.uploads, uniform)
}

func (r *recordingRenderer) RenderFrame() error {
	r.frames++
	return nil
}

// newTestEngine returns a headless engine with a manual clock and no frame limit.
func newTestEngine(options ...EngineBuilderOption) (*engine, *time.Time) {
	e := NewEngine(append([]EngineBuilderOption{WithFrameLimit(0)}, options...)...).(*engine)
	clock := time.Unix(100, 0)
	e.now = func() time.Time { return clock }
	e.lastFrame = clock
	return e, &clock
}

func TestStepRendersOnlyWhenRequested(t *testing.T) {
	e, clock := newTestEngine()
	rendered := 0
	e.SetRenderCallback(func(float32) { rendered++ })

	for range 5 {
		*clock = clock.Add(time.Second / 60)
		e.step()
	}
	if rendered != 1 {
		t.Fatalf("rendered %d frames without requests, want only the first", rendered)
	}

	e.RequestRedraw()
	e.RequestRedraw()
	e.step()
	e.step()
	if rendered != 2 {
		t.Fatalf("rendered = %d, want coalesced requests to render once", rendered)
	}
	if e.Frames() != 7 || e.Redraws() != 2 {
		t.Fatalf("frames/redraws = %d/%d, want 7/2", e.Frames(), e.Redraws())
	}
}

func TestTickRunsBeforeRenderAndCanRequestRedraw(t *testing.T) {
	e, clock := newTestEngine()
	var order []string
	var gotDT float32
	e.SetTickCallback(func(dt float32) {
		gotDT = dt
		order = append(order, "tick")
		e.RequestRedraw()
	})
	e.SetRenderCallback(func(float32) { order = append(order, "render") })

	*clock = clock.Add(250 * time.Millisecond)
	e.step()

	if gotDT != 0.25 {
		t.Fatalf("dt = %v, want 0.25", gotDT)
	}
	if len(order) != 2 || order[0] != "tick" || order[1] != "render" {
		t.Fatalf("order = %v, want [tick render]", order)
	}
}

func TestRenderCallbackPanicIsRecovered(t *testing.T) {
	e, _ := newTestEngine()
	e.SetRenderCallback(func(float32) { panic("boom") })
	e.step()
	e.step()
	if e.Frames() != 2 {
		t.Fatalf("frames = %d, want 2", e.Frames())
	}
}

func TestResizeUpdatesAspectAndRequestsRedraw(t *testing.T) {
	cam := camera.NewCamera(camera.WithAspect(1))
	e, _ := newTestEngine(WithCamera(cam))
	e.step()

	e.resize(1600, 800)
	if cam.Aspect() != 2 {
		t.Fatalf("aspect = %v, want 2", cam.Aspect())
	}
	if !e.redrawRequested {
		t.Fatal("resize did not request a redraw")
	}

	e.step()
	e.resize(0, 0)
	if cam.Aspect() != 2 {
		t.Fatalf("aspect changed on a minimized window: %v", cam.Aspect())
	}
}

func TestQuitWithoutWindow(t *testing.T) {
	e, _ := newTestEngine()
	e.Quit()
	e.Quit()
}

func TestFrameDuration(t *testing.T) {
	if d := frameDuration(0); d != 0 {
		t.Errorf("frameDuration(0) = %v, want 0", d)
	}
	if d := frameDuration(50); d != 20*time.Millisecond {
		t.Errorf("frameDuration(50) = %v, want 20ms", d)
	}
}

func TestRedrawUploadsUserOrbit(t *testing.T) {
	ctrl := camera.NewCameraController(
		camera.WithPose(common.NewPose(13, -2.01, 2.29, 0.11, 0, 0)),
		camera.WithEnabled(true),
	)
	cam := camera.NewCamera(camera.WithController(ctrl))
	r := &recordingRenderer{}
	e, _ := newTestEngine(WithCamera(cam), WithRenderer(r))

	e.step()
	if len(r.uploads) != 1 {
		t.Fatalf("uploads after the first frame = %d, want 1", len(r.uploads))
	}

	// Orbiting touches only the controller; the next redraw must still show it.
	ctrl.Orbit(200, 50)
	e.RequestRedraw()
	e.step()
	if len(r.uploads) != 2 {
		t.Fatalf("uploads after orbiting = %d, want 2", len(r.uploads))
	}
	if r.uploads[1].ViewProj == r.uploads[0].ViewProj {
		t.Fatal("orbit moved the controller but the uploaded view-projection is unchanged")
	}
	if r.uploads[1].Eye != ctrl.Pose().Position {
		t.Fatalf("uploaded eye = %v, want %v", r.uploads[1].Eye, ctrl.Pose().Position)
	}

	e.RequestRedraw()
	e.step()
	if len(r.uploads) != 2 || r.frames != 3 {
		t.Fatalf("uploads/frames = %d/%d, want an unchanged camera to skip the upload", len(r.uploads), r.frames)
	}
}

func TestResizeReachesUploadedProjection(t *testing.T) {
	cam := camera.NewCamera(camera.WithController(camera.NewCameraController()))
	r := &recordingRenderer{}
	e, _ := newTestEngine(WithCamera(cam), WithRenderer(r))
	e.step()

	e.resize(1600, 800)
	e.step()
	if len(r.uploads) != 2 || r.uploads[1].ViewProj == r.uploads[0].ViewProj {
		t.Fatal("resize did not reach the uploaded projection")
	}
}
