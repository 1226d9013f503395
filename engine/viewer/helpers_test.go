package viewer

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/config"
	"github.com/Carmen-Shannon/oxy-showcase/engine/device"
)

type fakeBinding struct {
	pose         common.Pose
	enabled      bool
	enableCalls  int
	setPoseCalls int
	dirtyCalls   int
	panicOnSet   bool
}

func (b *fakeBinding) Pose() common.Pose { return b.pose }

func (b *fakeBinding) SetPose(p common.Pose) {
	if b.panicOnSet {
		panic("camera released")
	}
	b.setPoseCalls++
	b.pose = p
}

func (b *fakeBinding) SetUserControlsEnabled(enabled bool) {
	b.enableCalls++
	b.enabled = enabled
}

func (b *fakeBinding) MarkSceneDirty() { b.dirtyCalls++ }

type fakePresenter struct {
	foreground  bool
	interactive bool
	affordance  bool
	hides       int
}

func (p *fakePresenter) SetForegroundVisible(v bool) {
	if !v {
		p.hides++
	}
	p.foreground = v
}

func (p *fakePresenter) SetCanvasInteractive(v bool)     { p.interactive = v }
func (p *fakePresenter) SetExitAffordanceVisible(v bool) { p.affordance = v }

type fakeSource struct{ p float32 }

func (f *fakeSource) Progress() float32 { return f.p }

func defaultConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("config.Default: %v", err)
	}
	return cfg
}

func defaultResolver(t *testing.T) *ProfileResolver {
	t.Helper()
	r, err := NewProfileResolverFromConfig(defaultConfig(t).Profiles)
	if err != nil {
		t.Fatalf("NewProfileResolverFromConfig: %v", err)
	}
	return r
}

type harness struct {
	session   *ViewerSession
	binding   *fakeBinding
	presenter *fakePresenter
	writes    []WriteEvent
}

// newHarness builds and initializes a session with the default configuration.
func newHarness(t *testing.T, compact bool, options ...SessionOption) *harness {
	t.Helper()
	h := &harness{binding: &fakeBinding{}, presenter: &fakePresenter{}}

	preview, err := OptionsFromConfig(defaultConfig(t).Preview)
	if err != nil {
		t.Fatalf("OptionsFromConfig: %v", err)
	}
	all := append(preview,
		WithPresenter(h.presenter),
		WithWriteHook(func(ev WriteEvent) { h.writes = append(h.writes, ev) }),
	)
	all = append(all, options...)

	h.session = NewSession(h.binding, defaultResolver(t), device.Static(compact), all...)
	if err := h.session.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return h
}

// frames advances the session n times by dt seconds.
func (h *harness) frames(n int, dt float32) {
	for range n {
		h.session.Frame(dt)
	}
}

// settle runs enough frames to finish any preview tween.
func (h *harness) settle() {
	h.frames(40, 0.1)
}

func posesBetween(p, a, b common.Pose) bool {
	within := func(v, x, y float32) bool {
		lo, hi := min(x, y), max(x, y)
		return v >= lo-common.PoseEpsilon && v <= hi+common.PoseEpsilon
	}
	for i := range 3 {
		if !within(p.Position[i], a.Position[i], b.Position[i]) || !within(p.Target[i], a.Target[i], b.Target[i]) {
			return false
		}
	}
	return true
}

func poseDistance(a, b common.Pose) float32 {
	return a.Position.Sub(b.Position).Len() + a.Target.Sub(b.Target).Len()
}
