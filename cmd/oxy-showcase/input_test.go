package main

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-showcase/common"
)

type fakePager struct {
	pos, length, step float32
}

func (p *fakePager) Scroll(delta float32) bool { return p.SetPosition(p.pos + delta) }

func (p *fakePager) SetPosition(pos float32) bool {
	pos = min(max(pos, 0), p.length)
	changed := pos != p.pos
	p.pos = pos
	return changed
}

func (p *fakePager) Length() float32 { return p.length }
func (p *fakePager) Step() float32   { return p.step }

type fakePreviewer struct{ enters, exits int }

func (f *fakePreviewer) EnterPreview() error { f.enters++; return nil }
func (f *fakePreviewer) ExitPreview() error  { f.exits++; return nil }

type fakeOrbiter struct {
	enabled     bool
	orbits      int
	zoom        float32
	left, right int
}

func (f *fakeOrbiter) Orbit(dx, dy float32) { f.orbits++ }
func (f *fakeOrbiter) OrbitLeft()           { f.left++ }
func (f *fakeOrbiter) OrbitRight()          { f.right++ }
func (f *fakeOrbiter) Zoom(delta float32)   { f.zoom += delta }
func (f *fakeOrbiter) Enabled() bool        { return f.enabled }

type routerFixture struct {
	router      *inputRouter
	page        *fakePager
	preview     *fakePreviewer
	orbit       *fakeOrbiter
	interactive bool
	redraws     int
}

func newRouterFixture() *routerFixture {
	f := &routerFixture{
		page:    &fakePager{length: 4, step: 0.5},
		preview: &fakePreviewer{},
		orbit:   &fakeOrbiter{},
	}
	f.router = &inputRouter{
		page:        f.page,
		preview:     f.preview,
		orbit:       f.orbit,
		interactive: func() bool { return f.interactive },
		redraw:      func() { f.redraws++ },
	}
	return f
}

func TestWheelScrollsPageWhenCanvasInert(t *testing.T) {
	f := newRouterFixture()
	f.router.onScroll(-2) // two notches down
	if f.page.pos != 1 {
		t.Fatalf("page position = %v, want 1", f.page.pos)
	}
	f.router.onScroll(1)
	if f.page.pos != 0.5 {
		t.Fatalf("page position = %v, want 0.5", f.page.pos)
	}
	if f.orbit.zoom != 0 {
		t.Fatal("wheel zoomed while the canvas was inert")
	}
}

func TestWheelZoomsAndDragOrbitsWhenInteractive(t *testing.T) {
	f := newRouterFixture()
	f.interactive = true
	f.orbit.enabled = true

	f.router.onScroll(1)
	f.router.onDrag(3, 4)
	f.router.onKey(common.KeyLeft)
	f.router.onKey(common.KeyPageDown)

	if f.page.pos != 0 {
		t.Fatalf("page moved to %v during preview", f.page.pos)
	}
	if f.orbit.zoom != 1 || f.orbit.orbits != 1 || f.orbit.left != 1 {
		t.Fatalf("orbiter = %+v, want one zoom, orbit and left step", f.orbit)
	}
	if f.redraws != 3 {
		t.Fatalf("redraws = %d, want 3", f.redraws)
	}
}

func TestDragIgnoredWhenControlsDisabled(t *testing.T) {
	f := newRouterFixture()
	f.interactive = true
	f.router.onDrag(3, 4)
	if f.orbit.orbits != 0 || f.redraws != 0 {
		t.Fatal("drag reached a disabled controller")
	}
}

func TestPreviewKeys(t *testing.T) {
	f := newRouterFixture()
	for _, k := range []uint32{common.KeyP, common.KeySpace} {
		f.router.onKey(k)
	}
	for _, k := range []uint32{common.KeyX, common.KeyBackspace} {
		f.router.onKey(k)
	}
	if f.preview.enters != 2 || f.preview.exits != 2 {
		t.Fatalf("enters/exits = %d/%d, want 2/2", f.preview.enters, f.preview.exits)
	}
}

func TestPageKeys(t *testing.T) {
	f := newRouterFixture()
	steps := []struct {
		key  uint32
		want float32
	}{
		{common.KeyDown, 0.5},
		{common.KeyPageDown, 4},
		{common.KeyUp, 3.5},
		{common.KeyHome, 0},
		{common.KeyEnd, 4},
		{common.KeyPageUp, 0},
		{common.KeyEnd, 4},
		{common.KeyR, 0},
	}
	for i, s := range steps {
		f.router.onKey(s.key)
		if f.page.pos != s.want {
			t.Fatalf("step %d: position = %v, want %v", i, f.page.pos, s.want)
		}
	}
}
