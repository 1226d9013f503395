package main

import "github.com/Carmen-Shannon/oxy-showcase/common"

// pageKeySteps is how many wheel steps PageUp and PageDown move.
const pageKeySteps = 10

// pager moves the virtual page.
type pager interface {
	Scroll(delta float32) bool
	SetPosition(pos float32) bool
	Length() float32
	Step() float32
}

// previewer switches the viewer in and out of preview mode.
type previewer interface {
	EnterPreview() error
	ExitPreview() error
}

// orbiter is the user camera control.
type orbiter interface {
	Orbit(dx, dy float32)
	OrbitLeft()
	OrbitRight()
	Zoom(delta float32)
	Enabled() bool
}

// inputRouter sends window input either to the page or, while the canvas is interactive, to
// the camera controls.
type inputRouter struct {
	page        pager
	preview     previewer
	orbit       orbiter
	interactive func() bool
	redraw      func()
}

// canvas reports whether input belongs to the camera rather than the page.
func (r *inputRouter) canvas() bool {
	return r.interactive != nil && r.interactive() && r.orbit != nil && r.orbit.Enabled()
}

func (r *inputRouter) onScroll(delta float32) {
	if r.canvas() {
		r.orbit.Zoom(delta)
		r.redraw()
		return
	}
	// Wheel up (positive) scrolls toward the top of the page.
	r.page.Scroll(-delta * r.page.Step())
}

func (r *inputRouter) onDrag(dx, dy float32) {
	if !r.canvas() {
		return
	}
	r.orbit.Orbit(dx, dy)
	r.redraw()
}

func (r *inputRouter) onKey(keyCode uint32) {
	switch keyCode {
	case common.KeyP, common.KeySpace:
		r.logAction("enter preview", r.preview.EnterPreview())
		return
	case common.KeyX, common.KeyBackspace:
		r.logAction("exit preview", r.preview.ExitPreview())
		return
	}

	if r.canvas() {
		switch keyCode {
		case common.KeyLeft:
			r.orbit.OrbitLeft()
			r.redraw()
		case common.KeyRight:
			r.orbit.OrbitRight()
			r.redraw()
		}
		return
	}

	step := r.page.Step()
	switch keyCode {
	case common.KeyDown:
		r.page.Scroll(step)
	case common.KeyUp:
		r.page.Scroll(-step)
	case common.KeyPageDown:
		r.page.Scroll(step * pageKeySteps)
	case common.KeyPageUp:
		r.page.Scroll(-step * pageKeySteps)
	case common.KeyHome, common.KeyR:
		r.page.SetPosition(0)
	case common.KeyEnd:
		r.page.SetPosition(r.page.Length())
	}
}

func (r *inputRouter) logAction(action string, err error) {
	if err != nil {
		common.Logger().Warn(action+" failed", "error", err)
	}
}
