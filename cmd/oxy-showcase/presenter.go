package main

import "github.com/Carmen-Shannon/oxy-showcase/engine/viewer"

const (
	appTitle     = "oxy-showcase"
	headlineText = "scroll to explore, P to inspect"
	exitHintText = "drag to orbit, X to exit"

	// Compact windows get shorter texts.
	compactHeadlineText = "scroll, P to inspect"
	compactExitHintText = "X to exit"
)

// titler is the part of the window the presenter draws into.
type titler interface {
	SetTitle(title string)
}

// titlePresenter shows the page layout in the window title: the headline stands in for the
// foreground content and the exit hint for the exit affordance. It also gates pointer
// input to the canvas.
type titlePresenter struct {
	window      titler
	foreground  bool
	interactive bool
	affordance  bool
	compact     bool
}

var _ viewer.Presenter = &titlePresenter{}

func newTitlePresenter(w titler) *titlePresenter {
	p := &titlePresenter{window: w, foreground: true}
	p.refresh()
	return p
}

func (p *titlePresenter) SetForegroundVisible(visible bool) {
	p.foreground = visible
	p.refresh()
}

func (p *titlePresenter) SetCanvasInteractive(interactive bool) {
	p.interactive = interactive
}

func (p *titlePresenter) SetExitAffordanceVisible(visible bool) {
	p.affordance = visible
	p.refresh()
}

// SetCompact switches between the full and the compact texts.
func (p *titlePresenter) SetCompact(compact bool) {
	p.compact = compact
	p.refresh()
}

// Interactive reports whether pointer input currently reaches the canvas.
func (p *titlePresenter) Interactive() bool {
	return p.interactive
}

func (p *titlePresenter) title() string {
	headline, hint := headlineText, exitHintText
	if p.compact {
		headline, hint = compactHeadlineText, compactExitHintText
	}
	switch {
	case p.affordance:
		return appTitle + " | " + hint
	case p.foreground:
		return appTitle + " | " + headline
	default:
		return appTitle
	}
}

func (p *titlePresenter) refresh() {
	if p.window != nil {
		p.window.SetTitle(p.title())
	}
}
