package main

import "testing"

type fakeTitler struct{ titles []string }

func (f *fakeTitler) SetTitle(title string) { f.titles = append(f.titles, title) }

func (f *fakeTitler) last() string { return f.titles[len(f.titles)-1] }

func TestTitlePresenterLayouts(t *testing.T) {
	w := &fakeTitler{}
	p := newTitlePresenter(w)
	if got, want := w.last(), appTitle+" | "+headlineText; got != want {
		t.Fatalf("idle title = %q, want %q", got, want)
	}

	p.SetForegroundVisible(false)
	p.SetCanvasInteractive(true)
	p.SetExitAffordanceVisible(true)
	if got, want := w.last(), appTitle+" | "+exitHintText; got != want {
		t.Fatalf("preview title = %q, want %q", got, want)
	}
	if !p.Interactive() {
		t.Fatal("canvas not interactive during preview")
	}

	p.SetExitAffordanceVisible(false)
	if got := w.last(); got != appTitle {
		t.Fatalf("title with nothing shown = %q, want %q", got, appTitle)
	}
}

func TestTitlePresenterCompactTexts(t *testing.T) {
	w := &fakeTitler{}
	p := newTitlePresenter(w)
	p.SetCompact(true)
	if got, want := w.last(), appTitle+" | "+compactHeadlineText; got != want {
		t.Fatalf("compact idle title = %q, want %q", got, want)
	}
	p.SetForegroundVisible(false)
	p.SetExitAffordanceVisible(true)
	if got, want := w.last(), appTitle+" | "+compactExitHintText; got != want {
		t.Fatalf("compact preview title = %q, want %q", got, want)
	}
}
