package scroll

import (
	"errors"
	"testing"
)

func newTestTracker(t *testing.T) Tracker {
	t.Helper()
	tr, err := NewTracker(
		WithLength(4),
		WithStep(0.25),
		WithSection("journey", 0, 2),
		WithSection("display", 2, 3),
	)
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}
	return tr
}

func TestNewTrackerRejectsBadSections(t *testing.T) {
	tests := []struct {
		name    string
		options []TrackerBuilderOption
	}{
		{"empty range", []TrackerBuilderOption{WithLength(2), WithSection("a", 1, 1)}},
		{"past end", []TrackerBuilderOption{WithLength(2), WithSection("a", 1, 3)}},
		{"negative start", []TrackerBuilderOption{WithLength(2), WithSection("a", -1, 1)}},
		{"duplicate", []TrackerBuilderOption{WithLength(2), WithSection("a", 0, 1), WithSection("a", 1, 2)}},
		{"unnamed", []TrackerBuilderOption{WithLength(2), WithSection("", 0, 1)}},
		{"zero length", []TrackerBuilderOption{WithLength(0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTracker(tt.options...)
			if !errors.Is(err, ErrInvalidSection) {
				t.Fatalf("NewTracker() error = %v, want ErrInvalidSection", err)
			}
		})
	}
}

func TestScrollClampsToPage(t *testing.T) {
	tr := newTestTracker(t)

	if tr.Scroll(-1) {
		t.Error("scrolling above the top reported a change")
	}
	if !tr.Scroll(10) {
		t.Error("scrolling down reported no change")
	}
	if got := tr.Position(); got != 4 {
		t.Errorf("Position() = %v, want 4", got)
	}
	if tr.SetPosition(4) {
		t.Error("SetPosition to the same value reported a change")
	}
}

func TestProgressPerSection(t *testing.T) {
	tr := newTestTracker(t)
	tr.SetPosition(1)

	if p, _ := tr.Progress("journey"); p != 0.5 {
		t.Errorf("journey progress = %v, want 0.5", p)
	}
	if p, _ := tr.Progress("display"); p != 0 {
		t.Errorf("display progress = %v, want 0", p)
	}

	tr.SetPosition(3.5)
	if p, _ := tr.Progress("journey"); p != 1 {
		t.Errorf("journey progress = %v, want 1", p)
	}
	if _, err := tr.Progress("missing"); !errors.Is(err, ErrUnknownSection) {
		t.Errorf("Progress(missing) error = %v, want ErrUnknownSection", err)
	}
}

func TestSubscribersOnlySeeChanges(t *testing.T) {
	tr := newTestTracker(t)

	var journey, display []float32
	if _, err := tr.Subscribe("journey", func(p float32) { journey = append(journey, p) }); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.Subscribe("display", func(p float32) { display = append(display, p) }); err != nil {
		t.Fatal(err)
	}

	tr.SetPosition(0.5)
	tr.SetPosition(1)
	tr.SetPosition(2.5)

	want := []float32{0.25, 0.5, 1}
	if len(journey) != len(want) {
		t.Fatalf("journey updates = %v, want %v", journey, want)
	}
	for i := range want {
		if journey[i] != want[i] {
			t.Errorf("journey[%d] = %v, want %v", i, journey[i], want[i])
		}
	}
	if len(display) != 1 || display[0] != 0.5 {
		t.Errorf("display updates = %v, want [0.5]", display)
	}
}

func TestRefreshDeliversCurrentValues(t *testing.T) {
	tr := newTestTracker(t)

	var got []float32
	if _, err := tr.Subscribe("journey", func(p float32) { got = append(got, p) }); err != nil {
		t.Fatal(err)
	}
	tr.Refresh()
	tr.Refresh()

	if len(got) != 2 || got[0] != 0 || got[1] != 0 {
		t.Errorf("Refresh deliveries = %v, want [0 0]", got)
	}
}

func TestUnsubscribe(t *testing.T) {
	tr := newTestTracker(t)

	calls := 0
	cancel, err := tr.Subscribe("journey", func(float32) { calls++ })
	if err != nil {
		t.Fatal(err)
	}
	tr.SetPosition(1)
	cancel()
	cancel()
	tr.SetPosition(1.5)

	if calls != 1 {
		t.Errorf("callback ran %d times, want 1", calls)
	}
}

func TestCallbackMayQueryTracker(t *testing.T) {
	tr := newTestTracker(t)

	var seen float32 = -1
	if _, err := tr.Subscribe("journey", func(float32) { seen = tr.Position() }); err != nil {
		t.Fatal(err)
	}
	tr.SetPosition(1)

	if seen != 1 {
		t.Errorf("position seen from callback = %v, want 1", seen)
	}
}

func TestSectionSource(t *testing.T) {
	tr := newTestTracker(t)
	src, err := tr.Source("display")
	if err != nil {
		t.Fatal(err)
	}
	tr.SetPosition(2.5)

	if p := src.Progress(); p != 0.5 {
		t.Errorf("Progress() = %v, want 0.5", p)
	}
	if _, err := tr.Source("missing"); !errors.Is(err, ErrUnknownSection) {
		t.Errorf("Source(missing) error = %v, want ErrUnknownSection", err)
	}
}
