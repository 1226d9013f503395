package window

import "testing"

func TestDragOnlyWhileLeftButtonHeld(t *testing.T) {
	w := &engineWindow{}
	var got [][2]float32
	w.SetDragCallback(func(dx, dy float32) { got = append(got, [2]float32{dx, dy}) })

	w.pointerMoved(10, 10)
	w.pointerButton(true, 10, 10)
	w.pointerMoved(13, 8)
	w.pointerMoved(13, 8)
	w.pointerMoved(15, 9)
	w.pointerButton(false, 15, 9)
	w.pointerMoved(40, 40)

	want := [][2]float32{{3, -2}, {2, 1}}
	if len(got) != len(want) {
		t.Fatalf("drag events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("drag[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestVisibilityFollowsIconify(t *testing.T) {
	w := &engineWindow{}
	var got []bool
	w.SetVisibilityCallback(func(visible bool) { got = append(got, visible) })

	w.focusChanged(false) // alt-tab away: still on screen
	w.setIconified(true)
	w.setIconified(true)
	w.focusChanged(true)
	w.setIconified(false)

	want := []bool{false, true}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("visibility events = %v, want %v", got, want)
	}
}

func TestHidingEndsDrag(t *testing.T) {
	w := &engineWindow{}
	drags := 0
	w.SetDragCallback(func(dx, dy float32) { drags++ })

	w.pointerButton(true, 0, 0)
	w.setIconified(true)
	w.setIconified(false)
	w.pointerMoved(5, 5)

	if drags != 0 {
		t.Fatalf("drag delivered after the window was hidden: %d events", drags)
	}
}

func TestFocusLossEndsDragWithoutHiding(t *testing.T) {
	w := &engineWindow{}
	drags, hidden := 0, 0
	w.SetDragCallback(func(dx, dy float32) { drags++ })
	w.SetVisibilityCallback(func(visible bool) {
		if !visible {
			hidden++
		}
	})

	w.pointerButton(true, 0, 0)
	w.focusChanged(false)
	w.pointerMoved(5, 5)

	if drags != 0 {
		t.Fatalf("drag delivered after focus was lost: %d events", drags)
	}
	if hidden != 0 {
		t.Fatal("losing focus hid the window")
	}
}

func TestWithSizeKeepsDefaultsForNonPositive(t *testing.T) {
	w := &engineWindow{width: 1280, height: 720}
	WithSize(0, 900)(w)
	if w.width != 1280 || w.height != 900 {
		t.Fatalf("size = %dx%d, want 1280x900", w.width, w.height)
	}
}
