package viewer

import "testing"

func TestDirtyLatchStartsClear(t *testing.T) {
	var l DirtyLatch
	ran := false
	if l.ConsumeIfDirty(func() { ran = true }) || ran {
		t.Fatal("fresh latch ran apply")
	}
}

func TestDirtyLatchIsIdempotent(t *testing.T) {
	var l DirtyLatch
	l.MarkDirty()
	l.MarkDirty()
	l.MarkDirty()

	calls := 0
	for range 3 {
		l.ConsumeIfDirty(func() { calls++ })
	}
	if calls != 1 {
		t.Errorf("apply ran %d times, want 1", calls)
	}
	if l.IsDirty() {
		t.Error("latch still set after consume")
	}
}

func TestDirtyLatchClearsWhenApplyPanics(t *testing.T) {
	var l DirtyLatch
	l.MarkDirty()

	func() {
		defer func() {
			if recover() == nil {
				t.Error("panic from apply was swallowed")
			}
		}()
		l.ConsumeIfDirty(func() { panic("camera gone") })
	}()

	if l.IsDirty() {
		t.Error("latch still set after a panicking apply")
	}
}

func TestDirtyLatchNilApply(t *testing.T) {
	var l DirtyLatch
	l.MarkDirty()
	if !l.ConsumeIfDirty(nil) || l.IsDirty() {
		t.Error("nil apply did not consume the latch")
	}
}
