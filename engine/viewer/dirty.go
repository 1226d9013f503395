package viewer

// DirtyLatch records that the camera pose changed since the last frame applied it.
// The zero value is clear. A latch belongs to one session and is only touched from
// the frame loop goroutine.
type DirtyLatch struct {
	dirty bool
}

// MarkDirty sets the latch. Repeated calls before the next consume have no further effect.
func (l *DirtyLatch) MarkDirty() {
	l.dirty = true
}

// IsDirty reports whether a pose is waiting to be applied.
func (l *DirtyLatch) IsDirty() bool {
	return l.dirty
}

// ConsumeIfDirty runs apply and clears the latch if it is set, otherwise it does nothing.
// The latch is cleared even if apply panics so the latch never falls out of step with
// the frame loop; the panic itself propagates to the caller.
//
// Parameters:
//   - apply: pushes the pending pose to the engine; may be nil
//
// Returns:
//   - bool: true if the latch was set and apply ran
func (l *DirtyLatch) ConsumeIfDirty(apply func()) bool {
	if !l.dirty {
		return false
	}
	defer func() { l.dirty = false }()
	if apply != nil {
		apply()
	}
	return true
}
