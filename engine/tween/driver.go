// Package tween drives pose animations. Each tween animates a whole common.Pose
// (position and target together) and reports its progress as discrete events
// returned from Advance instead of invoking callbacks.
package tween

import (
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// EventKind identifies what happened to a tween during an Advance call.
type EventKind int

const (
	// EventProgressed is emitted once per Advance for every running tween, carrying the new pose.
	EventProgressed EventKind = iota
	// EventCompleted is emitted exactly once, right after the final EventProgressed.
	EventCompleted
)

func (k EventKind) String() string {
	switch k {
	case EventProgressed:
		return "progressed"
	case EventCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Event is a discrete tween notification.
type Event struct {
	Kind     EventKind
	Handle   *Handle
	Tag      string
	Pose     common.Pose
	Progress float32 // eased fraction of the way from the start pose to the end pose
}

// ProgressSource supplies an external normalized progress, typically a scroll section.
type ProgressSource interface {
	Progress() float32
}

type driverImpl struct {
	mu *sync.Mutex

	tweens []*Handle
	paused bool
	nextID uint64

	defaultDuration float32
	defaultEasing   ease.TweenFunc
}

// Driver owns running pose tweens and advances them from the frame loop.
// It is not tied to wall-clock time: callers pass the elapsed seconds to Advance.
type Driver interface {
	// Start begins a tween from one pose to another.
	//
	// Parameters:
	//   - from: the starting pose
	//   - to: the destination pose
	//   - options: duration, easing, scroll binding and tag
	//
	// Returns:
	//   - *Handle: a handle used to cancel or inspect the tween
	Start(from, to common.Pose, options ...TweenOption) *Handle

	// Advance moves every running tween forward by dt seconds.
	// Cancelled tweens are dropped without events. While paused nothing advances.
	//
	// Parameters:
	//   - dt: elapsed seconds since the previous Advance
	//
	// Returns:
	//   - []Event: events in tween start order
	Advance(dt float32) []Event

	// CancelAll cancels every running tween.
	CancelAll()

	// Pause stops time from advancing for all tweens.
	Pause()

	// Resume lets time advance again after Pause.
	Resume()

	// Paused reports whether the driver is paused.
	//
	// Returns:
	//   - bool: true while paused
	Paused() bool

	// Active returns the number of tweens that are neither cancelled nor completed.
	//
	// Returns:
	//   - int: count of running tweens
	Active() int
}

var _ Driver = &driverImpl{}

// NewDriver creates a Driver with no running tweens.
//
// Parameters:
//   - options: functional options for driver defaults
//
// Returns:
//   - Driver: the new driver
func NewDriver(options ...DriverBuilderOption) Driver {
	d := &driverImpl{
		mu:              &sync.Mutex{},
		defaultDuration: 1,
		defaultEasing:   ease.Linear,
	}
	for _, option := range options {
		option(d)
	}
	return d
}

func (d *driverImpl) Start(from, to common.Pose, options ...TweenOption) *Handle {
	d.mu.Lock()
	defer d.mu.Unlock()

	h := &Handle{
		id:       d.nextID,
		from:     from,
		to:       to,
		duration: d.defaultDuration,
		easing:   d.defaultEasing,
	}
	d.nextID++
	for _, option := range options {
		option(h)
	}
	if h.duration < 0 {
		h.duration = 0
	}
	if h.easing == nil {
		h.easing = ease.Linear
	}
	h.tween = gween.New(0, 1, h.duration, h.easing)
	if h.source != nil {
		h.sourceStart = common.Clamp01(h.source.Progress())
	}

	d.tweens = append(d.tweens, h)
	return h
}

func (d *driverImpl) Advance(dt float32) []Event {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.paused {
		return nil
	}

	var events []Event
	running := d.tweens[:0]
	for _, h := range d.tweens {
		if h.cancelled.Load() {
			continue
		}
		fraction, finished := h.step(dt)
		pose := h.from.Lerp(h.to, fraction)
		if finished {
			// land exactly on the destination regardless of float rounding
			pose, fraction = h.to, 1
		}
		events = append(events, Event{
			Kind:     EventProgressed,
			Handle:   h,
			Tag:      h.tag,
			Pose:     pose,
			Progress: fraction,
		})
		if finished {
			h.done.Store(true)
			events = append(events, Event{
				Kind:     EventCompleted,
				Handle:   h,
				Tag:      h.tag,
				Pose:     h.to,
				Progress: 1,
			})
			continue
		}
		running = append(running, h)
	}
	for i := len(running); i < len(d.tweens); i++ {
		d.tweens[i] = nil
	}
	d.tweens = running
	return events
}

func (d *driverImpl) CancelAll() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, h := range d.tweens {
		h.cancelled.Store(true)
	}
	d.tweens = nil
}

func (d *driverImpl) Pause() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.paused = true
}

func (d *driverImpl) Resume() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.paused = false
}

func (d *driverImpl) Paused() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.paused
}

func (d *driverImpl) Active() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, h := range d.tweens {
		if !h.cancelled.Load() && !h.done.Load() {
			n++
		}
	}
	return n
}

// Handle refers to a single tween started by a Driver.
type Handle struct {
	id  uint64
	tag string

	from     common.Pose
	to       common.Pose
	duration float32
	easing   ease.TweenFunc
	tween    *gween.Tween
	elapsed  float32

	source      ProgressSource
	sourceStart float32

	cancelled atomic.Bool
	done      atomic.Bool
}

// step advances the handle's clock and returns the eased fraction.
// A scroll-bound tween runs at whichever is further along: its own clock or the
// source's progress since the tween started.
func (h *Handle) step(dt float32) (float32, bool) {
	h.elapsed += dt
	t := h.elapsed
	if h.source != nil && h.sourceStart < 1 {
		scrolled := (common.Clamp01(h.source.Progress()) - h.sourceStart) / (1 - h.sourceStart)
		if st := scrolled * h.duration; st > t {
			t = st
		}
	}
	return h.tween.Set(t)
}

// ID returns the driver-unique identifier of the tween.
func (h *Handle) ID() uint64 { return h.id }

// Tag returns the label given with WithTag.
func (h *Handle) Tag() string { return h.tag }

// To returns the destination pose.
func (h *Handle) To() common.Pose { return h.to }

// ScrollBound reports whether the tween follows a progress source.
func (h *Handle) ScrollBound() bool { return h.source != nil }

// Cancel stops the tween. No further events are emitted for it. Safe to call more than once.
func (h *Handle) Cancel() {
	h.cancelled.Store(true)
}

// Cancelled reports whether Cancel was called.
func (h *Handle) Cancelled() bool { return h.cancelled.Load() }

// Done reports whether the tween ran to completion.
func (h *Handle) Done() bool { return h.done.Load() }
