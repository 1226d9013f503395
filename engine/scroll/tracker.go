// Package scroll tracks a virtual page position and maps it onto named trigger
// sections, each producing a normalized progress value in [0, 1].
package scroll

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrUnknownSection is returned when a section name has not been registered.
	ErrUnknownSection = errors.New("scroll: unknown section")

	// ErrInvalidSection is returned when a section's range is empty or lies outside the page.
	ErrInvalidSection = errors.New("scroll: invalid section")
)

// Section is a named region of the page. Progress through it is 0 while the page
// position is at or before Start and 1 at or after End.
type Section struct {
	Name  string
	Start float32
	End   float32
}

// progressAt returns the normalized progress of pos through the section.
func (s Section) progressAt(pos float32) float32 {
	return common.Clamp01((pos - s.Start) / (s.End - s.Start))
}

// ProgressFunc receives the new progress of a section whenever it changes.
type ProgressFunc func(progress float32)

type subscription struct {
	id int
	fn ProgressFunc
}

type trackerImpl struct {
	mu *sync.Mutex

	position float32
	length   float32
	step     float32

	sections []Section
	index    map[string]int
	last     []float32
	subs     map[string][]subscription
	nextID   int
}

// Tracker is the scroll/trigger binding: it owns the page position and notifies
// per-section subscribers whenever a section's progress changes.
// Callbacks run synchronously on the goroutine that moved the page, after the
// tracker's lock is released, so a callback may query the tracker.
type Tracker interface {
	// Position returns the current page position in page units.
	//
	// Returns:
	//   - float32: position in [0, Length()]
	Position() float32

	// Length returns the scrollable page length.
	//
	// Returns:
	//   - float32: page length in page units
	Length() float32

	// Step returns the distance moved by one wheel notch.
	//
	// Returns:
	//   - float32: the step size in page units
	Step() float32

	// Scroll moves the page by delta, clamped to the page bounds.
	//
	// Parameters:
	//   - delta: signed distance in page units; positive scrolls down the page
	//
	// Returns:
	//   - bool: true if the position changed
	Scroll(delta float32) bool

	// SetPosition jumps the page to pos, clamped to the page bounds.
	//
	// Parameters:
	//   - pos: the new position in page units
	//
	// Returns:
	//   - bool: true if the position changed
	SetPosition(pos float32) bool

	// Progress returns the current progress through the named section.
	//
	// Parameters:
	//   - name: the section name
	//
	// Returns:
	//   - float32: progress in [0, 1]
	//   - error: ErrUnknownSection if the section does not exist
	Progress(name string) (float32, error)

	// Subscribe registers fn to receive progress changes for the named section.
	// fn is not invoked at registration; call Refresh to deliver the current values.
	//
	// Parameters:
	//   - name: the section name
	//   - fn: the callback
	//
	// Returns:
	//   - func(): removes the subscription
	//   - error: ErrUnknownSection if the section does not exist
	Subscribe(name string, fn ProgressFunc) (func(), error)

	// Source returns a pull-style view of a single section's progress.
	//
	// Parameters:
	//   - name: the section name
	//
	// Returns:
	//   - *SectionSource: reads the section's current progress on demand
	//   - error: ErrUnknownSection if the section does not exist
	Source(name string) (*SectionSource, error)

	// Sections returns a copy of the registered sections in registration order.
	//
	// Returns:
	//   - []Section: the sections
	Sections() []Section

	// Refresh delivers the current progress of every section to its subscribers,
	// whether or not it changed. Used on initial layout.
	Refresh()
}

var _ Tracker = &trackerImpl{}

// NewTracker creates a Tracker positioned at the top of the page.
//
// Parameters:
//   - options: functional options configuring length, step and sections
//
// Returns:
//   - Tracker: the tracker
//   - error: ErrInvalidSection (wrapped) for a malformed or duplicate section
func NewTracker(options ...TrackerBuilderOption) (Tracker, error) {
	t := &trackerImpl{
		mu:     &sync.Mutex{},
		length: 1,
		step:   0.1,
		index:  make(map[string]int),
		subs:   make(map[string][]subscription),
	}
	for _, option := range options {
		option(t)
	}

	if t.length <= 0 {
		return nil, fmt.Errorf("%w: page length %v must be positive", ErrInvalidSection, t.length)
	}
	t.last = make([]float32, len(t.sections))
	for i, s := range t.sections {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: section %d has no name", ErrInvalidSection, i)
		}
		if _, dup := t.index[s.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate section %q", ErrInvalidSection, s.Name)
		}
		if s.Start < 0 || s.End > t.length || s.End <= s.Start {
			return nil, fmt.Errorf("%w: section %q range [%v, %v] outside page [0, %v]",
				ErrInvalidSection, s.Name, s.Start, s.End, t.length)
		}
		t.index[s.Name] = i
		t.last[i] = s.progressAt(t.position)
	}
	return t, nil
}

func (t *trackerImpl) Position() float32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.position
}

func (t *trackerImpl) Length() float32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.length
}

func (t *trackerImpl) Step() float32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.step
}

func (t *trackerImpl) Scroll(delta float32) bool {
	t.mu.Lock()
	pos := t.position + delta
	t.mu.Unlock()
	return t.SetPosition(pos)
}

func (t *trackerImpl) SetPosition(pos float32) bool {
	t.mu.Lock()
	pos = mgl32.Clamp(pos, 0, t.length)
	if pos == t.position {
		t.mu.Unlock()
		return false
	}
	t.position = pos
	pending := t.collect(false)
	t.mu.Unlock()

	pending.deliver()
	return true
}

func (t *trackerImpl) Progress(name string) (float32, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	i, ok := t.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}
	return t.sections[i].progressAt(t.position), nil
}

func (t *trackerImpl) Subscribe(name string, fn ProgressFunc) (func(), error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.index[name]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}
	id := t.nextID
	t.nextID++
	t.subs[name] = append(t.subs[name], subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			subs := t.subs[name]
			for i, s := range subs {
				if s.id == id {
					t.subs[name] = append(subs[:i:i], subs[i+1:]...)
					return
				}
			}
		})
	}, nil
}

func (t *trackerImpl) Source(name string) (*SectionSource, error) {
	if _, err := t.Progress(name); err != nil {
		return nil, err
	}
	return &SectionSource{tracker: t, name: name}, nil
}

func (t *trackerImpl) Sections() []Section {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Section, len(t.sections))
	copy(out, t.sections)
	return out
}

func (t *trackerImpl) Refresh() {
	t.mu.Lock()
	pending := t.collect(true)
	t.mu.Unlock()
	pending.deliver()
}

type notification struct {
	fn       ProgressFunc
	progress float32
}

type notifications []notification

func (n notifications) deliver() {
	for _, item := range n {
		item.fn(item.progress)
	}
}

// collect gathers the callbacks to run for the current position. When force is
// false only sections whose progress changed are included.
// Caller must hold the mutex.
func (t *trackerImpl) collect(force bool) notifications {
	var out notifications
	for i, s := range t.sections {
		p := s.progressAt(t.position)
		if !force && p == t.last[i] {
			continue
		}
		t.last[i] = p
		for _, sub := range t.subs[s.Name] {
			out = append(out, notification{fn: sub.fn, progress: p})
		}
	}
	return out
}

// SectionSource reads one section's progress on demand. It satisfies the tween
// package's progress source contract for scroll-bound tweens.
type SectionSource struct {
	tracker *trackerImpl
	name    string
}

// Progress returns the section's current progress, or 0 if the section vanished.
//
// Returns:
//   - float32: progress in [0, 1]
func (s *SectionSource) Progress() float32 {
	p, err := s.tracker.Progress(s.name)
	if err != nil {
		return 0
	}
	return p
}

// Name returns the section this source reads.
//
// Returns:
//   - string: the section name
func (s *SectionSource) Name() string {
	return s.name
}
