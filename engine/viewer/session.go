// Package viewer coordinates the camera of a scroll-driven model viewer. A ViewerSession
// owns the camera pose and decides which producer may write it: the scroll timeline while
// idle, the enter tween while previewing and the scroll-bound exit tween while exiting.
// Writes only mark a dirty latch; the pose reaches the engine once per frame.
package viewer

import (
	"fmt"
	"runtime/debug"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/device"
	"github.com/Carmen-Shannon/oxy-showcase/engine/tween"
	"github.com/tanema/gween/ease"
)

const (
	// DefaultPreviewDuration is the length of the enter and exit tweens in seconds.
	DefaultPreviewDuration float32 = 2

	enterTag = "preview-enter"
	exitTag  = "preview-exit"
)

// DefaultInspectionPose is where the enter tween takes the camera unless configured otherwise.
var DefaultInspectionPose = common.NewPose(13, -2.01, 2.29, 0.11, 0, 0)

// ViewerSession holds everything one viewer instance needs: the camera binding, the
// resolved device profile, the timeline, the preview state and the dirty latch.
// A session is driven from a single goroutine (the frame loop and its input callbacks)
// and is not safe for concurrent use.
type ViewerSession struct {
	binding    CameraBinding
	resolver   *ProfileResolver
	classifier device.Classifier
	presenter  Presenter
	driver     tween.Driver

	inspection    common.Pose
	enterDuration float32
	enterEasing   ease.TweenFunc
	exitDuration  float32
	exitEasing    ease.TweenFunc
	exitSource    tween.ProgressSource
	writeHook     func(WriteEvent)

	initialized bool
	profile     DeviceProfile
	timeline    *Timeline
	state       PreviewState
	pose        common.Pose
	latch       DirtyLatch

	lastProgress    float32
	hasLastProgress bool

	active       *tween.Handle
	activeWriter PoseWriter

	frame   uint64
	inFrame bool
}

// NewSession creates a session. Nothing touches the camera until Init.
//
// Parameters:
//   - binding: the engine camera binding
//   - resolver: the device profile resolver
//   - classifier: the device classifier queried once by Init; nil selects the full-size profile
//   - options: presenter, tween and instrumentation options
//
// Returns:
//   - *ViewerSession: the session
func NewSession(binding CameraBinding, resolver *ProfileResolver, classifier device.Classifier, options ...SessionOption) *ViewerSession {
	s := &ViewerSession{
		binding:       binding,
		resolver:      resolver,
		classifier:    classifier,
		presenter:     NopPresenter{},
		inspection:    DefaultInspectionPose,
		enterDuration: DefaultPreviewDuration,
		enterEasing:   ease.OutQuad,
		exitDuration:  DefaultPreviewDuration,
		exitEasing:    ease.OutQuad,
	}
	for _, option := range options {
		option(s)
	}
	if s.driver == nil {
		s.driver = tween.NewDriver()
	}
	return s
}

// Init resolves the device profile, validates its timeline and places the camera at the
// profile's initial pose with user controls disabled and the idle layout presented.
//
// Returns:
//   - error: ErrAlreadyInitialized on a second call, ErrNotInitialized (wrapped) when the
//     binding or resolver is missing, ErrInvalidKeyframes (wrapped) for a bad profile
func (s *ViewerSession) Init() error {
	if s.initialized {
		return ErrAlreadyInitialized
	}
	if s.binding == nil {
		return fmt.Errorf("%w: no camera binding", ErrNotInitialized)
	}
	if s.resolver == nil {
		return fmt.Errorf("%w: no profile resolver", ErrNotInitialized)
	}

	profile := s.resolver.Resolve(s.classifier)
	timeline, err := NewTimeline(profile.Keyframes)
	if err != nil {
		return fmt.Errorf("%s profile: %w", profile.Name(), err)
	}

	s.profile = profile
	s.timeline = timeline
	s.state = PreviewIdle
	s.initialized = true

	s.binding.SetUserControlsEnabled(false)
	s.presentIdle()
	s.write(WriterInit, profile.InitialPose)

	common.Logger().Info("viewer initialized", "profile", profile.Name(), "pose", profile.InitialPose)
	return nil
}

// OnScroll feeds normalized scroll progress to the timeline. Progress is clamped to
// [0, 1]. Calls are ignored before Init and outside Idle, and a repeat of the last
// applied progress does nothing. Never panics.
//
// Parameters:
//   - progress: the timeline section's scroll progress
func (s *ViewerSession) OnScroll(progress float32) {
	if !s.initialized {
		common.Logger().Debug("scroll before init ignored", "progress", progress)
		return
	}
	defer s.recoverCallback("scroll")

	p := common.Clamp01(progress)
	if s.state != PreviewIdle {
		common.Logger().Debug("scroll ignored", "state", s.state, "progress", p)
		return
	}
	if s.hasLastProgress && p == s.lastProgress {
		return
	}
	s.lastProgress = p
	s.hasLastProgress = true
	s.write(WriterTimeline, s.timeline.Sample(p))
}

// EnterPreview hands the camera to the user: the foreground is hidden, the canvas becomes
// interactive, user orbit is enabled and the camera tweens to the inspection pose.
// A running exit tween is cancelled first. Calling it while already previewing does nothing.
//
// Returns:
//   - error: ErrNotInitialized before Init
func (s *ViewerSession) EnterPreview() error {
	if !s.initialized {
		return ErrNotInitialized
	}
	if s.state == PreviewPreviewing {
		common.Logger().Debug("enter preview ignored", "state", s.state)
		return nil
	}

	from := s.currentPose()
	s.cancelActive()
	s.transition(PreviewPreviewing)

	s.presenter.SetForegroundVisible(false)
	s.presenter.SetCanvasInteractive(true)
	s.presenter.SetExitAffordanceVisible(true)
	s.binding.SetUserControlsEnabled(true)

	s.active = s.driver.Start(from, s.inspection,
		tween.WithDuration(s.enterDuration),
		tween.WithEasing(s.enterEasing),
		tween.WithTag(enterTag),
	)
	s.activeWriter = WriterEnterTween
	return nil
}

// ExitPreview returns the camera to scroll control: the canvas becomes inert, the
// foreground reappears, user orbit is disabled and the camera tweens to the profile's
// exit pose, scroll-bound when an exit binding is configured. Once the tween completes
// the session is Idle again. Calling it while not previewing does nothing.
//
// Returns:
//   - error: ErrNotInitialized before Init
func (s *ViewerSession) ExitPreview() error {
	if !s.initialized {
		return ErrNotInitialized
	}
	if s.state != PreviewPreviewing {
		common.Logger().Debug("exit preview ignored", "state", s.state)
		return nil
	}

	from := s.currentPose()
	s.cancelActive()
	s.transition(PreviewExiting)

	s.presenter.SetCanvasInteractive(false)
	s.presenter.SetForegroundVisible(true)
	s.presenter.SetExitAffordanceVisible(false)
	s.binding.SetUserControlsEnabled(false)

	options := []tween.TweenOption{
		tween.WithDuration(s.exitDuration),
		tween.WithEasing(s.exitEasing),
		tween.WithTag(exitTag),
	}
	if s.exitSource != nil {
		options = append(options, tween.WithScrollBinding(s.exitSource))
	}
	s.active = s.driver.Start(from, s.profile.ExitPose, options...)
	s.activeWriter = WriterExitTween
	return nil
}

// Frame runs once per engine frame: it advances tweens, reacts to their events and, if
// the pose changed, pushes it through the binding. Panics from collaborators are
// recovered and logged, and the tick degrades to a no-op.
//
// Parameters:
//   - dt: seconds since the previous frame
func (s *ViewerSession) Frame(dt float32) {
	if !s.initialized {
		return
	}
	s.frame++
	s.inFrame = true
	defer func() { s.inFrame = false }()
	defer s.recoverCallback("frame")

	for _, ev := range s.driver.Advance(dt) {
		s.handleTweenEvent(ev)
	}
	s.latch.ConsumeIfDirty(s.applyPose)
}

// SetVisible pauses running tweens while the viewer is hidden and resumes them when it
// becomes visible again.
//
// Parameters:
//   - visible: whether the viewer is on screen
func (s *ViewerSession) SetVisible(visible bool) {
	if visible == !s.driver.Paused() {
		return
	}
	if visible {
		s.driver.Resume()
	} else {
		s.driver.Pause()
	}
	common.Logger().Debug("viewer visibility changed", "visible", visible, "tweens", s.driver.Active())
}

// State returns the preview state.
func (s *ViewerSession) State() PreviewState { return s.state }

// Pose returns the coordinator's current pose, which may not have reached the camera yet.
func (s *ViewerSession) Pose() common.Pose { return s.pose }

// Profile returns the resolved device profile. It is the zero value before Init.
func (s *ViewerSession) Profile() DeviceProfile { return s.profile }

// Timeline returns the scroll timeline, or nil before Init.
func (s *ViewerSession) Timeline() *Timeline { return s.timeline }

// Dirty reports whether a pose write is waiting for the next frame.
func (s *ViewerSession) Dirty() bool { return s.latch.IsDirty() }

// Initialized reports whether Init succeeded.
func (s *ViewerSession) Initialized() bool { return s.initialized }

// Frames returns the number of Frame calls processed since Init.
func (s *ViewerSession) Frames() uint64 { return s.frame }

// write stores pose if writer owns the pose in the current state and marks the latch.
// WriterInit is accepted only while the session is idle and no tween is active.
func (s *ViewerSession) write(writer PoseWriter, pose common.Pose) bool {
	allowed := writer == s.state.owner() || (writer == WriterInit && s.state == PreviewIdle && s.active == nil)
	if !allowed {
		common.Logger().Debug("pose write rejected", "writer", writer, "state", s.state)
		return false
	}
	s.pose = pose
	s.latch.MarkDirty()
	if s.writeHook != nil {
		s.writeHook(WriteEvent{
			Frame:   s.frame,
			InFrame: s.inFrame,
			Writer:  writer,
			State:   s.state,
			Pose:    pose,
		})
	}
	return true
}

func (s *ViewerSession) handleTweenEvent(ev tween.Event) {
	if ev.Handle != s.active {
		return
	}
	switch ev.Kind {
	case tween.EventProgressed:
		s.write(s.activeWriter, ev.Pose)
	case tween.EventCompleted:
		s.active = nil
		if s.state == PreviewExiting {
			s.transition(PreviewIdle)
		}
		common.Logger().Debug("tween completed", "tag", ev.Tag, "state", s.state)
	}
}

func (s *ViewerSession) applyPose() {
	s.binding.SetPose(s.pose)
	s.binding.MarkSceneDirty()
}

// currentPose is the pose a new tween starts from: a write not yet applied wins over
// the camera, otherwise the camera's pose includes any user orbit.
func (s *ViewerSession) currentPose() common.Pose {
	if s.latch.IsDirty() {
		return s.pose
	}
	p := s.binding.Pose()
	s.pose = p
	return p
}

func (s *ViewerSession) cancelActive() {
	if s.active != nil {
		s.active.Cancel()
		s.active = nil
	}
}

// transition changes state. Leaving Idle forgets the last scroll progress so the first
// scroll after returning to Idle resynchronizes the camera.
func (s *ViewerSession) transition(to PreviewState) {
	if s.state == to {
		return
	}
	common.Logger().Info("preview state changed", "from", s.state, "to", to)
	if s.state == PreviewIdle {
		s.hasLastProgress = false
	}
	s.state = to
}

func (s *ViewerSession) presentIdle() {
	s.presenter.SetForegroundVisible(true)
	s.presenter.SetCanvasInteractive(false)
	s.presenter.SetExitAffordanceVisible(false)
}

func (s *ViewerSession) recoverCallback(name string) {
	if r := recover(); r != nil {
		common.Logger().Error("viewer callback panicked",
			"callback", name,
			"panic", r,
			"stack", string(debug.Stack()),
		)
	}
}
