package viewer

import (
	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/config"
	"github.com/Carmen-Shannon/oxy-showcase/engine/tween"
	"github.com/tanema/gween/ease"
)

// SessionOption is a functional option for configuring a ViewerSession.
type SessionOption func(*ViewerSession)

// WithPresenter sets the presenter that receives layout changes.
//
// Parameters:
//   - p: the presenter
//
// Returns:
//   - SessionOption: option function to apply
func WithPresenter(p Presenter) SessionOption {
	return func(s *ViewerSession) {
		if p != nil {
			s.presenter = p
		}
	}
}

// WithInspection sets the pose, duration and easing of the enter tween.
//
// Parameters:
//   - pose: the inspection pose
//   - duration: tween length in seconds
//   - easing: the easing function; nil keeps the default
//
// Returns:
//   - SessionOption: option function to apply
func WithInspection(pose common.Pose, duration float32, easing ease.TweenFunc) SessionOption {
	return func(s *ViewerSession) {
		s.inspection = pose
		s.enterDuration = duration
		if easing != nil {
			s.enterEasing = easing
		}
	}
}

// WithExitEasing sets the duration and easing of the exit tween.
//
// Parameters:
//   - duration: tween length in seconds when the page is not scrolled
//   - easing: the easing function; nil keeps the default
//
// Returns:
//   - SessionOption: option function to apply
func WithExitEasing(duration float32, easing ease.TweenFunc) SessionOption {
	return func(s *ViewerSession) {
		s.exitDuration = duration
		if easing != nil {
			s.exitEasing = easing
		}
	}
}

// WithExitBinding couples the exit tween to a scroll section.
//
// Parameters:
//   - source: progress of the section that drives the exit tween
//
// Returns:
//   - SessionOption: option function to apply
func WithExitBinding(source tween.ProgressSource) SessionOption {
	return func(s *ViewerSession) {
		s.exitSource = source
	}
}

// WithWriteHook installs a function called after every accepted pose write.
//
// Parameters:
//   - hook: the instrumentation callback
//
// Returns:
//   - SessionOption: option function to apply
func WithWriteHook(hook func(WriteEvent)) SessionOption {
	return func(s *ViewerSession) {
		s.writeHook = hook
	}
}

// WithDriver replaces the session's tween driver.
//
// Parameters:
//   - d: the driver
//
// Returns:
//   - SessionOption: option function to apply
func WithDriver(d tween.Driver) SessionOption {
	return func(s *ViewerSession) {
		if d != nil {
			s.driver = d
		}
	}
}

// OptionsFromConfig turns the preview section of a configuration into session options.
// The exit scroll binding is not included because it needs a live scroll tracker.
//
// Parameters:
//   - p: the preview configuration
//
// Returns:
//   - []SessionOption: inspection and exit tween options
//   - error: config.ErrInvalidConfig (wrapped) for unknown easing names
func OptionsFromConfig(p config.Preview) ([]SessionOption, error) {
	enter, err := config.Easing(p.Easing)
	if err != nil {
		return nil, err
	}
	exit, err := config.Easing(p.ExitEasing)
	if err != nil {
		return nil, err
	}
	return []SessionOption{
		WithInspection(p.Inspection, p.Duration, enter),
		WithExitEasing(p.ExitDuration, exit),
	}, nil
}
