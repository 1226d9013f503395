package tween

import "github.com/tanema/gween/ease"

// DriverBuilderOption is a functional option for configuring a Driver.
type DriverBuilderOption func(*driverImpl)

// WithDefaultDuration sets the duration used by tweens started without WithDuration.
//
// Parameters:
//   - seconds: the default duration
//
// Returns:
//   - DriverBuilderOption: option function to apply
func WithDefaultDuration(seconds float32) DriverBuilderOption {
	return func(d *driverImpl) {
		d.defaultDuration = seconds
	}
}

// WithDefaultEasing sets the easing used by tweens started without WithEasing.
//
// Parameters:
//   - easing: the default easing function
//
// Returns:
//   - DriverBuilderOption: option function to apply
func WithDefaultEasing(easing ease.TweenFunc) DriverBuilderOption {
	return func(d *driverImpl) {
		d.defaultEasing = easing
	}
}

// TweenOption configures a single tween passed to Driver.Start.
type TweenOption func(*Handle)

// WithDuration sets the tween duration in seconds. A zero duration completes on the next Advance.
//
// Parameters:
//   - seconds: the duration
//
// Returns:
//   - TweenOption: option function to apply
func WithDuration(seconds float32) TweenOption {
	return func(h *Handle) {
		h.duration = seconds
	}
}

// WithEasing sets the easing function applied to the tween's fraction.
//
// Parameters:
//   - easing: a gween/ease function
//
// Returns:
//   - TweenOption: option function to apply
func WithEasing(easing ease.TweenFunc) TweenOption {
	return func(h *Handle) {
		h.easing = easing
	}
}

// WithScrollBinding couples the tween to an external progress source. Scrubbing the
// source forward pushes the tween forward; the tween still finishes on its own clock.
//
// Parameters:
//   - source: the progress source, usually a scroll section
//
// Returns:
//   - TweenOption: option function to apply
func WithScrollBinding(source ProgressSource) TweenOption {
	return func(h *Handle) {
		h.source = source
	}
}

// WithTag labels the tween so event consumers can tell tweens apart.
//
// Parameters:
//   - tag: the label
//
// Returns:
//   - TweenOption: option function to apply
func WithTag(tag string) TweenOption {
	return func(h *Handle) {
		h.tag = tag
	}
}
