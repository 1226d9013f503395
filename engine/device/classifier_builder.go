package device

// ClassifierBuilderOption is a functional option for configuring a display classifier.
type ClassifierBuilderOption func(*displayClassifierImpl)

// WithCompactMaxWidth sets the widest display, in pixels, still considered compact.
//
// Parameters:
//   - px: width threshold in pixels
//
// Returns:
//   - ClassifierBuilderOption: option function to apply
func WithCompactMaxWidth(px int) ClassifierBuilderOption {
	return func(c *displayClassifierImpl) {
		c.compactMaxWidth = px
	}
}

// WithCompactMaxPhysicalWidth sets the widest physical display, in millimetres, still
// considered compact. Zero disables the physical check.
//
// Parameters:
//   - mm: width threshold in millimetres
//
// Returns:
//   - ClassifierBuilderOption: option function to apply
func WithCompactMaxPhysicalWidth(mm int) ClassifierBuilderOption {
	return func(c *displayClassifierImpl) {
		c.compactMaxPhysicalMM = mm
	}
}

// WithTouch marks the device as touch-capable, which always classifies it as compact.
//
// Parameters:
//   - touch: true if the primary input is touch
//
// Returns:
//   - ClassifierBuilderOption: option function to apply
func WithTouch(touch bool) ClassifierBuilderOption {
	return func(c *displayClassifierImpl) {
		c.touch = touch
	}
}
