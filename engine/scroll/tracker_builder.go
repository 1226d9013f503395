package scroll

// TrackerBuilderOption is a functional option for configuring a Tracker.
type TrackerBuilderOption func(*trackerImpl)

// WithLength sets the scrollable page length. Defaults to 1.
//
// Parameters:
//   - length: page length in page units
//
// Returns:
//   - TrackerBuilderOption: option function to apply
func WithLength(length float32) TrackerBuilderOption {
	return func(t *trackerImpl) {
		t.length = length
	}
}

// WithStep sets the distance moved by one wheel notch. Defaults to 0.1.
//
// Parameters:
//   - step: step size in page units
//
// Returns:
//   - TrackerBuilderOption: option function to apply
func WithStep(step float32) TrackerBuilderOption {
	return func(t *trackerImpl) {
		t.step = step
	}
}

// WithSection registers a named trigger section.
//
// Parameters:
//   - name: unique section name
//   - start: page position where progress begins
//   - end: page position where progress reaches 1
//
// Returns:
//   - TrackerBuilderOption: option function to apply
func WithSection(name string, start, end float32) TrackerBuilderOption {
	return func(t *trackerImpl) {
		t.sections = append(t.sections, Section{Name: name, Start: start, End: end})
	}
}
