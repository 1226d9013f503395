// Package device decides whether the viewer runs on a compact (handheld or small)
// display or a full-size one.
package device

import (
	"errors"
	"fmt"
)

// ErrUnavailable is returned when a classifier cannot obtain the information it needs.
var ErrUnavailable = errors.New("device: classification unavailable")

// Classifier reports whether the current device is compact.
// Callers treat an error as "unknown" and fall back to the full-size layout.
type Classifier interface {
	// IsCompactDevice classifies the current device.
	//
	// Returns:
	//   - bool: true for compact/handheld devices
	//   - error: non-nil if the device could not be classified
	IsCompactDevice() (bool, error)
}

// DisplayMetrics describes the primary display the viewer runs on.
type DisplayMetrics struct {
	WidthPx          int
	HeightPx         int
	PhysicalWidthMM  int // 0 when the platform does not report it
	PhysicalHeightMM int
}

// DisplayMetricsSource provides metrics of the primary display.
type DisplayMetricsSource interface {
	// PrimaryDisplay returns the current primary display metrics.
	//
	// Returns:
	//   - DisplayMetrics: the display metrics
	//   - error: non-nil if no display is available
	PrimaryDisplay() (DisplayMetrics, error)
}

type displayClassifierImpl struct {
	source DisplayMetricsSource

	compactMaxWidth      int
	compactMaxPhysicalMM int
	touch                bool
}

var _ Classifier = &displayClassifierImpl{}

// NewDisplayClassifier creates a Classifier that combines a touch hint with viewport
// heuristics: a device is compact when it has touch input, when the display is at most
// the compact pixel width, or when its reported physical width is at most the compact
// physical width.
//
// Parameters:
//   - source: the display metrics provider
//   - options: thresholds and touch hint
//
// Returns:
//   - Classifier: the display classifier
func NewDisplayClassifier(source DisplayMetricsSource, options ...ClassifierBuilderOption) Classifier {
	c := &displayClassifierImpl{
		source:               source,
		compactMaxWidth:      1024,
		compactMaxPhysicalMM: 250,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *displayClassifierImpl) IsCompactDevice() (bool, error) {
	if c.touch {
		return true, nil
	}
	if c.source == nil {
		return false, fmt.Errorf("%w: no display metrics source", ErrUnavailable)
	}
	m, err := c.source.PrimaryDisplay()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if m.WidthPx <= 0 {
		return false, fmt.Errorf("%w: display reports width %d", ErrUnavailable, m.WidthPx)
	}
	if m.WidthPx <= c.compactMaxWidth {
		return true, nil
	}
	if m.PhysicalWidthMM > 0 && m.PhysicalWidthMM <= c.compactMaxPhysicalMM {
		return true, nil
	}
	return false, nil
}

// Static is a Classifier with a fixed answer, used when the device class is forced from the command line.
type Static bool

// IsCompactDevice returns the fixed answer.
func (s Static) IsCompactDevice() (bool, error) {
	return bool(s), nil
}
