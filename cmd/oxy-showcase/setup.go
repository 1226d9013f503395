package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Carmen-Shannon/oxy-showcase/config"
	"github.com/Carmen-Shannon/oxy-showcase/engine/device"
	"github.com/Carmen-Shannon/oxy-showcase/engine/scroll"
	"github.com/Carmen-Shannon/oxy-showcase/engine/viewer"
)

// parseCompact reads the -compact flag. A nil result means the display decides.
func parseCompact(mode string) (*bool, error) {
	switch strings.ToLower(mode) {
	case "", "auto":
		return nil, nil
	case "true", "yes", "1":
		v := true
		return &v, nil
	case "false", "no", "0":
		v := false
		return &v, nil
	}
	return nil, fmt.Errorf("invalid -compact value %q: want auto, true or false", mode)
}

// newClassifier returns a fixed classifier when the device class is forced and a
// display-metrics classifier otherwise.
func newClassifier(mode string, display device.DisplayMetricsSource, d config.Device) (device.Classifier, error) {
	forced, err := parseCompact(mode)
	if err != nil {
		return nil, err
	}
	if forced != nil {
		return device.Static(*forced), nil
	}
	return device.NewDisplayClassifier(display,
		device.WithCompactMaxWidth(d.CompactMaxWidth),
		device.WithCompactMaxPhysicalWidth(d.CompactMaxPhysicalWidthMM),
		device.WithTouch(d.Touch),
	), nil
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid -log-level: %w", err)
	}
	return level, nil
}

func trackerOptions(s config.Scroll) []scroll.TrackerBuilderOption {
	options := []scroll.TrackerBuilderOption{
		scroll.WithLength(s.PageLength),
		scroll.WithStep(s.Step),
	}
	for _, section := range s.Sections {
		options = append(options, scroll.WithSection(section.Name, section.Start, section.End))
	}
	return options
}

// startSession initializes the session, lays the title out for the resolved device class
// and delivers the current page progress.
func startSession(session *viewer.ViewerSession, presenter *titlePresenter, tracker scroll.Tracker) error {
	if err := session.Init(); err != nil {
		return err
	}
	presenter.SetCompact(session.Profile().Compact)
	tracker.Refresh()
	return nil
}
