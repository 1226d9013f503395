package common

import (
	"math"
	"testing"
)

func TestPoseLerp(t *testing.T) {
	a := NewPose(0, 0, 0, 1, 1, 1)
	b := NewPose(10, -4, 2, 3, 1, -1)

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); !got.ApproxEqual(b) {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	want := NewPose(5, -2, 1, 2, 1, 0)
	if got := a.Lerp(b, 0.5); !got.ApproxEqual(want) {
		t.Errorf("Lerp(0.5) = %v, want %v", got, want)
	}
}

func TestPoseApproxEqual(t *testing.T) {
	a := NewPose(1, 2, 3, 4, 5, 6)
	if !a.ApproxEqual(NewPose(1, 2, 3+PoseEpsilon/2, 4, 5, 6)) {
		t.Error("poses within epsilon compared unequal")
	}
	if a.ApproxEqual(NewPose(1, 2, 3, 4, 5, 6.01)) {
		t.Error("targets 0.01 apart compared equal")
	}
}

func TestClamp01(t *testing.T) {
	nan := float32(math.NaN())
	tests := []struct {
		in, want float32
	}{
		{-1, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{7, 1},
		{nan, 0},
		{float32(math.Inf(1)), 1},
		{float32(math.Inf(-1)), 0},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "outQuad", "linear"); got != "outQuad" {
		t.Errorf("Coalesce = %q, want outQuad", got)
	}
	if got := Coalesce(0, 0); got != 0 {
		t.Errorf("Coalesce of zeros = %v, want 0", got)
	}
}

func TestLoggerDefaultsToSilent(t *testing.T) {
	if Logger() == nil {
		t.Fatal("Logger() returned nil")
	}
	SetLogger(nil)
	if Logger().Enabled(t.Context(), 12) {
		t.Error("default logger is enabled")
	}
}
