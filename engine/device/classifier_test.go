package device

import (
	"errors"
	"testing"
)

type fakeDisplay struct {
	metrics DisplayMetrics
	err     error
	calls   int
}

func (f *fakeDisplay) PrimaryDisplay() (DisplayMetrics, error) {
	f.calls++
	return f.metrics, f.err
}

func TestDisplayClassifier(t *testing.T) {
	tests := []struct {
		name    string
		metrics DisplayMetrics
		options []ClassifierBuilderOption
		want    bool
	}{
		{"desktop monitor", DisplayMetrics{WidthPx: 2560, HeightPx: 1440, PhysicalWidthMM: 600}, nil, false},
		{"narrow viewport", DisplayMetrics{WidthPx: 800, HeightPx: 1280}, nil, true},
		{"small physical panel", DisplayMetrics{WidthPx: 2560, HeightPx: 1600, PhysicalWidthMM: 180}, nil, true},
		{"unknown physical size", DisplayMetrics{WidthPx: 1920, HeightPx: 1080}, nil, false},
		{"touch hint", DisplayMetrics{WidthPx: 2560}, []ClassifierBuilderOption{WithTouch(true)}, true},
		{"raised width threshold", DisplayMetrics{WidthPx: 1280}, []ClassifierBuilderOption{WithCompactMaxWidth(1366)}, true},
		{"physical check disabled", DisplayMetrics{WidthPx: 2560, PhysicalWidthMM: 180}, []ClassifierBuilderOption{WithCompactMaxPhysicalWidth(0)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewDisplayClassifier(&fakeDisplay{metrics: tt.metrics}, tt.options...)
			got, err := c.IsCompactDevice()
			if err != nil {
				t.Fatalf("IsCompactDevice() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("IsCompactDevice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDisplayClassifierUnavailable(t *testing.T) {
	boom := errors.New("no monitor")
	c := NewDisplayClassifier(&fakeDisplay{err: boom})
	if _, err := c.IsCompactDevice(); !errors.Is(err, ErrUnavailable) || !errors.Is(err, boom) {
		t.Errorf("error = %v, want ErrUnavailable wrapping the source error", err)
	}

	c = NewDisplayClassifier(nil)
	if _, err := c.IsCompactDevice(); !errors.Is(err, ErrUnavailable) {
		t.Errorf("nil source error = %v, want ErrUnavailable", err)
	}

	c = NewDisplayClassifier(&fakeDisplay{metrics: DisplayMetrics{}})
	if _, err := c.IsCompactDevice(); !errors.Is(err, ErrUnavailable) {
		t.Errorf("zero width error = %v, want ErrUnavailable", err)
	}
}

func TestTouchSkipsDisplayQuery(t *testing.T) {
	src := &fakeDisplay{err: errors.New("unused")}
	c := NewDisplayClassifier(src, WithTouch(true))
	if got, err := c.IsCompactDevice(); err != nil || !got {
		t.Fatalf("IsCompactDevice() = %v, %v; want true, nil", got, err)
	}
	if src.calls != 0 {
		t.Errorf("display queried %d times, want 0", src.calls)
	}
}

func TestStatic(t *testing.T) {
	for _, want := range []bool{true, false} {
		got, err := Static(want).IsCompactDevice()
		if err != nil || got != want {
			t.Errorf("Static(%v) = %v, %v", want, got, err)
		}
	}
}
