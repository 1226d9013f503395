package viewer

import (
	"fmt"
	"sort"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/tanema/gween/ease"
)

// Keyframe places a pose at a point of the scroll timeline. Easing shapes the
// segment that ends at this keyframe.
type Keyframe struct {
	Progress   float32
	Pose       common.Pose
	Easing     ease.TweenFunc
	EasingName string
}

// Timeline maps normalized scroll progress onto a camera pose.
type Timeline struct {
	keyframes []Keyframe
}

// NewTimeline validates keyframes and builds a Timeline over a copy of them.
//
// Parameters:
//   - keyframes: strictly increasing keyframes with progress in [0, 1]
//
// Returns:
//   - *Timeline: the timeline
//   - error: ErrInvalidKeyframes (wrapped) describing the first problem found
func NewTimeline(keyframes []Keyframe) (*Timeline, error) {
	if len(keyframes) == 0 {
		return nil, fmt.Errorf("%w: no keyframes", ErrInvalidKeyframes)
	}
	for i, kf := range keyframes {
		if kf.Progress < 0 || kf.Progress > 1 || kf.Progress != kf.Progress {
			return nil, fmt.Errorf("%w: keyframe %d progress %v outside [0, 1]", ErrInvalidKeyframes, i, kf.Progress)
		}
		if i > 0 && kf.Progress <= keyframes[i-1].Progress {
			return nil, fmt.Errorf("%w: keyframe %d progress %v does not follow %v",
				ErrInvalidKeyframes, i, kf.Progress, keyframes[i-1].Progress)
		}
		if kf.Easing == nil {
			return nil, fmt.Errorf("%w: keyframe %d has no easing", ErrInvalidKeyframes, i)
		}
	}
	kfs := make([]Keyframe, len(keyframes))
	copy(kfs, keyframes)
	return &Timeline{keyframes: kfs}, nil
}

// Sample returns the pose at progress. Progress is clamped to [0, 1] and to the
// first and last keyframe. Between two keyframes the destination keyframe's easing
// shapes the fraction, which is then clamped so the pose never leaves the segment.
//
// Parameters:
//   - progress: normalized scroll progress
//
// Returns:
//   - common.Pose: the interpolated pose
func (t *Timeline) Sample(progress float32) common.Pose {
	p := common.Clamp01(progress)
	first, last := t.keyframes[0], t.keyframes[len(t.keyframes)-1]
	if p <= first.Progress {
		return first.Pose
	}
	if p >= last.Progress {
		return last.Pose
	}

	// index of the first keyframe strictly after p; always in [1, len-1] here
	i := sort.Search(len(t.keyframes), func(i int) bool {
		return t.keyframes[i].Progress > p
	})
	from, to := t.keyframes[i-1], t.keyframes[i]
	local := (p - from.Progress) / (to.Progress - from.Progress)
	return from.Pose.Lerp(to.Pose, common.Clamp01(to.Easing(local, 0, 1, 1)))
}

// Bracket returns the keyframes surrounding progress. Outside the keyframe range
// both results are the nearest end keyframe.
//
// Parameters:
//   - progress: normalized scroll progress
//
// Returns:
//   - from, to: the keyframes before and after progress
func (t *Timeline) Bracket(progress float32) (from, to Keyframe) {
	p := common.Clamp01(progress)
	n := len(t.keyframes)
	i := sort.Search(n, func(i int) bool {
		return t.keyframes[i].Progress > p
	})
	switch {
	case i == 0:
		return t.keyframes[0], t.keyframes[0]
	case i == n:
		return t.keyframes[n-1], t.keyframes[n-1]
	default:
		return t.keyframes[i-1], t.keyframes[i]
	}
}

// Keyframes returns a copy of the timeline's keyframes.
func (t *Timeline) Keyframes() []Keyframe {
	out := make([]Keyframe, len(t.keyframes))
	copy(out, t.keyframes)
	return out
}
