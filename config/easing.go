package config

import (
	"fmt"
	"sort"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/tanema/gween/ease"
)

// DefaultEasing is used when a keyframe or tween leaves its easing empty.
const DefaultEasing = "outQuad"

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inQuart":    ease.InQuart,
	"outQuart":   ease.OutQuart,
	"inOutQuart": ease.InOutQuart,
	"inQuint":    ease.InQuint,
	"outQuint":   ease.OutQuint,
	"inOutQuint": ease.InOutQuint,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"inExpo":     ease.InExpo,
	"outExpo":    ease.OutExpo,
	"inOutExpo":  ease.InOutExpo,
	"inCirc":     ease.InCirc,
	"outCirc":    ease.OutCirc,
	"inOutCirc":  ease.InOutCirc,
	"inBack":     ease.InBack,
	"outBack":    ease.OutBack,
	"inOutBack":  ease.InOutBack,

	// power aliases
	"none":         ease.Linear,
	"power1.in":    ease.InQuad,
	"power1.out":   ease.OutQuad,
	"power1.inOut": ease.InOutQuad,
	"power2.in":    ease.InCubic,
	"power2.out":   ease.OutCubic,
	"power2.inOut": ease.InOutCubic,
	"power3.in":    ease.InQuart,
	"power3.out":   ease.OutQuart,
	"power3.inOut": ease.InOutQuart,
	"sine.in":      ease.InSine,
	"sine.out":     ease.OutSine,
	"sine.inOut":   ease.InOutSine,
}

// Easing resolves an easing name to its function. An empty name resolves to DefaultEasing.
//
// Parameters:
//   - name: the easing name, e.g. "inOutSine" or "power1.out"
//
// Returns:
//   - ease.TweenFunc: the easing function
//   - error: ErrInvalidConfig (wrapped) for an unknown name
func Easing(name string) (ease.TweenFunc, error) {
	name = common.Coalesce(name, DefaultEasing)
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown easing %q", ErrInvalidConfig, name)
	}
	return fn, nil
}

// EasingNames returns every accepted easing name in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
