package viewer

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/config"
	"github.com/Carmen-Shannon/oxy-showcase/engine/device"
)

// DeviceProfile is the camera layout for one device class. It is resolved once per
// session and never modified afterwards.
type DeviceProfile struct {
	Compact     bool
	InitialPose common.Pose
	ExitPose    common.Pose
	Keyframes   []Keyframe
}

// Name returns "compact" or "full".
func (p DeviceProfile) Name() string {
	if p.Compact {
		return "compact"
	}
	return "full"
}

// ProfileResolver picks between the compact and full-size profiles.
type ProfileResolver struct {
	compact DeviceProfile
	full    DeviceProfile
}

// NewProfileResolver creates a resolver over two fixed profiles. The Compact flag of
// each profile is forced to match its role.
//
// Parameters:
//   - compact: the profile for compact devices
//   - full: the profile for full-size displays
//
// Returns:
//   - *ProfileResolver: the resolver
func NewProfileResolver(compact, full DeviceProfile) *ProfileResolver {
	compact.Compact = true
	full.Compact = false
	return &ProfileResolver{compact: compact, full: full}
}

// NewProfileResolverFromConfig builds both profiles from configuration, resolving
// easing names to functions.
//
// Parameters:
//   - profiles: the configured profiles
//
// Returns:
//   - *ProfileResolver: the resolver
//   - error: config.ErrInvalidConfig (wrapped) for unknown easing names
func NewProfileResolverFromConfig(profiles config.Profiles) (*ProfileResolver, error) {
	compact, err := profileFromConfig(profiles.Compact, true)
	if err != nil {
		return nil, fmt.Errorf("profiles.compact: %w", err)
	}
	full, err := profileFromConfig(profiles.Full, false)
	if err != nil {
		return nil, fmt.Errorf("profiles.full: %w", err)
	}
	return NewProfileResolver(compact, full), nil
}

func profileFromConfig(p config.Profile, compact bool) (DeviceProfile, error) {
	kfs := make([]Keyframe, 0, len(p.Keyframes))
	for _, kf := range p.Keyframes {
		fn, err := config.Easing(kf.Easing)
		if err != nil {
			return DeviceProfile{}, err
		}
		kfs = append(kfs, Keyframe{
			Progress:   kf.Progress,
			Pose:       kf.Pose,
			Easing:     fn,
			EasingName: kf.Easing,
		})
	}
	return DeviceProfile{
		Compact:     compact,
		InitialPose: p.InitialPose,
		ExitPose:    p.ExitPose,
		Keyframes:   kfs,
	}, nil
}

// Resolve queries the classifier once and returns the matching profile. A nil
// classifier or a classification error selects the full-size profile.
//
// Parameters:
//   - classifier: the device classifier
//
// Returns:
//   - DeviceProfile: the selected profile
func (r *ProfileResolver) Resolve(classifier device.Classifier) DeviceProfile {
	if classifier == nil {
		common.Logger().Warn("no device classifier, using full-size profile")
		return r.full
	}
	compact, err := classifier.IsCompactDevice()
	if err != nil {
		common.Logger().Warn("device classification failed, using full-size profile", "error", err)
		return r.full
	}
	if compact {
		return r.compact
	}
	return r.full
}
