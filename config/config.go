// Package config loads the viewer's camera configuration: per-device profiles with
// their scroll keyframes, the preview inspection tween, the virtual page layout and
// the device classification thresholds.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation and parse error of this package.
var ErrInvalidConfig = errors.New("config: invalid configuration")

//go:embed default.yaml
var defaultYAML []byte

// Config is the complete viewer configuration.
type Config struct {
	Profiles Profiles `yaml:"profiles"`
	Preview  Preview  `yaml:"preview"`
	Scroll   Scroll   `yaml:"scroll"`
	Device   Device   `yaml:"device"`
}

// Profiles holds one camera profile per device class.
type Profiles struct {
	Compact Profile `yaml:"compact"`
	Full    Profile `yaml:"full"`
}

// Profile is the camera layout for one device class.
type Profile struct {
	InitialPose common.Pose `yaml:"initialPose"`
	ExitPose    common.Pose `yaml:"exitPose"`
	Keyframes   []Keyframe  `yaml:"keyframes"`
}

// Keyframe places a pose at a point of the scroll timeline. Easing shapes the
// segment that ends at this keyframe.
type Keyframe struct {
	Progress float32     `yaml:"progress"`
	Pose     common.Pose `yaml:",inline"`
	Easing   string      `yaml:"easing,omitempty"`
}

// Preview configures the inspection tween and the tween back to the exit pose.
type Preview struct {
	Inspection   common.Pose `yaml:"inspection"`
	Duration     float32     `yaml:"duration"`
	Easing       string      `yaml:"easing,omitempty"`
	ExitDuration float32     `yaml:"exitDuration"`
	ExitEasing   string      `yaml:"exitEasing,omitempty"`
	ExitSection  string      `yaml:"exitSection"`
}

// Scroll lays out the virtual page.
type Scroll struct {
	PageLength      float32   `yaml:"pageLength"`
	Step            float32   `yaml:"step"`
	TimelineSection string    `yaml:"timelineSection"`
	Sections        []Section `yaml:"sections"`
}

// Section is a named trigger region of the page.
type Section struct {
	Name  string  `yaml:"name"`
	Start float32 `yaml:"start"`
	End   float32 `yaml:"end"`
}

// Device holds the display classifier thresholds.
type Device struct {
	CompactMaxWidth           int  `yaml:"compactMaxWidth"`
	CompactMaxPhysicalWidthMM int  `yaml:"compactMaxPhysicalWidthMM"`
	Touch                     bool `yaml:"touch"`
}

// Default returns the embedded default configuration.
//
// Returns:
//   - *Config: the parsed defaults
//   - error: non-nil only if the embedded document is broken
func Default() (*Config, error) {
	return Parse(defaultYAML)
}

// Load reads and validates a complete configuration document from path.
//
// Parameters:
//   - path: the YAML file to read
//
// Returns:
//   - *Config: the configuration
//   - error: an I/O error, or ErrInvalidConfig (wrapped) for bad content
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a configuration document.
//
// Parameters:
//   - data: YAML content
//
// Returns:
//   - *Config: the configuration
//   - error: ErrInvalidConfig (wrapped) for malformed or invalid content
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration to path as YAML.
//
// Parameters:
//   - cfg: the configuration to write
//   - path: the destination file
//
// Returns:
//   - error: a marshal or I/O error
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the whole configuration and reports every problem found.
//
// Returns:
//   - error: nil, or a joined error whose parts each wrap ErrInvalidConfig
func (c *Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	for _, p := range []struct {
		name    string
		profile Profile
	}{{"compact", c.Profiles.Compact}, {"full", c.Profiles.Full}} {
		if len(p.profile.Keyframes) == 0 {
			invalid("profiles.%s: no keyframes", p.name)
			continue
		}
		prev := float32(-1)
		for i, kf := range p.profile.Keyframes {
			if kf.Progress < 0 || kf.Progress > 1 {
				invalid("profiles.%s.keyframes[%d]: progress %v outside [0, 1]", p.name, i, kf.Progress)
			}
			if kf.Progress <= prev {
				invalid("profiles.%s.keyframes[%d]: progress %v not greater than %v", p.name, i, kf.Progress, prev)
			}
			prev = kf.Progress
			if _, err := Easing(kf.Easing); err != nil {
				invalid("profiles.%s.keyframes[%d]: unknown easing %q", p.name, i, kf.Easing)
			}
		}
	}

	if c.Preview.Duration < 0 {
		invalid("preview.duration %v is negative", c.Preview.Duration)
	}
	if c.Preview.ExitDuration < 0 {
		invalid("preview.exitDuration %v is negative", c.Preview.ExitDuration)
	}
	if _, err := Easing(c.Preview.Easing); err != nil {
		invalid("preview.easing: unknown easing %q", c.Preview.Easing)
	}
	if _, err := Easing(c.Preview.ExitEasing); err != nil {
		invalid("preview.exitEasing: unknown easing %q", c.Preview.ExitEasing)
	}

	if c.Scroll.PageLength <= 0 {
		invalid("scroll.pageLength %v must be positive", c.Scroll.PageLength)
	}
	if c.Scroll.Step <= 0 {
		invalid("scroll.step %v must be positive", c.Scroll.Step)
	}
	names := make(map[string]bool, len(c.Scroll.Sections))
	for i, s := range c.Scroll.Sections {
		switch {
		case s.Name == "":
			invalid("scroll.sections[%d]: missing name", i)
		case names[s.Name]:
			invalid("scroll.sections[%d]: duplicate name %q", i, s.Name)
		}
		names[s.Name] = true
		if s.Start < 0 || s.End <= s.Start || s.End > c.Scroll.PageLength {
			invalid("scroll.sections[%d]: range [%v, %v] outside page [0, %v]", i, s.Start, s.End, c.Scroll.PageLength)
		}
	}
	if !names[c.Scroll.TimelineSection] {
		invalid("scroll.timelineSection %q is not a section", c.Scroll.TimelineSection)
	}
	if c.Preview.ExitSection != "" && !names[c.Preview.ExitSection] {
		invalid("preview.exitSection %q is not a section", c.Preview.ExitSection)
	}

	if c.Device.CompactMaxWidth < 0 || c.Device.CompactMaxPhysicalWidthMM < 0 {
		invalid("device thresholds must not be negative")
	}

	return errors.Join(errs...)
}

// Section returns the named scroll section.
//
// Parameters:
//   - name: the section name
//
// Returns:
//   - Section: the section
//   - bool: false if no section has that name
func (s Scroll) Section(name string) (Section, bool) {
	for _, sec := range s.Sections {
		if sec.Name == name {
			return sec, true
		}
	}
	return Section{}, false
}
