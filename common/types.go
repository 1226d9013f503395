// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// PoseEpsilon is the per-component tolerance used when comparing poses for equality.
const PoseEpsilon float32 = 1e-5

// Pose is a camera's world-space position together with the point it looks at.
// Position and Target are always interpolated together so the two never drift apart.
type Pose struct {
	// Position is the world-space location of the camera eye.
	Position mgl32.Vec3 `yaml:"position"`

	// Target is the world-space look-at point.
	Target mgl32.Vec3 `yaml:"target"`
}

// NewPose builds a Pose from raw position and target components.
//
// Parameters:
//   - px, py, pz: camera position
//   - tx, ty, tz: look-at target
//
// Returns:
//   - Pose: the assembled pose
func NewPose(px, py, pz, tx, ty, tz float32) Pose {
	return Pose{
		Position: mgl32.Vec3{px, py, pz},
		Target:   mgl32.Vec3{tx, ty, tz},
	}
}

// Lerp linearly interpolates from p toward to by fraction t. The fraction is not clamped,
// callers that need clamping apply it to t first.
//
// Parameters:
//   - to: the destination pose
//   - t: interpolation fraction (0 = p, 1 = to)
//
// Returns:
//   - Pose: the interpolated pose
func (p Pose) Lerp(to Pose, t float32) Pose {
	return Pose{
		Position: p.Position.Add(to.Position.Sub(p.Position).Mul(t)),
		Target:   p.Target.Add(to.Target.Sub(p.Target).Mul(t)),
	}
}

// ApproxEqual reports whether every component of p and other differ by at most PoseEpsilon.
//
// Parameters:
//   - other: the pose to compare against
//
// Returns:
//   - bool: true if the poses are equal within tolerance
func (p Pose) ApproxEqual(other Pose) bool {
	return p.Position.ApproxEqualThreshold(other.Position, PoseEpsilon) &&
		p.Target.ApproxEqualThreshold(other.Target, PoseEpsilon)
}

func (p Pose) String() string {
	return fmt.Sprintf("pos(%.3f, %.3f, %.3f) target(%.3f, %.3f, %.3f)",
		p.Position[0], p.Position[1], p.Position[2],
		p.Target[0], p.Target[1], p.Target[2])
}
