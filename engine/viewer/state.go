package viewer

import "github.com/Carmen-Shannon/oxy-showcase/common"

// PreviewState is the preview mode controller's state.
type PreviewState int

const (
	// PreviewIdle is the initial and terminal state: the scroll timeline owns the camera.
	PreviewIdle PreviewState = iota
	// PreviewPreviewing: the enter tween owns the camera and user orbit is enabled.
	PreviewPreviewing
	// PreviewExiting: the scroll-bound exit tween owns the camera.
	PreviewExiting
)

func (s PreviewState) String() string {
	switch s {
	case PreviewIdle:
		return "idle"
	case PreviewPreviewing:
		return "previewing"
	case PreviewExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// PoseWriter identifies the producer of a pose write.
type PoseWriter int

// Pose writers. Init writes once; the others own the pose in exactly one PreviewState.
const (
	WriterInit PoseWriter = iota
	WriterTimeline
	WriterEnterTween
	WriterExitTween
)

func (w PoseWriter) String() string {
	switch w {
	case WriterInit:
		return "init"
	case WriterTimeline:
		return "timeline"
	case WriterEnterTween:
		return "enter-tween"
	case WriterExitTween:
		return "exit-tween"
	default:
		return "unknown"
	}
}

// owner returns the only writer allowed to change the pose in state s.
func (s PreviewState) owner() PoseWriter {
	switch s {
	case PreviewPreviewing:
		return WriterEnterTween
	case PreviewExiting:
		return WriterExitTween
	default:
		return WriterTimeline
	}
}

// WriteEvent describes an accepted pose write.
type WriteEvent struct {
	Frame   uint64 // number of Frame calls started before or during the write
	InFrame bool   // true if the write happened while processing Frame
	Writer  PoseWriter
	State   PreviewState
	Pose    common.Pose
}
