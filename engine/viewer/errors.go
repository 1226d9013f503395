package viewer

import "errors"

var (
	// ErrNotInitialized is returned when an operation needs a viewer or camera that is not ready.
	ErrNotInitialized = errors.New("viewer: not initialized")

	// ErrAlreadyInitialized is returned by a second call to Init.
	ErrAlreadyInitialized = errors.New("viewer: already initialized")

	// ErrInvalidKeyframes is wrapped by every keyframe validation error.
	ErrInvalidKeyframes = errors.New("viewer: invalid keyframes")
)
