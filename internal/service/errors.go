package service

import "errors"

var (
	// ErrDetectorInit indicates the pose detection backend could not be
	// reached or initialized.
	ErrDetectorInit = errors.New("failed to initialize pose detector")
	// ErrDetectionFailed indicates the detector errored mid-pass; partial
	// results are discarded.
	ErrDetectionFailed = errors.New("pose detection failed")

	ErrSessionNotFound = errors.New("game session not found")
	ErrLevelNotFound   = errors.New("level not found")
	// ErrInvalidState indicates the requested transition is not allowed
	// from the session's current state.
	ErrInvalidState = errors.New("invalid session state for operation")
)
