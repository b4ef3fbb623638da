package rcore

import "errors"

var (
	// Fatal: the process cannot continue past InitWindow.
	ErrContextInitFailed       = errors.New("platform: failed to initialize windowing context")
	ErrWindowCreateFailed      = errors.New("platform: failed to create window")
	ErrContextActivationFailed = errors.New("platform: failed to activate graphics context")

	// Recoverable unless no fallback size exists.
	ErrMonitorQueryFailed = errors.New("platform: failed to query monitor")

	ErrNilPlatform        = errors.New("platform: nil platform")
	ErrWindowNotReady     = errors.New("window: not ready")
	ErrAlreadyInitialized = errors.New("window: already initialized")
)

// IsFatal reports whether err came out of a step InitWindow cannot recover from.
// A failed monitor query is normally recovered by falling back to the
// requested screen size; ErrMonitorQueryFailed is only returned when no such
// size exists, so it is fatal wherever it surfaces.
func IsFatal(err error) bool {
	return errors.Is(err, ErrContextInitFailed) ||
		errors.Is(err, ErrWindowCreateFailed) ||
		errors.Is(err, ErrContextActivationFailed) ||
		errors.Is(err, ErrMonitorQueryFailed) ||
		errors.Is(err, ErrNilPlatform)
}
