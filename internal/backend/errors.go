package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks failures caught before any network call.
	ErrValidation = errors.New("validation failed")
	// ErrTransport marks requests that never completed; no partial state
	// change may be assumed.
	ErrTransport = errors.New("backend unreachable")
	// ErrRejected marks requests the backend completed but refused.
	ErrRejected = errors.New("backend rejected request")
)

// RejectedError carries the backend's own message so it can be surfaced
// verbatim to the user when present.
type RejectedError struct {
	StatusCode int
	Msg        string
}

func (e *RejectedError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("backend rejected (%d): %s", e.StatusCode, e.Msg)
	}
	return fmt.Sprintf("backend rejected (%d)", e.StatusCode)
}

func (e *RejectedError) Unwrap() error { return ErrRejected }

// Message picks the user-facing string for err: the backend's message when
// the backend provided one, otherwise the per-action fallback.
func Message(err error, fallback string) string {
	var rej *RejectedError
	if errors.As(err, &rej) && rej.Msg != "" {
		return rej.Msg
	}
	return fallback
}
