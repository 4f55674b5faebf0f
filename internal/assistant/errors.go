package assistant

import "errors"

var (
	// ErrEmptyMessage is returned when the input message is blank.
	ErrEmptyMessage = errors.New("message must not be empty")
)
