package domain

import "errors"

// Sentinel error kinds. Handlers match these with errors.Is to decide how a
// failure is surfaced; the concrete errors carry the user-facing message.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == e.kind }

// NotFound returns an error with the given user-facing message that matches
// ErrNotFound under errors.Is.
func NotFound(msg string) error {
	return &kindError{kind: ErrNotFound, msg: msg}
}

// InvalidInput returns an error with the given user-facing message that
// matches ErrInvalidInput under errors.Is.
func InvalidInput(msg string) error {
	return &kindError{kind: ErrInvalidInput, msg: msg}
}
