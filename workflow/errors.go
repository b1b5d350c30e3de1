package workflow

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrSubmitInProgress = errors.New("a submission is already in progress")
	ErrJudgeFinalized   = errors.New("scores are final and can no longer be edited")
	ErrAlreadyVoted     = errors.New("this team was already rated from this device")
	ErrNotReady         = errors.New("action not allowed in the current step")
)

// ValidationError is raised before any call reaches the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
