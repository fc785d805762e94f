package prompt

import (
	"errors"
	"fmt"
)

// ErrTimeout is matched by every *TimeoutError via errors.Is.
var ErrTimeout = errors.New("prompt timeout")

// TimeoutError is returned by a bounded Loop once every attempt was rejected.
type TimeoutError struct {
	Attempts int
	Hint     string // actionable suggestion
}

func (e *TimeoutError) Error() string {
	msg := fmt.Sprintf("prompt timeout: no acceptable input after %d attempts", e.Attempts)
	if e.Hint != "" {
		return fmt.Sprintf("%s\n\nHint: %s", msg, e.Hint)
	}
	return msg
}

// Is reports whether target is ErrTimeout.
func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

func newTimeoutError(attempts int) *TimeoutError {
	return &TimeoutError{
		Attempts: attempts,
		Hint:     "Raise --max-attempts or set it to 0 to prompt until a valid answer is given",
	}
}

// IsTimeout returns true if err is or wraps a prompt timeout.
func IsTimeout(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te)
}
