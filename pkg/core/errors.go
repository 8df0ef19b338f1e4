package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrNoDataDir = errors.New("platform data directory could not be determined")
)

// Kind classifies the step that failed.
type Kind string

const (
	KindConfig    Kind = "resolve store"
	KindDirectory Kind = "create store directory"
	KindFile      Kind = "create daily note"
)

// Error reports a failed step together with the path it was working on.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
