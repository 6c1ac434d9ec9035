package changeset

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed indicates the change list does not follow the block grammar.
	ErrMalformed = errors.New("changeset: malformed change list")

	// ErrInvalidSnapshot indicates a compiled index could not be decoded.
	ErrInvalidSnapshot = errors.New("changeset: invalid snapshot")
)

// SyntaxError reports a grammar violation at a specific change-list line.
// It matches ErrMalformed with errors.Is.
type SyntaxError struct {
	Line int // 1-based, header line included
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Line <= 0 {
		return fmt.Sprintf("changeset: %s", e.Msg)
	}
	return fmt.Sprintf("changeset: line %d: %s", e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return ErrMalformed }

func syntaxErrorf(line int, format string, args ...any) error {
	return &SyntaxError{Line: line, Msg: fmt.Sprintf(format, args...)}
}
