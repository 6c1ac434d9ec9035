package conllu

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConsistency indicates the corpus does not hold the values the change
	// list expects to replace.
	ErrConsistency = errors.New("conllu: corpus disagrees with change list")

	// ErrMalformedDocument indicates a line that is neither a recognized
	// comment, a blank separator, nor a 10-column word line.
	ErrMalformedDocument = errors.New("conllu: malformed document")
)

// PatchError locates a failure within a document. It unwraps to
// ErrConsistency or ErrMalformedDocument.
type PatchError struct {
	Document   string
	Line       int // 1-based
	SentenceID string
	WordID     string
	Msg        string
	Err        error
}

func (e *PatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "conllu: %s:%d", e.Document, e.Line)
	if e.SentenceID != "" {
		fmt.Fprintf(&b, ": sentence %s", e.SentenceID)
	}
	if e.WordID != "" {
		fmt.Fprintf(&b, " word %s", e.WordID)
	}
	b.WriteString(": ")
	b.WriteString(e.Msg)
	return b.String()
}

func (e *PatchError) Unwrap() error { return e.Err }
