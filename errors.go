package udfix

import (
	"errors"

	"github.com/jamesainslie/go-udfix/changeset"
	"github.com/jamesainslie/go-udfix/conllu"
)

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrMalformedChangeSet indicates the change list violates its grammar.
	ErrMalformedChangeSet = changeset.ErrMalformed

	// ErrConsistency indicates the corpus disagrees with the change list.
	ErrConsistency = conllu.ErrConsistency

	// ErrMalformedDocument indicates a corpus line that cannot be classified.
	ErrMalformedDocument = conllu.ErrMalformedDocument

	// ErrChangesNotFound indicates the change-list file does not exist.
	ErrChangesNotFound = errors.New("udfix: change list not found")

	// ErrIncomplete indicates corrections that matched no corpus word while
	// WithRequireComplete is set.
	ErrIncomplete = errors.New("udfix: change list not fully applied")
)
