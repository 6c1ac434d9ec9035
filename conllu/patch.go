// Package conllu applies change-list corrections to CoNLL-U documents.
//
// Documents are streamed line by line. Comment and blank lines are copied,
// word lines are re-joined with single tabs, and word lines addressed by the
// change list get their UPOS, XPOS and FEATS columns replaced after the
// expected old values have been checked.
package conllu

import (
	"fmt"
	"strings"

	"github.com/jamesainslie/go-udfix/changeset"
)

// Column positions of a word line.
const (
	colID    = 0
	colForm  = 1
	colUPOS  = 3
	colXPOS  = 4
	colFeats = 5

	numColumns = 10
)

// Comment keys with meaning to the patcher.
const (
	keyNewDoc = "newdoc"
	keySentID = "sent_id"
	keyText   = "text"
)

// Option configures a Patcher.
type Option func(*config)

type config struct {
	allowUnknownComments bool
}

// WithAllowUnknownComments copies comment lines with unrecognized keys
// (for example "# newpar" or "# text_en") instead of rejecting them.
func WithAllowUnknownComments(allow bool) Option {
	return func(c *config) {
		c.allowUnknownComments = allow
	}
}

// Patcher applies an Index to documents. It never mutates the index and is
// safe for concurrent use.
type Patcher struct {
	index *changeset.Index
	cfg   config
}

// NewPatcher creates a Patcher for idx.
func NewPatcher(idx *changeset.Index, opts ...Option) *Patcher {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Patcher{index: idx, cfg: cfg}
}

// Result is a patched document.
type Result struct {
	Document string
	Lines    []string
	Applied  []changeset.Key // corrections applied, in document order
}

// Patch applies idx to the lines of the document called name.
func Patch(name string, lines []string, idx *changeset.Index) (*Result, error) {
	return NewPatcher(idx).Patch(name, lines)
}

// cursor is the per-document position in the sentence structure. The
// sent_id and text markers of a sentence header may come in either order.
type cursor struct {
	line     int
	sentID   string
	text     string
	textSeen bool
	inBody   bool // a word line followed the current header
}

// startHeader forgets the previous sentence once its words are done.
func (c *cursor) startHeader() {
	if !c.inBody {
		return
	}
	c.sentID, c.text, c.textSeen, c.inBody = "", "", false, false
}

// Patch applies the index to the lines of the document called name, which
// must be the corpus file name the change list refers to. The output has
// exactly one line per input line.
func (p *Patcher) Patch(name string, lines []string) (*Result, error) {
	res := &Result{
		Document: name,
		Lines:    make([]string, 0, len(lines)),
	}

	var c cursor
	for i, line := range lines {
		c.line = i + 1
		out, err := p.patchLine(name, &c, line, res)
		if err != nil {
			return nil, err
		}
		res.Lines = append(res.Lines, out)
	}
	return res, nil
}

func (p *Patcher) patchLine(doc string, c *cursor, line string, res *Result) (string, error) {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return "", nil
	case strings.HasPrefix(trimmed, "#"):
		return trimmed, p.comment(doc, c, trimmed)
	}

	fields := strings.Fields(trimmed)
	if len(fields) != numColumns {
		return "", p.malformed(doc, c, "expected %d columns, got %d", numColumns, len(fields))
	}
	c.inBody = true

	w, ok := p.index.Word(doc, c.sentID, fields[colID])
	if !ok {
		return strings.Join(fields, "\t"), nil
	}
	if !c.textSeen {
		return "", &PatchError{
			Document:   doc,
			Line:       c.line,
			SentenceID: c.sentID,
			WordID:     w.ID,
			Msg:        "sentence has no text marker before a corrected word",
			Err:        ErrConsistency,
		}
	}
	if err := apply(fields, w); err != nil {
		err.Document, err.Line, err.SentenceID = doc, c.line, c.sentID
		return "", err
	}

	res.Applied = append(res.Applied, changeset.Key{Document: doc, SentenceID: c.sentID, WordID: w.ID})
	return strings.Join(fields, "\t"), nil
}

// comment updates the cursor from a marker line and checks sentence text.
func (p *Patcher) comment(doc string, c *cursor, line string) error {
	key, value, hasValue := parseComment(line)

	switch {
	case key == keyNewDoc || strings.HasPrefix(key, keyNewDoc+" "):
		c.startHeader()
		return nil

	case key == keySentID:
		if !hasValue || value == "" {
			return p.malformed(doc, c, "sent_id marker without a value")
		}
		c.startHeader()
		c.sentID = value
		return p.checkText(doc, c)

	case key == keyText:
		if !hasValue {
			return p.malformed(doc, c, "text marker without a value")
		}
		c.startHeader()
		c.text = value
		c.textSeen = true
		return p.checkText(doc, c)
	}

	if p.cfg.allowUnknownComments {
		return nil
	}
	return p.malformed(doc, c, "unrecognized comment %q", line)
}

// checkText compares the header text with the change list once both the
// sentence id and the text are known.
func (p *Patcher) checkText(doc string, c *cursor) error {
	if !c.textSeen || c.sentID == "" {
		return nil
	}
	sent, ok := p.index.Sentence(doc, c.sentID)
	if !ok || sent.Text == c.text {
		return nil
	}
	return &PatchError{
		Document:   doc,
		Line:       c.line,
		SentenceID: c.sentID,
		Msg:        fmt.Sprintf("text is %q, change list expects %q", c.text, sent.Text),
		Err:        ErrConsistency,
	}
}

func (p *Patcher) malformed(doc string, c *cursor, format string, args ...any) error {
	return &PatchError{
		Document:   doc,
		Line:       c.line,
		SentenceID: c.sentID,
		Msg:        fmt.Sprintf(format, args...),
		Err:        ErrMalformedDocument,
	}
}

// parseComment splits "# key = value" into its parts. The value is
// everything after the first '='.
func parseComment(line string) (key, value string, hasValue bool) {
	body := strings.TrimSpace(strings.TrimPrefix(line, "#"))
	key, value, hasValue = strings.Cut(body, "=")
	return strings.TrimSpace(key), strings.TrimSpace(value), hasValue
}

// slot is one correctable column.
type slot struct {
	name     string
	col      int
	old, new string
}

// apply rewrites fields in place. The word form must always match; a column
// without a new value must hold the recorded old value.
func apply(fields []string, w changeset.WordCorrection) *PatchError {
	if fields[colForm] != w.Form {
		return mismatch(w.ID, "FORM", fields[colForm], w.Form)
	}

	slots := [...]slot{
		{name: "UPOS", col: colUPOS, old: w.OldUPOS, new: w.NewUPOS},
		{name: "XPOS", col: colXPOS, old: w.OldXPOS, new: w.NewXPOS},
		{name: "FEATS", col: colFeats, old: w.OldFeats, new: w.NewFeats},
	}
	for _, s := range slots {
		if s.new != "" {
			fields[s.col] = s.new
			continue
		}
		if fields[s.col] != s.old {
			return mismatch(w.ID, s.name, fields[s.col], s.old)
		}
	}
	return nil
}

func mismatch(wordID, field, got, want string) *PatchError {
	return &PatchError{
		WordID: wordID,
		Msg:    fmt.Sprintf("%s is %q, change list expects %q", field, got, want),
		Err:    ErrConsistency,
	}
}
