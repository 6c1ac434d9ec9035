// Package changeset reads word-level annotation change lists into an Index.
//
// A change list is a tab-separated file. The first line is a header and is
// skipped. The rest is a sequence of blocks, one per sentence:
//
//	doc1.conllu
//	doc1_s1
//	Hello world.
//	2	world	NOUN	S	_	PROPN	H	_
//	<blank record>
//
// A block is a document name, a sentence id, the sentence text, one or more
// word corrections and a blank terminator. The terminator of the final block
// may be omitted.
package changeset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	// DefaultSuffix is the file-name suffix every document record must carry.
	DefaultSuffix = "conllu"

	// stemSeparator splits the ordinal segment off a sentence id.
	stemSeparator = "_"

	maxLineSize = 1024 * 1024
)

// Option configures parsing.
type Option func(*config)

type config struct {
	suffix string
}

func defaultConfig() config {
	return config{suffix: DefaultSuffix}
}

// WithSuffix sets the required document-name suffix (default: "conllu").
func WithSuffix(s string) Option {
	return func(c *config) {
		if s != "" {
			c.suffix = s
		}
	}
}

// state is the position of the parser within a block.
type state int

const (
	awaitDocument state = iota
	awaitSentence
	awaitText
	awaitWords
)

func (s state) String() string {
	switch s {
	case awaitDocument:
		return "document name"
	case awaitSentence:
		return "sentence id"
	case awaitText:
		return "sentence text"
	case awaitWords:
		return "word corrections"
	default:
		return "state(" + strconv.Itoa(int(s)) + ")"
	}
}

// block accumulates one sentence until its terminator commits it.
type block struct {
	doc   *DocumentCorrection
	sent  *SentenceCorrection
	words map[string]WordCorrection
}

type handler func(p *parser, rec record, b block) (state, block, error)

var handlers = [...]handler{
	awaitDocument: (*parser).onDocument,
	awaitSentence: (*parser).onSentence,
	awaitText:     (*parser).onText,
	awaitWords:    (*parser).onWord,
}

type parser struct {
	idx *Index
	cfg config
}

// Parse reads a change list from r.
func Parse(r io.Reader, opts ...Option) (*Index, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading change list: %w", err)
	}

	return ParseLines(lines, opts...)
}

// ParseLines builds an Index from change-list lines. lines[0] is the header.
func ParseLines(lines []string, opts ...Option) (*Index, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(lines) == 0 {
		return nil, syntaxErrorf(0, "empty input: missing header")
	}

	records := make([]record, 0, len(lines)-1)
	for i, raw := range lines[1:] {
		records = append(records, newRecord(i+2, raw))
	}
	// Trailing blank rows carry no block; the last block is flushed below.
	for len(records) > 0 && records[len(records)-1].blank() {
		records = records[:len(records)-1]
	}
	if len(records) == 0 {
		return nil, syntaxErrorf(0, "change list has no blocks")
	}

	p := &parser{idx: NewIndex(), cfg: cfg}

	st := awaitDocument
	var b block
	var err error
	for _, rec := range records {
		st, b, err = handlers[st](p, rec, b)
		if err != nil {
			return nil, err
		}
	}

	if err := p.finish(st, b, records[len(records)-1].line); err != nil {
		return nil, err
	}
	return p.idx, nil
}

func (p *parser) onDocument(rec record, _ block) (state, block, error) {
	name := rec.first()
	if !strings.HasSuffix(name, p.cfg.suffix) {
		return awaitDocument, block{}, syntaxErrorf(rec.line, "expected document name ending in %q, got %q", p.cfg.suffix, name)
	}
	if !rec.restEmpty() {
		return awaitDocument, block{}, syntaxErrorf(rec.line, "document record %q has extra populated fields", name)
	}
	return awaitSentence, block{doc: p.idx.document(name)}, nil
}

func (p *parser) onSentence(rec record, b block) (state, block, error) {
	id := rec.first()
	if id == "" {
		return awaitSentence, b, syntaxErrorf(rec.line, "missing sentence id for document %q", b.doc.Name)
	}
	if !rec.restEmpty() {
		return awaitSentence, b, syntaxErrorf(rec.line, "sentence record %q has extra populated fields", id)
	}
	if stem := sentenceStem(id); !strings.HasPrefix(b.doc.Name, stem) {
		return awaitSentence, b, syntaxErrorf(rec.line, "sentence id %q does not belong to document %q", id, b.doc.Name)
	}
	if _, dup := b.doc.Sentences[id]; dup {
		return awaitSentence, b, syntaxErrorf(rec.line, "duplicate sentence %q in document %q", id, b.doc.Name)
	}
	b.sent = &SentenceCorrection{ID: id}
	return awaitText, b, nil
}

func (p *parser) onText(rec record, b block) (state, block, error) {
	text := rec.first()
	if text == "" {
		return awaitText, b, syntaxErrorf(rec.line, "missing text for sentence %q", b.sent.ID)
	}
	if !rec.restEmpty() {
		return awaitText, b, syntaxErrorf(rec.line, "text record for sentence %q has extra populated fields", b.sent.ID)
	}
	b.sent.Text = text
	b.words = make(map[string]WordCorrection)
	return awaitWords, b, nil
}

func (p *parser) onWord(rec record, b block) (state, block, error) {
	if rec.first() == "" {
		if !rec.restEmpty() {
			return awaitWords, b, syntaxErrorf(rec.line, "record with empty word position in sentence %q", b.sent.ID)
		}
		if err := p.commit(b, rec.line); err != nil {
			return awaitWords, b, err
		}
		return awaitDocument, block{}, nil
	}

	w, ok := rec.word()
	if !ok {
		return awaitWords, b, syntaxErrorf(rec.line, "word record has more than %d populated fields", wordFields)
	}
	if n, err := strconv.Atoi(w.ID); err != nil || n < 1 {
		return awaitWords, b, syntaxErrorf(rec.line, "word position %q is not a positive integer", w.ID)
	}
	if _, dup := b.words[w.ID]; dup {
		return awaitWords, b, syntaxErrorf(rec.line, "duplicate word %s in sentence %q", w.ID, b.sent.ID)
	}
	b.words[w.ID] = w
	return awaitWords, b, nil
}

// commit stores a finished block in the index.
func (p *parser) commit(b block, line int) error {
	if len(b.words) == 0 {
		return syntaxErrorf(line, "sentence %q has no word corrections", b.sent.ID)
	}
	b.sent.Words = b.words
	b.doc.Sentences[b.sent.ID] = b.sent
	return nil
}

// finish handles end of input. An unterminated final block is committed.
func (p *parser) finish(st state, b block, line int) error {
	switch st {
	case awaitDocument:
		return nil
	case awaitWords:
		return p.commit(b, line)
	default:
		return syntaxErrorf(line, "unexpected end of input: expected %s", st)
	}
}

// sentenceStem drops the trailing ordinal segment of a sentence id.
// "aja_ee199920_446" has stem "aja_ee199920".
func sentenceStem(id string) string {
	i := strings.LastIndex(id, stemSeparator)
	if i < 0 {
		return ""
	}
	return id[:i]
}
