package changeset

import (
	"sort"
	"strconv"
)

// WordCorrection is one word-level entry of a change list.
//
// The Old* fields record what the corpus is expected to hold before the
// correction; the New* fields hold the replacement values. An empty New*
// field leaves that column unchanged.
type WordCorrection struct {
	ID       string // 1-based word position, as written in the corpus ID column
	Form     string
	OldUPOS  string
	OldXPOS  string
	OldFeats string
	NewUPOS  string
	NewXPOS  string
	NewFeats string
}

// SentenceCorrection groups the word corrections of one sentence.
type SentenceCorrection struct {
	ID    string
	Text  string // exact "# text" payload expected in the corpus
	Words map[string]WordCorrection
}

// DocumentCorrection groups the sentence corrections of one corpus file.
type DocumentCorrection struct {
	Name      string // corpus file name, extension included
	Sentences map[string]*SentenceCorrection
}

// Key addresses a single word correction.
type Key struct {
	Document   string
	SentenceID string
	WordID     string
}

// Index is the parsed change list. It is read-only once built and safe for
// concurrent readers.
type Index struct {
	Documents map[string]*DocumentCorrection
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{Documents: make(map[string]*DocumentCorrection)}
}

// Sentence returns the corrections for a sentence of a document.
func (idx *Index) Sentence(doc, sentID string) (*SentenceCorrection, bool) {
	d, ok := idx.Documents[doc]
	if !ok {
		return nil, false
	}
	s, ok := d.Sentences[sentID]
	return s, ok
}

// Word returns the correction for a single word.
func (idx *Index) Word(doc, sentID, wordID string) (WordCorrection, bool) {
	s, ok := idx.Sentence(doc, sentID)
	if !ok {
		return WordCorrection{}, false
	}
	w, ok := s.Words[wordID]
	return w, ok
}

// HasDocument reports whether the index carries corrections for doc.
func (idx *Index) HasDocument(doc string) bool {
	_, ok := idx.Documents[doc]
	return ok
}

// Counts returns the number of documents, sentences and words in the index.
func (idx *Index) Counts() (documents, sentences, words int) {
	for _, d := range idx.Documents {
		documents++
		for _, s := range d.Sentences {
			sentences++
			words += len(s.Words)
		}
	}
	return documents, sentences, words
}

// Keys returns every word key in a stable order.
func (idx *Index) Keys() []Key {
	var keys []Key
	for _, doc := range sortedKeys(idx.Documents) {
		d := idx.Documents[doc]
		for _, sent := range sortedKeys(d.Sentences) {
			for _, word := range sortedWordIDs(d.Sentences[sent].Words) {
				keys = append(keys, Key{Document: doc, SentenceID: sent, WordID: word})
			}
		}
	}
	return keys
}

// document returns the entry for name, creating it when absent.
func (idx *Index) document(name string) *DocumentCorrection {
	d, ok := idx.Documents[name]
	if !ok {
		d = &DocumentCorrection{Name: name, Sentences: make(map[string]*SentenceCorrection)}
		idx.Documents[name] = d
	}
	return d
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sortedWordIDs orders word positions numerically.
func sortedWordIDs(m map[string]WordCorrection) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := strconv.Atoi(keys[i])
		b, _ := strconv.Atoi(keys[j])
		if a != b {
			return a < b
		}
		return keys[i] < keys[j]
	})
	return keys
}
