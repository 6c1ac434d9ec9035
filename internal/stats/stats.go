// Package stats summarizes the corrections held in a change list.
package stats

import (
	"sort"

	"github.com/jamesainslie/go-udfix/changeset"
)

// Transition counts corrections rewriting one column value to another.
type Transition struct {
	Field string // UPOS, XPOS or FEATS
	From  string
	To    string
	Count int
}

// Summary holds change-list totals.
type Summary struct {
	Documents int
	Sentences int
	Words     int

	// Changed counts corrections per field that carry a new value.
	Changed map[string]int

	// AssertOnly counts corrections without any new value.
	AssertOnly int

	// Transitions are sorted by descending count.
	Transitions []Transition
}

type transitionKey struct {
	field, from, to string
}

// Summarize computes a Summary of idx.
func Summarize(idx *changeset.Index) Summary {
	s := Summary{Changed: make(map[string]int)}
	s.Documents, s.Sentences, s.Words = idx.Counts()

	counts := make(map[transitionKey]int)
	for _, key := range idx.Keys() {
		w, _ := idx.Word(key.Document, key.SentenceID, key.WordID)

		changes := []transitionKey{
			{"UPOS", w.OldUPOS, w.NewUPOS},
			{"XPOS", w.OldXPOS, w.NewXPOS},
			{"FEATS", w.OldFeats, w.NewFeats},
		}
		changed := false
		for _, c := range changes {
			if c.to == "" {
				continue
			}
			changed = true
			s.Changed[c.field]++
			counts[c]++
		}
		if !changed {
			s.AssertOnly++
		}
	}

	for k, n := range counts {
		s.Transitions = append(s.Transitions, Transition{Field: k.field, From: k.from, To: k.to, Count: n})
	}
	sort.Slice(s.Transitions, func(i, j int) bool {
		a, b := s.Transitions[i], s.Transitions[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.Field != b.Field {
			return a.Field < b.Field
		}
		if a.From != b.From {
			return a.From < b.From
		}
		return a.To < b.To
	})

	return s
}

// Top returns at most n transitions, optionally restricted to field.
func (s Summary) Top(field string, n int) []Transition {
	var out []Transition
	for _, t := range s.Transitions {
		if field != "" && t.Field != field {
			continue
		}
		if n > 0 && len(out) == n {
			break
		}
		out = append(out, t)
	}
	return out
}
