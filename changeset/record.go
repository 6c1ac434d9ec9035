package changeset

import "strings"

// wordFields is the fixed column count of a word-correction record.
const wordFields = 8

// record is one tab-delimited change-list line.
type record struct {
	line   int
	fields []string
}

func newRecord(line int, raw string) record {
	raw = strings.TrimRight(raw, "\r\n")
	fields := strings.Split(raw, "\t")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return record{line: line, fields: fields}
}

func (r record) first() string { return r.fields[0] }

// restEmpty reports whether every field after the first is empty.
func (r record) restEmpty() bool {
	return emptyFrom(r.fields, 1)
}

// blank reports whether the record has no populated field at all.
func (r record) blank() bool {
	return emptyFrom(r.fields, 0)
}

func emptyFrom(fields []string, start int) bool {
	for _, f := range fields[start:] {
		if f != "" {
			return false
		}
	}
	return true
}

// word converts the record into a WordCorrection. Missing trailing columns
// are treated as empty; populated columns past the eighth are rejected.
func (r record) word() (WordCorrection, bool) {
	cols := make([]string, wordFields)
	copy(cols, r.fields)
	if len(r.fields) > wordFields && !emptyFrom(r.fields, wordFields) {
		return WordCorrection{}, false
	}
	return WordCorrection{
		ID:       cols[0],
		Form:     cols[1],
		OldUPOS:  cols[2],
		OldXPOS:  cols[3],
		OldFeats: cols[4],
		NewUPOS:  cols[5],
		NewXPOS:  cols[6],
		NewFeats: cols[7],
	}, true
}
