package conllu

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jamesainslie/go-udfix/changeset"
)

const docName = "doc1.conllu"

var document = []string{
	"# newdoc id = doc1",
	"# sent_id = doc1_s1",
	"# text = Hello world.",
	"1\tHello\thello\tINTJ\tI\t_\t0\troot\t_\t_",
	"2\tworld\tworld\tNOUN\tS\t_\t1\tvocative\t_\tSpaceAfter=No",
	"3\t.\t.\tPUNCT\tZ\t_\t1\tpunct\t_\t_",
	"",
	"# sent_id = doc1_s2",
	"# text = 9 factory",
	"1   9   9   NUM   N   NumType=Card   2   nummod   _   _",
	"2\tfactory\tfactory\tNOUN\tS\t_\t0\troot\t_\t_",
	"",
}

func index(t *testing.T, rows ...string) *changeset.Index {
	t.Helper()
	lines := append([]string{"header"}, rows...)
	idx, err := changeset.ParseLines(lines)
	if err != nil {
		t.Fatalf("ParseLines() error = %v", err)
	}
	return idx
}

func TestPatch_EndToEnd(t *testing.T) {
	idx := index(t,
		"doc1.conllu",
		"doc1_s1",
		"Hello world.",
		"2\tworld\tNOUN\tS\t_\tPROPN\tH\t_",
	)

	res, err := Patch(docName, document, idx)
	if err != nil {
		t.Fatalf("Patch() error = %v", err)
	}

	want := []string{
		"# newdoc id = doc1",
		"# sent_id = doc1_s1",
		"# text = Hello world.",
		"1\tHello\thello\tINTJ\tI\t_\t0\troot\t_\t_",
		"2\tworld\tworld\tPROPN\tH\t_\t1\tvocative\t_\tSpaceAfter=No",
		"3\t.\t.\tPUNCT\tZ\t_\t1\tpunct\t_\t_",
		"",
		"# sent_id = doc1_s2",
		"# text = 9 factory",
		"1\t9\t9\tNUM\tN\tNumType=Card\t2\tnummod\t_\t_",
		"2\tfactory\tfactory\tNOUN\tS\t_\t0\troot\t_\t_",
		"",
	}
	if diff := cmp.Diff(want, res.Lines); diff != "" {
		t.Errorf("Patch() lines mismatch (-want +got):\n%s", diff)
	}

	wantApplied := []changeset.Key{{Document: docName, SentenceID: "doc1_s1", WordID: "2"}}
	if diff := cmp.Diff(wantApplied, res.Applied); diff != "" {
		t.Errorf("Applied mismatch (-want +got):\n%s", diff)
	}
}

func TestPatch_SelectiveOverwrite(t *testing.T) {
	idx := index(t,
		"doc1.conllu",
		"doc1_s2",
		"9 factory",
		"2\tfactory\tNOUN\tS\t_\tX\tT\tForeign=Yes",
	)

	res, err := Patch(docName, document, idx)
	if err != nil {
		t.Fatalf("Patch() error = %v", err)
	}

	got := strings.Split(res.Lines[10], "\t")
	orig := strings.Fields(document[10])
	for i := range orig {
		want := orig[i]
		switch i {
		case colUPOS:
			want = "X"
		case colXPOS:
			want = "T"
		case colFeats:
			want = "Foreign=Yes"
		}
		if got[i] != want {
			t.Errorf("column %d = %q, want %q", i, got[i], want)
		}
	}
}

func TestPatch_NoMatchingEntries(t *testing.T) {
	idx := index(t,
		"other.conllu",
		"other_s1",
		"Hello world.",
		"2\tworld\tNOUN\tS\t_\tPROPN\tH\t_",
	)

	res, err := Patch(docName, document, idx)
	if err != nil {
		t.Fatalf("Patch() error = %v", err)
	}
	if len(res.Lines) != len(document) {
		t.Fatalf("got %d lines, want %d", len(res.Lines), len(document))
	}
	for i, line := range document {
		want := line
		if fields := strings.Fields(line); len(fields) == numColumns {
			want = strings.Join(fields, "\t")
		}
		if res.Lines[i] != want {
			t.Errorf("line %d = %q, want %q", i+1, res.Lines[i], want)
		}
	}
	if len(res.Applied) != 0 {
		t.Errorf("Applied = %v, want none", res.Applied)
	}
}

func TestPatch_KeepsUnchangedColumnsWhenOldMatches(t *testing.T) {
	idx := index(t,
		"doc1.conllu",
		"doc1_s2",
		"9 factory",
		"1\t9\tNUM\tN\tNumType=Card\t\t\tNumType=Ord",
	)

	res, err := Patch(docName, document, idx)
	if err != nil {
		t.Fatalf("Patch() error = %v", err)
	}
	want := "1\t9\t9\tNUM\tN\tNumType=Ord\t2\tnummod\t_\t_"
	if res.Lines[9] != want {
		t.Errorf("line 10 = %q, want %q", res.Lines[9], want)
	}
}

func TestPatch_ConsistencyErrors(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		wantLine int
		wantWord string
		wantMsg  string
	}{
		{
			name:     "old UPOS differs without new value",
			rows:     []string{"doc1.conllu", "doc1_s1", "Hello world.", "2\tworld\tVERB\tS\t_\t\tH\t_"},
			wantLine: 5,
			wantWord: "2",
			wantMsg:  `UPOS is "NOUN", change list expects "VERB"`,
		},
		{
			name:     "old XPOS differs without new value",
			rows:     []string{"doc1.conllu", "doc1_s1", "Hello world.", "2\tworld\tNOUN\tV\t_\tPROPN\t\t_"},
			wantLine: 5,
			wantWord: "2",
			wantMsg:  "XPOS",
		},
		{
			name:     "old FEATS differs without new value",
			rows:     []string{"doc1.conllu", "doc1_s1", "Hello world.", "2\tworld\tNOUN\tS\tCase=Nom\tPROPN\tH\t"},
			wantLine: 5,
			wantWord: "2",
			wantMsg:  "FEATS",
		},
		{
			name:     "word form differs",
			rows:     []string{"doc1.conllu", "doc1_s1", "Hello world.", "2\tWorld\tNOUN\tS\t_\tPROPN\tH\t_"},
			wantLine: 5,
			wantWord: "2",
			wantMsg:  `FORM is "world", change list expects "World"`,
		},
		{
			name:     "text differs by one character",
			rows:     []string{"doc1.conllu", "doc1_s1", "Hello world!", "2\tworld\tNOUN\tS\t_\tPROPN\tH\t_"},
			wantLine: 3,
			wantMsg:  "text is",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Patch(docName, document, index(t, tt.rows...))
			if !errors.Is(err, ErrConsistency) {
				t.Fatalf("expected ErrConsistency, got %v", err)
			}
			var pe *PatchError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *PatchError, got %T", err)
			}
			if pe.Document != docName || pe.SentenceID != "doc1_s1" {
				t.Errorf("context = %s/%s", pe.Document, pe.SentenceID)
			}
			if pe.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", pe.Line, tt.wantLine)
			}
			if pe.WordID != tt.wantWord {
				t.Errorf("WordID = %q, want %q", pe.WordID, tt.wantWord)
			}
			if !strings.Contains(pe.Msg, tt.wantMsg) {
				t.Errorf("Msg = %q, want substring %q", pe.Msg, tt.wantMsg)
			}
		})
	}
}

func TestPatch_NewValueSkipsOldCheck(t *testing.T) {
	// Old values are only verified for columns left unchanged.
	idx := index(t,
		"doc1.conllu",
		"doc1_s1",
		"Hello world.",
		"2\tworld\tVERB\tV\tMood=Ind\tPROPN\tH\tNumber=Sing",
	)

	res, err := Patch(docName, document, idx)
	if err != nil {
		t.Fatalf("Patch() error = %v", err)
	}
	want := "2\tworld\tworld\tPROPN\tH\tNumber=Sing\t1\tvocative\t_\tSpaceAfter=No"
	if res.Lines[4] != want {
		t.Errorf("line 5 = %q, want %q", res.Lines[4], want)
	}
}

func TestPatch_MissingTextMarker(t *testing.T) {
	doc := []string{
		"# sent_id = doc1_s1",
		"1\tHello\thello\tINTJ\tI\t_\t0\troot\t_\t_",
		"2\tworld\tworld\tNOUN\tS\t_\t1\tvocative\t_\t_",
	}
	idx := index(t, "doc1.conllu", "doc1_s1", "Hello world.", "2\tworld\tNOUN\tS\t_\tPROPN\tH\t_")

	_, err := Patch(docName, doc, idx)
	if !errors.Is(err, ErrConsistency) {
		t.Fatalf("expected ErrConsistency, got %v", err)
	}
}

func TestPatch_ShortRecordChecksOldValues(t *testing.T) {
	// A record without NEW_XPOS and NEW_FEATS keeps those columns, which
	// must then hold the recorded old values.
	idx := index(t, "doc1.conllu", "doc1_s1", "Hello world.", "2\tworld\tNOUN\tS\t_\tPROPN")

	res, err := Patch(docName, document, idx)
	if err != nil {
		t.Fatalf("Patch() error = %v", err)
	}
	want := "2\tworld\tworld\tPROPN\tS\t_\t1\tvocative\t_\tSpaceAfter=No"
	if res.Lines[4] != want {
		t.Errorf("line 5 = %q, want %q", res.Lines[4], want)
	}

	idx = index(t, "doc1.conllu", "doc1_s1", "Hello world.", "2\tworld\tNOUN\tH\t_\tPROPN")
	_, err = Patch(docName, document, idx)
	if !errors.Is(err, ErrConsistency) {
		t.Fatalf("expected ErrConsistency, got %v", err)
	}
	var pe *PatchError
	if !errors.As(err, &pe) || !strings.Contains(pe.Msg, `XPOS is "S", change list expects "H"`) {
		t.Errorf("unexpected error %v", err)
	}
}

func TestPatch_SentIDClearsText(t *testing.T) {
	doc := []string{
		"# sent_id = doc1_s1",
		"# text = Hello world.",
		"1\tHello\thello\tINTJ\tI\t_\t0\troot\t_\t_",
		"",
		"# sent_id = doc1_s2",
		"1\tfactory\tfactory\tNOUN\tS\t_\t0\troot\t_\t_",
	}
	idx := index(t, "doc1.conllu", "doc1_s2", "factory", "1\tfactory\tNOUN\tS\t_\tX\t\t")

	_, err := Patch(docName, doc, idx)
	if !errors.Is(err, ErrConsistency) {
		t.Fatalf("expected ErrConsistency, got %v", err)
	}
	var pe *PatchError
	if !errors.As(err, &pe) || pe.SentenceID != "doc1_s2" || pe.Line != 6 {
		t.Errorf("unexpected error %v", err)
	}
}

func TestPatch_TextBeforeSentID(t *testing.T) {
	doc := []string{
		"# sent_id = doc1_s1",
		"# text = Hello world.",
		"1\tHello\thello\tINTJ\tI\t_\t0\troot\t_\t_",
		"",
		"# text = 9 factory",
		"# sent_id = doc1_s2",
		"1\t9\t9\tNUM\tN\tNumType=Card\t2\tnummod\t_\t_",
		"2\tfactory\tfactory\tNOUN\tS\t_\t0\troot\t_\t_",
	}

	t.Run("applied", func(t *testing.T) {
		idx := index(t, "doc1.conllu", "doc1_s2", "9 factory", "2\tfactory\tNOUN\tS\t_\tX\tT\t")
		res, err := Patch(docName, doc, idx)
		if err != nil {
			t.Fatalf("Patch() error = %v", err)
		}
		want := []changeset.Key{{Document: docName, SentenceID: "doc1_s2", WordID: "2"}}
		if diff := cmp.Diff(want, res.Applied); diff != "" {
			t.Errorf("Applied mismatch (-want +got):\n%s", diff)
		}
		if !strings.HasPrefix(res.Lines[7], "2\tfactory\tfactory\tX\tT\t_") {
			t.Errorf("line 8 = %q", res.Lines[7])
		}
	})

	t.Run("text checked against following sent_id", func(t *testing.T) {
		idx := index(t, "doc1.conllu", "doc1_s2", "Nine factory", "2\tfactory\tNOUN\tS\t_\tX\tT\t")
		_, err := Patch(docName, doc, idx)
		var pe *PatchError
		if !errors.As(err, &pe) || !errors.Is(err, ErrConsistency) {
			t.Fatalf("expected consistency *PatchError, got %v", err)
		}
		if pe.SentenceID != "doc1_s2" || pe.Line != 6 {
			t.Errorf("context = %s line %d", pe.SentenceID, pe.Line)
		}
	})
}

func TestPatch_MalformedDocument(t *testing.T) {
	idx := index(t, "doc1.conllu", "doc1_s1", "Hello world.", "2\tworld\tNOUN\tS\t_\tPROPN\tH\t_")

	tests := []struct {
		name  string
		lines []string
	}{
		{"short data line", []string{"1\tHello\thello\tINTJ"}},
		{"long data line", []string{"1\tHello world\thello\tINTJ\tI\t_\t0\troot\t_\t_"}},
		{"unknown comment", []string{"# newpar"}},
		{"sent_id without value", []string{"# sent_id"}},
		{"text without value", []string{"# sent_id = doc1_s1", "# text"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Patch(docName, tt.lines, idx)
			if !errors.Is(err, ErrMalformedDocument) {
				t.Fatalf("expected ErrMalformedDocument, got %v", err)
			}
			if errors.Is(err, ErrConsistency) {
				t.Error("malformed document must not match ErrConsistency")
			}
		})
	}
}

func TestPatcher_AllowUnknownComments(t *testing.T) {
	idx := index(t, "doc1.conllu", "doc1_s1", "Hello world.", "2\tworld\tNOUN\tS\t_\tPROPN\tH\t_")
	lines := []string{
		"# newpar id = p1",
		"# sent_id = doc1_s1",
		"# text = Hello world.",
		"# text_en = Hello world.",
		"2\tworld\tworld\tNOUN\tS\t_\t0\troot\t_\t_",
	}

	res, err := NewPatcher(idx, WithAllowUnknownComments(true)).Patch(docName, lines)
	if err != nil {
		t.Fatalf("Patch() error = %v", err)
	}
	if res.Lines[0] != lines[0] || res.Lines[3] != lines[3] {
		t.Errorf("comments not copied: %q", res.Lines[:4])
	}
	if len(res.Applied) != 1 {
		t.Errorf("Applied = %v, want 1 entry", res.Applied)
	}
}

func TestPatch_TextWithEquals(t *testing.T) {
	lines := []string{
		"# sent_id = doc1_s3",
		"# text = x = 1",
		"1\tx\tx\tSYM\tJ\t_\t0\troot\t_\t_",
	}
	idx := index(t, "doc1.conllu", "doc1_s3", "x = 1", "1\tx\tSYM\tJ\t_\tX\t\t")

	res, err := Patch(docName, lines, idx)
	if err != nil {
		t.Fatalf("Patch() error = %v", err)
	}
	if !strings.HasPrefix(res.Lines[2], "1\tx\tx\tX\tJ") {
		t.Errorf("line 3 = %q", res.Lines[2])
	}
}

func TestPatchError_Error(t *testing.T) {
	err := &PatchError{
		Document:   "doc1.conllu",
		Line:       5,
		SentenceID: "doc1_s1",
		WordID:     "2",
		Msg:        "boom",
		Err:        ErrConsistency,
	}
	want := "conllu: doc1.conllu:5: sentence doc1_s1 word 2: boom"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestParseComment(t *testing.T) {
	tests := []struct {
		line     string
		key      string
		value    string
		hasValue bool
	}{
		{"# sent_id = a_1", "sent_id", "a_1", true},
		{"#text=Hi", "text", "Hi", true},
		{"# newdoc", "newdoc", "", false},
		{"# newdoc id = x", "newdoc id", "x", true},
		{"# text = a = b", "text", "a = b", true},
	}

	for _, tt := range tests {
		key, value, ok := parseComment(tt.line)
		if key != tt.key || value != tt.value || ok != tt.hasValue {
			t.Errorf("parseComment(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.line, key, value, ok, tt.key, tt.value, tt.hasValue)
		}
	}
}
