package diffview

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	before := []string{
		"# sent_id = doc1_s1",
		"# text = Hello world.",
		"1\tHello\thello\tINTJ\tI\t_\t0\troot\t_\t_",
		"2\tworld\tworld\tNOUN\tS\t_\t1\tvocative\t_\t_",
		"",
	}
	after := append([]string(nil), before...)
	after[3] = "2\tworld\tworld\tPROPN\tH\t_\t1\tvocative\t_\t_"

	got := New(false).Render("doc1.conllu", before, after)
	want := strings.Join([]string{
		"--- a/doc1.conllu",
		"+++ b/doc1.conllu",
		"@@ -4 +4 @@",
		"-" + before[3],
		"+" + after[3],
		"",
	}, "\n")
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRender_Equal(t *testing.T) {
	lines := []string{"# sent_id = a_1", "1\ta\ta\tX\tX\t_\t0\troot\t_\t_", ""}
	if got := New(false).Render("a.conllu", lines, lines); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}

func TestRender_Colorized(t *testing.T) {
	got := New(true).Render("a.conllu", []string{"x"}, []string{"y"})
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected ANSI escapes, got %q", got)
	}
}

func TestRender_MultipleHunks(t *testing.T) {
	before := []string{"a", "b", "c", "d", "e"}
	after := []string{"A", "b", "c", "d", "E"}

	got := New(false).Render("x", before, after)
	if strings.Count(got, "@@") != 4 {
		t.Errorf("expected two hunks, got:\n%s", got)
	}
	if !strings.Contains(got, "@@ -5 +5 @@") {
		t.Errorf("missing second hunk header:\n%s", got)
	}
}
