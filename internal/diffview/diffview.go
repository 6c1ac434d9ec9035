// Package diffview renders line diffs between an input document and its
// patched output.
package diffview

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Printer renders diffs, optionally with ANSI colours.
type Printer struct {
	header func(a ...interface{}) string
	hunk   func(a ...interface{}) string
	del    func(a ...interface{}) string
	ins    func(a ...interface{}) string
}

// New creates a Printer. Colours are emitted only when colorize is true.
func New(colorize bool) *Printer {
	mk := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return &Printer{
		header: mk(color.Bold),
		hunk:   mk(color.FgCyan),
		del:    mk(color.FgRed),
		ins:    mk(color.FgGreen),
	}
}

// Render returns a diff of before and after, or "" when they are equal.
func (p *Printer) Render(name string, before, after []string) string {
	dmp := diffpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(joinLines(before), joinLines(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var out strings.Builder
	oldLine, newLine := 1, 1
	inHunk := false
	changed := false

	for _, d := range diffs {
		lines := splitLines(d.Text)
		switch d.Type {
		case diffpatch.DiffEqual:
			oldLine += len(lines)
			newLine += len(lines)
			inHunk = false
			continue
		}

		if !changed {
			out.WriteString(p.header(fmt.Sprintf("--- a/%s", name)) + "\n")
			out.WriteString(p.header(fmt.Sprintf("+++ b/%s", name)) + "\n")
			changed = true
		}
		if !inHunk {
			out.WriteString(p.hunk(fmt.Sprintf("@@ -%d +%d @@", oldLine, newLine)) + "\n")
			inHunk = true
		}

		switch d.Type {
		case diffpatch.DiffDelete:
			for _, l := range lines {
				out.WriteString(p.del("-"+l) + "\n")
			}
			oldLine += len(lines)
		case diffpatch.DiffInsert:
			for _, l := range lines {
				out.WriteString(p.ins("+"+l) + "\n")
			}
			newLine += len(lines)
		}
	}

	return out.String()
}

func joinLines(lines []string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
