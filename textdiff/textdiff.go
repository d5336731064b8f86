// Package textdiff reports line diffs between the encoded forms of two
// trees. Intended for test failure output and the CLI diff command, not
// for patching; see package merge for structural modification.
package textdiff

import (
	"bytes"
	"strings"

	"github.com/knot-data/go-knot/encode"
	"github.com/knot-data/go-knot/tree"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a line-oriented diff of the pretty JSON forms of from and
// to, with "-"/"+"/" " prefixes. Equal trees yield an empty string.
func Diff(from, to *tree.Node) string {
	if tree.Eql(from, to) {
		return ""
	}
	a := prettyString(from)
	b := prettyString(to)
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(ca, cb, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var out strings.Builder
	for i := range diffs {
		d := &diffs[i]
		prefix := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		for _, ln := range splitKeepNonEmpty(d.Text) {
			out.WriteString(prefix)
			out.WriteString(ln)
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func prettyString(n *tree.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(n, buf, encode.EncodePretty(true)); err != nil {
		panic(err)
	}
	return buf.String()
}

func splitKeepNonEmpty(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
