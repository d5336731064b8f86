package textdiff

import (
	"strings"
	"testing"

	"github.com/knot-data/go-knot/parse"
	"github.com/knot-data/go-knot/tree"
)

func mustParse(t *testing.T, s *tree.Store, doc string) *tree.Node {
	t.Helper()
	n, err := parse.Parse(s, []byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestDiff_Equal(t *testing.T) {
	s := tree.NewStore()
	a := mustParse(t, s, `{"a": 1, "b": [true]}`)
	b := mustParse(t, s, `{"b": [true], "a": 1}`)
	if d := Diff(a, b); d != "" {
		t.Errorf("equal trees produced a diff:\n%s", d)
	}
}

func TestDiff_Changed(t *testing.T) {
	s := tree.NewStore()
	from := mustParse(t, s, `{"a": 1, "b": 2}`)
	to := mustParse(t, s, `{"a": 1, "b": 3}`)
	d := Diff(from, to)
	if d == "" {
		t.Fatal("no diff for changed trees")
	}
	if !strings.Contains(d, `-  "b": 2`) {
		t.Errorf("missing deletion:\n%s", d)
	}
	if !strings.Contains(d, `+  "b": 3`) {
		t.Errorf("missing insertion:\n%s", d)
	}
	if !strings.Contains(d, ` {`) {
		t.Errorf("missing context line:\n%s", d)
	}
	// every line carries a diff prefix
	for _, ln := range strings.Split(strings.TrimRight(d, "\n"), "\n") {
		if len(ln) == 0 {
			continue
		}
		switch ln[0] {
		case ' ', '-', '+':
		default:
			t.Errorf("line without prefix: %q", ln)
		}
	}
}

func TestDiff_Added(t *testing.T) {
	s := tree.NewStore()
	from := mustParse(t, s, `[1]`)
	to := mustParse(t, s, `[1, 2]`)
	d := Diff(from, to)
	if !strings.Contains(d, "+  2") {
		t.Errorf("diff:\n%s", d)
	}
}
