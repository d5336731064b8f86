package tree

import (
	"errors"
	"testing"
)

// buildRoot makes {"a": {"b": "leaf"}, "items": [1, 2, 3], "x": "root-val"}
func buildRoot(t *testing.T, s *Store) {
	t.Helper()
	root, err := s.Object()
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	a := s.NewObject()
	a.Put("b", s.NewString("leaf"))
	root.Put("a", a)
	items := s.NewArray()
	items.Append(s.NewInt(1))
	items.Append(s.NewInt(2))
	items.Append(s.NewInt(3))
	root.Put("items", items)
	root.Put("x", s.NewString("root-val"))
}

func TestGetValue(t *testing.T) {
	s := NewStore()
	buildRoot(t, s)

	tests := []struct {
		name string
		path string
		want string // "" means not found
	}{
		{name: "object key", path: "x", want: "root-val"},
		{name: "nested", path: "a.b", want: "leaf"},
		{name: "scalar short-circuit", path: "a.b.c.d", want: "leaf"},
		{name: "array index", path: "items.1", want: "2"},
		{name: "index out of range", path: "items.5"},
		{name: "non-numeric index", path: "items.x"},
		{name: "negative index", path: "items.-1"},
		{name: "missing key", path: "nope"},
		{name: "missing nested", path: "a.z"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := s.GetValue(tc.path)
			if tc.want == "" {
				if n != nil {
					t.Errorf("resolved to %s %q, want not found", n.Type, n)
				}
				return
			}
			if n == nil {
				t.Fatalf("not found, want %q", tc.want)
			}
			if got := n.String(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestGetValue_OverlayPrecedence(t *testing.T) {
	s := NewStore()
	buildRoot(t, s)
	ov := s.NewObject()
	ov.Put("x", s.NewString("overlay-val"))
	if err := s.SetOverlay(ov); err != nil {
		t.Fatalf("overlay: %v", err)
	}

	if got := s.GetValue("x").String(); got != "overlay-val" {
		t.Errorf("overlay key: got %q, want %q", got, "overlay-val")
	}
	// keys absent from the overlay fall through to the root
	if got := s.GetValue("a.b").String(); got != "leaf" {
		t.Errorf("root fallthrough: got %q, want %q", got, "leaf")
	}
	s.ClearOverlay()
	if got := s.GetValue("x").String(); got != "root-val" {
		t.Errorf("after clear: got %q, want %q", got, "root-val")
	}
	// the overlay shadows, it never merges: the root is unchanged
	if got, _ := s.Root().GetString("x"); got != "root-val" {
		t.Errorf("root mutated by overlay: %q", got)
	}
}

func TestChain(t *testing.T) {
	s := NewStore()
	root, _ := s.Object()
	a := s.NewObject()
	b := s.NewObject()
	b.Put("c", s.NewInt(1))
	a.Put("b", b)
	root.Put("a", a)
	root.Put("s", s.NewString("v"))

	tests := []struct {
		name string
		keys []string
		want string
	}{
		{name: "lands on leaf", keys: []string{"a", "b", "c"}, want: "1"},
		{name: "ends on object", keys: []string{"a", "b"}},
		{name: "nests into non-object", keys: []string{"s", "x"}},
		{name: "missing key", keys: []string{"a", "z", "c"}},
		{name: "single leaf", keys: []string{"s"}, want: "v"},
		{name: "empty", keys: nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := s.Chain(tc.keys)
			if tc.want == "" {
				if n != nil {
					t.Errorf("resolved to %q, want no result", n)
				}
				return
			}
			if n == nil {
				t.Fatalf("no result, want %q", tc.want)
			}
			if got := n.String(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestGetValueString(t *testing.T) {
	s := NewStore()
	buildRoot(t, s)

	got, err := s.GetValueString("a.b")
	if err != nil {
		t.Fatalf("scalar: %v", err)
	}
	if got != "leaf" {
		t.Errorf("got %q, want %q", got, "leaf")
	}

	// containers have no string form: empty, not an error
	got, err = s.GetValueString("a")
	if err != nil {
		t.Fatalf("container: %v", err)
	}
	if got != "" {
		t.Errorf("container: got %q, want empty", got)
	}

	if _, err = s.GetValueString("nope"); !errors.Is(err, ErrUnknownReference) {
		t.Fatalf("unresolved: got %v, want ErrUnknownReference", err)
	}
}

func TestGetValue_NoRoot(t *testing.T) {
	s := NewStore()
	if s.GetValue("anything") != nil {
		t.Fatalf("resolved without a root")
	}
}
