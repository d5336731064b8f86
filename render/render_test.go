package render

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/knot-data/go-knot/parse"
	"github.com/knot-data/go-knot/tree"
)

func greet(s *tree.Store) error {
	name, err := s.GetValueString("user.name")
	if err != nil {
		return err
	}
	s.Write("hello " + name + "\n")
	return nil
}

func newStore(t *testing.T, doc string) *tree.Store {
	t.Helper()
	s := tree.NewStore()
	if err := parse.Bind(s, []byte(doc)); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestRegistry_Add(t *testing.T) {
	r := NewRegistry()
	tpl, err := r.Add("greet", greet)
	if err != nil {
		t.Fatal(err)
	}
	if tpl.Name != "greet" || tpl.ID != TemplateID("greet") {
		t.Errorf("template: %+v", tpl)
	}
	if _, err := r.Add("greet", greet); !errors.Is(err, ErrDuplicateTemplate) {
		t.Errorf("duplicate: got %v", err)
	}
	if _, err := r.Lookup("nope"); !errors.Is(err, ErrMissingTemplate) {
		t.Errorf("missing: got %v", err)
	}
}

func TestRegistry_Names(t *testing.T) {
	r := NewRegistry()
	for _, n := range []string{"c", "a", "b"} {
		if _, err := r.Add(n, greet); err != nil {
			t.Fatal(err)
		}
	}
	got := r.Names()
	want := []string{"c", "a", "b"}
	if len(got) != len(want) {
		t.Fatalf("names: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("names[%d]: %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRegistry_Render(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Add("greet", greet); err != nil {
		t.Fatal(err)
	}
	s := newStore(t, `{"user": {"name": "ada"}}`)
	out, err := r.Render("greet", s, nil)
	if err != nil {
		t.Fatal(err)
	}
	if out != "hello ada\n" {
		t.Errorf("out: %q", out)
	}
}

func TestRegistry_RenderOverlay(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Add("greet", greet); err != nil {
		t.Fatal(err)
	}
	s := newStore(t, `{"user": {"name": "ada"}}`)

	ov := s.NewObject()
	user := s.NewObject()
	user.Put("name", s.NewString("grace"))
	ov.Put("user", user)

	out, err := r.Render("greet", s, ov)
	if err != nil {
		t.Fatal(err)
	}
	if out != "hello grace\n" {
		t.Errorf("overlay out: %q", out)
	}
	if s.Overlay() != nil {
		t.Error("overlay still installed after render")
	}
	// the shadowing never touched the root
	if v, err := s.GetValueString("user.name"); err != nil || v != "ada" {
		t.Errorf("root after render: %q, %v", v, err)
	}
}

func TestRegistry_RenderError(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	if _, err := r.Add("bad", func(*tree.Store) error { return boom }); err != nil {
		t.Fatal(err)
	}
	s := newStore(t, `{}`)
	if _, err := r.Render("bad", s, nil); !errors.Is(err, boom) {
		t.Errorf("got %v", err)
	}
}

func TestTemplateID(t *testing.T) {
	id := TemplateID("greet")
	if len(id) != 17 || !strings.HasPrefix(id, "t") {
		t.Errorf("id: %q", id)
	}
	if id != TemplateID("greet") {
		t.Error("id not stable")
	}
	if id == TemplateID("other") {
		t.Error("distinct names share an id")
	}
}

func TestManifest(t *testing.T) {
	r := NewRegistry()
	for _, n := range []string{"one", "two"} {
		if _, err := r.Add(n, greet); err != nil {
			t.Fatal(err)
		}
	}
	s := tree.NewStore()
	m := r.Manifest(s)
	if m.Count() != 2 {
		t.Fatalf("count: %d", m.Count())
	}
	if v, _ := m.GetString("one"); v != TemplateID("one") {
		t.Errorf("one: %q", v)
	}

	path := filepath.Join(t.TempDir(), "manifest.json")
	if err := r.WriteManifest(path); err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(d), TemplateID("two")) {
		t.Errorf("manifest file:\n%s", d)
	}
}
