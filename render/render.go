// Package render holds the registry of named, rendered strings the
// value-tree engine serves. Compiled templates register themselves by
// logical name; a render binds a Store, optionally installs a partial
// overlay, runs the template's routine and hands back the Store's
// accumulated output.
package render

import (
	"fmt"
	"hash/fnv"

	"github.com/knot-data/go-knot/debug"
	"github.com/knot-data/go-knot/tree"
)

// Func renders one template into the Store's output buffer, reading data
// through the Store's resolution and coercion APIs.
type Func func(*tree.Store) error

type Template struct {
	Name   string
	ID     string
	Render Func
}

// Registry maps logical template names to render routines. Registration
// of a duplicate name is a validation failure returned to the caller,
// not a process abort; the host application controls failure handling.
type Registry struct {
	byName map[string]*Template
	order  []string
}

func NewRegistry() *Registry {
	return &Registry{byName: map[string]*Template{}}
}

// Add registers fn under name and returns the template with its
// generated ID.
func (r *Registry) Add(name string, fn Func) (*Template, error) {
	if _, ok := r.byName[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateTemplate, name)
	}
	t := &Template{Name: name, ID: TemplateID(name), Render: fn}
	r.byName[name] = t
	r.order = append(r.order, name)
	return t, nil
}

// Lookup returns the template registered under name.
func (r *Registry) Lookup(name string) (*Template, error) {
	t, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingTemplate, name)
	}
	return t, nil
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	res := make([]string, len(r.order))
	copy(res, r.order)
	return res
}

// Render runs the named template against s. A non-nil overlay is
// installed for the duration of the render and removed afterwards; its
// keys shadow the root but are never merged into it. The accumulated
// output of s is returned.
func (r *Registry) Render(name string, s *tree.Store, overlay *tree.Node) (string, error) {
	t, err := r.Lookup(name)
	if err != nil {
		return "", err
	}
	if overlay != nil {
		if err := s.SetOverlay(overlay); err != nil {
			return "", err
		}
		defer s.ClearOverlay()
	}
	if debug.Render() {
		debug.Logf("render %q (%s)\n", t.Name, t.ID)
	}
	if err := t.Render(s); err != nil {
		return "", err
	}
	return s.Output(), nil
}

// TemplateID derives the stable per-template identifier used in compiled
// routine names and the manifest.
func TemplateID(name string) string {
	h := fnv.New64a()
	h.Write([]byte(name))
	return fmt.Sprintf("t%016x", h.Sum64())
}
