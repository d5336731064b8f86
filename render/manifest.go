package render

import (
	"bytes"

	"github.com/knot-data/go-knot/encode"
	"github.com/knot-data/go-knot/tree"

	"github.com/natefinch/atomic"
)

// Manifest builds the name-to-ID lookup object consumed by hosts that
// resolve templates by name at runtime. Nodes are allocated from s.
func (r *Registry) Manifest(s *tree.Store) *tree.Node {
	obj := s.NewObject()
	for _, name := range r.order {
		obj.Put(name, s.NewString(r.byName[name].ID))
	}
	return obj
}

// WriteManifest writes the manifest as pretty JSON to path, atomically
// so a concurrent reader never sees a torn file.
func (r *Registry) WriteManifest(path string) error {
	s := tree.NewStore()
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(r.Manifest(s), buf, encode.EncodePretty(true)); err != nil {
		return err
	}
	return atomic.WriteFile(path, buf)
}
