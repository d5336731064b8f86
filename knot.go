// Package knot assembles, queries and serializes dynamic JSON-compatible
// value trees. The subpackages hold the engine; this package holds the
// operations that span encode and decode.
package knot

import (
	"github.com/knot-data/go-knot/encode"
	"github.com/knot-data/go-knot/parse"
	"github.com/knot-data/go-knot/tree"
)

// Clone deep-copies n into a node owned by dst by encoding to the
// canonical JSON form and decoding through the regular build path. The
// result shares no storage with the source tree.
func Clone(dst *tree.Store, n *tree.Node) (*tree.Node, error) {
	buf := dst.Scratch()
	if err := encode.Encode(n, buf); err != nil {
		return nil, err
	}
	// buf is dst's scratch buffer; detach the bytes before Parse
	// touches dst again
	d := append([]byte(nil), buf.Bytes()...)
	return parse.Parse(dst, d)
}

// FromJSON creates a Store with its root decoded from d.
func FromJSON(d []byte) (*tree.Store, error) {
	s := tree.NewStore()
	if err := parse.Bind(s, d); err != nil {
		return nil, err
	}
	return s, nil
}

// ToJSON returns the compact JSON form of the Store's root.
func ToJSON(s *tree.Store) ([]byte, error) {
	if s.Root() == nil {
		return nil, ErrNoRoot
	}
	buf := s.Scratch()
	if err := encode.Encode(s.Root(), buf); err != nil {
		return nil, err
	}
	return append([]byte(nil), buf.Bytes()...), nil
}

// ToPrettyJSON returns the indented JSON form of the Store's root, with
// a trailing newline.
func ToPrettyJSON(s *tree.Store) ([]byte, error) {
	if s.Root() == nil {
		return nil, ErrNoRoot
	}
	buf := s.Scratch()
	if err := encode.Encode(s.Root(), buf, encode.EncodePretty(true)); err != nil {
		return nil, err
	}
	return append([]byte(nil), buf.Bytes()...), nil
}
