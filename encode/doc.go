// Package encode encodes trees to JSON text.
//
// # Usage
//
//	s := tree.NewStore()
//	obj, _ := s.Object()
//	obj.Put("name", s.NewString("alice"))
//	obj.Put("age", s.NewInt(30))
//
//	// compact
//	err := encode.Encode(obj, w)
//
//	// pretty, two-space indent, trailing newline
//	err = encode.Encode(obj, w, encode.EncodePretty(true))
//
// # Related Packages
//
//   - github.com/knot-data/go-knot/tree - tree representation
//   - github.com/knot-data/go-knot/parse - decode JSON text to trees
package encode
