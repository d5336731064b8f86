// Package tree provides the dynamic value tree used to assemble and
// query hierarchical data for rendering.
//
// # Overview
//
// A tree is built from Nodes, a closed variant over Object, Array,
// String, Int, Float, Bool and Null. Every Node is allocated from a
// Store, which owns all memory reachable from it: nodes, duplicated
// object keys, the accumulated output text and the encode scratch
// buffer. Destroying or Resetting the Store releases everything at
// once; individual nodes are never freed.
//
// # Building
//
//	s := tree.NewStore()
//	root, err := s.Object()        // first request fixes the root variant
//	root.Put("name", s.NewString("alice"))
//	items, _ := s.Array()          // fails: root already fixed as Object
//
// Constructors like NewString and NewObject create detached nodes; they
// join the tree when inserted with Put or Append. Put with an existing
// key replaces the stored child; the old child stays alive until the
// Store is torn down or Reset.
//
// # Querying
//
//	n := s.GetValue("foo.bar.2.baz")
//	v, err := s.GetValueString("user.name")
//
// GetValue consults the overlay object first when one is installed (see
// SetOverlay), then the root. Overlay keys shadow the root; they are
// never merged into it.
//
// # Concurrency
//
// A Store is for exclusive use by one logical operation at a time.
// Concurrent mutation of the same Store is undefined behavior.
//
// # Related Packages
//
//   - github.com/knot-data/go-knot/parse - decode JSON into a Store
//   - github.com/knot-data/go-knot/encode - encode trees to JSON
//   - github.com/knot-data/go-knot/coerce - typed conversion boundary
package tree
