package tree

import (
	"fmt"

	"github.com/knot-data/go-knot/debug"
	"github.com/knot-data/go-knot/tree/path"
)

// GetValue resolves a dot-delimited path, consulting the overlay first
// when one is installed and it yields a match, then the root. Returns nil
// when the path does not resolve.
//
// Resolution consumes segments left to right: on an object the segment is
// a key, on an array it must be a non-negative integer index. A scalar
// reached before the path is exhausted short-circuits resolution and is
// returned as the result; remaining segments are ignored.
func (s *Store) GetValue(p string) *Node {
	segs := path.Parse(p)
	if s.overlay != nil {
		if n := resolve(s.overlay, segs); n != nil {
			if debug.Resolve() {
				debug.Logf("resolve %q: overlay hit\n", p)
			}
			return n
		}
	}
	if s.root == nil {
		return nil
	}
	return resolve(s.root, segs)
}

func resolve(n *Node, segs *path.Segment) *Node {
	for seg := segs; seg != nil; seg = seg.Next {
		switch n.Type {
		case ObjectType:
			n = n.Get(seg.Key)
			if n == nil {
				return nil
			}
		case ArrayType:
			if seg.Index == nil {
				return nil
			}
			n = n.At(*seg.Index)
			if n == nil {
				return nil
			}
		default:
			// scalar before the path is exhausted: documented
			// short-circuit, not an error
			return n
		}
	}
	return n
}

// Chain resolves an ordered key list restricted to object nesting,
// with the same overlay-then-root precedence as GetValue. A result is
// returned only when the last key lands exactly on a non-object leaf;
// nesting into a non-object early, or ending on an object, yields nil.
func (s *Store) Chain(keys []string) *Node {
	if len(keys) == 0 {
		return nil
	}
	if s.overlay != nil {
		if n := chainResolve(s.overlay, keys); n != nil {
			return n
		}
	}
	if s.root == nil {
		return nil
	}
	return chainResolve(s.root, keys)
}

func chainResolve(n *Node, keys []string) *Node {
	for _, k := range keys {
		if n.Type != ObjectType {
			return nil
		}
		n = n.Get(k)
		if n == nil {
			return nil
		}
	}
	if n.Type == ObjectType {
		return nil
	}
	return n
}

// GetValueString resolves p and stringifies the result. Containers have
// no string form and yield an empty string, not an error. An unresolved
// path is ErrUnknownReference.
func (s *Store) GetValueString(p string) (string, error) {
	n := s.GetValue(p)
	if n == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownReference, p)
	}
	return n.String(), nil
}
