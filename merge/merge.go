// Package merge applies JSON Patch (RFC 6902) and JSON Merge Patch
// (RFC 7386) documents to trees. Unlike the overlay, which only shadows
// during resolution, a merge produces a new tree with the change applied
// permanently.
//
// Patches run over the canonical JSON text form: the document and patch
// are encoded, patched as bytes, and the result decoded back into the
// destination Store.
package merge

import (
	"github.com/knot-data/go-knot/encode"
	"github.com/knot-data/go-knot/parse"
	"github.com/knot-data/go-knot/tree"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch applies an RFC 6902 patch (an array of operations) to doc and
// returns the patched tree, allocated from dst.
func Patch(dst *tree.Store, doc, patch *tree.Node) (*tree.Node, error) {
	pd, err := encodeBytes(dst, patch)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return nil, err
	}
	dd, err := encodeBytes(dst, doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(dd)
	if err != nil {
		return nil, err
	}
	return parse.Parse(dst, out)
}

// MergePatch applies an RFC 7386 merge patch to doc and returns the
// merged tree, allocated from dst.
func MergePatch(dst *tree.Store, doc, patch *tree.Node) (*tree.Node, error) {
	dd, err := encodeBytes(dst, doc)
	if err != nil {
		return nil, err
	}
	pd, err := encodeBytes(dst, patch)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(dd, pd)
	if err != nil {
		return nil, err
	}
	return parse.Parse(dst, out)
}

func encodeBytes(s *tree.Store, n *tree.Node) ([]byte, error) {
	buf := s.Scratch()
	if err := encode.Encode(n, buf); err != nil {
		return nil, err
	}
	// copy: the scratch buffer is reused by the next encode
	return append([]byte(nil), buf.Bytes()...), nil
}
