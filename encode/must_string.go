package encode

import (
	"bytes"

	"github.com/knot-data/go-knot/tree"
)

// MustString returns the compact JSON form of node. It panics on write
// errors, which a bytes.Buffer does not produce.
func MustString(node *tree.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return buf.String()
}
