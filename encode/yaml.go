package encode

import (
	"io"

	"github.com/knot-data/go-knot/tree"

	"github.com/goccy/go-yaml"
)

// EncodeYAML writes the YAML form of node to w. YAML is a secondary
// output form; JSON remains the canonical text form and the only one
// that decodes.
func EncodeYAML(node *tree.Node, w io.Writer) error {
	enc := yaml.NewEncoder(w, yaml.Indent(2))
	defer enc.Close()
	return enc.Encode(node.Interface())
}
