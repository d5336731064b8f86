package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/knot-data/go-knot/token"
	"github.com/knot-data/go-knot/tree"
)

type EncState struct {
	depth, indent int
	pretty        bool

	Color func(tree.Type, ColorAttr, string) string
}

// Encode writes the JSON form of node to w. The default mode is compact
// (no inserted whitespace); EncodePretty selects two-space indented
// output with a newline after every element and one trailing newline.
func Encode(node *tree.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	if es.pretty {
		return writeString(w, "\n")
	}
	return nil
}

func encode(node *tree.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case tree.NullType:
		return writeValue(w, es, node.Type, "null")
	case tree.BoolType:
		return writeValue(w, es, node.Type, strconv.FormatBool(node.BoolValue()))
	case tree.IntType:
		return writeValue(w, es, node.Type, strconv.FormatInt(node.IntValue(), 10))
	case tree.FloatType:
		f := node.FloatValue()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return fmt.Errorf("%w: non-finite float %v", ErrUnsupportedValue, f)
		}
		return writeValue(w, es, node.Type, formatFloat(f))
	case tree.StringType:
		return writeValue(w, es, node.Type, token.Quote(node.StringValue()))
	case tree.ArrayType:
		return encodeArray(node, w, es)
	case tree.ObjectType:
		return encodeObject(node, w, es)
	default:
		panic("type")
	}
}

// formatFloat keeps the decimal point a Float carries: a value that
// happens to be integral still encodes with a fractional part so it
// decodes back as Float.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func encodeArray(node *tree.Node, w io.Writer, es *EncState) error {
	n := node.Count()
	if n == 0 {
		return writeSep(w, es, node.Type, "[]")
	}
	if err := writeSep(w, es, node.Type, "["); err != nil {
		return err
	}
	es.depth++
	it := node.Iterator()
	i := 0
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if i > 0 {
			if err := writeSep(w, es, node.Type, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
		i++
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, node.Type, "]")
}

func encodeObject(node *tree.Node, w io.Writer, es *EncState) error {
	items := node.Items()
	if len(items) == 0 {
		return writeSep(w, es, node.Type, "{}")
	}
	if err := writeSep(w, es, node.Type, "{"); err != nil {
		return err
	}
	es.depth++
	for i, kv := range items {
		if i > 0 {
			if err := writeSep(w, es, node.Type, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		key := token.Quote(kv.Key)
		if es.Color != nil {
			key = es.Color(node.Type, FieldColor, key)
		}
		if err := writeString(w, key); err != nil {
			return err
		}
		sep := ":"
		if es.pretty {
			sep = ": "
		}
		if err := writeSep(w, es, node.Type, sep); err != nil {
			return err
		}
		if err := encode(kv.Val, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, node.Type, "}")
}

// Helper functions for writing

func writeNL(w io.Writer, es *EncState) error {
	if !es.pretty {
		return nil
	}
	indentString := strings.Repeat(" ", es.indent*es.depth)
	return writeString(w, "\n"+indentString)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func writeValue(w io.Writer, es *EncState, t tree.Type, v string) error {
	if es.Color != nil {
		v = es.Color(t, ValueColor, v)
	}
	return writeString(w, v)
}

func writeSep(w io.Writer, es *EncState, t tree.Type, sep string) error {
	if es.Color != nil {
		sep = es.Color(t, SepColor, sep)
	}
	return writeString(w, sep)
}
