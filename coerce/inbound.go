package coerce

import (
	"fmt"

	"github.com/knot-data/go-knot/tree"
)

// Inbound coercion: resolve a path and convert the result into one exact
// primitive type. A path that does not resolve, or resolves to the wrong
// variant, is ErrUnknownReference; the caller decides default, skip or
// abort.

// ToString requires p to resolve to a String leaf.
func ToString(s *tree.Store, p string) (string, error) {
	n, err := resolveAs(s, p, tree.StringType)
	if err != nil {
		return "", err
	}
	return n.StringValue(), nil
}

// ToInt requires p to resolve to an Int leaf.
func ToInt(s *tree.Store, p string) (int64, error) {
	n, err := resolveAs(s, p, tree.IntType)
	if err != nil {
		return 0, err
	}
	return n.IntValue(), nil
}

// ToFloat requires p to resolve to a Float leaf.
func ToFloat(s *tree.Store, p string) (float64, error) {
	n, err := resolveAs(s, p, tree.FloatType)
	if err != nil {
		return 0, err
	}
	return n.FloatValue(), nil
}

// ToBool requires p to resolve to a Bool leaf.
func ToBool(s *tree.Store, p string) (bool, error) {
	n, err := resolveAs(s, p, tree.BoolType)
	if err != nil {
		return false, err
	}
	return n.BoolValue(), nil
}

func resolveAs(s *tree.Store, p string, want tree.Type) (*tree.Node, error) {
	n := s.GetValue(p)
	if n == nil {
		return nil, fmt.Errorf("%w: %q", tree.ErrUnknownReference, p)
	}
	if n.Type != want {
		return nil, fmt.Errorf("%w: %q is %s, want %s",
			tree.ErrUnknownReference, p, n.Type, want)
	}
	return n, nil
}
