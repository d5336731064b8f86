// Package coerce is the trust boundary between statically typed call
// sites and the dynamically typed tree: it converts externally typed
// values into tree nodes or display strings, and resolved tree values
// back into exact scalar types.
//
// Both directions work over a closed classification. An external value
// outside the declared set is ErrUnsupportedType, a programming error in
// the calling layer rather than a runtime data condition.
package coerce

import (
	"fmt"
	"math"
	"strconv"

	"github.com/knot-data/go-knot/debug"
	"github.com/knot-data/go-knot/tree"
)

// String produces the display string of an externally typed value.
// Booleans and integers use their default textual form, floats the
// non-exponential decimal form, byte strings pass through, nil-valued
// optionals contribute nothing, and tree nodes delegate to their own
// display form.
func String(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case *string:
		if v == nil {
			return "", nil
		}
		return *v, nil
	case *int:
		if v == nil {
			return "", nil
		}
		return strconv.FormatInt(int64(*v), 10), nil
	case *int64:
		if v == nil {
			return "", nil
		}
		return strconv.FormatInt(*v, 10), nil
	case *float64:
		if v == nil {
			return "", nil
		}
		return strconv.FormatFloat(*v, 'f', -1, 64), nil
	case *bool:
		if v == nil {
			return "", nil
		}
		return strconv.FormatBool(*v), nil
	case *tree.Node:
		if v == nil {
			return "", nil
		}
		return v.String(), nil
	default:
		if debug.Coerce() {
			debug.Logf("coerce: no textual form for %T\n", v)
		}
		return "", fmt.Errorf("%w: %T has no textual form",
			tree.ErrUnsupportedType, v)
	}
}

// Value converts an externally typed value into a node owned by s. The
// source classification is the same closed set as String; tree nodes
// pass through unchanged. An unsigned value above the signed integer
// range has no Int representation and is ErrUnsupportedType.
func Value(s *tree.Store, v any) (*tree.Node, error) {
	switch v := v.(type) {
	case nil:
		return s.NewNull(), nil
	case string:
		return s.NewString(v), nil
	case []byte:
		return s.NewString(string(v)), nil
	case bool:
		return s.NewBool(v), nil
	case int:
		return s.NewInt(int64(v)), nil
	case int8:
		return s.NewInt(int64(v)), nil
	case int16:
		return s.NewInt(int64(v)), nil
	case int32:
		return s.NewInt(int64(v)), nil
	case int64:
		return s.NewInt(v), nil
	case uint:
		if uint64(v) > math.MaxInt64 {
			return nil, fmt.Errorf("%w: uint %d overflows the integer range",
				tree.ErrUnsupportedType, v)
		}
		return s.NewInt(int64(v)), nil
	case uint8:
		return s.NewInt(int64(v)), nil
	case uint16:
		return s.NewInt(int64(v)), nil
	case uint32:
		return s.NewInt(int64(v)), nil
	case uint64:
		if v > math.MaxInt64 {
			return nil, fmt.Errorf("%w: uint64 %d overflows the integer range",
				tree.ErrUnsupportedType, v)
		}
		return s.NewInt(int64(v)), nil
	case float32:
		return s.NewFloat(float64(v)), nil
	case float64:
		return s.NewFloat(v), nil
	case *string:
		if v == nil {
			return s.NewNull(), nil
		}
		return s.NewString(*v), nil
	case *int:
		if v == nil {
			return s.NewNull(), nil
		}
		return s.NewInt(int64(*v)), nil
	case *int64:
		if v == nil {
			return s.NewNull(), nil
		}
		return s.NewInt(*v), nil
	case *float64:
		if v == nil {
			return s.NewNull(), nil
		}
		return s.NewFloat(*v), nil
	case *bool:
		if v == nil {
			return s.NewNull(), nil
		}
		return s.NewBool(*v), nil
	case *tree.Node:
		if v == nil {
			return s.NewNull(), nil
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: cannot build a value from %T",
			tree.ErrUnsupportedType, v)
	}
}
