package tree

// Interface converts a node to its native Go form: map[string]any for
// objects, []any for arrays, int64/float64/string/bool for scalars, nil
// for null. The result shares no storage with the Store.
func (n *Node) Interface() any {
	switch n.Type {
	case NullType:
		return nil
	case BoolType:
		return n.b
	case IntType:
		return n.i64
	case FloatType:
		return n.f64
	case StringType:
		// copy out of arena storage
		return string(append([]byte(nil), n.str...))
	case ArrayType:
		res := make([]any, len(n.vals))
		for i, v := range n.vals {
			res[i] = v.Interface()
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(n.keys))
		for i, k := range n.keys {
			res[string(append([]byte(nil), k...))] = n.vals[i].Interface()
		}
		return res
	default:
		panic("type")
	}
}
