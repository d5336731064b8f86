package tree

import "strconv"

// Node is a single value in a tree. Nodes are allocated from a Store and
// referenced by pointer thereafter; the variant Type is fixed at
// construction and never changes. Mutation means inserting or replacing
// children of Object and Array nodes, not retagging.
type Node struct {
	Type Type

	store *Store

	str string
	i64 int64
	f64 float64
	b   bool

	// keys[i] is the key for vals[i] on ObjectType; on ArrayType vals
	// holds the elements and keys is nil.
	keys []string
	vals []*Node
}

// Put inserts or replaces the child stored under key. A nil value writes a
// Null node rather than erasing the key. The key is copied into Store-owned
// storage; the previous child, if any, stays alive until Store teardown.
func (n *Node) Put(key string, v *Node) {
	if n.Type != ObjectType {
		panic("tree: Put on " + n.Type.String())
	}
	if v == nil {
		v = n.store.NewNull()
	}
	for i, k := range n.keys {
		if k == key {
			n.vals[i] = v
			return
		}
	}
	n.keys = append(n.keys, n.store.copyString(key))
	n.vals = append(n.vals, v)
}

// Append adds v to the end of an array. A nil value appends a Null node.
func (n *Node) Append(v *Node) {
	if n.Type != ArrayType {
		panic("tree: Append on " + n.Type.String())
	}
	if v == nil {
		v = n.store.NewNull()
	}
	n.vals = append(n.vals, v)
}

// Get returns the child stored under key, or nil if n is not an object or
// the key is absent.
func (n *Node) Get(key string) *Node {
	if n.Type != ObjectType {
		return nil
	}
	for i, k := range n.keys {
		if k == key {
			return n.vals[i]
		}
	}
	return nil
}

// At returns the i'th element of an array, or nil if n is not an array or
// i is out of range.
func (n *Node) At(i int) *Node {
	if n.Type != ArrayType {
		return nil
	}
	if i < 0 || i >= len(n.vals) {
		return nil
	}
	return n.vals[i]
}

// Count returns the number of children of a container. It panics on
// scalars, which have no children.
func (n *Node) Count() int {
	switch n.Type {
	case ObjectType, ArrayType:
		return len(n.vals)
	}
	panic("tree: Count on " + n.Type.String())
}

// Typed fetches. Each returns the unwrapped native scalar stored under key
// and whether it was present with the requested variant. Absence and a
// variant mismatch are both reported with ok == false, never an error.

func (n *Node) GetString(key string) (string, bool) {
	c := n.Get(key)
	if c == nil || c.Type != StringType {
		return "", false
	}
	return c.str, true
}

func (n *Node) GetInt(key string) (int64, bool) {
	c := n.Get(key)
	if c == nil || c.Type != IntType {
		return 0, false
	}
	return c.i64, true
}

func (n *Node) GetFloat(key string) (float64, bool) {
	c := n.Get(key)
	if c == nil || c.Type != FloatType {
		return 0, false
	}
	return c.f64, true
}

func (n *Node) GetBool(key string) (bool, bool) {
	c := n.Get(key)
	if c == nil || c.Type != BoolType {
		return false, false
	}
	return c.b, true
}

func (n *Node) GetObject(key string) *Node {
	c := n.Get(key)
	if c == nil || c.Type != ObjectType {
		return nil
	}
	return c
}

func (n *Node) GetArray(key string) *Node {
	c := n.Get(key)
	if c == nil || c.Type != ArrayType {
		return nil
	}
	return c
}

// Scalar accessors. Zero values are returned on variant mismatch.

func (n *Node) StringValue() string {
	if n.Type != StringType {
		return ""
	}
	return n.str
}

func (n *Node) IntValue() int64 {
	if n.Type != IntType {
		return 0
	}
	return n.i64
}

func (n *Node) FloatValue() float64 {
	if n.Type != FloatType {
		return 0
	}
	return n.f64
}

func (n *Node) BoolValue() bool {
	if n.Type != BoolType {
		return false
	}
	return n.b
}

// String returns the display form of a node: the textual form for scalars,
// empty for Null and for containers, which have no string form.
func (n *Node) String() string {
	switch n.Type {
	case StringType:
		return n.str
	case IntType:
		return strconv.FormatInt(n.i64, 10)
	case FloatType:
		return strconv.FormatFloat(n.f64, 'f', -1, 64)
	case BoolType:
		return strconv.FormatBool(n.b)
	default:
		return ""
	}
}

// Truth reports the truthiness of a node: non-empty for containers and
// strings, non-zero for numbers, the value for bools, false for null.
func (n *Node) Truth() bool {
	switch n.Type {
	case ObjectType, ArrayType:
		return len(n.vals) != 0
	case StringType:
		return n.str != ""
	case IntType:
		return n.i64 != 0
	case FloatType:
		return n.f64 != 0
	case BoolType:
		return n.b
	case NullType:
		return false
	default:
		panic("type")
	}
}
