package tree

type KeyVal struct {
	Key string
	Val *Node
}

// Items returns the (key, value) pairs of an object, materialized up
// front. Returns nil for non-objects.
func (n *Node) Items() []KeyVal {
	if n.Type != ObjectType {
		return nil
	}
	res := make([]KeyVal, len(n.keys))
	for i, k := range n.keys {
		res[i] = KeyVal{Key: k, Val: n.vals[i]}
	}
	return res
}

// Keys returns the keys of an object in insertion order.
func (n *Node) Keys() []string {
	if n.Type != ObjectType {
		return nil
	}
	res := make([]string, len(n.keys))
	copy(res, n.keys)
	return res
}

// ArrayIter is a forward, single-pass cursor over an array's elements.
// It is not restartable; obtain a fresh cursor from Iterator.
type ArrayIter struct {
	n *Node
	i int
}

// Iterator returns a cursor positioned before the first element. Returns
// an exhausted cursor for non-arrays.
func (n *Node) Iterator() *ArrayIter {
	if n.Type != ArrayType {
		return &ArrayIter{}
	}
	return &ArrayIter{n: n}
}

// Next returns the next element, or (nil, false) at end of sequence.
func (it *ArrayIter) Next() (*Node, bool) {
	if it.n == nil || it.i >= len(it.n.vals) {
		return nil, false
	}
	v := it.n.vals[it.i]
	it.i++
	return v, true
}
