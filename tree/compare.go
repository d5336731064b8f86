package tree

import (
	"cmp"
	"strings"
)

// Eql reports deep structural equality. Scalars compare by value, arrays
// by length then pairwise, objects by key count then per-key lookup. Key
// insertion order is not significant for object equality; because keys
// are unique, the count check plus per-key lookup makes the relation
// symmetric.
func Eql(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.b == b.b
	case IntType:
		return a.i64 == b.i64
	case FloatType:
		return a.f64 == b.f64
	case StringType:
		return a.str == b.str
	case ArrayType:
		if len(a.vals) != len(b.vals) {
			return false
		}
		for i := range a.vals {
			if !Eql(a.vals[i], b.vals[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.keys) != len(b.keys) {
			return false
		}
		for i, k := range a.keys {
			if !Eql(a.vals[i], b.Get(k)) {
				return false
			}
		}
		return true
	}
	return false
}

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Unlike Eql, object comparison is positional, giving a total order
// usable for sorting.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case IntType:
		return cmp.Compare(a.i64, b.i64)
	case FloatType:
		return cmp.Compare(a.f64, b.f64)
	case StringType:
		return strings.Compare(a.str, b.str)
	case BoolType:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	case NullType:
		return 0
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Int < Float < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case IntType:
		return 2
	case FloatType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	}
	return 100
}

func compareArrays(a, b *Node) int {
	lenA := len(a.vals)
	lenB := len(b.vals)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.vals[i], b.vals[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareObjects(a, b *Node) int {
	lenA := len(a.keys)
	lenB := len(b.keys)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.keys[i], b.keys[i]); c != 0 {
			return c
		}
		if c := Compare(a.vals[i], b.vals[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
