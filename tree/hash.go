package tree

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node. Object hashing is positional;
// it is a per-process hash, not a stable fingerprint.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("tree: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(n.Type))

	switch n.Type {
	case NullType:
	case BoolType:
		if n.b {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntType:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(n.i64))
		h.Write(b[:])
	case FloatType:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(n.f64))
		h.Write(b[:])
	case StringType:
		h.WriteString(n.str)
	case ArrayType:
		var b [8]byte
		for _, v := range n.vals {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case ObjectType:
		var b [8]byte
		for i, k := range n.keys {
			h.WriteString(k)
			binary.LittleEndian.PutUint64(b[:], n.vals[i].Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
