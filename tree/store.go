package tree

import (
	"bytes"
	"fmt"
	"unsafe"
)

const nodeChunkSize = 64

// Store owns all memory for one tree instance. Nodes and the key strings
// they reference are allocated from the Store and live exactly as long as
// it; there is no per-node deallocation. Replacing a child via Put leaves
// the old child alive until Reset.
//
// A Store and every node reachable from it are intended for exclusive use
// by one logical build/render operation at a time. There is no internal
// synchronization.
type Store struct {
	chunk []Node
	buf   []byte

	root    *Node
	overlay *Node
	consts  map[string]*Node

	out      []byte
	outFresh bool

	scratch bytes.Buffer
}

func NewStore() *Store {
	return &Store{outFresh: true}
}

// Reset discards the root, overlay, constants and buffers without
// destroying the Store, enabling instance reuse. Nodes allocated before
// Reset must not be used afterwards.
func (s *Store) Reset() {
	s.chunk = s.chunk[:0]
	s.buf = s.buf[:0]
	s.root = nil
	s.overlay = nil
	clear(s.consts)
	s.out = s.out[:0]
	s.outFresh = true
	s.scratch.Reset()
}

func (s *Store) newNode(t Type) *Node {
	if len(s.chunk) == cap(s.chunk) {
		// nodes in the old chunk stay reachable through their pointers
		s.chunk = make([]Node, 0, nodeChunkSize)
	}
	s.chunk = append(s.chunk, Node{Type: t, store: s})
	return &s.chunk[len(s.chunk)-1]
}

// copyString duplicates v into Store-owned storage, independent of the
// caller-supplied string's lifetime.
func (s *Store) copyString(v string) string {
	if v == "" {
		return ""
	}
	off := len(s.buf)
	s.buf = append(s.buf, v...)
	b := s.buf[off:]
	return unsafe.String(&b[0], len(b))
}

// Constructors. Each allocates a detached node owned by s.

func (s *Store) NewObject() *Node {
	return s.newNode(ObjectType)
}

func (s *Store) NewArray() *Node {
	return s.newNode(ArrayType)
}

func (s *Store) NewString(v string) *Node {
	n := s.newNode(StringType)
	n.str = s.copyString(v)
	return n
}

func (s *Store) NewInt(v int64) *Node {
	n := s.newNode(IntType)
	n.i64 = v
	return n
}

func (s *Store) NewFloat(v float64) *Node {
	n := s.newNode(FloatType)
	n.f64 = v
	return n
}

func (s *Store) NewBool(v bool) *Node {
	n := s.newNode(BoolType)
	n.b = v
	return n
}

func (s *Store) NewNull() *Node {
	return s.newNode(NullType)
}

// Object returns the root object, creating it if the Store has no root
// yet. The first root request fixes the root variant; if the root is
// already fixed as an array, Object fails with ErrIncompatibleRootType.
func (s *Store) Object() (*Node, error) {
	if s.root == nil {
		s.root = s.NewObject()
		return s.root, nil
	}
	if s.root.Type != ObjectType {
		return nil, fmt.Errorf("%w: root is %s, want Object",
			ErrIncompatibleRootType, s.root.Type)
	}
	return s.root, nil
}

// Array is the array counterpart of Object.
func (s *Store) Array() (*Node, error) {
	if s.root == nil {
		s.root = s.NewArray()
		return s.root, nil
	}
	if s.root.Type != ArrayType {
		return nil, fmt.Errorf("%w: root is %s, want Array",
			ErrIncompatibleRootType, s.root.Type)
	}
	return s.root, nil
}

// Root returns the root node, or nil if no root has been bound.
func (s *Store) Root() *Node {
	return s.root
}

// SetRoot binds n as the root. The root must be an object or an array, and
// once the variant is fixed only a root of the same variant may replace it.
func (s *Store) SetRoot(n *Node) error {
	switch n.Type {
	case ObjectType, ArrayType:
	default:
		return fmt.Errorf("%w: root must be Object or Array, got %s",
			ErrIncompatibleRootType, n.Type)
	}
	if s.root != nil && s.root.Type != n.Type {
		return fmt.Errorf("%w: root is %s, want %s",
			ErrIncompatibleRootType, s.root.Type, n.Type)
	}
	s.root = n
	return nil
}

// SetOverlay installs a secondary object consulted before the root during
// path resolution. Overlay keys shadow the root; they are never merged
// into it.
func (s *Store) SetOverlay(n *Node) error {
	if n.Type != ObjectType {
		return fmt.Errorf("%w: overlay must be Object, got %s",
			ErrIncompatibleRootType, n.Type)
	}
	s.overlay = n
	return nil
}

func (s *Store) ClearOverlay() {
	s.overlay = nil
}

func (s *Store) Overlay() *Node {
	return s.overlay
}

// RegisterConst registers a named constant for lookups in the current
// build. A nil value registers a Null node.
func (s *Store) RegisterConst(name string, n *Node) {
	if n == nil {
		n = s.NewNull()
	}
	if s.consts == nil {
		s.consts = map[string]*Node{}
	}
	s.consts[name] = n
}

// Const returns the registered constant named name. Looking up an
// unregistered name is an error, never a default.
func (s *Store) Const(name string) (*Node, error) {
	n, ok := s.consts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingConstant, name)
	}
	return n, nil
}

// Scratch returns the Store's encode workspace, reset for reuse.
func (s *Store) Scratch() *bytes.Buffer {
	s.scratch.Reset()
	return &s.scratch
}
