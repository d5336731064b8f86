package tree

import "testing"

func TestEql(t *testing.T) {
	s := NewStore()
	mkObj := func(kvs ...any) *Node {
		obj := s.NewObject()
		for i := 0; i < len(kvs); i += 2 {
			obj.Put(kvs[i].(string), kvs[i+1].(*Node))
		}
		return obj
	}

	a1 := mkObj("a", s.NewInt(1))
	b1 := mkObj("b", s.NewInt(1))

	abFwd := mkObj("a", s.NewInt(1), "b", s.NewInt(2))
	abRev := mkObj("b", s.NewInt(2), "a", s.NewInt(1))

	arr12 := s.NewArray()
	arr12.Append(s.NewInt(1))
	arr12.Append(s.NewInt(2))
	arr21 := s.NewArray()
	arr21.Append(s.NewInt(2))
	arr21.Append(s.NewInt(1))
	arr1 := s.NewArray()
	arr1.Append(s.NewInt(1))

	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{name: "reflexive", a: a1, b: a1, want: true},
		{name: "scalar eq", a: s.NewInt(3), b: s.NewInt(3), want: true},
		{name: "scalar ne", a: s.NewInt(3), b: s.NewInt(4), want: false},
		{name: "int vs float", a: s.NewInt(1), b: s.NewFloat(1), want: false},
		{name: "null eq", a: s.NewNull(), b: s.NewNull(), want: true},
		{name: "disjoint same-size objects", a: a1, b: b1, want: false},
		{name: "insertion order insignificant", a: abFwd, b: abRev, want: true},
		{name: "array order significant", a: arr12, b: arr21, want: false},
		{name: "array length", a: arr12, b: arr1, want: false},
		{name: "nil vs node", a: nil, b: a1, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Eql(tc.a, tc.b); got != tc.want {
				t.Errorf("Eql = %v, want %v", got, tc.want)
			}
			// equality is symmetric
			if got := Eql(tc.b, tc.a); got != tc.want {
				t.Errorf("Eql reversed = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	s := NewStore()
	tests := []struct {
		name string
		a, b *Node
		want int
	}{
		{name: "equal ints", a: s.NewInt(1), b: s.NewInt(1), want: 0},
		{name: "int order", a: s.NewInt(1), b: s.NewInt(2), want: -1},
		{name: "type rank", a: s.NewNull(), b: s.NewBool(false), want: -1},
		{name: "int before float", a: s.NewInt(9), b: s.NewFloat(0.1), want: -1},
		{name: "string order", a: s.NewString("b"), b: s.NewString("a"), want: 1},
		{name: "bool order", a: s.NewBool(false), b: s.NewBool(true), want: -1},
		{name: "nil first", a: nil, b: s.NewNull(), want: -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Compare(tc.a, tc.b); got != tc.want {
				t.Errorf("Compare = %d, want %d", got, tc.want)
			}
			if got := Compare(tc.b, tc.a); got != -tc.want {
				t.Errorf("Compare reversed = %d, want %d", got, -tc.want)
			}
		})
	}
}

func TestHash(t *testing.T) {
	s := NewStore()
	a := s.NewObject()
	a.Put("x", s.NewInt(1))
	b := s.NewObject()
	b.Put("x", s.NewInt(1))
	if a.Hash() != b.Hash() {
		t.Fatalf("equal objects hash differently")
	}
	c := s.NewObject()
	c.Put("x", s.NewInt(2))
	if a.Hash() == c.Hash() {
		t.Fatalf("distinct objects share a hash")
	}
}
