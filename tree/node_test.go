package tree

import "testing"

func TestNode_PutReplace(t *testing.T) {
	s := NewStore()
	obj, _ := s.Object()
	obj.Put("k", s.NewString("old"))
	old := obj.Get("k")
	obj.Put("k", s.NewString("new"))
	if got := obj.Count(); got != 1 {
		t.Fatalf("count after replace: got %d, want 1", got)
	}
	if got, _ := obj.GetString("k"); got != "new" {
		t.Fatalf("got %q, want %q", got, "new")
	}
	// the replaced child is unreachable from the object but stays a
	// valid node until the store is torn down
	if old.StringValue() != "old" {
		t.Fatalf("old child invalidated by replace")
	}
}

func TestNode_PutNil(t *testing.T) {
	s := NewStore()
	obj, _ := s.Object()
	obj.Put("k", nil)
	c := obj.Get("k")
	if c == nil || c.Type != NullType {
		t.Fatalf("Put(nil) stored %v, want Null node", c)
	}
}

func TestNode_AppendNil(t *testing.T) {
	s := NewStore()
	arr := s.NewArray()
	arr.Append(nil)
	arr.Append(s.NewInt(2))
	if arr.Count() != 2 {
		t.Fatalf("count: got %d, want 2", arr.Count())
	}
	if arr.At(0).Type != NullType {
		t.Fatalf("At(0) is %s, want Null", arr.At(0).Type)
	}
	if arr.At(5) != nil || arr.At(-1) != nil {
		t.Fatalf("out of range index returned a node")
	}
}

func TestNode_TypedGet(t *testing.T) {
	s := NewStore()
	obj, _ := s.Object()
	obj.Put("s", s.NewString("v"))
	obj.Put("i", s.NewInt(7))
	obj.Put("f", s.NewFloat(1.5))
	obj.Put("b", s.NewBool(true))
	obj.Put("o", s.NewObject())
	obj.Put("a", s.NewArray())

	if v, ok := obj.GetString("s"); !ok || v != "v" {
		t.Errorf("GetString: %q %v", v, ok)
	}
	if v, ok := obj.GetInt("i"); !ok || v != 7 {
		t.Errorf("GetInt: %d %v", v, ok)
	}
	if v, ok := obj.GetFloat("f"); !ok || v != 1.5 {
		t.Errorf("GetFloat: %v %v", v, ok)
	}
	if v, ok := obj.GetBool("b"); !ok || !v {
		t.Errorf("GetBool: %v %v", v, ok)
	}
	if obj.GetObject("o") == nil {
		t.Errorf("GetObject: nil")
	}
	if obj.GetArray("a") == nil {
		t.Errorf("GetArray: nil")
	}

	// wrong variant and absence are both ok == false, never an error
	if _, ok := obj.GetInt("s"); ok {
		t.Errorf("GetInt on string: ok")
	}
	if _, ok := obj.GetString("missing"); ok {
		t.Errorf("GetString on missing: ok")
	}
	if obj.GetObject("a") != nil {
		t.Errorf("GetObject on array: non-nil")
	}
}

func TestNode_CountPanicsOnScalar(t *testing.T) {
	s := NewStore()
	n := s.NewInt(3)
	defer func() {
		if recover() == nil {
			t.Fatalf("Count on scalar did not panic")
		}
	}()
	n.Count()
}

func TestNode_String(t *testing.T) {
	s := NewStore()
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{name: "string", node: s.NewString("hi"), want: "hi"},
		{name: "int", node: s.NewInt(-12), want: "-12"},
		{name: "float", node: s.NewFloat(2.5), want: "2.5"},
		{name: "float non-exponential", node: s.NewFloat(1e21), want: "1000000000000000000000"},
		{name: "bool", node: s.NewBool(true), want: "true"},
		{name: "null", node: s.NewNull(), want: ""},
		{name: "object", node: s.NewObject(), want: ""},
		{name: "array", node: s.NewArray(), want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.node.String(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNode_Items(t *testing.T) {
	s := NewStore()
	obj, _ := s.Object()
	obj.Put("a", s.NewInt(1))
	obj.Put("b", s.NewInt(2))
	items := obj.Items()
	if len(items) != 2 {
		t.Fatalf("items: got %d, want 2", len(items))
	}
	if items[0].Key != "a" || items[0].Val.IntValue() != 1 {
		t.Errorf("items[0]: %v", items[0])
	}
	if items[1].Key != "b" || items[1].Val.IntValue() != 2 {
		t.Errorf("items[1]: %v", items[1])
	}
	if s.NewInt(1).Items() != nil {
		t.Errorf("Items on scalar: non-nil")
	}
}

func TestNode_Iterator(t *testing.T) {
	s := NewStore()
	arr := s.NewArray()
	for i := 0; i < 3; i++ {
		arr.Append(s.NewInt(int64(i)))
	}
	it := arr.Iterator()
	var got []int64
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		got = append(got, v.IntValue())
	}
	if len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 2 {
		t.Fatalf("iterated %v", got)
	}
	// exhausted cursors stay exhausted
	if _, ok := it.Next(); ok {
		t.Fatalf("exhausted cursor yielded a value")
	}
	if _, ok := s.NewInt(1).Iterator().Next(); ok {
		t.Fatalf("scalar cursor yielded a value")
	}
}

func TestNode_Truth(t *testing.T) {
	s := NewStore()
	arr := s.NewArray()
	arr.Append(s.NewInt(1))
	tests := []struct {
		name string
		node *Node
		want bool
	}{
		{name: "null", node: s.NewNull(), want: false},
		{name: "zero int", node: s.NewInt(0), want: false},
		{name: "int", node: s.NewInt(2), want: true},
		{name: "empty string", node: s.NewString(""), want: false},
		{name: "string", node: s.NewString("x"), want: true},
		{name: "empty array", node: s.NewArray(), want: false},
		{name: "array", node: arr, want: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.node.Truth(); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}
