// Package eval runs expressions against tree data. Expressions see the
// root object's fields as variables plus a small set of functions over
// the Store's resolution API. Built on expr-lang; the tree itself stays
// the single source of data.
package eval

import (
	"fmt"

	"github.com/knot-data/go-knot/tree"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type Query struct {
	src  string
	prog *vm.Program
}

// Compile compiles src once for repeated runs.
func Compile(src string) (*Query, error) {
	prog, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("eval: compile %q: %w", src, err)
	}
	return &Query{src: src, prog: prog}, nil
}

// Run evaluates the query against the data in s.
func (q *Query) Run(s *tree.Store) (any, error) {
	out, err := vm.Run(q.prog, env(s))
	if err != nil {
		return nil, fmt.Errorf("eval: run %q: %w", q.src, err)
	}
	return out, nil
}

// Truthy evaluates the query and reports whether the result is true.
func (q *Query) Truthy(s *tree.Store) (bool, error) {
	out, err := q.Run(s)
	if err != nil {
		return false, err
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("eval: %q is %T, want bool", q.src, out)
	}
	return b, nil
}

// Run is the one-shot form of Compile followed by Query.Run.
func Run(s *tree.Store, src string) (any, error) {
	q, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return q.Run(s)
}

func env(s *tree.Store) map[string]any {
	res := map[string]any{}
	if root := s.Root(); root != nil {
		if root.Type == tree.ObjectType {
			res = root.Interface().(map[string]any)
		} else {
			res["root"] = root.Interface()
		}
	}
	res["getvalue"] = func(p string) any {
		n := s.GetValue(p)
		if n == nil {
			return nil
		}
		return n.Interface()
	}
	res["getstring"] = func(p string) string {
		v, err := s.GetValueString(p)
		if err != nil {
			return ""
		}
		return v
	}
	res["konst"] = func(name string) (any, error) {
		n, err := s.Const(name)
		if err != nil {
			return nil, err
		}
		return n.Interface(), nil
	}
	return res
}
