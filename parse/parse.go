// Package parse provides JSON decoding into Store-owned trees. The
// decode path is the single source of truth for building a tree from
// text; Clone reuses it.
package parse

import (
	"fmt"
	"strconv"

	"github.com/knot-data/go-knot/debug"
	"github.com/knot-data/go-knot/token"
	"github.com/knot-data/go-knot/tree"
)

// Parse decodes d and returns a detached node built from s. Object
// members and array elements recurse; a number token is Int or Float
// depending on whether its source text carries a decimal point, and an
// integer literal out of int64 range is an error, not a silent float.
func Parse(s *tree.Store, d []byte, opts ...ParseOption) (*tree.Node, error) {
	pOpts := &parseOpts{maxDepth: defaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrParse)
	}
	off := 0
	n, err := parseValue(s, toks, &off, 0, pOpts)
	if err != nil {
		return nil, err
	}
	if off != len(toks) {
		return nil, fmt.Errorf("%w: trailing %s", ErrParse, &toks[off])
	}
	if debug.Parse() {
		debug.Logf("parse: %d tokens, root %s\n", len(toks), n.Type)
	}
	return n, nil
}

// Bind decodes d and binds the result as the root of s. The decoded root
// must be an object or an array, and must match a previously fixed root
// variant. On any error the Store's root is left as it was; nodes built
// before the failure stay orphaned in the arena until Reset.
func Bind(s *tree.Store, d []byte, opts ...ParseOption) error {
	n, err := Parse(s, d, opts...)
	if err != nil {
		return err
	}
	return s.SetRoot(n)
}

func parseValue(s *tree.Store, toks []token.Token, pi *int, depth int, opts *parseOpts) (*tree.Node, error) {
	if depth > opts.maxDepth {
		return nil, fmt.Errorf("%w: nesting exceeds %d", ErrParse, opts.maxDepth)
	}
	if *pi >= len(toks) {
		return nil, fmt.Errorf("%w: unexpected end of input", ErrParse)
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TLCurl:
		*pi++
		return parseObject(s, toks, pi, depth, opts)
	case token.TLSquare:
		*pi++
		return parseArray(s, toks, pi, depth, opts)
	case token.TString:
		v, err := token.Unquote(t.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		*pi++
		return s.NewString(v), nil
	case token.TInteger:
		i, err := strconv.ParseInt(string(t.Bytes), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: integer literal %q: %v",
				ErrParse, t.Bytes, err)
		}
		*pi++
		return s.NewInt(i), nil
	case token.TFloat:
		f, err := strconv.ParseFloat(string(t.Bytes), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: float literal %q: %v",
				ErrParse, t.Bytes, err)
		}
		*pi++
		return s.NewFloat(f), nil
	case token.TTrue:
		*pi++
		return s.NewBool(true), nil
	case token.TFalse:
		*pi++
		return s.NewBool(false), nil
	case token.TNull:
		*pi++
		return s.NewNull(), nil
	default:
		return nil, fmt.Errorf("%w: unexpected %s", ErrParse, t)
	}
}

func parseObject(s *tree.Store, toks []token.Token, pi *int, depth int, opts *parseOpts) (*tree.Node, error) {
	obj := s.NewObject()
	if *pi < len(toks) && toks[*pi].Type == token.TRCurl {
		*pi++
		return obj, nil
	}
	for {
		if *pi >= len(toks) {
			return nil, fmt.Errorf("%w: unterminated object", ErrParse)
		}
		kt := &toks[*pi]
		if kt.Type != token.TString {
			return nil, fmt.Errorf("%w: object key must be string, got %s",
				ErrParse, kt)
		}
		key, err := token.Unquote(kt.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		*pi++
		if *pi >= len(toks) || toks[*pi].Type != token.TColon {
			return nil, fmt.Errorf("%w: missing ':' after key %q", ErrParse, key)
		}
		*pi++
		v, err := parseValue(s, toks, pi, depth+1, opts)
		if err != nil {
			return nil, err
		}
		obj.Put(key, v)
		if *pi >= len(toks) {
			return nil, fmt.Errorf("%w: unterminated object", ErrParse)
		}
		switch toks[*pi].Type {
		case token.TComma:
			*pi++
		case token.TRCurl:
			*pi++
			return obj, nil
		default:
			return nil, fmt.Errorf("%w: unexpected %s in object",
				ErrParse, &toks[*pi])
		}
	}
}

func parseArray(s *tree.Store, toks []token.Token, pi *int, depth int, opts *parseOpts) (*tree.Node, error) {
	arr := s.NewArray()
	if *pi < len(toks) && toks[*pi].Type == token.TRSquare {
		*pi++
		return arr, nil
	}
	for {
		v, err := parseValue(s, toks, pi, depth+1, opts)
		if err != nil {
			return nil, err
		}
		arr.Append(v)
		if *pi >= len(toks) {
			return nil, fmt.Errorf("%w: unterminated array", ErrParse)
		}
		switch toks[*pi].Type {
		case token.TComma:
			*pi++
		case token.TRSquare:
			*pi++
			return arr, nil
		default:
			return nil, fmt.Errorf("%w: unexpected %s in array",
				ErrParse, &toks[*pi])
		}
	}
}
