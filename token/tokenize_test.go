package token

import (
	"errors"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []TokenType
	}{
		{
			name: "object",
			in:   `{"a": 1}`,
			want: []TokenType{TLCurl, TString, TColon, TInteger, TRCurl},
		},
		{
			name: "array",
			in:   `[true, false, null]`,
			want: []TokenType{TLSquare, TTrue, TComma, TFalse, TComma, TNull, TRSquare},
		},
		{
			name: "numbers",
			in:   `[1, -2, 3.5, -0.25, 1.5e3]`,
			want: []TokenType{TLSquare, TInteger, TComma, TInteger, TComma,
				TFloat, TComma, TFloat, TComma, TFloat, TRSquare},
		},
		{
			name: "zero forms",
			in:   `[0, -0, 0.5, 0e1]`,
			want: []TokenType{TLSquare, TInteger, TComma, TInteger, TComma,
				TFloat, TComma, TInteger, TRSquare},
		},
		{
			// classification is by decimal point in the source token
			name: "exponent without point stays integer",
			in:   `1e3`,
			want: []TokenType{TInteger},
		},
		{
			name: "escaped string",
			in:   `"a\"b"`,
			want: []TokenType{TString},
		},
		{
			name: "empty",
			in:   ``,
			want: nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Tokenize(nil, []byte(tc.in))
			if err != nil {
				t.Fatalf("Tokenize: %v", err)
			}
			if len(toks) != len(tc.want) {
				t.Fatalf("got %d tokens %v, want %d", len(toks), toks, len(tc.want))
			}
			for i := range toks {
				if toks[i].Type != tc.want[i] {
					t.Errorf("token %d: got %s, want %s", i, toks[i].Type, tc.want[i])
				}
			}
		})
	}
}

func TestTokenize_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "unterminated string", in: `"abc`},
		{name: "bad literal", in: `tru`},
		{name: "lone minus", in: `-`},
		{name: "trailing point", in: `1.`},
		{name: "empty exponent", in: `1.0e`},
		{name: "leading zero", in: `01`},
		{name: "negative leading zero", in: `-012`},
		{name: "leading zero before point", in: `00.5`},
		{name: "unexpected byte", in: `@`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Tokenize(nil, []byte(tc.in))
			if !errors.Is(err, ErrToken) {
				t.Errorf("got %v, want ErrToken", err)
			}
		})
	}
}

func TestPosAt(t *testing.T) {
	d := []byte("ab\ncd")
	p := PosAt(d, 4)
	if p.Line != 1 || p.Col != 1 {
		t.Fatalf("got %v, want 1:1 (zero-based)", p)
	}
	if p.String() != "2:2" {
		t.Fatalf("String: %q", p.String())
	}
}
