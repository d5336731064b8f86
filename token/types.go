package token

import "fmt"

type TokenType int

const (
	TString TokenType = iota
	TInteger
	TFloat
	TTrue
	TFalse
	TNull
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TColon
	TComma
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TString:  "TString",
		TInteger: "TInteger",
		TFloat:   "TFloat",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TNull:    "TNull",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TColon:   "TColon",
		TComma:   "TComma",
	}[t]
}

// Token is one lexical element of a JSON document. Bytes aliases the
// input document; for TString it spans the quotes.
type Token struct {
	Type  TokenType
	Bytes []byte
	Off   int
}

func (t *Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.Type, t.Bytes, t.Off)
}

// Pos is a human-readable position in an input document.
type Pos struct {
	Line, Col int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Col+1)
}

// PosAt computes the line and column of a byte offset in d.
func PosAt(d []byte, off int) Pos {
	p := Pos{}
	for i := 0; i < off && i < len(d); i++ {
		if d[i] == '\n' {
			p.Line++
			p.Col = 0
			continue
		}
		p.Col++
	}
	return p
}
