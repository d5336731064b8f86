package token

import "fmt"

// Tokenize scans a JSON document into tokens, appending to dst. Number
// tokens are classified TInteger or TFloat by the presence of a decimal
// point in the source token; "1e3" scans as TInteger and is rejected
// later when its literal cannot be parsed as an integer.
func Tokenize(dst []Token, d []byte) ([]Token, error) {
	i := 0
	n := len(d)
	for i < n {
		c := d[i]
		switch c {
		case ' ', '\t', '\r', '\n':
			i++
		case '{':
			dst = append(dst, Token{Type: TLCurl, Bytes: d[i : i+1], Off: i})
			i++
		case '}':
			dst = append(dst, Token{Type: TRCurl, Bytes: d[i : i+1], Off: i})
			i++
		case '[':
			dst = append(dst, Token{Type: TLSquare, Bytes: d[i : i+1], Off: i})
			i++
		case ']':
			dst = append(dst, Token{Type: TRSquare, Bytes: d[i : i+1], Off: i})
			i++
		case ':':
			dst = append(dst, Token{Type: TColon, Bytes: d[i : i+1], Off: i})
			i++
		case ',':
			dst = append(dst, Token{Type: TComma, Bytes: d[i : i+1], Off: i})
			i++
		case '"':
			end, err := scanString(d, i)
			if err != nil {
				return nil, err
			}
			dst = append(dst, Token{Type: TString, Bytes: d[i:end], Off: i})
			i = end
		case 't':
			if err := expectWord(d, i, "true"); err != nil {
				return nil, err
			}
			dst = append(dst, Token{Type: TTrue, Bytes: d[i : i+4], Off: i})
			i += 4
		case 'f':
			if err := expectWord(d, i, "false"); err != nil {
				return nil, err
			}
			dst = append(dst, Token{Type: TFalse, Bytes: d[i : i+5], Off: i})
			i += 5
		case 'n':
			if err := expectWord(d, i, "null"); err != nil {
				return nil, err
			}
			dst = append(dst, Token{Type: TNull, Bytes: d[i : i+4], Off: i})
			i += 4
		default:
			if c == '-' || (c >= '0' && c <= '9') {
				end, isFloat, err := scanNumber(d, i)
				if err != nil {
					return nil, err
				}
				tt := TInteger
				if isFloat {
					tt = TFloat
				}
				dst = append(dst, Token{Type: tt, Bytes: d[i:end], Off: i})
				i = end
				continue
			}
			return nil, fmt.Errorf("%w: unexpected byte %q at %s",
				ErrToken, c, PosAt(d, i))
		}
	}
	return dst, nil
}

func expectWord(d []byte, i int, word string) error {
	if i+len(word) > len(d) || string(d[i:i+len(word)]) != word {
		return fmt.Errorf("%w: malformed literal at %s", ErrToken, PosAt(d, i))
	}
	return nil
}

// scanString returns the offset one past the closing quote.
func scanString(d []byte, i int) (int, error) {
	start := i
	i++ // opening quote
	n := len(d)
	for i < n {
		switch d[i] {
		case '"':
			return i + 1, nil
		case '\\':
			i += 2
		default:
			i++
		}
	}
	return 0, fmt.Errorf("%w: unterminated string at %s",
		ErrToken, PosAt(d, start))
}

func scanNumber(d []byte, i int) (int, bool, error) {
	start := i
	n := len(d)
	isFloat := false
	if d[i] == '-' {
		i++
	}
	// the JSON grammar forbids leading zeros: 0 may only begin a
	// number when followed by '.', 'e' or the end of the token
	if i+1 < n && d[i] == '0' && d[i+1] >= '0' && d[i+1] <= '9' {
		return 0, false, fmt.Errorf("%w: leading zero in number at %s",
			ErrToken, PosAt(d, start))
	}
	digits := 0
	for i < n && d[i] >= '0' && d[i] <= '9' {
		i++
		digits++
	}
	if digits == 0 {
		return 0, false, fmt.Errorf("%w: malformed number at %s",
			ErrToken, PosAt(d, start))
	}
	if i < n && d[i] == '.' {
		isFloat = true
		i++
		digits = 0
		for i < n && d[i] >= '0' && d[i] <= '9' {
			i++
			digits++
		}
		if digits == 0 {
			return 0, false, fmt.Errorf("%w: malformed number at %s",
				ErrToken, PosAt(d, start))
		}
	}
	if i < n && (d[i] == 'e' || d[i] == 'E') {
		i++
		if i < n && (d[i] == '+' || d[i] == '-') {
			i++
		}
		digits = 0
		for i < n && d[i] >= '0' && d[i] <= '9' {
			i++
			digits++
		}
		if digits == 0 {
			return 0, false, fmt.Errorf("%w: malformed number at %s",
				ErrToken, PosAt(d, start))
		}
	}
	return i, isFloat, nil
}
