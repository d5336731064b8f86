package token

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// AppendQuote appends the JSON-quoted form of v to dst, escaping per the
// JSON string rules.
func AppendQuote(dst []byte, v string) []byte {
	dst = append(dst, '"')
	for _, r := range v {
		switch r {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			if unicode.IsControl(r) {
				dst = append(dst, '\\', 'u')
				dst = append(dst, fmt.Sprintf("%04x", r)...)
			} else {
				dst = utf8.AppendRune(dst, r)
			}
		}
	}
	return append(dst, '"')
}

func Quote(v string) string {
	return string(AppendQuote(make([]byte, 0, len(v)+2), v))
}

// Unquote decodes a quoted JSON string token, quotes included.
func Unquote(d []byte) (string, error) {
	if len(d) < 2 || d[0] != '"' || d[len(d)-1] != '"' {
		return "", fmt.Errorf("%w: not a quoted string %q", ErrToken, d)
	}
	body := d[1 : len(d)-1]
	// fast path: no escapes
	esc := false
	for _, c := range body {
		if c == '\\' {
			esc = true
			break
		}
	}
	if !esc {
		return string(body), nil
	}

	res := make([]byte, 0, len(body))
	i := 0
	n := len(body)
	for i < n {
		c := body[i]
		if c != '\\' {
			res = append(res, c)
			i++
			continue
		}
		if i+1 >= n {
			return "", fmt.Errorf("%w: dangling escape in %q", ErrToken, d)
		}
		i++
		switch body[i] {
		case '"':
			res = append(res, '"')
			i++
		case '\\':
			res = append(res, '\\')
			i++
		case '/':
			res = append(res, '/')
			i++
		case 'b':
			res = append(res, '\b')
			i++
		case 'f':
			res = append(res, '\f')
			i++
		case 'n':
			res = append(res, '\n')
			i++
		case 'r':
			res = append(res, '\r')
			i++
		case 't':
			res = append(res, '\t')
			i++
		case 'u':
			r, ni, err := unquoteRune(body, i)
			if err != nil {
				return "", err
			}
			res = utf8.AppendRune(res, r)
			i = ni
		default:
			return "", fmt.Errorf("%w: unknown escape %q in %q",
				ErrToken, body[i], d)
		}
	}
	return string(res), nil
}

// unquoteRune decodes \uXXXX at body[i] ('u' position), handling UTF-16
// surrogate pairs. Returns the rune and the next offset.
func unquoteRune(body []byte, i int) (rune, int, error) {
	r1, ni, err := hex4(body, i)
	if err != nil {
		return 0, 0, err
	}
	if !utf16.IsSurrogate(r1) {
		return r1, ni, nil
	}
	if ni+1 < len(body) && body[ni] == '\\' && body[ni+1] == 'u' {
		r2, ni2, err := hex4(body, ni+1)
		if err != nil {
			return 0, 0, err
		}
		if dec := utf16.DecodeRune(r1, r2); dec != unicode.ReplacementChar {
			return dec, ni2, nil
		}
	}
	return unicode.ReplacementChar, ni, nil
}

func hex4(body []byte, i int) (rune, int, error) {
	// body[i] == 'u'
	if i+4 >= len(body) {
		return 0, 0, fmt.Errorf("%w: short unicode escape", ErrToken)
	}
	v, err := strconv.ParseUint(string(body[i+1:i+5]), 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad unicode escape: %v", ErrToken, err)
	}
	return rune(v), i + 5, nil
}
