package tree

import "strings"

// Output accumulation. A Store owns one append-only buffer of rendered
// text; rendering callers interleave writes with path-resolved values.

// Write appends text to the output buffer. The very first write drops a
// single leading blank line, the artifact a template leaves behind when
// its first content line follows the declaration line.
func (s *Store) Write(text string) {
	if s.outFresh {
		s.outFresh = false
		if strings.HasPrefix(text, "\r\n") {
			text = text[2:]
		} else if strings.HasPrefix(text, "\n") {
			text = text[1:]
		}
	}
	s.out = append(s.out, text...)
}

// Output returns the accumulated text.
func (s *Store) Output() string {
	return string(s.out)
}

// ChompOutput removes one trailing line terminator (CRLF or LF) from the
// output buffer. Used after splicing in a sub-render so an intentional
// trailing blank line in the embedded fragment does not leak into the
// parent.
func (s *Store) ChompOutput() {
	n := len(s.out)
	if n == 0 {
		return
	}
	if s.out[n-1] != '\n' {
		return
	}
	n--
	if n > 0 && s.out[n-1] == '\r' {
		n--
	}
	s.out = s.out[:n]
}
