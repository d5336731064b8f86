// Package path parses dotted path strings into segment chains.
//
// A path like "foo.bar.2.baz" is a sequence of segments separated by
// dots. Each segment carries its raw text; a segment whose text parses
// as a non-negative integer additionally carries the index, so that
// resolution can use it when it lands on an array.
package path

import (
	"strconv"
	"strings"
)

type Segment struct {
	Key   string
	Index *int // set when Key is a non-negative decimal integer
	Next  *Segment
}

// Parse splits p on dots. An empty path yields nil.
func Parse(p string) *Segment {
	if p == "" {
		return nil
	}
	var head, tail *Segment
	for {
		var raw string
		i := strings.IndexByte(p, '.')
		if i < 0 {
			raw = p
		} else {
			raw, p = p[:i], p[i+1:]
		}
		seg := &Segment{Key: raw}
		if idx, ok := parseIndex(raw); ok {
			seg.Index = &idx
		}
		if head == nil {
			head, tail = seg, seg
		} else {
			tail.Next = seg
			tail = seg
		}
		if i < 0 {
			return head
		}
	}
}

func parseIndex(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}

// String returns the dotted form of the chain starting at s.
func (s *Segment) String() string {
	if s == nil {
		return ""
	}
	var b strings.Builder
	for x := s; x != nil; x = x.Next {
		if x != s {
			b.WriteByte('.')
		}
		b.WriteString(x.Key)
	}
	return b.String()
}

// Len returns the number of segments in the chain.
func (s *Segment) Len() int {
	n := 0
	for x := s; x != nil; x = x.Next {
		n++
	}
	return n
}
