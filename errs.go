package knot

import "errors"

// ErrNoRoot is returned when serializing a Store that has no root bound,
// the state a fresh Store, a failed Bind, or a Reset leaves behind.
var ErrNoRoot = errors.New("no root bound")
