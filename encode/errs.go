package encode

import "errors"

// ErrUnsupportedValue is returned for values with no JSON form, such as
// non-finite floats.
var ErrUnsupportedValue = errors.New("unsupported value")
