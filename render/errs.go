package render

import "errors"

var (
	ErrDuplicateTemplate = errors.New("duplicate template name")
	ErrMissingTemplate   = errors.New("missing template")
)
