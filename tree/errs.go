package tree

import "errors"

var (
	// ErrIncompatibleRootType reports an attempt to bind a Store's root
	// to a container variant other than the one already fixed. The Store
	// is unusable for that variant until Reset.
	ErrIncompatibleRootType = errors.New("incompatible root type")

	// ErrUnknownReference reports a path or chain lookup that did not
	// resolve, or a coercion against such a path.
	ErrUnknownReference = errors.New("unknown reference")

	// ErrUnsupportedType reports an outbound coercion of a value with no
	// defined textual form.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrMissingConstant reports a named-constant lookup before that
	// name was registered.
	ErrMissingConstant = errors.New("missing constant")
)
