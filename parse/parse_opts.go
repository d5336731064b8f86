package parse

const defaultMaxDepth = 1000

type parseOpts struct {
	maxDepth int
}

type ParseOption func(*parseOpts)

// MaxDepth bounds container nesting during decode.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
