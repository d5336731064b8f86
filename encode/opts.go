package encode

type EncodeOption func(*EncState)

// EncodePretty selects indented multi-line output with a trailing
// newline.
func EncodePretty(v bool) EncodeOption {
	return func(es *EncState) { es.pretty = v }
}

// EncodeIndent sets spaces per nesting level for pretty output.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Depth sets the starting nesting depth, for splicing into surrounding
// indented output.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
