package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Resolve bool
	Parse   bool
	Render  bool
	Coerce  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Resolve = boolEnv("KNOT_DEBUG_RESOLVE")
	d.Parse = boolEnv("KNOT_DEBUG_PARSE")
	d.Render = boolEnv("KNOT_DEBUG_RENDER")
	d.Coerce = boolEnv("KNOT_DEBUG_COERCE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Resolve() bool {
	return d.Resolve
}
func Parse() bool {
	return d.Parse
}
func Render() bool {
	return d.Render
}
func Coerce() bool {
	return d.Coerce
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
