package encode

import (
	"strings"

	"github.com/knot-data/go-knot/tree"

	"github.com/fatih/color"
)

type Colorable struct {
	Type tree.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range tree.Types() {
		colors.Map[Colorable{Type: t, Attr: SepColor}] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = tree.IntType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Type = tree.FloatType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = tree.NullType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Type = tree.BoolType
	colors.Map[able] = color.CyanString

	able.Type = tree.StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able = Colorable{Type: tree.ObjectType, Attr: FieldColor}
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t tree.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t tree.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
