package encode

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	HeaderColor ColorAttr = iota
	KeyColor
	SepColor
	ValueColor
	CommentColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			HeaderColor:  color.RGB(128, 168, 196).SprintfFunc(),
			KeyColor:     color.RGB(196, 96, 16).SprintfFunc(),
			SepColor:     color.RGB(255, 0, 196).SprintfFunc(),
			ValueColor:   color.RGB(128, 216, 236).SprintfFunc(),
			CommentColor: color.BlueString,
		},
	}
}

func colorDefault(s string, args ...any) string {
	return color.WhiteString(s, args...)
}

func (c *Colors) attr(a ColorAttr) func(string, ...any) string {
	if f, ok := c.Map[a]; ok {
		return f
	}
	return c.Default
}

// colorize highlights serialized TOML line by line: table headers, keys,
// the assignment separator, values, and comments. It works on the encoded
// text rather than the tree so the output stays byte-identical to the
// uncolored form once the escapes are stripped.
func (c *Colors) colorize(text string) string {
	var b strings.Builder
	for line := range strings.Lines(text) {
		nl := strings.HasSuffix(line, "\n")
		b.WriteString(c.colorizeLine(strings.TrimSuffix(line, "\n")))
		if nl {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (c *Colors) colorizeLine(line string) string {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return line
	case strings.HasPrefix(trimmed, "#"):
		return c.attr(CommentColor)("%s", line)
	case strings.HasPrefix(trimmed, "["):
		return c.attr(HeaderColor)("%s", line)
	}
	key, val, ok := strings.Cut(line, "=")
	if !ok {
		// continuation of a multi-line value
		return c.attr(ValueColor)("%s", line)
	}
	return c.attr(KeyColor)("%s", key) +
		c.attr(SepColor)("=") +
		c.attr(ValueColor)("%s", val)
}
