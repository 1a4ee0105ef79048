package hamnosys

import "strings"

// SpaceName is the table name of the plain space glyph. Ascify renders it as
// a literal space instead of a name.
const SpaceName = "asciispace"

// DefaultSeparator joins glyph names in rendered output.
const DefaultSeparator = "."

// Namer resolves a glyph to its display name.
type Namer interface {
	Name(r rune) (string, bool)
}

// Ascify maps every glyph of text to its name and joins the names with sep.
// Unmapped glyphs render as "<glyph>". A space glyph becomes a bare space
// with no separator on either side.
func Ascify(n Namer, text, sep string) string {
	var b strings.Builder
	prevSpace := true
	for _, r := range text {
		name, ok := n.Name(r)
		if !ok {
			name = "<" + string(r) + ">"
		}
		if name == SpaceName {
			b.WriteByte(' ')
			prevSpace = true
			continue
		}
		if !prevSpace {
			b.WriteString(sep)
		}
		b.WriteString(name)
		prevSpace = false
	}
	return b.String()
}

// Names returns the name of every glyph in text, in order.
func Names(n Namer, text string) []string {
	var out []string
	for _, r := range text {
		name, ok := n.Name(r)
		if !ok {
			name = "<" + string(r) + ">"
		}
		out = append(out, name)
	}
	return out
}
