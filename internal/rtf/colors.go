package rtf

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// RGB is a 24-bit color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Reserved color table indices. These four colors are registered first,
// in fixed order, so their indices hold for every document regardless of
// content. Index 0 is the RTF "auto" color and is never assigned.
const (
	HighlightIndex = 1 // yellow, used by <mark>
	BlackIndex     = 2 // default text
	LinkIndex      = 3 // hyperlink blue
	BoxFillIndex   = 4 // light gray callout/placeholder fill
)

var reservedColors = []RGB{
	{255, 255, 0},   // highlight yellow
	{0, 0, 0},       // black
	{0, 0, 255},     // link blue
	{245, 245, 245}, // box fill
}

// ColorTable is a per-document palette mapping RGB triples to stable
// 1-based RTF color table indices. Build one per conversion with
// NewColorTable, populate it with Collect, then emit it with Header.
// Indices are assigned in first-discovery order and never renumbered.
type ColorTable struct {
	index  map[RGB]int
	colors []RGB
}

// NewColorTable creates a table seeded with the four reserved colors.
func NewColorTable() *ColorTable {
	t := &ColorTable{index: make(map[RGB]int, len(reservedColors))}
	for _, c := range reservedColors {
		t.add(c)
	}
	return t
}

// add registers a color if absent and returns its 1-based index.
func (t *ColorTable) add(c RGB) int {
	if idx, ok := t.index[c]; ok {
		return idx
	}
	t.colors = append(t.colors, c)
	idx := len(t.colors)
	t.index[c] = idx
	return idx
}

// Lookup returns the index for a registered color, or 0 if unknown.
func (t *ColorTable) Lookup(c RGB) int {
	return t.index[c]
}

// Collect walks the tree depth-first and registers every color and
// background-color found in inline style attributes. Malformed color
// values are ignored.
func (t *ColorTable) Collect(n *html.Node) {
	if n.Type == html.ElementNode {
		for _, prop := range []string{"color", "background-color"} {
			if c, ok := ParseColor(styleProperty(n, prop)); ok {
				t.add(c)
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		t.Collect(c)
	}
}

// Header serializes the palette as an RTF color table group. The leading
// semicolon leaves slot 0 empty for the reader's automatic color, which
// is what makes our indices 1-based.
func (t *ColorTable) Header() string {
	var b strings.Builder
	b.WriteString(`{\colortbl;`)
	for _, c := range t.colors {
		fmt.Fprintf(&b, `\red%d\green%d\blue%d;`, c.R, c.G, c.B)
	}
	b.WriteString("}")
	return b.String()
}

// ParseColor parses a CSS color value into an RGB triple. Supported
// forms are #rgb, #rrggbb, rgb(r,g,b) and rgba(r,g,b,a), all
// case-insensitive and whitespace-tolerant. Numeric channels outside
// [0,255] are clamped. Returns ok=false for anything else; callers
// treat that as "no color" rather than an error.
func ParseColor(value string) (RGB, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return RGB{}, false
	}

	if strings.HasPrefix(value, "#") {
		return parseHexColor(value[1:])
	}
	if rest, ok := strings.CutPrefix(value, "rgba"); ok {
		return parseFunctionalColor(rest)
	}
	if rest, ok := strings.CutPrefix(value, "rgb"); ok {
		return parseFunctionalColor(rest)
	}
	return RGB{}, false
}

func parseHexColor(hex string) (RGB, bool) {
	switch len(hex) {
	case 3:
		// #rgb expands each digit: #f0a -> #ff00aa
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return RGB{}, false
	}

	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{uint8(n >> 16), uint8(n >> 8 & 0xff), uint8(n & 0xff)}, true
}

func parseFunctionalColor(args string) (RGB, bool) {
	args = strings.TrimSpace(args)
	if !strings.HasPrefix(args, "(") || !strings.HasSuffix(args, ")") {
		return RGB{}, false
	}

	parts := strings.Split(args[1:len(args)-1], ",")
	if len(parts) < 3 {
		return RGB{}, false
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return RGB{}, false
		}
		channels[i] = clampChannel(f)
	}
	return RGB{channels[0], channels[1], channels[2]}, true
}

func clampChannel(f float64) uint8 {
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint8(f)
}

// styleProperty returns the value of a property in the node's inline
// style attribute, or "" if absent. Property names match
// case-insensitively.
func styleProperty(n *html.Node, prop string) string {
	style := attrValue(n, "style")
	if style == "" {
		return ""
	}
	for _, decl := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(name), prop) {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// attrValue returns the value of the named attribute, or "" if absent.
func attrValue(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
