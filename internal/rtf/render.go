package rtf

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Layout constants, in twips (1/20 point, 1440 per inch).
const (
	listIndent = 720  // 0.5 inch per list nesting level
	cellWidth  = 2400 // uniform table column width
	boxWidth   = 9000 // single-cell box width for callouts and images
)

// headingSizes maps heading level 1-6 to font size in half-points.
var headingSizes = [6]int{48, 40, 36, 32, 28, 24}

// Context carries per-call rendering state through the recursive walk.
// It is passed by value: a child call may widen it (enter a table cell,
// descend a list level) without affecting siblings or ancestors.
type Context struct {
	// InTableCell switches block elements to inline-with-\line rendering,
	// since RTF cells cannot hold nested paragraph boundaries reliably.
	InTableCell bool
	// InList marks that the current node is direct list item content, so
	// paragraphs render inline and let the item supply the \pard wrapper.
	InList bool
	// ListLevel is the nesting depth of the innermost enclosing list,
	// starting at 0 for a top-level list.
	ListLevel int
}

// elementKind is the closed set of element categories the renderer
// recognizes. Anything else is a pass-through container.
type elementKind int

const (
	kindPassthrough elementKind = iota
	kindSkip
	kindHeading
	kindLineBreak
	kindParagraph
	kindBlockquote
	kindCallout
	kindBulletList
	kindNumberList
	kindPre
	kindImage
	kindLink
	kindTable
	kindRule
	kindCheckbox
	kindBold
	kindItalic
	kindUnderline
	kindStrike
	kindCode
	kindMark
)

// classify maps a tag (plus distinguishing attributes) to its kind.
func classify(n *html.Node) elementKind {
	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return kindHeading
	case "br":
		return kindLineBreak
	case "p":
		return kindParagraph
	case "div":
		if hasClassToken(n, "callout") {
			return kindCallout
		}
		return kindParagraph
	case "blockquote":
		return kindBlockquote
	case "ul":
		return kindBulletList
	case "ol":
		return kindNumberList
	case "pre":
		return kindPre
	case "img":
		return kindImage
	case "a":
		return kindLink
	case "table":
		return kindTable
	case "hr":
		return kindRule
	case "input":
		if strings.EqualFold(attrValue(n, "type"), "checkbox") {
			return kindCheckbox
		}
		return kindPassthrough
	case "b", "strong":
		return kindBold
	case "i", "em":
		return kindItalic
	case "u", "ins":
		return kindUnderline
	case "s", "del", "strike":
		return kindStrike
	case "code":
		return kindCode
	case "mark":
		return kindMark
	case "script", "style", "head", "title":
		return kindSkip
	default:
		return kindPassthrough
	}
}

// renderer walks a parsed HTML tree and emits RTF. It holds only the
// per-conversion color table and options; all traversal state travels
// in Context values.
type renderer struct {
	colors *ColorTable
	opts   Options
}

// render dispatches on node type. It is a pure function of (node, ctx).
func (r *renderer) render(n *html.Node, ctx Context) string {
	switch n.Type {
	case html.TextNode:
		// Whitespace between cells and rows would otherwise leak into
		// the nearest cell as stray padding.
		if ctx.InTableCell && strings.TrimSpace(n.Data) == "" {
			return ""
		}
		return EscapeText(n.Data)
	case html.ElementNode:
		return r.renderElement(n, ctx)
	case html.DocumentNode:
		return r.renderChildren(n, ctx)
	default:
		return ""
	}
}

func (r *renderer) renderChildren(n *html.Node, ctx Context) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(r.render(c, ctx))
	}
	return b.String()
}

func (r *renderer) renderElement(n *html.Node, ctx Context) string {
	switch classify(n) {
	case kindHeading:
		return r.renderHeading(n, ctx)
	case kindLineBreak:
		return `\line `
	case kindParagraph:
		return r.renderParagraph(n, ctx)
	case kindBlockquote:
		return r.renderBlockquote(n, ctx)
	case kindCallout:
		return r.renderCallout(n, ctx)
	case kindBulletList:
		return r.renderList(n, ctx, false)
	case kindNumberList:
		return r.renderList(n, ctx, true)
	case kindPre:
		return r.renderPre(n, ctx)
	case kindImage:
		return r.renderImage(n, ctx)
	case kindLink:
		return r.renderLink(n, ctx)
	case kindTable:
		return r.renderTable(n, ctx)
	case kindRule:
		return "{\\pard\\brdrb\\brdrs\\brdrw10\\sa120\\par}\n"
	case kindCheckbox:
		if hasAttr(n, "checked") {
			return EscapeText("\u2611 ")
		}
		return EscapeText("\u2610 ")
	case kindBold:
		return r.renderInline(n, ctx, `\b `, `\b0 `)
	case kindItalic:
		return r.renderInline(n, ctx, `\i `, `\i0 `)
	case kindUnderline:
		return r.renderInline(n, ctx, `\ul `, `\ulnone `)
	case kindStrike:
		return r.renderInline(n, ctx, `\strike `, `\strike0 `)
	case kindCode:
		// Code directly under <pre> is the block's payload, not an
		// inline run; the <pre> branch supplies the monospace state.
		if n.Parent != nil && n.Parent.Type == html.ElementNode && n.Parent.Data == "pre" {
			return r.wrapOwnStyle(n, r.renderChildren(n, ctx))
		}
		return r.renderInline(n, ctx, `\f1 `, `\f0 `)
	case kindMark:
		return r.renderInline(n, ctx,
			fmt.Sprintf(`\highlight%d `, HighlightIndex), `\highlight0 `)
	case kindSkip:
		return ""
	default:
		return r.wrapOwnStyle(n, r.renderChildren(n, ctx))
	}
}

// renderInline wraps the children in a matched on/off control word pair.
// Nested carriers compose by concatenation; each pair is independently
// balanced so ordering between them does not matter.
func (r *renderer) renderInline(n *html.Node, ctx Context, on, off string) string {
	return r.wrapOwnStyle(n, on+r.renderChildren(n, ctx)+off)
}

// wrapOwnStyle applies the element's own inline color and
// background-color, if they resolved to registered palette entries,
// outward from any tag-specific styling already in inner.
func (r *renderer) wrapOwnStyle(n *html.Node, inner string) string {
	if c, ok := ParseColor(styleProperty(n, "color")); ok {
		if idx := r.colors.Lookup(c); idx > 0 {
			inner = fmt.Sprintf(`\cf%d %s\cf0 `, idx, inner)
		}
	}
	if c, ok := ParseColor(styleProperty(n, "background-color")); ok {
		if idx := r.colors.Lookup(c); idx > 0 {
			inner = fmt.Sprintf(`\highlight%d %s\highlight0 `, idx, inner)
		}
	}
	return inner
}

func (r *renderer) renderHeading(n *html.Node, ctx Context) string {
	level := int(n.Data[1] - '0')
	size := headingSizes[level-1]
	inner := r.renderChildren(n, ctx)

	if ctx.InTableCell {
		return fmt.Sprintf(`{\b\fs%d %s}\line `, size, inner)
	}
	return fmt.Sprintf("{\\pard\\keepn\\sb240\\sa120\\b\\fs%d %s\\par}\n", size, inner)
}

func (r *renderer) renderBlockquote(n *html.Node, ctx Context) string {
	inner := r.renderChildren(n, ctx)
	if ctx.InTableCell {
		return fmt.Sprintf(`{\i %s}\line `, inner)
	}
	return fmt.Sprintf("{\\pard\\li%d\\sb120\\sa120\\i %s\\par}\n", listIndent, inner)
}

func (r *renderer) renderParagraph(n *html.Node, ctx Context) string {
	inner := r.renderChildren(n, ctx)

	// The paragraph's own background renders as a highlight wrap around
	// the content; RTF has no block-level shading that survives all
	// consumers.
	if c, ok := ParseColor(styleProperty(n, "background-color")); ok {
		if idx := r.colors.Lookup(c); idx > 0 {
			inner = fmt.Sprintf(`\highlight%d %s\highlight0 `, idx, inner)
		}
	}

	switch {
	case ctx.InList:
		// List item content: the item emits the surrounding \pard.
		return inner
	case ctx.InTableCell:
		return inner + `\line `
	default:
		return fmt.Sprintf("{\\pard\\sa120 %s\\par}\n", inner)
	}
}

func (r *renderer) renderPre(n *html.Node, ctx Context) string {
	inner := trimLineBreaks(r.renderChildren(n, ctx))
	if ctx.InTableCell {
		return fmt.Sprintf(`{\f1 %s}\line `, inner)
	}
	return fmt.Sprintf("{\\pard\\li%d\\sa120\\f1 %s\\par}\n", listIndent, inner)
}

func (r *renderer) renderImage(n *html.Node, ctx Context) string {
	display := imageDisplay(attrValue(n, "src"), r.opts.ShowFullImagePath)
	return r.renderBox(EscapeText("\U0001f5bc "+display), `\brdrdash`, ctx)
}

// imageDisplay picks the placeholder text for an image source. Query
// string and fragment are always stripped; full mode keeps the path,
// otherwise only the final segment remains.
func imageDisplay(src string, full bool) string {
	if i := strings.IndexAny(src, "?#"); i >= 0 {
		src = src[:i]
	}
	if !full {
		if i := strings.LastIndexByte(src, '/'); i >= 0 {
			src = src[i+1:]
		}
	}
	if src == "" {
		return "image"
	}
	return src
}

func (r *renderer) renderLink(n *html.Node, ctx Context) string {
	href := attrValue(n, "href")
	display := textContent(n)
	if display == "" {
		display = href
	}
	if href == "" {
		return EscapeText(display)
	}

	if portableScheme(href) {
		return fmt.Sprintf(`{\field{\*\fldinst{HYPERLINK "%s"}}{\fldrslt{\cf%d\ul %s}}}`,
			EscapeFieldArg(href), LinkIndex, EscapeText(display))
	}

	// App-specific schemes (obsidian://, tg://, ...) are not portable
	// hyperlink targets; degrade to the markdown form as plain text.
	return EscapeText("\U0001f517 [" + display + "](" + href + ")")
}

// portableScheme reports whether mainstream RTF consumers will resolve
// the URL as a clickable hyperlink field.
func portableScheme(href string) bool {
	scheme, _, ok := strings.Cut(href, ":")
	if !ok {
		return false
	}
	switch strings.ToLower(scheme) {
	case "http", "https", "mailto":
		return true
	}
	return false
}

func (r *renderer) renderCallout(n *html.Node, ctx Context) string {
	boxCtx := Context{InTableCell: true}

	title := findChildByClass(n, "callout-title")
	content := findChildByClass(n, "callout-content")

	var inner string
	switch {
	case title == nil && content == nil:
		inner = cleanCellContent(r.renderChildren(n, boxCtx))
	default:
		var parts []string
		if title != nil {
			parts = append(parts, `{\b `+cleanCellContent(r.renderChildren(title, boxCtx))+`}`)
		}
		if content != nil {
			parts = append(parts, cleanCellContent(r.renderChildren(content, boxCtx)))
		}
		inner = strings.Join(parts, `\line `)
	}

	return r.renderBox(inner, `\brdrs`, ctx)
}

// renderBox emits the shared single-cell bordered table used by callouts
// (solid border) and image placeholders (dashed border). RTF has no
// native box construct, so a one-row one-column table stands in.
func (r *renderer) renderBox(inner, border string, _ Context) string {
	var b strings.Builder
	b.WriteString(`\trowd\trgaph108`)
	for _, side := range []string{`t`, `l`, `b`, `r`} {
		b.WriteString(`\clbrdr` + side + border + `\brdrw10`)
	}
	if r.colors.Lookup(reservedColors[BoxFillIndex-1]) == BoxFillIndex {
		fmt.Fprintf(&b, `\clcbpat%d`, BoxFillIndex)
	}
	fmt.Fprintf(&b, `\cellx%d`, boxWidth)
	b.WriteString(`\pard\intbl `)
	b.WriteString(inner)
	b.WriteString("\\line\\cell\\row\\pard\n")
	return b.String()
}

func (r *renderer) renderList(n *html.Node, ctx Context, ordered bool) string {
	// Multi-level numbering does not render consistently across RTF
	// consumers; nested ordered lists fall back to bullets.
	useNumbers := ordered && ctx.ListLevel < 1

	itemCtx := Context{
		InTableCell: ctx.InTableCell,
		InList:      true,
		ListLevel:   ctx.ListLevel,
	}

	var b strings.Builder
	counter := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		counter++
		marker := `\bullet  `
		if useNumbers {
			marker = fmt.Sprintf("%d. ", counter)
		}
		b.WriteString(r.renderListItem(c, itemCtx, marker))
	}
	return b.String()
}

// renderListItem decomposes a list item into a head (its leading inline
// content, or its first paragraph child), continuation blocks, and
// nested sub-lists, emitted in source order after the head.
func (r *renderer) renderListItem(li *html.Node, ctx Context, marker string) string {
	indent := listIndent * (ctx.ListLevel + 1)

	var head strings.Builder
	var rest []string
	headClosed := false

	for c := li.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) == "" {
			continue
		}

		switch {
		case c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol"):
			subCtx := ctx
			subCtx.ListLevel++
			rest = append(rest, r.renderList(c, subCtx, c.Data == "ol"))
			headClosed = true

		case c.Type == html.ElementNode && isItemBlock(c):
			if !headClosed && head.Len() == 0 && (c.Data == "p" || c.Data == "div") {
				head.WriteString(r.render(c, ctx))
			} else {
				rest = append(rest, r.renderContinuation(c, ctx, indent))
			}
			headClosed = true

		default:
			s := r.render(c, ctx)
			if !headClosed {
				head.WriteString(s)
			} else if s != "" {
				rest = append(rest, r.wrapContinuation(s, ctx, indent))
			}
		}
	}

	var b strings.Builder
	if ctx.InTableCell {
		b.WriteString(marker + head.String() + `\line `)
	} else {
		fmt.Fprintf(&b, "{\\pard\\fi-360\\li%d %s%s\\par}\n", indent, marker, head.String())
	}
	for _, s := range rest {
		b.WriteString(s)
	}
	return b.String()
}

// isItemBlock reports whether a list item child renders as its own
// block rather than as inline head content.
func isItemBlock(n *html.Node) bool {
	switch n.Data {
	case "p", "div", "blockquote", "pre":
		return true
	}
	return false
}

// renderContinuation renders a block child of a list item beyond the
// head as an indented continuation paragraph (or an inline run inside
// table cells).
func (r *renderer) renderContinuation(n *html.Node, ctx Context, indent int) string {
	var inner string
	switch n.Data {
	case "blockquote":
		inner = `{\i ` + r.renderChildren(n, ctx) + `}`
	case "pre":
		inner = `{\f1 ` + trimLineBreaks(r.renderChildren(n, ctx)) + `}`
	default:
		// Paragraphs render inline under InList; the wrapper below adds
		// the paragraph boundary at the right indent.
		inner = r.render(n, ctx)
	}
	return r.wrapContinuation(inner, ctx, indent)
}

func (r *renderer) wrapContinuation(inner string, ctx Context, indent int) string {
	if ctx.InTableCell {
		return inner + `\line `
	}
	return fmt.Sprintf("{\\pard\\li%d %s\\par}\n", indent, inner)
}

func (r *renderer) renderTable(n *html.Node, ctx Context) string {
	rows := collectRows(n)
	if len(rows) == 0 {
		return ""
	}

	cols := 0
	cells := make([][]*html.Node, len(rows))
	for i, row := range rows {
		cells[i] = collectCells(row)
		if len(cells[i]) > cols {
			cols = len(cells[i])
		}
	}
	if cols == 0 {
		return ""
	}

	// Cell content renders with table context on and list state reset;
	// a cell is a fresh rendering scope.
	cellCtx := Context{InTableCell: true}

	var b strings.Builder
	for _, rowCells := range cells {
		b.WriteString(`\trowd\trgaph108`)
		for i := 0; i < cols; i++ {
			for _, side := range []string{`t`, `l`, `b`, `r`} {
				b.WriteString(`\clbrdr` + side + `\brdrs\brdrw10`)
			}
			fmt.Fprintf(&b, `\cellx%d`, cellWidth*(i+1))
		}
		b.WriteString(`\pard\intbl `)
		for i := 0; i < cols; i++ {
			// Ragged rows pad with empty (but still bordered) cells.
			if i < len(rowCells) {
				content := cleanCellContent(r.renderChildren(rowCells[i], cellCtx))
				if rowCells[i].Data == "th" {
					content = `{\b ` + content + `}`
				}
				b.WriteString(content)
			}
			b.WriteString(`\cell `)
		}
		b.WriteString("\\row\n")
	}
	b.WriteString("\\pard\n")
	return b.String()
}

// collectRows gathers tr elements from the table subtree, looking
// through thead/tbody/tfoot wrappers.
func collectRows(n *html.Node) []*html.Node {
	var rows []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "tr":
			rows = append(rows, c)
		case "thead", "tbody", "tfoot":
			rows = append(rows, collectRows(c)...)
		}
	}
	return rows
}

func collectCells(row *html.Node) []*html.Node {
	var cells []*html.Node
	for c := row.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			cells = append(cells, c)
		}
	}
	return cells
}

// cleanCellContent strips leading break artifacts and invisible
// characters so cell content never opens with a spurious break.
func cleanCellContent(s string) string {
	for {
		trimmed := strings.TrimLeft(s, " \t")
		switch {
		case strings.HasPrefix(trimmed, `\line `):
			s = trimmed[len(`\line `):]
		case strings.HasPrefix(trimmed, `\par `):
			s = trimmed[len(`\par `):]
		default:
			return trimmed
		}
	}
}

// trimLineBreaks removes leading and trailing \line artifacts that
// fenced code blocks pick up from their surrounding newlines.
func trimLineBreaks(s string) string {
	for {
		t := strings.TrimSpace(s)
		t = strings.TrimPrefix(t, `\line`)
		t = strings.TrimSuffix(t, `\line`)
		t = strings.TrimSpace(t)
		if t == s {
			return t
		}
		s = t
	}
}

// textContent concatenates all text descendants of a node.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// findChildByClass returns the first descendant element carrying the
// given class token, or nil.
func findChildByClass(n *html.Node, class string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			if hasClassToken(c, class) {
				return c
			}
			if found := findChildByClass(c, class); found != nil {
				return found
			}
		}
	}
	return nil
}

func hasClassToken(n *html.Node, token string) bool {
	for _, t := range strings.Fields(attrValue(n, "class")) {
		if t == token {
			return true
		}
	}
	return false
}

func hasAttr(n *html.Node, name string) bool {
	for _, a := range n.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}
