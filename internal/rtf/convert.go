package rtf

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrHTMLParse indicates the input HTML could not be parsed.
var ErrHTMLParse = errors.New("failed to parse HTML")

// Options controls document-level rendering behavior.
type Options struct {
	// ShowFullImagePath displays the full source path in image
	// placeholders instead of just the final path segment.
	ShowFullImagePath bool
}

// documentHeader declares the encoding and the two-entry font table:
// f0 sans-serif default, f1 monospace for code.
const documentHeader = `{\rtf1\ansi\ansicpg1252\deff0` +
	`{\fonttbl{\f0\fswiss Helvetica;}{\f1\fmodern Courier New;}}`

// defaultFontSize is the body font size directive in half-points (12pt).
const defaultFontSize = `\fs24`

// Convert renders an HTML document or fragment as a complete RTF
// document string. The input tree is never mutated; the color table is
// built fresh for this call and discarded with it, so concurrent
// conversions are independent.
func Convert(htmlContent string, opts Options) (string, error) {
	root, err := parseInput(htmlContent)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLParse, err)
	}

	colors := NewColorTable()
	colors.Collect(root)

	r := &renderer{colors: colors, opts: opts}
	body := r.render(root, Context{})

	var b strings.Builder
	b.WriteString(documentHeader)
	b.WriteByte('\n')
	b.WriteString(colors.Header())
	b.WriteByte('\n')
	b.WriteString(defaultFontSize)
	b.WriteByte('\n')
	b.WriteString(body)
	b.WriteString("}")
	return b.String(), nil
}

// parseInput parses either a complete HTML document or a body fragment
// into a traversable tree rooted at a renderable node.
func parseInput(content string) (*html.Node, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		if err != nil {
			return nil, err
		}
		if body := findElement(doc, "body"); body != nil {
			return body, nil
		}
		return doc, nil
	}

	// Fragment: parse in body context to avoid html/head/body wrapping.
	bodyCtx := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), bodyCtx)
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}
