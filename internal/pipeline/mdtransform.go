package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Highlight placeholders use Unicode Private Use Area characters. They
// pass through Goldmark unchanged (no WithUnsafe needed) and are
// converted to <mark> tags afterwards, which the RTF renderer turns
// into highlighted runs.
const (
	markStartPlaceholder = "\uE000"
	markEndPlaceholder   = "\uE001"
)

var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
	highlightPattern   = regexp.MustCompile(`==(.*?)==`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// ObsidianPreprocessor prepares Obsidian-flavored markdown for
// CommonMark conversion: line-ending normalization, ==highlight==
// placeholder substitution, and blank-line compression.
type ObsidianPreprocessor struct{}

// PreprocessMarkdown applies all transformations in order.
func (p *ObsidianPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = crlfOrCR.ReplaceAllString(content, "\n")
	content = highlightPattern.ReplaceAllString(content,
		markStartPlaceholder+"$1"+markEndPlaceholder)
	content = multipleBlankLines.ReplaceAllString(content, "\n\n")
	return content
}

// ConvertMarkPlaceholders converts placeholder markers to <mark> tags.
// Called after Goldmark so the highlight syntax reaches the HTML tree
// without enabling raw HTML in the markdown parser.
func ConvertMarkPlaceholders(content string) string {
	return strings.ReplaceAll(
		strings.ReplaceAll(content, markStartPlaceholder, "<mark>"),
		markEndPlaceholder, "</mark>",
	)
}
