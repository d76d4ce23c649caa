package md2rtf

import (
	"context"
	"fmt"

	"github.com/larikaweb/go-md2rtf/internal/pipeline"
	"github.com/larikaweb/go-md2rtf/internal/rtf"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.ObsidianPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ rtfConverter                  = (*rtfEmitter)(nil)
)

// rtfConverter abstracts HTML to RTF conversion for test injection.
type rtfConverter interface {
	ToRTF(ctx context.Context, htmlContent string, opts rtf.Options) (string, error)
}

// rtfEmitter converts HTML to RTF with the internal/rtf renderer.
type rtfEmitter struct{}

func (e *rtfEmitter) ToRTF(ctx context.Context, htmlContent string, opts rtf.Options) (string, error) {
	// Rendering is a bounded in-memory traversal; a pre-flight context
	// check is all the cancellation it needs.
	if err := ctx.Err(); err != nil {
		return "", err
	}
	out, err := rtf.Convert(htmlContent, opts)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRTFGeneration, err)
	}
	return out, nil
}

// Converter orchestrates the markdown-to-RTF conversion pipeline.
// Create with NewConverter and use Convert or ConvertHTML.
type Converter struct {
	cfg           converterConfig
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	rtfConverter  rtfConverter
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithFullImagePaths).
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		preprocessor:  &pipeline.ObsidianPreprocessor{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		rtfConverter:  &rtfEmitter{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Convert runs the full pipeline and returns the result containing HTML
// and RTF. The context is used for cancellation. If input.HTMLOnly is
// true, RTF generation is skipped (for debugging).
// Recovers from internal panics to prevent crashes from propagating to
// callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	// Preprocess markdown
	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Convert to HTML
	htmlContent, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	// Resolve relative image paths (if source directory provided)
	if input.SourceDir != "" {
		htmlContent, err = pipeline.ResolveImagePaths(htmlContent, input.SourceDir)
		if err != nil {
			return nil, fmt.Errorf("resolving image paths: %w", err)
		}
	}

	// Convert highlight placeholders to <mark> tags.
	// This completes the ==text== feature started in preprocessing.
	// Done after Goldmark to avoid needing html.WithUnsafe().
	htmlContent = pipeline.ConvertMarkPlaceholders(htmlContent)

	res := &ConvertResult{
		HTML: []byte(htmlContent),
	}

	// Skip RTF generation if HTMLOnly mode
	if input.HTMLOnly {
		return res, nil
	}

	rtfContent, err := c.rtfConverter.ToRTF(ctx, htmlContent, rtf.Options{
		ShowFullImagePath: input.FullImagePaths || c.cfg.fullImagePaths,
	})
	if err != nil {
		return nil, fmt.Errorf("converting to RTF: %w", err)
	}

	res.RTF = []byte(rtfContent)
	return res, nil
}

// ConvertHTML converts an already-rendered HTML fragment straight to
// RTF, bypassing the markdown stages. This is the entry point for
// callers with their own markdown renderer.
func (c *Converter) ConvertHTML(ctx context.Context, htmlContent string) (string, error) {
	if htmlContent == "" {
		return "", ErrEmptyHTML
	}
	return c.rtfConverter.ToRTF(ctx, htmlContent, rtf.Options{
		ShowFullImagePath: c.cfg.fullImagePaths,
	})
}
