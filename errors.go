package md2rtf

import (
	"errors"

	"github.com/larikaweb/go-md2rtf/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrEmptyHTML     = errors.New("HTML content cannot be empty")
	ErrRTFGeneration = errors.New("RTF generation failed")

	// ErrHTMLConversion is the sentinel wrapped by markdown-to-HTML
	// failures, re-exported so callers can errors.Is against it without
	// importing internal packages.
	ErrHTMLConversion = pipeline.ErrHTMLConversion
)
