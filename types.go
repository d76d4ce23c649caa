package md2rtf

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content (required)

	// SourceDir is the directory the markdown was read from. When set,
	// relative image paths are resolved against it before rendering.
	SourceDir string

	// FullImagePaths shows the full source path in image placeholders
	// instead of just the file name. Query strings and fragments are
	// stripped either way.
	FullImagePaths bool

	// HTMLOnly skips RTF generation and returns only the intermediate
	// HTML (for debugging).
	HTMLOnly bool
}

// ConvertResult holds the outputs of a conversion.
type ConvertResult struct {
	HTML []byte // intermediate HTML
	RTF  []byte // final RTF document (nil when Input.HTMLOnly)
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	fullImagePaths bool
}

// WithFullImagePaths enables full-path image placeholders for every
// conversion made with the Converter. Input.FullImagePaths enables the
// same mode for a single conversion.
func WithFullImagePaths(full bool) Option {
	return func(c *Converter) {
		c.cfg.fullImagePaths = full
	}
}
