// Package pipeline implements the Markdown-to-HTML stages of md2rtf.
//
// This package handles everything upstream of RTF generation:
//   - Markdown preprocessing (line normalization, ==highlight== syntax)
//   - Markdown to HTML conversion via Goldmark
//   - Relative image path resolution against the source directory
//
// RTF generation is handled separately by internal/rtf. The split keeps
// this package focused on producing a clean HTML tree, while the RTF
// renderer owns everything about the output format: escaping, color
// tables, and consumer quirks.
package pipeline
