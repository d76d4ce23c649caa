// Package md2rtf converts Markdown documents to RTF.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv := md2rtf.NewConverter()
//
//	result, err := conv.Convert(ctx, md2rtf.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.rtf", result.RTF, 0644)
//
// The result contains both the RTF bytes (result.RTF) and the
// intermediate HTML (result.HTML) for debugging. Use Input.HTMLOnly to
// skip RTF generation.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (line normalization, ==highlight== syntax)
//  2. Markdown to HTML conversion via Goldmark (GFM, syntax highlighting)
//  3. Relative image path resolution (if Input.SourceDir is set)
//  4. RTF rendering: a recursive walk over the HTML tree emitting
//     control words, with a per-document deduplicated color table
//
// Callers that already hold rendered HTML can skip the markdown stages
// with ConvertHTML.
//
// # RTF Output
//
// The output is a single self-contained document: font table (sans
// default, monospace for code), color table, and body. Headings,
// paragraphs, nested lists, tables, blockquotes, code blocks, inline
// styles, and hyperlinks map to native RTF constructs. Callouts and
// images render as bordered single-cell boxes; image bytes are never
// embedded, the box holds a text placeholder whose path display is
// controlled by Input.FullImagePaths.
//
// Output renders acceptably in Word, LibreOffice, and Google Docs;
// byte-exact visual parity across consumers is out of scope.
//
// # Concurrency
//
// A Converter is safe for sequential reuse. For parallel batch work,
// give each goroutine its own Converter; construction is cheap and
// conversions share no state.
package md2rtf
