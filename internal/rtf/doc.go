// Package rtf renders parsed HTML trees as self-contained RTF documents.
//
// The package is the final stage of the md2rtf pipeline. It consumes an
// HTML fragment (typically Goldmark output), walks the node tree once to
// collect a deduplicated color table, then walks it again emitting RTF
// control words and escaped text. The result is a complete document with
// font table, color table, and body, suitable for writing to a .rtf file.
//
// Rendering is a pure function of the input tree and options: no I/O, no
// shared state between calls, and deterministic output. Concurrent calls
// to Convert are safe.
//
// RTF quirks shape several decisions here. Table cells cannot safely
// contain paragraph boundaries across consumers (Word, LibreOffice,
// Google Docs), so block elements inside cells render as inline runs
// terminated by \line. Callouts and image placeholders share a one-cell
// bordered table because RTF has no native box primitive. Non-ASCII text
// uses signed 16-bit \uN escapes, one UTF-16 code unit at a time, so
// characters outside the BMP become surrogate pairs.
package rtf
