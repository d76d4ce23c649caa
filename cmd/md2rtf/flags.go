package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	config         string
	output         string
	workers        int
	fullImagePaths bool
	html           bool
	htmlOnly       bool
	quiet          bool
	verbose        bool
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.fullImagePaths, "full-image-paths", false, "show full paths in image placeholders")
	fs.BoolVar(&f.html, "html", false, "output intermediate HTML alongside RTF")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "output HTML only, skip RTF")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file timing")

	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
