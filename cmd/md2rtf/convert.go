package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/larikaweb/go-md2rtf/internal/config"
)

// ErrNoInput indicates no input file or directory was given.
var ErrNoInput = errors.New("no input specified")

// conversionParams groups settings shared across a batch.
type conversionParams struct {
	fullImagePaths bool
	htmlOutput     bool
	htmlOnly       bool
}

// runConvert orchestrates the conversion process. It returns the number
// of failed conversions along with any error that stopped the batch
// from starting at all.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) (int, error) {
	if err := validateWorkers(flags.workers); err != nil {
		return 0, err
	}

	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return 0, fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	params := &conversionParams{
		fullImagePaths: flags.fullImagePaths || cfg.Images.FullPath,
		htmlOutput:     flags.html || cfg.Export.HTML,
		htmlOnly:       flags.htmlOnly,
	}

	// Resolve input path
	inputPath := ""
	switch {
	case len(positionalArgs) > 0:
		inputPath = positionalArgs[0]
	case cfg.Input.DefaultDir != "":
		inputPath = cfg.Input.DefaultDir
	default:
		return 0, ErrNoInput
	}

	// Resolve output directory
	outputDir := flags.output
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	// Discover files to convert
	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return 0, fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return 0, fmt.Errorf("%w: no markdown files under %s", ErrNoInput, inputPath)
	}

	pool := NewConverterPool(resolvePoolSize(flags.workers))
	results := convertBatch(ctx, pool, files, params)

	return printResults(results, flags.quiet, flags.verbose, env), nil
}
