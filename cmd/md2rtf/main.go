package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/larikaweb/go-md2rtf/internal/config"
	"github.com/larikaweb/go-md2rtf/internal/fileutil"
	"github.com/larikaweb/go-md2rtf/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches commands and returns the process exit code.
// Separated from main for testability.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd := args[1]
	rest := args[2:]

	// Bare "md2rtf notes.md" works as an implicit convert.
	if !isCommand(cmd) {
		if looksLikeMarkdown(cmd) || fileutil.IsFilePath(cmd) || dirExists(cmd) {
			cmd, rest = "convert", args[1:]
		} else {
			fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
			printUsage(env.Stderr)
			return ExitUsage
		}
	}

	switch cmd {
	case "version":
		fmt.Fprintf(env.Stdout, "md2rtf %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(rest, env)
		return ExitSuccess
	case "convert":
		flags, positional, err := parseConvertFlags(rest)
		if err != nil {
			return ExitUsage
		}
		failed, err := runConvert(context.Background(), positional, flags, env)
		if err != nil {
			fmt.Fprintln(env.Stderr, err.Error()+hintFor(err))
			return exitCodeFor(err)
		}
		if failed > 0 {
			return ExitGeneral
		}
		return ExitSuccess
	}
	return ExitGeneral
}

func isCommand(s string) bool {
	switch s {
	case "convert", "version", "help":
		return true
	}
	return false
}

func looksLikeMarkdown(s string) bool {
	return fileutil.IsMarkdownFile(s)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// hintFor appends an actionable hint for errors with a known remedy.
func hintFor(err error) string {
	if errors.Is(err, config.ErrConfigNotFound) {
		var paths []string
		if dir, derr := os.UserConfigDir(); derr == nil {
			paths = append(paths, filepath.Join(dir, "go-md2rtf", "config.yaml"))
		}
		return hints.ForConfigNotFound(paths)
	}
	return ""
}
