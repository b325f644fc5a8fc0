// Package app wires input sources, status parsing and tree rendering into
// the pathtree command.
package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"pathtree/internal/model"
	"pathtree/internal/status"
	"pathtree/internal/tree"
)

// Options are the fully resolved settings for one run.
type Options struct {
	Compact bool
	Color   bool
	Plain   bool
	Summary bool
	GitDir  string // read `git status --porcelain` in this directory instead of the input
}

// TreeOptions returns the rendering subset of o.
func (o Options) TreeOptions() tree.Options {
	return tree.Options{Compact: o.Compact, Color: o.Color, Summary: o.Summary}
}

// LoadEntries reads entries from in, or from git when o.GitDir is set.
func LoadEntries(ctx context.Context, logger *slog.Logger, o Options, in io.Reader) ([]model.Entry, error) {
	parser := status.NewParser(logger, o.Plain)

	if o.GitDir == "" {
		return parser.Parse(in)
	}

	out, err := status.RunGitStatus(ctx, logger, o.GitDir)
	if err != nil {
		return nil, err
	}
	// git output always carries status codes.
	return status.NewParser(logger, false).Parse(bytes.NewReader(out))
}

// Run renders the entries read from in to out.
func Run(ctx context.Context, logger *slog.Logger, o Options, in io.Reader, out io.Writer) error {
	entries, err := LoadEntries(ctx, logger, o, in)
	if err != nil {
		return err
	}

	text := tree.Generate(entries, o.TreeOptions())
	logger.Debug("rendered tree", "entries", len(entries), "bytes", len(text), "compact", o.Compact, "color", o.Color)

	if _, err := io.WriteString(out, text); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
