package tree

import (
	"fmt"
	"strings"

	"pathtree/internal/model"
)

// Options control how Generate renders a tree.
type Options struct {
	Compact bool // Collapse single-child directory chains
	Color   bool // Style fragments with ANSI sequences
	Summary bool // Append a "N directories, M files" line
}

// Format joins fragments into text, one line per label.
func Format(fragments []Fragment, p *Palette) string {
	var b strings.Builder
	for _, f := range fragments {
		switch f.Kind {
		case FragmentIndent, FragmentConnector:
			b.WriteString(p.Muted(f.Text))
		case FragmentDirectory:
			b.WriteString(p.Directory(f.Text))
			b.WriteByte('\n')
		case FragmentFile:
			b.WriteString(p.File(f.Text, f.Status))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Generate builds, renders and formats entries in one pass.
func Generate(entries []model.Entry, opts Options) string {
	root := Build(entries)
	out := Format(Render(root, opts.Compact), NewPalette(opts.Color))
	if opts.Summary {
		out += "\n" + SummaryLine(root.Count()) + "\n"
	}
	return out
}

// SummaryLine formats counts the way tree(1) does.
func SummaryLine(s model.Summary) string {
	return fmt.Sprintf("%d %s, %d %s",
		s.Directories, plural(s.Directories, "directory", "directories"),
		s.Files, plural(s.Files, "file", "files"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
