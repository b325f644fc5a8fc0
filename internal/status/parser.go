// Package status turns raw input lines, optionally in `git status
// --porcelain` form, into path entries for the tree builder.
package status

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"pathtree/internal/model"
)

// renameSeparator splits the old and new path of a rename or copy line.
const renameSeparator = " -> "

// Parser handles the parsing of path lists and porcelain status output.
type Parser struct {
	re     *regexp.Regexp
	plain  bool
	logger *slog.Logger
}

// NewParser creates a Parser. A plain parser never looks for status codes
// and treats every line as a path.
func NewParser(logger *slog.Logger, plain bool) *Parser {
	// Pattern: XY<space>path
	// Matches:
	// M  src/main.go
	//  M src/main.go
	// ?? notes.txt
	return &Parser{
		re:     regexp.MustCompile(`^([ MTADRCU?!]{2}) (.+)$`),
		plain:  plain,
		logger: logger,
	}
}

// ParseLine converts one input line. ok is false for blank lines, which
// must not reach the tree.
func (p *Parser) ParseLine(line string) (entry model.Entry, ok bool) {
	line = strings.TrimSuffix(line, "\r")
	if strings.TrimSpace(line) == "" {
		return model.Entry{}, false
	}
	if p.plain {
		return model.Entry{Path: line}, true
	}

	m := p.re.FindStringSubmatch(line)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return model.Entry{Path: line}, true
	}

	code, path := m[1], m[2]
	if code[0] == 'R' || code[0] == 'C' {
		if _, to, found := strings.Cut(path, renameSeparator); found {
			path = to
		}
	}
	path = unquote(path)
	if strings.TrimSpace(path) == "" {
		return model.Entry{}, false
	}

	return model.Entry{Path: path, Status: strings.TrimSpace(code)}, true
}

// Parse reads r line by line and returns the entries in input order.
func (p *Parser) Parse(r io.Reader) ([]model.Entry, error) {
	scanner := bufio.NewScanner(r)
	// Generated file lists can contain very long paths.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	var entries []model.Entry
	lines, skipped := 0, 0
	for scanner.Scan() {
		lines++
		entry, ok := p.ParseLine(scanner.Text())
		if !ok {
			skipped++
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	p.logger.Debug("parsed input", "lines", lines, "entries", len(entries), "skipped", skipped)
	return entries, nil
}

// unquote undoes git's C-style quoting of paths with unusual characters.
// Anything that does not unquote cleanly is returned as is.
func unquote(path string) string {
	if len(path) < 2 || path[0] != '"' || path[len(path)-1] != '"' {
		return path
	}
	s, err := strconv.Unquote(path)
	if err != nil {
		return path
	}
	return s
}
