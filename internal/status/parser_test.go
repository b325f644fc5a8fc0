package status

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathtree/internal/model"
)

func newTestParser(plain bool) *Parser {
	return NewParser(slog.New(slog.DiscardHandler), plain)
}

func TestParser_ParseLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   model.Entry
		wantOK bool
	}{
		{name: "plain path", line: "src/main.go", want: model.Entry{Path: "src/main.go"}, wantOK: true},
		{name: "staged modify", line: "M  src/main.go", want: model.Entry{Path: "src/main.go", Status: "M"}, wantOK: true},
		{name: "worktree modify", line: " M src/main.go", want: model.Entry{Path: "src/main.go", Status: "M"}, wantOK: true},
		{name: "untracked", line: "?? notes.txt", want: model.Entry{Path: "notes.txt", Status: "??"}, wantOK: true},
		{name: "two letter code kept", line: "MM both.go", want: model.Entry{Path: "both.go", Status: "MM"}, wantOK: true},
		{name: "rename keeps new path", line: "R  old.txt -> new.txt", want: model.Entry{Path: "new.txt", Status: "R"}, wantOK: true},
		{name: "copy keeps new path", line: "C  a.txt -> b/a.txt", want: model.Entry{Path: "b/a.txt", Status: "C"}, wantOK: true},
		{name: "arrow outside rename ignored", line: "A  a -> b", want: model.Entry{Path: "a -> b", Status: "A"}, wantOK: true},
		{name: "quoted path", line: `?? "with space.txt"`, want: model.Entry{Path: "with space.txt", Status: "??"}, wantOK: true},
		{name: "quoted octal escape", line: `A  "caf\303\251.txt"`, want: model.Entry{Path: "café.txt", Status: "A"}, wantOK: true},
		{name: "quoted rename target", line: `R  old -> "new name"`, want: model.Entry{Path: "new name", Status: "R"}, wantOK: true},
		{name: "crlf trimmed", line: "D  gone.txt\r", want: model.Entry{Path: "gone.txt", Status: "D"}, wantOK: true},
		{name: "blank code is a path", line: "   spaced", want: model.Entry{Path: "   spaced"}, wantOK: true},
		{name: "unknown code letters are a path", line: "xy file", want: model.Entry{Path: "xy file"}, wantOK: true},
		{name: "no space after code", line: "M\tfile", want: model.Entry{Path: "M\tfile"}, wantOK: true},
		{name: "empty", line: "", wantOK: false},
		{name: "whitespace", line: " \t ", wantOK: false},
	}

	p := newTestParser(false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.ParseLine(tt.line)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParser_PlainIgnoresCodes(t *testing.T) {
	p := newTestParser(true)

	got, ok := p.ParseLine("M  src/main.go")
	require.True(t, ok)
	assert.Equal(t, model.Entry{Path: "M  src/main.go"}, got)

	_, ok = p.ParseLine("   ")
	assert.False(t, ok)
}

func TestParser_Parse(t *testing.T) {
	input := strings.Join([]string{
		" M internal/tree/render.go",
		"",
		"R  docs/old.md -> docs/new.md",
		"?? scratch/",
		"   ",
		"go.mod",
	}, "\n")

	got, err := newTestParser(false).Parse(strings.NewReader(input))
	require.NoError(t, err)

	want := []model.Entry{
		{Path: "internal/tree/render.go", Status: "M"},
		{Path: "docs/new.md", Status: "R"},
		{Path: "scratch/", Status: "??"},
		{Path: "go.mod"},
	}
	assert.Equal(t, want, got)
}

func TestParser_ParseEmpty(t *testing.T) {
	got, err := newTestParser(false).Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParser_ParseLineTooLong(t *testing.T) {
	long := strings.Repeat("a", 2*1024*1024)
	_, err := newTestParser(false).Parse(strings.NewReader(long))
	assert.Error(t, err)
}
