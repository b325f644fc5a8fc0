package app

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathtree/internal/status"
)

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRun_Plain(t *testing.T) {
	in := strings.NewReader("a/b\na/c\n")
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), discard(), Options{}, in, &out))
	assert.Equal(t, "└── a\n    ├── b\n    └── c\n", out.String())
}

func TestRun_BlankInput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), discard(), Options{Compact: true}, strings.NewReader("\n  \n\t\n"), &out))
	assert.Equal(t, "", out.String())
}

func TestRun_Porcelain(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		" M src/app/app.go",
		"R  old.txt -> new.txt",
		"?? notes/todo.md",
	}, "\n"))
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), discard(), Options{Compact: true}, in, &out))

	want := "" +
		"├── new.txt\n" +
		"├── notes\n" +
		"│   └── todo.md\n" +
		"└── src/app\n" +
		"    └── app.go\n"
	assert.Equal(t, want, out.String())
	assert.NotContains(t, out.String(), "old.txt")
}

func TestRun_RenameColoredCyan(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("R  old.txt -> new.txt\n")

	require.NoError(t, Run(context.Background(), discard(), Options{Color: true}, in, &out))
	assert.Contains(t, out.String(), "\x1b[36mnew.txt\x1b[0m\n")
}

func TestRun_PlainOptionKeepsCodes(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), discard(), Options{Plain: true}, strings.NewReader("M  x\n"), &out))
	assert.Equal(t, "└── M  x\n", out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRun_WriteError(t *testing.T) {
	err := Run(context.Background(), discard(), Options{}, strings.NewReader("a\n"), failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing output")
}

func TestLoadEntries_GitNotRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))

	_, err := LoadEntries(context.Background(), discard(), Options{GitDir: dir}, strings.NewReader("ignored"))
	assert.ErrorIs(t, err, status.ErrNotRepository)
}
