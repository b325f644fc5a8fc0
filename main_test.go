package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tcnksm/go-latest"
)

// execute runs the root command with an isolated config directory.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_Default(t *testing.T) {
	out, _, err := execute(t, "a/b\na/c\n")
	require.NoError(t, err)
	assert.Equal(t, "└── a\n    ├── b\n    └── c\n", out)
}

func TestRoot_CompactColor(t *testing.T) {
	out, _, err := execute(t, " M x/y/z.go\n", "--compact", "--color")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[34mx/y\x1b[0m\n")
	assert.Contains(t, out, "\x1b[33mz.go\x1b[0m\n")
}

func TestRoot_ColorNeverAndAuto(t *testing.T) {
	for _, mode := range []string{"never", "auto"} {
		t.Run(mode, func(t *testing.T) {
			out, _, err := execute(t, "?? a\n", "--color="+mode)
			require.NoError(t, err)
			assert.Equal(t, "└── a\n", out)
		})
	}
}

func TestRoot_InvalidColor(t *testing.T) {
	_, _, err := execute(t, "", "--color=rainbow")
	assert.Error(t, err)
}

func TestRoot_Summary(t *testing.T) {
	out, _, err := execute(t, "a/b\n", "-s")
	require.NoError(t, err)
	assert.Equal(t, "└── a\n    └── b\n\n1 directory, 1 file\n", out)
}

func TestRoot_ConfigFileDefaults(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("compact = true\nplain = true\n"), 0644))

	out, _, err := execute(t, "M  a/b/c\n", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "└── M  a/b\n    └── c\n", out)

	out, _, err = execute(t, "M  a/b/c\n", "--config", cfgPath, "--compact=false", "--plain=false")
	require.NoError(t, err)
	assert.Equal(t, "└── a\n    └── b\n        └── c\n", out)
}

func TestRoot_MissingExplicitConfig(t *testing.T) {
	_, errOut, err := execute(t, "a\n", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, errOut, "Error: ")
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	out, errOut, err := execute(t, "a\n", "-v")
	require.NoError(t, err)
	assert.Equal(t, "└── a\n", out)
	assert.Contains(t, errOut, "\tDEBUG\t")
	assert.Contains(t, errOut, "rendered tree")
}

func TestRoot_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "", "somefile")
	assert.Error(t, err)
}

func TestConfigInitAndShow(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "pt", "config.toml")

	out, _, err := execute(t, "", "config", "init", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, cfgPath)
	assert.FileExists(t, cfgPath)

	out, _, err = execute(t, "", "config", "show", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, `color = "never"`)
	assert.Contains(t, out, "compact = false")

	_, _, err = execute(t, "", "config", "init", "--config", cfgPath)
	assert.Error(t, err)
}

func TestGithubTag(t *testing.T) {
	tag, err := githubTag("acme/pathtree")
	require.NoError(t, err)
	assert.Equal(t, "acme", tag.Owner)
	assert.Equal(t, "pathtree", tag.Repository)

	for _, repo := range []string{"", "acme", "/pathtree", "acme/", "a/b/c"} {
		t.Run(repo, func(t *testing.T) {
			_, err := githubTag(repo)
			assert.Error(t, err)
		})
	}
}

func TestRoot_CheckUpdateUnconfigured(t *testing.T) {
	_, errOut, err := execute(t, "", "--check-update")
	require.Error(t, err)
	assert.Contains(t, errOut, "update check is not configured")
}

// brokenSource fails before any network access.
type brokenSource struct{}

func (brokenSource) Validate() error { return errors.New("no repository") }

func (brokenSource) Fetch() (*latest.FetchResponse, error) {
	return nil, errors.New("unreachable")
}

func TestCheckUpdate_SourceError(t *testing.T) {
	var out bytes.Buffer
	err := checkUpdate(&out, brokenSource{}, "0.3.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checking for updates")
	assert.Empty(t, out.String())
}
