package status

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// ErrNotRepository is returned when the target directory is not inside a
// git work tree.
var ErrNotRepository = errors.New("not a git repository")

// RunGitStatus runs `git status --porcelain` in dir and returns its stdout.
func RunGitStatus(ctx context.Context, logger *slog.Logger, dir string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", "status", "--porcelain")
	cmd.Dir = dir

	// Force untranslated messages so failures can be recognized.
	var env []string
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "LC_ALL=") || strings.HasPrefix(e, "LANG=") {
			continue
		}
		env = append(env, e)
	}
	cmd.Env = append(env, "LC_ALL=C")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logger.Debug("running git status", "dir", dir)
	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if strings.Contains(msg, "not a git repository") {
			return nil, fmt.Errorf("%w: %s", ErrNotRepository, dir)
		}
		if msg != "" {
			return nil, fmt.Errorf("running git status: %w: %s", err, msg)
		}
		return nil, fmt.Errorf("running git status: %w", err)
	}
	return out, nil
}
