package gitlog

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relnotes/pkg/domain/interfaces"
)

type local struct {
	repoPath string
}

// New creates a LogSource reading the local repository's history through the
// git CLI. An empty repoPath means the current working directory.
func New(repoPath string) interfaces.LogSource {
	return &local{repoPath: repoPath}
}

// Log returns the decorated one-line log, most recent commit first, with each
// line formatted as "<header>|<decoration>".
func (l *local) Log(ctx context.Context) (string, error) {
	args := []string{}
	if l.repoPath != "" {
		args = append(args, "-C", l.repoPath)
	}
	args = append(args, "log", "--pretty=format:%s|%d")

	out, err := exec.CommandContext(ctx, "git", args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", goerr.Wrap(err, "git log failed",
				goerr.V("repo_path", l.repoPath),
				goerr.V("stderr", strings.TrimSpace(string(exitErr.Stderr))),
			)
		}
		return "", goerr.Wrap(err, "failed to run git", goerr.V("repo_path", l.repoPath))
	}

	return strings.TrimSpace(string(out)), nil
}
