package interfaces

import (
	"context"

	"github.com/m-mizutani/relnotes/pkg/domain/model"
)

// LogSource provides the decorated one-line git log, most recent commit
// first, with each line formatted as "<header>|<decoration>"
type LogSource interface {
	// Log returns the raw log text
	Log(ctx context.Context) (string, error)
}

// DescriptionStore provides access to the pull request whose description
// holds the previous notes
type DescriptionStore interface {
	// PullRequest fetches the pull request metadata including its current description
	PullRequest(ctx context.Context) (*model.PullRequest, error)

	// UpdateDescription replaces the pull request description with the given body
	UpdateDescription(ctx context.Context, body string) error
}
