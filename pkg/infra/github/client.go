package github

import (
	"context"
	"net/url"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relnotes/pkg/domain/interfaces"
	"github.com/m-mizutani/relnotes/pkg/domain/model"
)

// config holds internal client configuration
type config struct {
	token   string
	baseURL string
}

// Option is a functional option for client configuration
type Option func(*config)

// WithToken sets the API token. Without a token the client is unauthenticated,
// which is enough for public repositories.
func WithToken(token string) Option {
	return func(c *config) {
		c.token = token
	}
}

// WithBaseURL overrides the API base URL, mainly for tests
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

type client struct {
	githubClient *github.Client
	owner        string
	repo         string
	number       int
}

// New creates a DescriptionStore for one pull request
func New(owner, repo string, number int, opts ...Option) (interfaces.DescriptionStore, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	githubClient := github.NewClient(nil)
	if cfg.token != "" {
		githubClient = githubClient.WithAuthToken(cfg.token)
	}

	if cfg.baseURL != "" {
		raw := cfg.baseURL
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		base, err := url.Parse(raw)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid GitHub API base URL", goerr.V("base_url", cfg.baseURL))
		}
		githubClient.BaseURL = base
	}

	return &client{
		githubClient: githubClient,
		owner:        owner,
		repo:         repo,
		number:       number,
	}, nil
}

// PullRequest fetches the pull request metadata including its current description
func (c *client) PullRequest(ctx context.Context) (*model.PullRequest, error) {
	pr, _, err := c.githubClient.PullRequests.Get(ctx, c.owner, c.repo, c.number)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get pull request",
			goerr.V("owner", c.owner),
			goerr.V("repo", c.repo),
			goerr.V("number", c.number),
		)
	}

	return &model.PullRequest{
		Number:  pr.GetNumber(),
		HTMLURL: pr.GetHTMLURL(),
		Body:    pr.GetBody(),
	}, nil
}

// UpdateDescription replaces the pull request description with the given body
func (c *client) UpdateDescription(ctx context.Context, body string) error {
	_, _, err := c.githubClient.PullRequests.Edit(ctx, c.owner, c.repo, c.number, &github.PullRequest{
		Body: github.String(body),
	})
	if err != nil {
		return goerr.Wrap(err, "failed to update pull request description",
			goerr.V("owner", c.owner),
			goerr.V("repo", c.repo),
			goerr.V("number", c.number),
		)
	}

	return nil
}
