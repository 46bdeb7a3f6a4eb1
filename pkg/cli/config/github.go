package config

import (
	"regexp"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// GitHub holds GitHub configuration
type GitHub struct {
	Token       string
	PullRequest string
	Update      bool
	Link        bool
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub API token (e.g. secrets.GITHUB_TOKEN in a workflow)",
			Destination: &c.Token,
			Sources:     cli.EnvVars("RELNOTES_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "pull-request",
			Aliases:     []string{"p"},
			Usage:       "Pull request to merge notes into: owner/repo#N or a GitHub PR URL",
			Destination: &c.PullRequest,
			Sources:     cli.EnvVars("RELNOTES_PULL_REQUEST"),
		},
		&cli.BoolFlag{
			Name:        "update",
			Usage:       "Write the compiled notes back to the pull request description",
			Value:       false,
			Destination: &c.Update,
			Sources:     cli.EnvVars("RELNOTES_UPDATE"),
		},
		&cli.BoolFlag{
			Name:        "link-to-pull-request",
			Usage:       "Append a link to the pull request to the notes header",
			Value:       true,
			Destination: &c.Link,
			Sources:     cli.EnvVars("RELNOTES_LINK_TO_PULL_REQUEST"),
		},
	}
}

var (
	shortRefPattern = regexp.MustCompile(`^([^/#\s]+)/([^/#\s]+)#(\d+)$`)
	urlRefPattern   = regexp.MustCompile(`^https://(?:api\.)?github\.com/(?:repos/)?([^/]+)/([^/]+)/pulls?/(\d+)/?$`)
)

// Ref parses the pull request reference into owner, repository and number.
// Accepted forms: "owner/repo#42", "https://github.com/owner/repo/pull/42",
// "https://api.github.com/repos/owner/repo/pulls/42".
func (c *GitHub) Ref() (string, string, int, error) {
	m := shortRefPattern.FindStringSubmatch(c.PullRequest)
	if m == nil {
		m = urlRefPattern.FindStringSubmatch(c.PullRequest)
	}
	if m == nil {
		return "", "", 0, goerr.New("invalid pull request reference",
			goerr.V("pull_request", c.PullRequest),
		)
	}

	number, err := strconv.Atoi(m[3])
	if err != nil {
		return "", "", 0, goerr.Wrap(err, "invalid pull request number",
			goerr.V("pull_request", c.PullRequest),
		)
	}

	return m[1], m[2], number, nil
}
