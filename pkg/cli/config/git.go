package config

import "github.com/urfave/cli/v3"

// Git holds local repository configuration
type Git struct {
	RepoPath string
}

// Flags returns CLI flags for git configuration
func (c *Git) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repo-path",
			Usage:       "Path to the git repository (defaults to the working directory)",
			Destination: &c.RepoPath,
			Sources:     cli.EnvVars("RELNOTES_REPO_PATH"),
		},
	}
}
