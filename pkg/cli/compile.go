package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relnotes/pkg/cli/config"
	"github.com/m-mizutani/relnotes/pkg/domain/interfaces"
	"github.com/m-mizutani/relnotes/pkg/infra/github"
	"github.com/m-mizutani/relnotes/pkg/infra/gitlog"
	"github.com/m-mizutani/relnotes/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdCompile() *cli.Command {
	var (
		notesCfg  config.Notes
		gitCfg    config.Git
		githubCfg config.GitHub
	)

	flags := append(notesCfg.Flags(), gitCfg.Flags()...)
	flags = append(flags, githubCfg.Flags()...)

	return &cli.Command{
		Name:    "compile",
		Aliases: []string{"c"},
		Usage:   "Compile release notes and merge them into the previous description",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			opts := []usecase.Option{
				usecase.WithLogSource(gitlog.New(gitCfg.RepoPath)),
				usecase.WithHeader(notesCfg.Header),
				usecase.WithListItemSymbol(notesCfg.ListItemSymbol),
			}

			if notesCfg.MappingPath != "" {
				mapping, err := config.LoadMapping(notesCfg.MappingPath)
				if err != nil {
					return err
				}
				opts = append(opts, usecase.WithMapping(mapping))
			}

			var store interfaces.DescriptionStore
			if githubCfg.PullRequest != "" {
				owner, repo, number, err := githubCfg.Ref()
				if err != nil {
					return err
				}

				store, err = github.New(owner, repo, number, github.WithToken(githubCfg.Token))
				if err != nil {
					return err
				}

				opts = append(opts,
					usecase.WithDescriptionStore(store),
					usecase.WithPullRequestLink(githubCfg.Link),
				)

				logger.Debug("Using pull request description",
					slog.String("owner", owner),
					slog.String("repo", repo),
					slog.Int("number", number),
				)
			} else if githubCfg.Update {
				return goerr.New("--update requires --pull-request")
			}

			compiler, err := usecase.New(notesCfg.StopPoint, opts...)
			if err != nil {
				return err
			}

			notes, err := compiler.Compile(ctx)
			if err != nil {
				return err
			}

			fmt.Println(notes)

			if githubCfg.Update {
				if err := store.UpdateDescription(ctx, notes); err != nil {
					return err
				}
				logger.Info("Updated pull request description",
					slog.String("pull_request", githubCfg.PullRequest),
				)
			}

			return nil
		},
	}
}
