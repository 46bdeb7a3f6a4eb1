package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relnotes/pkg/domain/interfaces"
	"github.com/m-mizutani/relnotes/pkg/domain/model"
	"github.com/m-mizutani/relnotes/pkg/domain/types"
)

// Compiler compiles categorized release notes from the commit log and merges
// them into the previous pull request description, if one is available.
type Compiler struct {
	stopPoint       model.StopPoint
	header          string
	listItemSymbol  string
	mapping         model.Mapping
	logs            interfaces.LogSource
	descriptions    interfaces.DescriptionStore
	linkPullRequest bool
}

// Option is a functional option for Compiler configuration
type Option func(*Compiler)

// WithHeader sets the header above the autogenerated notes, including
// markdown styling
func WithHeader(header string) Option {
	return func(c *Compiler) {
		c.header = header
	}
}

// WithListItemSymbol sets the markdown symbol prefixing each commit message
func WithListItemSymbol(symbol string) Option {
	return func(c *Compiler) {
		c.listItemSymbol = symbol
	}
}

// WithMapping replaces the commit-code mapping wholesale
func WithMapping(mapping model.Mapping) Option {
	return func(c *Compiler) {
		c.mapping = mapping
	}
}

// WithLogSource sets the commit log collaborator
func WithLogSource(logs interfaces.LogSource) Option {
	return func(c *Compiler) {
		c.logs = logs
	}
}

// WithDescriptionStore sets the pull request description collaborator. When
// absent, the compiler produces fresh notes with nothing to merge into.
func WithDescriptionStore(descriptions interfaces.DescriptionStore) Option {
	return func(c *Compiler) {
		c.descriptions = descriptions
	}
}

// WithPullRequestLink appends a "([#N](url))" link for the pull request to
// the header. It has no effect without a description store.
func WithPullRequestLink(enabled bool) Option {
	return func(c *Compiler) {
		c.linkPullRequest = enabled
	}
}

// New creates a Compiler. The stop point is case-insensitive and validated
// here, before any collaborator is touched.
func New(stopPoint string, opts ...Option) (*Compiler, error) {
	sp, err := model.ParseStopPoint(stopPoint)
	if err != nil {
		return nil, err
	}

	c := &Compiler{
		stopPoint:      sp,
		header:         types.DefaultHeader,
		listItemSymbol: types.DefaultListItemSymbol,
		mapping:        model.DefaultMapping(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logs == nil {
		return nil, goerr.New("no log source configured")
	}

	return c, nil
}

// Compile produces the merged notes document. It fetches the previous
// description first so that a skip sentinel short-circuits before any log
// retrieval, then parses, categorizes, renders, and merges.
func (c *Compiler) Compile(ctx context.Context) (string, error) {
	logger := ctxlog.From(ctx)

	previous := ""
	header := c.header

	if c.descriptions != nil {
		pr, err := c.descriptions.PullRequest(ctx)
		if err != nil {
			return "", goerr.Wrap(err, "failed to get pull request description")
		}
		previous = pr.Body

		if c.linkPullRequest && pr.HTMLURL != "" {
			header = fmt.Sprintf("%s ([#%d](%s))", header, pr.Number, pr.HTMLURL)
		}

		logger.Debug("Fetched pull request description",
			"number", pr.Number,
			"body_length", len(pr.Body),
		)
	}

	if strings.Contains(previous, types.NotesSkipSentinel) {
		logger.Info("Skip sentinel present in previous notes, leaving them unchanged")
		return previous, nil
	}

	log, err := c.logs.Log(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to get commit log")
	}

	commits, unparsed := ParseCommits(log, c.stopPoint)

	logger.Info("Parsed commit log",
		"stop_point", string(c.stopPoint),
		"commits", len(commits),
		"unparsed", len(unparsed),
	)

	sections := Categorize(commits, unparsed, c.mapping)
	rendered := Render(sections, header, c.listItemSymbol)

	return Merge(rendered, previous), nil
}
