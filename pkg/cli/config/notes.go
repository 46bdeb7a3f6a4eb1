package config

import (
	"github.com/m-mizutani/relnotes/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Notes holds notes rendering configuration
type Notes struct {
	StopPoint      string
	Header         string
	ListItemSymbol string
	MappingPath    string
}

// Flags returns CLI flags for notes configuration
func (c *Notes) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "stop-point",
			Aliases:     []string{"s"},
			Usage:       "Where to stop collecting commits: LAST_RELEASE or LAST_PULL_REQUEST",
			Required:    true,
			Destination: &c.StopPoint,
			Sources:     cli.EnvVars("RELNOTES_STOP_POINT"),
		},
		&cli.StringFlag{
			Name:        "header",
			Usage:       "Header above the autogenerated notes, including markdown styling",
			Value:       types.DefaultHeader,
			Destination: &c.Header,
			Sources:     cli.EnvVars("RELNOTES_HEADER"),
		},
		&cli.StringFlag{
			Name:        "list-item-symbol",
			Usage:       "Markdown symbol prefixing each listed commit message",
			Value:       types.DefaultListItemSymbol,
			Destination: &c.ListItemSymbol,
			Sources:     cli.EnvVars("RELNOTES_LIST_ITEM_SYMBOL"),
		},
		&cli.StringFlag{
			Name:        "mapping",
			Usage:       "Path to a TOML file replacing the commit-code mapping wholesale",
			Destination: &c.MappingPath,
			Sources:     cli.EnvVars("RELNOTES_MAPPING"),
		},
	}
}
