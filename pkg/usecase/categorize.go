package usecase

import (
	"github.com/m-mizutani/relnotes/pkg/domain/model"
	"github.com/m-mizutani/relnotes/pkg/domain/types"
)

// Categorize buckets parsed commits into sections by their commit code.
// Section order follows the mapping's declared order. Commits with a code the
// mapping does not know go under "### Other" (appended if the mapping itself
// declares no code for it), and unparsed headers end up in a trailing
// "### Uncategorised!" section. Empty sections are kept so the order is
// stable; the renderer skips them.
func Categorize(commits []model.Commit, unparsed []string, mapping model.Mapping) []model.Section {
	var sections []model.Section
	index := make(map[string]int)

	for _, heading := range mapping.Headings() {
		index[heading] = len(sections)
		sections = append(sections, model.Section{Heading: heading})
	}

	if _, ok := index[types.OtherHeading]; !ok {
		index[types.OtherHeading] = len(sections)
		sections = append(sections, model.Section{Heading: types.OtherHeading})
	}

	for _, commit := range commits {
		heading, ok := mapping.Heading(commit.Code)
		if !ok {
			heading = types.OtherHeading
		}
		i := index[heading]
		sections[i].Messages = append(sections[i].Messages, commit.Message)
	}

	return append(sections, model.Section{
		Heading:  types.UncategorisedHeading,
		Messages: unparsed,
	})
}
