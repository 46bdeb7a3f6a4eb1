package usecase

import (
	"strings"

	"github.com/m-mizutani/relnotes/pkg/domain/model"
	"github.com/m-mizutani/relnotes/pkg/domain/types"
)

// Render serializes categorized sections into the sentinel-bounded markdown
// document. Sections without messages contribute nothing; with no messages at
// all the output is just the sentinels around the header.
func Render(sections []model.Section, header, listItemSymbol string) string {
	var sb strings.Builder

	sb.WriteString(types.NotesStartSentinel)
	sb.WriteString("\n")
	sb.WriteString(header)
	sb.WriteString("\n\n")

	for _, section := range sections {
		if len(section.Messages) == 0 {
			continue
		}

		sb.WriteString(section.Heading)
		sb.WriteString("\n")
		for _, message := range section.Messages {
			sb.WriteString(listItemSymbol)
			sb.WriteString(message)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(types.NotesEndSentinel)
	return sb.String()
}
