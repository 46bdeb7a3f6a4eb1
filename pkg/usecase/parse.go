package usecase

import (
	"strings"

	"github.com/m-mizutani/relnotes/pkg/domain/model"
)

// fieldSeparator delimits the commit header from its decoration in the
// one-line git log (--pretty=format:%s|%d).
const fieldSeparator = "|"

// ParseCommits parses the decorated one-line git log into commits, stopping
// as soon as the stop point is reached. The stop commit and everything after
// it are excluded. Headers without a colon-delimited commit code are returned
// separately as unparsed entries; lines that do not split into exactly a
// header and a decoration are not commits and are dropped.
func ParseCommits(log string, stop model.StopPoint) ([]model.Commit, []string) {
	var (
		parsed   []model.Commit
		unparsed []string
	)

	for _, line := range strings.Split(log, "\n") {
		parts := strings.Split(line, fieldSeparator)
		if len(parts) != 2 {
			continue
		}
		header, decoration := parts[0], parts[1]

		if stop.Matches(header, decoration) {
			break
		}

		if !strings.Contains(header, ":") {
			unparsed = append(unparsed, strings.TrimSpace(header))
			continue
		}

		// Only the first colon separates the code; extra colons stay in
		// the message.
		code, message, _ := strings.Cut(header, ":")

		parsed = append(parsed, model.Commit{
			Code:       strings.TrimSpace(code),
			Message:    strings.TrimSpace(message),
			Decoration: strings.TrimSpace(decoration),
		})
	}

	return parsed, unparsed
}
