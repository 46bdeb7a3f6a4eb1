package model

import (
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// StopPoint is the point in the git history up to which commit messages are
// collected. It is validated and normalized at construction; a value not
// produced by ParseStopPoint must not be used.
type StopPoint string

const (
	// StopLastRelease halts at the first commit decorated with a
	// semantically-versioned tag
	StopLastRelease StopPoint = "LAST_RELEASE"

	// StopLastPullRequest halts at the first pull request merge commit
	StopLastPullRequest StopPoint = "LAST_PULL_REQUEST"
)

// A tag decoration only counts as a release if it is a plain semantic version.
var semanticVersionTagPattern = regexp.MustCompile(`tag: \d+\.\d+\.\d+`)

const pullRequestIndicator = "Merge pull request #"

// ParseStopPoint validates a stop point value. Input is case-insensitive and
// normalized to uppercase; anything other than the two supported values is
// rejected before any git history is read.
func ParseStopPoint(s string) (StopPoint, error) {
	switch sp := StopPoint(strings.ToUpper(s)); sp {
	case StopLastRelease, StopLastPullRequest:
		return sp, nil
	default:
		return "", goerr.New("invalid stop point",
			goerr.V("stop_point", s),
			goerr.V("supported", []StopPoint{StopLastRelease, StopLastPullRequest}),
		)
	}
}

// Matches reports whether a commit with the given header and decoration is
// the stop point for log traversal. The stop commit itself is excluded from
// the compiled notes.
func (s StopPoint) Matches(header, decoration string) bool {
	switch s {
	case StopLastRelease:
		// Decorations such as (tag: some-label) carry "tag" without a
		// semantic version and do not stop traversal.
		return strings.Contains(decoration, "tag") && semanticVersionTagPattern.MatchString(decoration)

	case StopLastPullRequest:
		// Plain hash-to-hash merges have no "#" and do not stop traversal.
		return strings.Contains(header, pullRequestIndicator)
	}

	return false
}
