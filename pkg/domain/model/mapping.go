package model

import "github.com/m-mizutani/relnotes/pkg/domain/types"

// MappingEntry associates one commit code with the markdown heading its
// messages are listed under.
type MappingEntry struct {
	Code    string
	Heading string
}

// Mapping is an ordered association from commit codes to section headings.
// Section order in the compiled notes follows the order entries are declared
// in, so a Go map cannot be used here.
type Mapping struct {
	entries []MappingEntry
}

// NewMapping builds a mapping from entries in declaration order. A code
// declared twice keeps its first heading.
func NewMapping(entries []MappingEntry) Mapping {
	return Mapping{entries: entries}
}

// DefaultMapping returns the standard commit-code table.
func DefaultMapping() Mapping {
	return NewMapping([]MappingEntry{
		{Code: "FEA", Heading: "### New features"},
		{Code: "ENH", Heading: "### Enhancements"},
		{Code: "FIX", Heading: "### Fixes"},
		{Code: "OPS", Heading: "### Operations"},
		{Code: "DEP", Heading: "### Dependencies"},
		{Code: "REF", Heading: "### Refactoring"},
		{Code: "TST", Heading: "### Testing"},
		{Code: "MRG", Heading: types.OtherHeading},
		{Code: "REV", Heading: "### Reversions"},
		{Code: "CHO", Heading: "### Chores"},
		{Code: "WIP", Heading: types.OtherHeading},
		{Code: "DOC", Heading: types.OtherHeading},
		{Code: "STY", Heading: types.OtherHeading},
	})
}

// Heading looks up the heading for a commit code. Codes are compared
// case-sensitively.
func (m Mapping) Heading(code string) (string, bool) {
	for _, e := range m.entries {
		if e.Code == code {
			return e.Heading, true
		}
	}
	return "", false
}

// Headings returns the distinct headings in declaration order.
func (m Mapping) Headings() []string {
	var headings []string
	seen := map[string]bool{}
	for _, e := range m.entries {
		if seen[e.Heading] {
			continue
		}
		seen[e.Heading] = true
		headings = append(headings, e.Heading)
	}
	return headings
}

// Len returns the number of declared entries.
func (m Mapping) Len() int {
	return len(m.entries)
}
