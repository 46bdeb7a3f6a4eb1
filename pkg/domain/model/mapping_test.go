package model_test

import (
	"reflect"
	"testing"

	"github.com/m-mizutani/relnotes/pkg/domain/model"
)

func TestMapping_Heading(t *testing.T) {
	m := model.DefaultMapping()

	tests := []struct {
		code    string
		heading string
		found   bool
	}{
		{code: "FEA", heading: "### New features", found: true},
		{code: "FIX", heading: "### Fixes", found: true},
		{code: "MRG", heading: "### Other", found: true},
		{code: "DOC", heading: "### Other", found: true},
		{code: "BAM", found: false},
		{code: "fea", found: false}, // codes are case-sensitive
		{code: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			heading, found := m.Heading(tt.code)
			if found != tt.found {
				t.Errorf("Heading(%q) found = %v, want %v", tt.code, found, tt.found)
			}
			if heading != tt.heading {
				t.Errorf("Heading(%q) = %q, want %q", tt.code, heading, tt.heading)
			}
		})
	}
}

func TestMapping_HeadingsOrderAndDeduplication(t *testing.T) {
	got := model.DefaultMapping().Headings()

	want := []string{
		"### New features",
		"### Enhancements",
		"### Fixes",
		"### Operations",
		"### Dependencies",
		"### Refactoring",
		"### Testing",
		"### Other",
		"### Reversions",
		"### Chores",
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Headings() = %v, want %v", got, want)
	}
}

func TestMapping_FirstDeclarationWins(t *testing.T) {
	m := model.NewMapping([]model.MappingEntry{
		{Code: "FIX", Heading: "### Fixes"},
		{Code: "FIX", Heading: "### Other"},
	})

	heading, found := m.Heading("FIX")
	if !found || heading != "### Fixes" {
		t.Errorf("Heading(FIX) = %q, %v; want %q, true", heading, found, "### Fixes")
	}
}
