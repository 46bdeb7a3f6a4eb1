package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-mizutani/relnotes/pkg/cli/config"
)

func writeMapping(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mapping.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadMapping(t *testing.T) {
	path := writeMapping(t, `
[[categories]]
code = "FEA"
heading = "### Features"

[[categories]]
code = "BUG"
heading = "### Bugs"

[[categories]]
code = "DOC"
heading = "### Bugs"
`)

	mapping, err := config.LoadMapping(path)
	require.NoError(t, err)

	heading, found := mapping.Heading("BUG")
	assert.True(t, found)
	assert.Equal(t, "### Bugs", heading)

	_, found = mapping.Heading("FIX")
	assert.False(t, found)

	// Declaration order carries into section order; shared headings dedupe.
	assert.Equal(t, []string{"### Features", "### Bugs"}, mapping.Headings())
}

func TestLoadMapping_FileMissing(t *testing.T) {
	_, err := config.LoadMapping(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadMapping_InvalidTOML(t *testing.T) {
	path := writeMapping(t, "categories = not toml")
	_, err := config.LoadMapping(path)
	require.Error(t, err)
}

func TestLoadMapping_NoCategories(t *testing.T) {
	path := writeMapping(t, "# empty file")
	_, err := config.LoadMapping(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no categories")
}

func TestLoadMapping_IncompleteCategory(t *testing.T) {
	path := writeMapping(t, `
[[categories]]
code = "FEA"
`)
	_, err := config.LoadMapping(path)
	require.Error(t, err)
}
