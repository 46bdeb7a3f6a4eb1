package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relnotes/pkg/domain/model"
	"github.com/pelletier/go-toml/v2"
)

// mappingFile is the on-disk form of a commit-code mapping override. An array
// of tables is used so the declared category order carries into section order.
//
//	[[categories]]
//	code = "FEA"
//	heading = "### New features"
type mappingFile struct {
	Categories []mappingCategory `toml:"categories"`
}

type mappingCategory struct {
	Code    string `toml:"code"`
	Heading string `toml:"heading"`
}

// LoadMapping reads a TOML mapping file and replaces the commit-code mapping
// wholesale
func LoadMapping(path string) (model.Mapping, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.Mapping{}, goerr.Wrap(err, "failed to read mapping file", goerr.V("path", path))
	}

	var f mappingFile
	if err := toml.Unmarshal(raw, &f); err != nil {
		return model.Mapping{}, goerr.Wrap(err, "failed to parse mapping file", goerr.V("path", path))
	}

	if len(f.Categories) == 0 {
		return model.Mapping{}, goerr.New("mapping file declares no categories", goerr.V("path", path))
	}

	entries := make([]model.MappingEntry, 0, len(f.Categories))
	for i, category := range f.Categories {
		if category.Code == "" || category.Heading == "" {
			return model.Mapping{}, goerr.New("mapping category needs both code and heading",
				goerr.V("path", path),
				goerr.V("index", i),
			)
		}
		entries = append(entries, model.MappingEntry{
			Code:    category.Code,
			Heading: category.Heading,
		})
	}

	return model.NewMapping(entries), nil
}
