package config

import (
	"fmt"
	"os"

	"github.com/SscSPs/finstatements/internal/core/ledger"
	"gopkg.in/yaml.v3"
)

// LoadSectionMap reads a YAML section map. Keys left out of the file keep the
// default chart's codes; a missing version is treated as the current one.
//
//	version: 1
//	cost_of_sales: "51"
//	operating_expenses: "53"
//	cash: ["111", "112"]
func LoadSectionMap(path string) (ledger.SectionMap, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ledger.SectionMap{}, fmt.Errorf("failed to read section map: %w", err)
	}

	m := ledger.DefaultSectionMap()
	m.Version = 0
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return ledger.SectionMap{}, fmt.Errorf("failed to parse section map %s: %w", path, err)
	}
	if m.Version == 0 {
		m.Version = ledger.SectionMapVersion
	}
	if m.Version != ledger.SectionMapVersion {
		return ledger.SectionMap{}, fmt.Errorf("section map %s: unsupported version %d", path, m.Version)
	}
	return m, nil
}
