package ledger

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrSectionCodeMissing is returned when a section map names a code absent from the chart.
var ErrSectionCodeMissing = errors.New("statement section account code not found in chart of accounts")

// SectionMapVersion is the version of the section map layout understood by this package.
const SectionMapVersion = 1

// SectionMap binds statement sections to the account codes that head them.
type SectionMap struct {
	Version            int      `yaml:"version" json:"version"`
	Assets             string   `yaml:"assets" json:"assets"`
	CurrentAssets      string   `yaml:"current_assets" json:"currentAssets"`
	NonCurrentAssets   string   `yaml:"non_current_assets" json:"nonCurrentAssets"`
	Liabilities        string   `yaml:"liabilities" json:"liabilities"`
	CurrentLiabilities string   `yaml:"current_liabilities" json:"currentLiabilities"`
	Equity             string   `yaml:"equity" json:"equity"`
	Revenue            string   `yaml:"revenue" json:"revenue"`
	Expenses           string   `yaml:"expenses" json:"expenses"`
	CostOfSales        string   `yaml:"cost_of_sales" json:"costOfSales"`
	OperatingExpenses  string   `yaml:"operating_expenses" json:"operatingExpenses"`
	Cash               []string `yaml:"cash" json:"cash"`
}

// DefaultSectionMap returns the mapping for the default chart of accounts.
func DefaultSectionMap() SectionMap {
	return SectionMap{
		Version:            SectionMapVersion,
		Assets:             "1",
		CurrentAssets:      "11",
		NonCurrentAssets:   "12",
		Liabilities:        "2",
		CurrentLiabilities: "21",
		Equity:             "3",
		Revenue:            "4",
		Expenses:           "5",
		CostOfSales:        "51",
		OperatingExpenses:  "52",
		Cash:               []string{"111", "112"},
	}
}

// entries returns section name / code pairs in a stable order.
func (m SectionMap) entries() [][2]string {
	out := [][2]string{
		{"assets", m.Assets},
		{"current_assets", m.CurrentAssets},
		{"non_current_assets", m.NonCurrentAssets},
		{"liabilities", m.Liabilities},
		{"current_liabilities", m.CurrentLiabilities},
		{"equity", m.Equity},
		{"revenue", m.Revenue},
		{"expenses", m.Expenses},
		{"cost_of_sales", m.CostOfSales},
		{"operating_expenses", m.OperatingExpenses},
	}
	for i, code := range m.Cash {
		out = append(out, [2]string{fmt.Sprintf("cash[%d]", i), code})
	}
	return out
}

// Validate checks that the map is complete and that every code exists in tree.
// All missing codes are reported in a single error wrapping ErrSectionCodeMissing.
func (m SectionMap) Validate(tree *Tree) error {
	if m.Version != SectionMapVersion {
		return fmt.Errorf("unsupported section map version %d (want %d)", m.Version, SectionMapVersion)
	}
	var missing []string
	for _, e := range m.entries() {
		name, code := e[0], e[1]
		if code == "" {
			return fmt.Errorf("section map: %s has no account code", name)
		}
		if tree == nil {
			continue
		}
		if _, ok := tree.FindByCode(code); !ok {
			missing = append(missing, fmt.Sprintf("%s=%q", name, code))
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: %s", ErrSectionCodeMissing, strings.Join(missing, ", "))
	}
	return nil
}

// ReportConfig is the explicit configuration passed to every statement builder.
type ReportConfig struct {
	Currency        string     // Display currency code, e.g. "SAR"
	FiscalYearStart string     // ISO date
	FiscalYearEnd   string     // ISO date
	CurrentLabel    string     // Heading of the current-period column
	ComparisonLabel string     // Heading of the prior-period column
	Sections        SectionMap // Section heads
}

// DefaultReportConfig returns a configuration for the calendar year of the given year.
func DefaultReportConfig(year int) ReportConfig {
	return ReportConfig{
		Currency:        "SAR",
		FiscalYearStart: fmt.Sprintf("%04d-01-01", year),
		FiscalYearEnd:   fmt.Sprintf("%04d-12-31", year),
		CurrentLabel:    fmt.Sprintf("%d", year),
		ComparisonLabel: fmt.Sprintf("Comparative (%d)", year-1),
		Sections:        DefaultSectionMap(),
	}
}
