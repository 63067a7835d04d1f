// Package memory provides repository implementations that keep everything in
// process memory. They back the CLI, tests and deployments without PGSQL_URL.
package memory

import (
	portsrepo "github.com/SscSPs/finstatements/internal/core/ports/repositories"
)

// NewRepositoryProvider returns a provider with empty in-memory stores.
func NewRepositoryProvider() *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		AccountRepo:    NewAccountRepository(),
		JournalRepo:    NewJournalRepository(),
		ReportCellRepo: NewReportCellRepository(),
	}
}
