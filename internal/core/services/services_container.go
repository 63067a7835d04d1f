package services

import (
	"github.com/SscSPs/finstatements/internal/core/ledger"
	portsrepo "github.com/SscSPs/finstatements/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finstatements/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(reportCfg ledger.ReportConfig, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account: NewAccountService(repos.AccountRepo),
		Journal: NewJournalService(repos.JournalRepo, repos.AccountRepo),
		Reporting: NewReportingService(
			repos.AccountRepo,
			repos.JournalRepo,
			WithReportConfig(reportCfg),
			WithReportCells(repos.ReportCellRepo),
		),
		ReportCell: NewReportCellService(repos.ReportCellRepo),
	}
}
