package services

// ServiceContainer holds instances of all the application services.
// Handlers and CLI commands reach the core only through it.
type ServiceContainer struct {
	Account    AccountSvcFacade
	Journal    JournalSvcFacade
	Reporting  ReportingService
	ReportCell ReportCellSvc
}
