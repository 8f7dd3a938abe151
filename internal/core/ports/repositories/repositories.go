package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// layer by the process entry point.
type RepositoryProvider struct {
	AccountRepo   AccountRepository
	JournalRepo   JournalRepository
	ReportingRepo ReportingRepository
}
