package repositories

// RepositoryProvider bundles every repository implementation handed to the
// service layer at startup.
type RepositoryProvider struct {
	ClientRepo       ClientRepository
	ParkRepo         ParkRepository
	EmployeeRepo     EmployeeRepository
	PeriodRepo       PeriodRepository
	ServiceEntryRepo ServiceEntryRepository
	PaymentRepo      PaymentRepository
	UserRepo         UserRepository
}
