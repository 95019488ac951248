package services

import (
	portsrepo "github.com/jvamontagens/assembly_backend/internal/core/ports/repositories"
	portssvc "github.com/jvamontagens/assembly_backend/internal/core/ports/services"
	"github.com/jvamontagens/assembly_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Client = NewClientService(repos.ClientRepo)
	container.Park = NewParkService(repos.ParkRepo, repos.ClientRepo)
	container.Employee = NewEmployeeService(repos.EmployeeRepo, repos.UserRepo)

	container.Period = NewPeriodService(
		repos.PeriodRepo,
		repos.ParkRepo,
		repos.EmployeeRepo,
		repos.ServiceEntryRepo,
	)
	container.ServiceEntry = NewServiceEntryService(
		repos.ServiceEntryRepo,
		repos.PeriodRepo,
		repos.EmployeeRepo,
	)
	container.Payment = NewPaymentService(
		repos.PaymentRepo,
		repos.PeriodRepo,
		repos.ParkRepo,
		repos.EmployeeRepo,
		repos.ClientRepo,
	)
	container.Summary = NewSummaryService(
		repos.PeriodRepo,
		repos.ParkRepo,
		repos.ServiceEntryRepo,
		repos.PaymentRepo,
		repos.EmployeeRepo,
	)

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, repos.UserRepo)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}
