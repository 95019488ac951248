package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/jvamontagens/assembly_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository onto one shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ClientRepo:       newPgxClientRepository(dbPool),
		ParkRepo:         newPgxParkRepository(dbPool),
		EmployeeRepo:     newPgxEmployeeRepository(dbPool),
		PeriodRepo:       newPgxPeriodRepository(dbPool),
		ServiceEntryRepo: newPgxServiceEntryRepository(dbPool),
		PaymentRepo:      newPgxPaymentRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
	}
}
