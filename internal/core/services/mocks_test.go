package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jvamontagens/assembly_backend/internal/core/domain"
	portsrepo "github.com/jvamontagens/assembly_backend/internal/core/ports/repositories"
)

// --- Mock ClientRepository ---

type MockClientRepository struct {
	mock.Mock
}

var _ portsrepo.ClientRepository = (*MockClientRepository)(nil)

func (m *MockClientRepository) FindClientByCNPJ(ctx context.Context, cnpj string) (*domain.Client, error) {
	args := m.Called(ctx, cnpj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ExistsClient(ctx context.Context, cnpj string) (bool, error) {
	args := m.Called(ctx, cnpj)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, cnpj string) error {
	args := m.Called(ctx, cnpj)
	return args.Error(0)
}

// --- Mock ParkRepository ---

type MockParkRepository struct {
	mock.Mock
}

var _ portsrepo.ParkRepository = (*MockParkRepository)(nil)

func (m *MockParkRepository) FindParkByID(ctx context.Context, parkID int64) (*domain.Park, error) {
	args := m.Called(ctx, parkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Park), args.Error(1)
}

func (m *MockParkRepository) ListParks(ctx context.Context, clientCNPJ *string) ([]domain.Park, error) {
	args := m.Called(ctx, clientCNPJ)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Park), args.Error(1)
}

func (m *MockParkRepository) SavePark(ctx context.Context, park domain.Park) (*domain.Park, error) {
	args := m.Called(ctx, park)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Park), args.Error(1)
}

func (m *MockParkRepository) UpdatePark(ctx context.Context, park domain.Park) error {
	args := m.Called(ctx, park)
	return args.Error(0)
}

func (m *MockParkRepository) DeletePark(ctx context.Context, parkID int64) error {
	args := m.Called(ctx, parkID)
	return args.Error(0)
}

// --- Mock EmployeeRepository ---

type MockEmployeeRepository struct {
	mock.Mock
}

var _ portsrepo.EmployeeRepository = (*MockEmployeeRepository)(nil)

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeesByIDs(ctx context.Context, employeeIDs []int64) (map[int64]domain.Employee, error) {
	args := m.Called(ctx, employeeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context, role *domain.JobRole, onlyActive bool) ([]domain.Employee, error) {
	args := m.Called(ctx, role, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	args := m.Called(ctx, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	args := m.Called(ctx, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

// --- Mock PeriodRepository ---

type MockPeriodRepository struct {
	mock.Mock
}

var _ portsrepo.PeriodRepository = (*MockPeriodRepository)(nil)

func (m *MockPeriodRepository) FindPeriodByID(ctx context.Context, periodID int64) (*domain.Period, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Period), args.Error(1)
}

func (m *MockPeriodRepository) ListPeriods(ctx context.Context) ([]domain.Period, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Period), args.Error(1)
}

func (m *MockPeriodRepository) ListPeriodsByPark(ctx context.Context, parkID int64) ([]domain.Period, error) {
	args := m.Called(ctx, parkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Period), args.Error(1)
}

func (m *MockPeriodRepository) ExistsPeriod(ctx context.Context, parkID int64, year int, month int) (bool, error) {
	args := m.Called(ctx, parkID, year, month)
	return args.Bool(0), args.Error(1)
}

func (m *MockPeriodRepository) SavePeriod(ctx context.Context, period domain.Period) (*domain.Period, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Period), args.Error(1)
}

func (m *MockPeriodRepository) UpdatePeriod(ctx context.Context, period domain.Period, repriceEntries bool) error {
	args := m.Called(ctx, period, repriceEntries)
	return args.Error(0)
}

func (m *MockPeriodRepository) DeletePeriod(ctx context.Context, periodID int64) error {
	args := m.Called(ctx, periodID)
	return args.Error(0)
}

// --- Mock ServiceEntryRepository ---

type MockServiceEntryRepository struct {
	mock.Mock
}

var _ portsrepo.ServiceEntryRepository = (*MockServiceEntryRepository)(nil)

func (m *MockServiceEntryRepository) FindServiceEntryByID(ctx context.Context, entryID int64) (*domain.ServiceEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceEntry), args.Error(1)
}

func (m *MockServiceEntryRepository) ListServiceEntriesByPeriod(ctx context.Context, periodID int64) ([]domain.ServiceEntry, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceEntry), args.Error(1)
}

func (m *MockServiceEntryRepository) ExistsLeaderlessByPeriod(ctx context.Context, periodID int64) (bool, error) {
	args := m.Called(ctx, periodID)
	return args.Bool(0), args.Error(1)
}

func (m *MockServiceEntryRepository) SaveServiceEntry(ctx context.Context, entry domain.ServiceEntry) (*domain.ServiceEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceEntry), args.Error(1)
}

func (m *MockServiceEntryRepository) UpdateServiceEntry(ctx context.Context, entry domain.ServiceEntry) (*domain.ServiceEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceEntry), args.Error(1)
}

func (m *MockServiceEntryRepository) DeleteServiceEntry(ctx context.Context, entryID int64) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

// --- Mock PaymentRepository ---

type MockPaymentRepository struct {
	mock.Mock
}

var _ portsrepo.PaymentRepository = (*MockPaymentRepository)(nil)

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.PaymentEntry, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentEntry), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByPeriod(ctx context.Context, periodID int64) ([]domain.PaymentEntry, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentEntry), args.Error(1)
}

func (m *MockPaymentRepository) FindReceipt(ctx context.Context, paymentID int64) (*domain.ReceiptFile, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReceiptFile), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.PaymentEntry) (*domain.PaymentEntry, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentEntry), args.Error(1)
}

func (m *MockPaymentRepository) UpdatePayment(ctx context.Context, payment domain.PaymentEntry) (*domain.PaymentEntry, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentEntry), args.Error(1)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, paymentID int64) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

func (m *MockPaymentRepository) SaveReceipt(ctx context.Context, paymentID int64, file domain.ReceiptFile) error {
	args := m.Called(ctx, paymentID, file)
	return args.Error(0)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	args := m.Called(ctx, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, cpf string, tokenHash string, expiresAt *time.Time) error {
	args := m.Called(ctx, cpf, tokenHash, expiresAt)
	return args.Error(0)
}
