package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/jvamontagens/assembly_backend/internal/apperrors"
	"github.com/jvamontagens/assembly_backend/internal/core/domain"
	portssvc "github.com/jvamontagens/assembly_backend/internal/core/ports/services"
	"github.com/jvamontagens/assembly_backend/internal/core/services"
	"github.com/jvamontagens/assembly_backend/internal/dto"
	"github.com/jvamontagens/assembly_backend/internal/utils"
)

type EmployeeServiceTestSuite struct {
	suite.Suite
	mockEmployeeRepo *MockEmployeeRepository
	mockUserRepo     *MockUserRepository
	service          portssvc.EmployeeSvcFacade
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewEmployeeService(suite.mockEmployeeRepo, suite.mockUserRepo)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_AssemblerNeedsDailyRate() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{Name: "Pedro", Role: domain.RoleAssembler}

	_, err := suite.service.CreateEmployee(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "SaveEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_NormalizesCPF() {
	ctx := context.Background()
	rate := decimal.RequireFromString("150")
	req := dto.CreateEmployeeRequest{Name: "Pedro", CPF: "123.456.789-09", Role: domain.RoleAssembler, DailyRate: &rate}

	suite.mockEmployeeRepo.On("SaveEmployee", ctx, mock.AnythingOfType("domain.Employee")).
		Run(func(args mock.Arguments) {
			employee := args.Get(1).(domain.Employee)
			suite.Equal("12345678909", employee.CPF)
			suite.True(employee.Active, "employees default to active")
		}).
		Return(&domain.Employee{ID: 9, Name: "Pedro", CPF: "12345678909", Role: domain.RoleAssembler, DailyRate: &rate, Active: true}, nil).Once()

	created, err := suite.service.CreateEmployee(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(9), created.ID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByCPF", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_AdministratorGetsLoginUser() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{
		Name:        "Ana Souza",
		CPF:         "123.456.789-09",
		GovEmail:    "ana@example.com",
		GovPassword: "plain-secret",
		Role:        domain.RoleAdministrator,
	}
	saved := domain.Employee{
		ID:          1,
		Name:        req.Name,
		CPF:         "12345678909",
		GovEmail:    req.GovEmail,
		GovPassword: req.GovPassword,
		Role:        domain.RoleAdministrator,
		Active:      true,
	}

	suite.mockEmployeeRepo.On("SaveEmployee", ctx, mock.AnythingOfType("domain.Employee")).Return(&saved, nil).Once()
	suite.mockUserRepo.On("FindUserByCPF", ctx, saved.CPF).
		Return(nil, fmt.Errorf("user: %w", apperrors.ErrNotFound)).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(domain.User)
			suite.Equal(saved.CPF, user.CPF)
			suite.Equal(saved.GovEmail, user.Email)
			suite.True(utils.IsBcryptHash(user.PasswordHash), "plain passwords are hashed before storage")
			suite.True(utils.CheckPasswordHash("plain-secret", user.PasswordHash))
		}).
		Return(nil).Once()

	_, err := suite.service.CreateEmployee(ctx, req)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_AdministratorSyncKeepsExistingSession() {
	ctx := context.Background()
	hash, err := utils.HashPassword("already-set")
	suite.Require().NoError(err)
	existing := domain.User{
		CPF:              "12345678909",
		FullName:         "Ana",
		Email:            "old@example.com",
		PasswordHash:     "irrelevant",
		RefreshTokenHash: "stored-refresh-hash",
	}
	saved := domain.Employee{
		ID:          1,
		Name:        "Ana Souza",
		CPF:         existing.CPF,
		GovEmail:    "ana@example.com",
		GovPassword: hash,
		Role:        domain.RoleAdministrator,
		Active:      true,
	}

	suite.mockEmployeeRepo.On("SaveEmployee", ctx, mock.AnythingOfType("domain.Employee")).Return(&saved, nil).Once()
	suite.mockUserRepo.On("FindUserByCPF", ctx, saved.CPF).Return(&existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(domain.User)
			suite.Equal(hash, user.PasswordHash, "bcrypt values are stored as-is, not re-hashed")
			suite.Equal("stored-refresh-hash", user.RefreshTokenHash, "an active refresh session survives the sync")
			suite.Equal("ana@example.com", user.Email)
		}).
		Return(nil).Once()

	_, createErr := suite.service.CreateEmployee(ctx, dto.CreateEmployeeRequest{
		Name:        saved.Name,
		CPF:         "123.456.789-09",
		GovEmail:    saved.GovEmail,
		GovPassword: hash,
		Role:        domain.RoleAdministrator,
	})

	suite.Require().NoError(createErr)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
