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
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func int64Ptr(v int64) *int64 {
	return &v
}

type PeriodServiceTestSuite struct {
	suite.Suite
	mockPeriodRepo   *MockPeriodRepository
	mockParkRepo     *MockParkRepository
	mockEmployeeRepo *MockEmployeeRepository
	mockEntryRepo    *MockServiceEntryRepository
	service          portssvc.PeriodSvcFacade
	park             domain.Park
}

func (suite *PeriodServiceTestSuite) SetupTest() {
	suite.mockPeriodRepo = new(MockPeriodRepository)
	suite.mockParkRepo = new(MockParkRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockEntryRepo = new(MockServiceEntryRepository)
	suite.service = services.NewPeriodService(suite.mockPeriodRepo, suite.mockParkRepo, suite.mockEmployeeRepo, suite.mockEntryRepo)

	suite.park = domain.Park{
		ID:         7,
		Name:       "Parque Aquático Norte",
		City:       "Fortaleza",
		State:      "CE",
		ClientCNPJ: "12345678000190",
	}
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_Success() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{
		ParkID:           suite.park.ID,
		Year:             2025,
		Month:            6,
		JVAPricePerMeter: decPtr("10"),
		TaxRate:          decPtr("5"), // percentage input
		CarRentalValue:   decPtr("100"),
	}

	suite.mockPeriodRepo.On("ExistsPeriod", ctx, suite.park.ID, 2025, 6).Return(false, nil).Once()
	suite.mockParkRepo.On("FindParkByID", ctx, suite.park.ID).Return(&suite.park, nil).Once()
	suite.mockPeriodRepo.On("SavePeriod", ctx, mock.AnythingOfType("domain.Period")).
		Run(func(args mock.Arguments) {
			period := args.Get(1).(domain.Period)
			suite.Equal(domain.PeriodOpen, period.Status)
			suite.True(period.TaxRate.Equal(decimal.RequireFromString("0.05")), "percentage input must be stored as a fraction")
		}).
		Return(&domain.Period{ID: 42, ParkID: suite.park.ID, Year: 2025, Month: 6}, nil).Once()

	created, err := suite.service.CreatePeriod(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(42), created.ID)
	suite.mockPeriodRepo.AssertExpectations(suite.T())
	suite.mockParkRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_DuplicateMonth() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{ParkID: suite.park.ID, Year: 2025, Month: 6}

	suite.mockPeriodRepo.On("ExistsPeriod", ctx, suite.park.ID, 2025, 6).Return(true, nil).Once()

	created, err := suite.service.CreatePeriod(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(created)
	suite.mockPeriodRepo.AssertNotCalled(suite.T(), "SavePeriod", mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_InvalidMonth() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{ParkID: suite.park.ID, Year: 2025, Month: 13}

	created, err := suite.service.CreatePeriod(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_NegativeRate() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{
		ParkID:           suite.park.ID,
		Year:             2025,
		Month:            6,
		JVAPricePerMeter: decPtr("-1"),
	}

	suite.mockPeriodRepo.On("ExistsPeriod", ctx, suite.park.ID, 2025, 6).Return(false, nil).Once()
	suite.mockParkRepo.On("FindParkByID", ctx, suite.park.ID).Return(&suite.park, nil).Once()

	_, err := suite.service.CreatePeriod(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_AdministratorMustExist() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{
		ParkID:          suite.park.ID,
		Year:            2025,
		Month:           6,
		AdministratorID: int64Ptr(3),
	}

	suite.mockPeriodRepo.On("ExistsPeriod", ctx, suite.park.ID, 2025, 6).Return(false, nil).Once()
	suite.mockParkRepo.On("FindParkByID", ctx, suite.park.ID).Return(&suite.park, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, int64(3)).
		Return(nil, fmt.Errorf("employee 3: %w", apperrors.ErrNotFound)).Once()

	_, err := suite.service.CreatePeriod(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPeriodRepo.AssertNotCalled(suite.T(), "SavePeriod", mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_AnyRoleMayAdminister() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{
		ParkID:          suite.park.ID,
		Year:            2025,
		Month:           6,
		AdministratorID: int64Ptr(3),
	}
	dailyRate := decimal.RequireFromString("150")

	suite.mockPeriodRepo.On("ExistsPeriod", ctx, suite.park.ID, 2025, 6).Return(false, nil).Once()
	suite.mockParkRepo.On("FindParkByID", ctx, suite.park.ID).Return(&suite.park, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, int64(3)).
		Return(&domain.Employee{ID: 3, Name: "João", Role: domain.RoleAssembler, DailyRate: &dailyRate, Active: true}, nil).Once()
	suite.mockPeriodRepo.On("SavePeriod", ctx, mock.AnythingOfType("domain.Period")).
		Return(&domain.Period{ID: 43, ParkID: suite.park.ID, Year: 2025, Month: 6, Status: domain.PeriodOpen}, nil).Once()

	created, err := suite.service.CreatePeriod(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(43), created.ID)
	suite.mockPeriodRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestUpdatePeriod_RateChangeReprices() {
	ctx := context.Background()
	existing := domain.Period{
		ID:               42,
		ParkID:           suite.park.ID,
		Year:             2025,
		Month:            6,
		JVAPricePerMeter: decimal.RequireFromString("10"),
		Status:           domain.PeriodOpen,
	}

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, int64(42)).Return(&existing, nil).Once()
	suite.mockPeriodRepo.On("UpdatePeriod", ctx, mock.AnythingOfType("domain.Period"), true).Return(nil).Once()

	updated, err := suite.service.UpdatePeriod(ctx, 42, dto.UpdatePeriodRequest{JVAPricePerMeter: decPtr("12.5")})

	suite.Require().NoError(err)
	suite.True(updated.JVAPricePerMeter.Equal(decimal.RequireFromString("12.5")))
	suite.mockPeriodRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestUpdatePeriod_NoRateChangeDoesNotReprice() {
	ctx := context.Background()
	existing := domain.Period{
		ID:               42,
		ParkID:           suite.park.ID,
		JVAPricePerMeter: decimal.RequireFromString("10"),
		Status:           domain.PeriodOpen,
	}

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, int64(42)).Return(&existing, nil).Once()
	suite.mockPeriodRepo.On("UpdatePeriod", ctx, mock.AnythingOfType("domain.Period"), false).Return(nil).Once()

	_, err := suite.service.UpdatePeriod(ctx, 42, dto.UpdatePeriodRequest{CarRentalValue: decPtr("250")})

	suite.Require().NoError(err)
	suite.mockPeriodRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestUpdatePeriod_LeaderRateRejectedWhileLeaderlessEntriesExist() {
	ctx := context.Background()
	existing := domain.Period{
		ID:               42,
		ParkID:           suite.park.ID,
		JVAPricePerMeter: decimal.RequireFromString("10"),
		Status:           domain.PeriodOpen,
	}

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, int64(42)).Return(&existing, nil).Once()
	suite.mockEntryRepo.On("ExistsLeaderlessByPeriod", ctx, int64(42)).Return(true, nil).Once()

	_, err := suite.service.UpdatePeriod(ctx, 42, dto.UpdatePeriodRequest{LeaderPricePerMeter: decPtr("2")})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPeriodRepo.AssertNotCalled(suite.T(), "UpdatePeriod", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestUpdatePeriod_LeaderRateAcceptedWhenAllEntriesLed() {
	ctx := context.Background()
	existing := domain.Period{
		ID:               42,
		ParkID:           suite.park.ID,
		JVAPricePerMeter: decimal.RequireFromString("10"),
		Status:           domain.PeriodOpen,
	}

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, int64(42)).Return(&existing, nil).Once()
	suite.mockEntryRepo.On("ExistsLeaderlessByPeriod", ctx, int64(42)).Return(false, nil).Once()
	suite.mockPeriodRepo.On("UpdatePeriod", ctx, mock.AnythingOfType("domain.Period"), false).Return(nil).Once()

	updated, err := suite.service.UpdatePeriod(ctx, 42, dto.UpdatePeriodRequest{LeaderPricePerMeter: decPtr("2")})

	suite.Require().NoError(err)
	suite.True(updated.LeaderPricePerMeter.Equal(decimal.RequireFromString("2")))
	suite.mockPeriodRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestDeletePeriod_NotFound() {
	ctx := context.Background()

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeletePeriod(ctx, 99)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPeriodRepo.AssertNotCalled(suite.T(), "DeletePeriod", mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestListPeriods_ScopedToPark() {
	ctx := context.Background()
	periods := []domain.Period{{ID: 2, ParkID: suite.park.ID, Year: 2025, Month: 7}, {ID: 1, ParkID: suite.park.ID, Year: 2025, Month: 6}}

	suite.mockPeriodRepo.On("ListPeriodsByPark", ctx, suite.park.ID).Return(periods, nil).Once()

	got, err := suite.service.ListPeriods(ctx, &suite.park.ID)

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.mockPeriodRepo.AssertNotCalled(suite.T(), "ListPeriods", mock.Anything)
}

func TestPeriodServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PeriodServiceTestSuite))
}
