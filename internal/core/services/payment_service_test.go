package services_test

import (
	"bytes"
	"context"
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

func categoryPtr(c domain.PaymentCategory) *domain.PaymentCategory {
	return &c
}

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo  *MockPaymentRepository
	mockPeriodRepo   *MockPeriodRepository
	mockParkRepo     *MockParkRepository
	mockEmployeeRepo *MockEmployeeRepository
	mockClientRepo   *MockClientRepository
	service          portssvc.PaymentSvcFacade
	period           domain.Period
	park             domain.Park
	assembler        domain.Employee
	leader           domain.Employee
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockPeriodRepo = new(MockPeriodRepository)
	suite.mockParkRepo = new(MockParkRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.service = services.NewPaymentService(
		suite.mockPaymentRepo,
		suite.mockPeriodRepo,
		suite.mockParkRepo,
		suite.mockEmployeeRepo,
		suite.mockClientRepo,
	)

	suite.park = domain.Park{ID: 7, Name: "Parque Central", ClientCNPJ: "12345678000190"}
	suite.period = domain.Period{ID: 42, ParkID: suite.park.ID, Year: 2025, Month: 6, Status: domain.PeriodOpen}
	dailyRate := decimal.RequireFromString("150")
	suite.assembler = domain.Employee{ID: 9, Name: "Pedro", Role: domain.RoleAssembler, DailyRate: &dailyRate, Active: true}
	leaderRate := decimal.RequireFromString("3")
	suite.leader = domain.Employee{ID: 5, Name: "Marcos", Role: domain.RoleLeader, PricePerMeter: &leaderRate, Active: true}
}

func (suite *PaymentServiceTestSuite) TestAddPaymentEntry_DefaultsToOtherCategory() {
	ctx := context.Background()
	req := dto.CreatePaymentEntryRequest{Name: "Combustível", Amount: decPtr("80")}

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, suite.period.ID).Return(&suite.period, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.PaymentEntry")).
		Run(func(args mock.Arguments) {
			payment := args.Get(1).(domain.PaymentEntry)
			suite.Equal(domain.PaymentOther, payment.Category)
			suite.Nil(payment.EmployeeID)
			suite.Nil(payment.ClientCNPJ)
			suite.False(payment.PaymentDate.IsZero(), "payment date defaults to today")
		}).
		Return(&domain.PaymentEntry{ID: 1, PeriodID: suite.period.ID}, nil).Once()

	created, err := suite.service.AddPaymentEntry(ctx, suite.period.ID, req)

	suite.Require().NoError(err)
	suite.Equal(int64(1), created.ID)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestAddPaymentEntry_ClientPaymentDefaultsToParkClient() {
	ctx := context.Background()
	req := dto.CreatePaymentEntryRequest{
		Name:     "Parcela junho",
		Amount:   decPtr("1000"),
		Category: categoryPtr(domain.PaymentClientPayment),
	}

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, suite.period.ID).Return(&suite.period, nil).Once()
	suite.mockParkRepo.On("FindParkByID", ctx, suite.park.ID).Return(&suite.park, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.PaymentEntry")).
		Run(func(args mock.Arguments) {
			payment := args.Get(1).(domain.PaymentEntry)
			suite.Require().NotNil(payment.ClientCNPJ)
			suite.Equal(suite.park.ClientCNPJ, *payment.ClientCNPJ)
		}).
		Return(&domain.PaymentEntry{ID: 2, PeriodID: suite.period.ID}, nil).Once()

	_, err := suite.service.AddPaymentEntry(ctx, suite.period.ID, req)

	suite.Require().NoError(err)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestAddPaymentEntry_HelperCategoryRequiresEmployee() {
	ctx := context.Background()
	req := dto.CreatePaymentEntryRequest{
		Name:     "Pagamento Pedro",
		Amount:   decPtr("600"),
		Category: categoryPtr(domain.PaymentEmployeeHelper),
	}

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, suite.period.ID).Return(&suite.period, nil).Once()

	_, err := suite.service.AddPaymentEntry(ctx, suite.period.ID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestAddPaymentEntry_LeaderCategoryChecksRole() {
	ctx := context.Background()
	req := dto.CreatePaymentEntryRequest{
		Name:       "Pagamento líder",
		Amount:     decPtr("500"),
		Category:   categoryPtr(domain.PaymentEmployeeLeader),
		EmployeeID: &suite.assembler.ID,
	}

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, suite.period.ID).Return(&suite.period, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, suite.assembler.ID).Return(&suite.assembler, nil).Once()

	_, err := suite.service.AddPaymentEntry(ctx, suite.period.ID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestAddPaymentEntry_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreatePaymentEntryRequest{Name: "Valor zerado", Amount: decPtr("0")}

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, suite.period.ID).Return(&suite.period, nil).Once()

	_, err := suite.service.AddPaymentEntry(ctx, suite.period.ID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestUpdatePaymentEntry_CategoryChangeRechecksEmployee() {
	ctx := context.Background()
	existing := domain.PaymentEntry{
		ID:         3,
		PeriodID:   suite.period.ID,
		Name:       "Pagamento",
		Amount:     decimal.RequireFromString("600"),
		Category:   domain.PaymentEmployeeHelper,
		EmployeeID: &suite.assembler.ID,
	}

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, int64(3)).Return(&existing, nil).Once()
	// Switching to the leader category against the existing assembler must fail.
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, suite.assembler.ID).Return(&suite.assembler, nil).Once()

	_, err := suite.service.UpdatePaymentEntry(ctx, 3, dto.UpdatePaymentEntryRequest{
		Category: categoryPtr(domain.PaymentEmployeeLeader),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "UpdatePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestUploadPaymentReceipt_Success() {
	ctx := context.Background()
	existing := domain.PaymentEntry{ID: 4, PeriodID: suite.period.ID, Name: "Nota fiscal"}
	data := []byte("%PDF-1.4 receipt body")

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, int64(4)).Return(&existing, nil).Once()
	suite.mockPaymentRepo.On("SaveReceipt", ctx, int64(4), mock.AnythingOfType("domain.ReceiptFile")).
		Run(func(args mock.Arguments) {
			file := args.Get(2).(domain.ReceiptFile)
			suite.Equal("nota-junho.pdf", file.FileName)
			suite.Equal("application/pdf", file.ContentType)
			suite.True(bytes.Equal(data, file.Data))
		}).
		Return(nil).Once()

	payment, err := suite.service.UploadPaymentReceipt(ctx, 4, "nota-junho.pdf", "application/pdf", data)

	suite.Require().NoError(err)
	suite.True(payment.HasReceipt)
	suite.Equal("nota-junho.pdf", payment.ReceiptFileName)
	suite.Equal(int64(len(data)), payment.ReceiptSize)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestUploadPaymentReceipt_SynthesizesFileName() {
	ctx := context.Background()
	existing := domain.PaymentEntry{ID: 4, PeriodID: suite.period.ID}

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, int64(4)).Return(&existing, nil).Once()
	suite.mockPaymentRepo.On("SaveReceipt", ctx, int64(4), mock.AnythingOfType("domain.ReceiptFile")).
		Run(func(args mock.Arguments) {
			file := args.Get(2).(domain.ReceiptFile)
			suite.Equal("payment-receipt-4.png", file.FileName)
		}).
		Return(nil).Once()

	_, err := suite.service.UploadPaymentReceipt(ctx, 4, "", "image/png", []byte{0x89, 0x50, 0x4e, 0x47})

	suite.Require().NoError(err)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestUploadPaymentReceipt_StripsPathCharacters() {
	ctx := context.Background()
	existing := domain.PaymentEntry{ID: 4, PeriodID: suite.period.ID}

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, int64(4)).Return(&existing, nil).Once()
	suite.mockPaymentRepo.On("SaveReceipt", ctx, int64(4), mock.AnythingOfType("domain.ReceiptFile")).
		Run(func(args mock.Arguments) {
			file := args.Get(2).(domain.ReceiptFile)
			suite.Equal(".._.._etc_passwd.pdf", file.FileName)
		}).
		Return(nil).Once()

	_, err := suite.service.UploadPaymentReceipt(ctx, 4, "../../etc/passwd.pdf", "application/pdf", []byte("x"))

	suite.Require().NoError(err)
}

func (suite *PaymentServiceTestSuite) TestUploadPaymentReceipt_RejectsUnknownType() {
	ctx := context.Background()
	existing := domain.PaymentEntry{ID: 4, PeriodID: suite.period.ID}

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, int64(4)).Return(&existing, nil).Once()

	_, err := suite.service.UploadPaymentReceipt(ctx, 4, "virus.exe", "application/x-msdownload", []byte("MZ"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SaveReceipt", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestUploadPaymentReceipt_InfersTypeFromExtension() {
	ctx := context.Background()
	existing := domain.PaymentEntry{ID: 4, PeriodID: suite.period.ID}

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, int64(4)).Return(&existing, nil).Once()
	suite.mockPaymentRepo.On("SaveReceipt", ctx, int64(4), mock.AnythingOfType("domain.ReceiptFile")).
		Run(func(args mock.Arguments) {
			file := args.Get(2).(domain.ReceiptFile)
			suite.Equal("image/jpeg", file.ContentType)
		}).
		Return(nil).Once()

	_, err := suite.service.UploadPaymentReceipt(ctx, 4, "foto.JPEG", "", []byte{0xff, 0xd8})

	suite.Require().NoError(err)
}

func (suite *PaymentServiceTestSuite) TestUploadPaymentReceipt_RejectsOversizedFile() {
	ctx := context.Background()
	existing := domain.PaymentEntry{ID: 4, PeriodID: suite.period.ID}

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, int64(4)).Return(&existing, nil).Once()

	_, err := suite.service.UploadPaymentReceipt(ctx, 4, "big.pdf", "application/pdf", make([]byte, 10*1024*1024+1))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestUploadPaymentReceipt_RejectsEmptyFile() {
	ctx := context.Background()
	existing := domain.PaymentEntry{ID: 4, PeriodID: suite.period.ID}

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, int64(4)).Return(&existing, nil).Once()

	_, err := suite.service.UploadPaymentReceipt(ctx, 4, "empty.pdf", "application/pdf", nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestGetPaymentReceipt_NoneAttached() {
	ctx := context.Background()
	existing := domain.PaymentEntry{ID: 4, PeriodID: suite.period.ID, HasReceipt: false}

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, int64(4)).Return(&existing, nil).Once()

	_, err := suite.service.GetPaymentReceipt(ctx, 4)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
