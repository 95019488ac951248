package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/jvamontagens/assembly_backend/internal/apperrors"
	"github.com/jvamontagens/assembly_backend/internal/core/domain"
	portssvc "github.com/jvamontagens/assembly_backend/internal/core/ports/services"
	"github.com/jvamontagens/assembly_backend/internal/core/services"
	"github.com/jvamontagens/assembly_backend/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
	user         domain.User
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)

	hash, err := utils.HashPassword("correct horse")
	suite.Require().NoError(err)
	suite.user = domain.User{
		CPF:          "12345678909",
		FullName:     "Ana Souza",
		Email:        "ana@example.com",
		PasswordHash: hash,
	}
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByCPF", ctx, suite.user.CPF).Return(&suite.user, nil).Once()

	user, err := suite.service.Authenticate(ctx, "123.456.789-09", "correct horse")

	suite.Require().NoError(err)
	suite.Equal(suite.user.Email, user.Email)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByCPF", ctx, suite.user.CPF).Return(&suite.user, nil).Once()

	_, err := suite.service.Authenticate(ctx, suite.user.CPF, "wrong")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownUserLooksLikeWrongPassword() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByCPF", ctx, suite.user.CPF).
		Return(nil, fmt.Errorf("user: %w", apperrors.ErrNotFound)).Once()

	_, err := suite.service.Authenticate(ctx, suite.user.CPF, "correct horse")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized, "missing users are not distinguishable from bad passwords")
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestStoreRefreshToken_NormalizesCPF() {
	ctx := context.Background()
	expiry := time.Now().Add(24 * time.Hour)

	suite.mockUserRepo.On("UpdateRefreshToken", ctx, suite.user.CPF, "hash-value", mock.AnythingOfType("*time.Time")).
		Return(nil).Once()

	err := suite.service.StoreRefreshToken(ctx, "123.456.789-09", "hash-value", expiry)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestClearRefreshToken() {
	ctx := context.Background()

	suite.mockUserRepo.On("UpdateRefreshToken", ctx, suite.user.CPF, "", (*time.Time)(nil)).Return(nil).Once()

	err := suite.service.ClearRefreshToken(ctx, suite.user.CPF)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
