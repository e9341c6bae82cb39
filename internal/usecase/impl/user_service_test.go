package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	cartUsecase  *mockUsecase.MockCartUsecase
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	cartUsecase := mockUsecase.NewMockCartUsecase(t)

	svc := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		CartUsecase:  cartUsecase,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      svc,
		txManager:    txManager,
		factory:      factory,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		cartUsecase:  cartUsecase,
	}
}

// onExecute wires the transaction manager so the transactional callback runs
// against the fixture factory and its error propagates like a rollback would.
func (fx userServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	setup(fx.factory)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

// expectIssueTokens covers the token generation and refresh token rotation
// performed on every successful register, login and refresh.
func (fx userServiceFixtures) expectIssueTokens(t *testing.T, ctx context.Context, userID uuid.UUID, roles []string) {
	fx.tokenService.EXPECT().
		GenerateTokens(userID, roles).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().
		RefreshTokenDuration().
		Return(7 * 24 * time.Hour)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "refresh-token", user.RefreshToken)
			assert.False(t, user.RefreshTokenExpiry.IsZero())
		}).
		Return(nil)
}

func refreshClaims(userID uuid.UUID) *service.Claims {
	return &service.Claims{
		UserID: userID,
		Roles:  []string{entity.RoleCustomer},
		Type:   "refresh",
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:     "  New.User@Example.COM ",
		Password:  "hunter22",
		FirstName: " Ada ",
		LastName:  " Lovelace ",
	}

	fx.hasher.EXPECT().Hash("hunter22").Return("hashed", nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)

		userRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(_ context.Context, user *entity.User) {
				assert.Equal(t, "new.user@example.com", user.Email)
				assert.Equal(t, "Ada", user.FirstName)
				assert.Equal(t, "Lovelace", user.LastName)
				assert.Equal(t, "hashed", user.PasswordHash)
				assert.False(t, user.IsAdmin)
			}).
			Return(nil)
	})

	fx.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), []string{entity.RoleCustomer}).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	output, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, "new.user@example.com", output.User.Email)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("hunter22").Return("hashed", nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)

		userRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Return(repository.ErrDuplicateUser)
	})

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "hunter22",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("hunter22").Return("", errors.New("bcrypt blew up"))

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "new@example.com",
		Password: "hunter22",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestUserService_Login_Success_MergesGuestCart(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "ada@example.com",
		PasswordHash: "hashed",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("hunter22", "hashed").Return(true)
	fx.expectIssueTokens(t, ctx, userID, []string{entity.RoleCustomer})
	fx.cartUsecase.EXPECT().MergeGuestCart(ctx, userID, "guest-abc").Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "Ada@Example.com",
		Password: "hunter22",
		GuestID:  "guest-abc",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
}

func TestUserService_Login_MergeFailureDoesNotFailLogin(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "ada@example.com",
		PasswordHash: "hashed",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("hunter22", "hashed").Return(true)
	fx.expectIssueTokens(t, ctx, userID, []string{entity.RoleCustomer})
	fx.cartUsecase.EXPECT().
		MergeGuestCart(ctx, userID, "guest-abc").
		Return(errors.New("merge exploded"))

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ada@example.com",
		Password: "hunter22",
		GuestID:  "guest-abc",
	})
	require.NoError(t, err)
	assert.NotNil(t, output)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "ada@example.com",
		PasswordHash: "hashed",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ada@example.com",
		Password: "wrong",
	})

	// Indistinguishable from an unknown email.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Refresh_RotatesToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:                 userID,
		Email:              "ada@example.com",
		RefreshToken:       "old-refresh",
		RefreshTokenExpiry: time.Now().Add(24 * time.Hour),
	}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("old-refresh").
		Return(refreshClaims(userID), nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.expectIssueTokens(t, ctx, userID, []string{entity.RoleCustomer})

	output, err := fx.service.Refresh(ctx, "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "refresh-token", output.RefreshToken)
}

func TestUserService_Refresh_TokenMismatch(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:                 userID,
		RefreshToken:       "current-refresh",
		RefreshTokenExpiry: time.Now().Add(24 * time.Hour),
	}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("stale-refresh").
		Return(refreshClaims(userID), nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	_, err := fx.service.Refresh(ctx, "stale-refresh")

	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Refresh_ExpiredStoredToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:                 userID,
		RefreshToken:       "old-refresh",
		RefreshTokenExpiry: time.Now().Add(-time.Hour),
	}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("old-refresh").
		Return(refreshClaims(userID), nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	_, err := fx.service.Refresh(ctx, "old-refresh")

	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, errors.New("token is malformed"))

	_, err := fx.service.Refresh(ctx, "garbage")

	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Logout_ClearsRefreshToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:                 userID,
		RefreshToken:       "current-refresh",
		RefreshTokenExpiry: time.Now().Add(24 * time.Hour),
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, updated *entity.User) {
			assert.Empty(t, updated.RefreshToken)
			assert.True(t, updated.RefreshTokenExpiry.IsZero())
		}).
		Return(nil)

	err := fx.service.Logout(ctx, userID)

	assert.NoError(t, err)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, userID)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
