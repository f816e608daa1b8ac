package impl

import (
	"context"
	"testing"

	"wallet/internal/domain/entity"
	domainerrors "wallet/internal/domain/errors"
	"wallet/internal/domain/repository"
	mockRepo "wallet/internal/mocks/repository"
	"wallet/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register_AccountCreateFails(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Password: "Password123!",
	}

	accountErr := domainerrors.ErrAccountCreationFailed.WrapMessage("insert rejected")

	fx.validator.EXPECT().ValidateRegistration(input.Username, input.Password).Return(nil)
	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Return(accountErr)

			// The transaction manager surfaces the callback error after rollback.
			return fn(mockFactory)
		})

	err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountCreationFailed)
}

func TestUserService_Register_UserCreateFailsAfterAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Password: "Password123!",
	}

	conflictErr := domainerrors.ErrUsernameUnavailable.WrapMessage("username already exists")

	fx.validator.EXPECT().ValidateRegistration(input.Username, input.Password).Return(nil)
	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					account.ID = 3
				}).
				Return(nil)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(conflictErr)

			return fn(mockFactory)
		})

	err := fx.service.Register(ctx, input)

	// A lost race on the unique index surfaces as the same conflict error as
	// the pre-check, so callers observe one consistent outcome.
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameUnavailable)
}

func TestUserService_Register_HashFails(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Password: "Password123!",
	}

	fx.validator.EXPECT().ValidateRegistration(input.Username, input.Password).Return(nil)
	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt failure"))

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					account.ID = 3
				}).
				Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_Login_UnknownUsername(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "ghost",
		Password: "Password123!",
	}

	fx.validator.EXPECT().ValidateLogin(input.Username, input.Password).Return(nil)
	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "alice",
		Password: "wrong_password",
	}

	storedUser := &entity.User{
		ID:           7,
		Username:     "alice",
		PasswordHash: "hashed_password",
		AccountID:    3,
	}

	fx.validator.EXPECT().ValidateLogin(input.Username, input.Password).Return(nil)
	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(storedUser, nil)
	fx.hasher.EXPECT().Check(input.Password, storedUser.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

// Unknown usernames and wrong passwords must be indistinguishable to the caller.
func TestUserService_Login_ErrorsAreSymmetric(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.validator.EXPECT().ValidateLogin(mock.Anything, mock.Anything).Return(nil)
	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	storedUser := &entity.User{ID: 7, Username: "alice", PasswordHash: "hashed_password"}
	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(storedUser, nil)
	fx.hasher.EXPECT().Check("wrong", storedUser.PasswordHash).Return(false)

	_, unknownErr := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "whatever1"})
	_, wrongErr := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong"})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_TokenGenerationFails(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "alice",
		Password: "Password123!",
	}

	storedUser := &entity.User{
		ID:           7,
		Username:     "alice",
		PasswordHash: "hashed_password",
	}

	fx.validator.EXPECT().ValidateLogin(input.Username, input.Password).Return(nil)
	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(storedUser, nil)
	fx.hasher.EXPECT().Check(input.Password, storedUser.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Generate(storedUser.ID, storedUser.Username).Return("", errors.New("signing failed"))

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
}

func TestUserService_GetBalance_UserNotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, int64(42)).Return(nil, repository.ErrUserNotFound)

	balance, err := fx.service.GetBalance(ctx, 42)

	require.Error(t, err)
	assert.Zero(t, balance)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_GetBalance_AccountMissing(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(&entity.User{ID: 7, Username: "alice", AccountID: 3}, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, int64(3)).Return(nil, repository.ErrAccountNotFound)

	balance, err := fx.service.GetBalance(ctx, 7)

	require.Error(t, err)
	assert.Zero(t, balance)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}
