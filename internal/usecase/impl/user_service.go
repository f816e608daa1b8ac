// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"wallet/config"
	deliverycontext "wallet/internal/delivery/context"
	"wallet/internal/domain/entity"
	domainerrors "wallet/internal/domain/errors"
	"wallet/internal/domain/repository"
	"wallet/internal/domain/service"
	"wallet/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultInitialBalance is granted to every new account when the
// configuration does not override it.
const defaultInitialBalance = 100.0

// userService implements the UserUsecase interface.
type userService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	accountRepo    repository.AccountRepository
	validator      service.PayloadValidator
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	initialBalance float64
	logger         *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	AccountRepo  repository.AccountRepository
	Validator    service.PayloadValidator
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	initialBalance := defaultInitialBalance
	if params.Config != nil && params.Config.Account != nil {
		initialBalance = params.Config.Account.InitialBalance
	}

	return &userService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		accountRepo:    params.AccountRepo,
		validator:      params.Validator,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		initialBalance: initialBalance,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration process: payload
// validation, a uniqueness pre-check, then the account and user inserts in a
// single transaction. The account insert comes first because the user row
// references it; if either insert fails, the transaction rolls both back.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	if err := srv.validator.ValidateRegistration(input.Username, input.Password); err != nil {
		srv.log(ctx).Warn("Registration payload rejected", slog.String("username", input.Username), slog.Any("error", err))

		return err
	}

	// Pre-check gives a clean conflict answer without burning a bcrypt hash.
	// The unique index on username remains the authority under concurrency.
	if err := srv.checkUsernameAvailable(ctx, input.Username); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		userRepo := repoFactory.UserRepo()

		newAccount := &entity.Account{Balance: srv.initialBalance}
		if err := accountRepo.Create(ctx, newAccount); err != nil {
			return errors.Wrap(err, "failed to create account during registration")
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

			return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
		}

		newUser := &entity.User{
			Username:     input.Username,
			PasswordHash: hashedPassword,
			AccountID:    newAccount.ID,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("username", input.Username), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Registration completed", slog.String("username", input.Username))

	return nil
}

func (srv *userService) checkUsernameAvailable(ctx context.Context, username string) error {
	_, err := srv.userRepo.FindByUsername(ctx, username)
	if err == nil {
		srv.log(ctx).Warn("Username already taken", slog.String("username", username))

		return domainerrors.ErrUsernameUnavailable.WrapMessage("username already taken")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check username availability")
	}

	return nil
}

// Login orchestrates the user login process. Unknown usernames and wrong
// passwords return the same credentials error so a caller cannot probe which
// usernames exist.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("username", input.Username))

	if err := srv.validator.ValidateLogin(input.Username, input.Password); err != nil {
		srv.log(ctx).Warn("Login payload rejected", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Generate(user.ID, user.Username)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token during login", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{
		ID:       user.ID,
		Username: user.Username,
		Token:    token,
	}, nil
}

// GetBalance returns the balance of the account owned by the given user.
func (srv *userService) GetBalance(ctx context.Context, userID int64) (float64, error) {
	srv.log(ctx).Debug("Getting account balance", slog.Int64("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load user for balance query", slog.Int64("userID", userID), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return 0, domainerrors.ErrUserNotFound.WrapMessage("user no longer exists")
		}

		return 0, errors.Wrap(err, "failed to load user for balance query")
	}

	account, err := srv.accountRepo.FindByID(ctx, user.AccountID)
	if err != nil {
		srv.log(ctx).Error("Failed to load account for balance query", slog.Int64("userID", userID), slog.Int64("accountID", user.AccountID), slog.Any("error", err))

		if errors.Is(err, repository.ErrAccountNotFound) {
			return 0, domainerrors.ErrAccountNotFound.WrapMessage("account record is missing")
		}

		return 0, errors.Wrap(err, "failed to load account for balance query")
	}

	return account.Balance, nil
}
