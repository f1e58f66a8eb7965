// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/credential"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface. It is stateless
// between calls; every operation is an independent unit of work and the
// only shared resource is the store itself.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	policy       credential.Policy
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	policy := credential.DefaultPolicy()
	if params.Config != nil {
		policy = params.Config.Policy()
	}

	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		policy:       policy,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Register orchestrates the complete registration flow: field presence,
// credential policy, uniqueness lookup, hashing, persistence and token
// issuance. Any failed step short-circuits; nothing is persisted unless
// every preceding step succeeded.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.TokenOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrEmptyField.WrapMessage("registration input is missing")
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if isBlank(input.Name) {
		return nil, domainerrors.ErrEmptyField.WrapMessage("name cannot be blank")
	}

	if err := credential.Validate(input.Email, input.Password, srv.policy); err != nil {
		srv.log(ctx).Warn("Credential validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	var registered *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		// Friendly fast path; the unique index remains the authoritative
		// guard against a concurrent duplicate slipping past this lookup.
		_, err := accountRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrEmailAlreadyUsed.WrapMessage("registration rejected")
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check email availability")
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password during registration")
		}

		account := &entity.Account{
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: hash,
			Roles:        entity.Roles{entity.RoleUser},
		}

		if err := accountRepo.Create(ctx, account); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				// Lost the registration race; same outcome as the lookup.
				return domainerrors.ErrEmailAlreadyUsed.WrapMessage("registration rejected")
			}

			return errors.Wrap(err, "failed to create account during registration")
		}

		registered = account

		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.Issue(registered.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration", slog.Any("accountID", registered.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", registered.ID))

	return &usecase.TokenOutput{Token: token}, nil
}

// Login authenticates an account and issues a fresh session token.
// An unknown email and a wrong password both yield ErrInvalidCredentials,
// so the endpoint cannot be used to enumerate accounts.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrEmptyField.WrapMessage("login input is missing")
	}

	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	// bcrypt comparison is CPU-bound and needs no transaction.
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Issue(account.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("accountID", account.ID))

	return &usecase.TokenOutput{Token: token}, nil
}

// Update applies a partial profile update. Each field is applied only when
// present and non-blank; a new password is re-hashed before storage. The
// strength policy is not re-checked here, matching registration-time-only
// enforcement.
func (srv *accountService) Update(ctx context.Context, input *usecase.UpdateAccountInput) error {
	if input == nil {
		return domainerrors.ErrEmptyField.WrapMessage("update input is missing")
	}

	srv.log(ctx).Info("Updating account", slog.Any("accountID", input.ID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("update rejected")
			}

			return errors.Wrap(err, "failed to load account for update")
		}

		if !isBlank(input.Name) {
			account.Name = input.Name
		}
		if !isBlank(input.Email) {
			account.Email = input.Email
		}
		if !isBlank(input.Password) {
			hash, err := srv.hasher.Hash(input.Password)
			if err != nil {
				return errors.Wrap(err, "failed to hash password during update")
			}
			account.PasswordHash = hash
		}

		if err := accountRepo.Update(ctx, account); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrEmailAlreadyUsed.WrapMessage("update rejected")
			}

			return errors.Wrap(err, "failed to update account")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Account update failed", slog.Any("accountID", input.ID), slog.Any("error", err))

		return err
	}

	return nil
}

// Get retrieves an account by ID.
func (srv *accountService) Get(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return account, nil
}

// GetByEmail retrieves an account by its login email.
func (srv *accountService) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return account, nil
}

// List retrieves all accounts.
func (srv *accountService) List(ctx context.Context) ([]*entity.Account, error) {
	accounts, err := srv.accountRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// Delete removes an account by ID.
func (srv *accountService) Delete(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting account", slog.Any("accountID", id))

	if err := srv.accountRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound.WrapMessage("delete rejected")
		}

		return errors.Wrap(err, "failed to delete account")
	}

	return nil
}
