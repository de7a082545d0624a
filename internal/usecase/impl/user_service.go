package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
// It orchestrates domain objects and repositories to fulfill business requirements.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokens   service.TokenService
	admin    *config.AdminConfig
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Tokens   service.TokenService
	Config   *config.Config
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	var admin *config.AdminConfig
	if params.Config != nil {
		admin = params.Config.Admin
	}

	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		tokens:   params.Tokens,
		admin:    admin,
		logger:   params.Logger,
	}
}

// Register creates a customer account with a hashed password.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Name:         input.Name,
		PasswordHash: hash,
		Role:         entity.RoleCustomer,
		CreatedAt:    time.Now(),
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			srv.logger.Warn("Registration with taken email", slog.String("email", user.Email))

			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.logger.Info("User registered", slog.Any("userID", user.ID), slog.String("email", user.Email))

	return user, nil
}

// Login verifies the credentials and issues a token pair.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same error as a wrong password, so the response does not
			// reveal which accounts exist.
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login with wrong password", slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "wrong password")
	}

	access, refresh, err := srv.tokens.GenerateTokens(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthOutput{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user,
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (srv *userService) Refresh(ctx context.Context, input *usecase.RefreshInput) (string, error) {
	claims, err := srv.tokens.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrUnauthorized, "invalid refresh token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", errors.Wrap(domainerrors.ErrUnauthorized, "token subject no longer exists")
		}

		return "", errors.Wrap(err, "failed to find user")
	}

	access, _, err := srv.tokens.GenerateTokens(user)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate tokens")
	}

	return access, nil
}

// EnsureAdmin creates the bootstrap admin account from config if it
// does not exist yet. Re-running against an existing account is a no-op.
func (srv *userService) EnsureAdmin(ctx context.Context) error {
	if srv.admin == nil || srv.admin.Email == "" {
		srv.logger.Warn("No admin account configured")

		return nil
	}

	email := strings.ToLower(strings.TrimSpace(srv.admin.Email))
	if _, err := srv.userRepo.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to look up admin account")
	}

	hash, err := srv.hasher.Hash(srv.admin.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash admin password")
	}

	admin := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         srv.admin.Name,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	}

	if err := srv.userRepo.Create(ctx, admin); err != nil {
		// A concurrent boot may have created it first.
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil
		}

		return errors.Wrap(err, "failed to create admin account")
	}

	srv.logger.Info("Bootstrap admin created", slog.String("email", email))

	return nil
}

// ListUsers returns every registered user.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}
