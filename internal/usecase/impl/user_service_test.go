package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	user, err := f.users.Register(ctx, &usecase.RegisterInput{
		Name:     "Ada Lovelace",
		Email:    "Ada@Example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, user.Role)
	assert.Equal(t, "ada@example.com", user.Email, "emails are stored lowercased")
	assert.NotEqual(t, "correct-horse", user.PasswordHash)

	output, err := f.users.Login(ctx, &usecase.LoginInput{
		Email:    "ada@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, output.AccessToken)
	assert.NotEmpty(t, output.RefreshToken)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	input := &usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "correct-horse"}
	_, err := f.users.Register(ctx, input)
	require.NoError(t, err)

	_, err = f.users.Register(ctx, input)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.users.Register(ctx, &usecase.RegisterInput{
		Name: "Ada", Email: "ada@example.com", Password: "correct-horse",
	})
	require.NoError(t, err)

	_, err = f.users.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "wrong"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestLoginUnknownEmail(t *testing.T) {
	f := newFixture(t)

	_, err := f.users.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials),
		"unknown email and wrong password must be indistinguishable")
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.users.Register(ctx, &usecase.RegisterInput{
		Name: "Ada", Email: "ada@example.com", Password: "correct-horse",
	})
	require.NoError(t, err)

	output, err := f.users.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	access, err := f.users.Refresh(ctx, &usecase.RefreshInput{RefreshToken: output.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, access)

	// An access token is not accepted as a refresh token.
	_, err = f.users.Refresh(ctx, &usecase.RefreshInput{RefreshToken: output.AccessToken})
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.users.EnsureAdmin(ctx))
	require.NoError(t, f.users.EnsureAdmin(ctx))

	users, err := f.users.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, entity.RoleAdmin, users[0].Role)
	assert.Equal(t, "admin@example.com", users[0].Email)

	// The bootstrap admin can log in with the configured password.
	output, err := f.users.Login(ctx, &usecase.LoginInput{
		Email:    "admin@example.com",
		Password: "admin-password",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, output.User.Role)
}
