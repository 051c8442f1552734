package auth_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Beto956/rvnb/internal/app/services/auth"
	domainauth "github.com/Beto956/rvnb/internal/domain/auth"
	"github.com/Beto956/rvnb/internal/domain/user"
	"github.com/Beto956/rvnb/internal/infra/storage/memory"
)

// plainHasher keeps the tests fast and the stored hash inspectable.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "plain:" + password, nil }

func (plainHasher) Compare(hash, password string) error {
	if hash != "plain:"+password {
		return fmt.Errorf("hash mismatch")
	}
	return nil
}

type seqTokens struct {
	n int
}

func (g *seqTokens) NewToken() (string, error) {
	g.n++
	return fmt.Sprintf("tok-%d", g.n), nil
}

func newService(t *testing.T) *auth.Service {
	t.Helper()
	return &auth.Service{
		Users:     memory.NewUserRepository(),
		Sessions:  memory.NewSessionStore(),
		Passwords: plainHasher{},
		Tokens:    &seqTokens{},
	}
}

func TestRegister(t *testing.T) {
	svc := newService(t)

	res, err := svc.Register(context.Background(), auth.RegisterParams{
		Email:    "  Maya@Example.COM ",
		Name:     "Maya",
		Password: "wanderlust",
	})
	require.NoError(t, err)
	assert.Equal(t, "maya@example.com", res.User.Email)
	assert.NotEmpty(t, res.Token)
	assert.True(t, res.User.HasRole(user.RoleTraveler))
	assert.False(t, res.User.HasRole(user.RoleHost))

	hosty, err := svc.Register(context.Background(), auth.RegisterParams{
		Email:      "owner@example.com",
		Name:       "Owen",
		Password:   "wanderlust",
		WantToHost: true,
	})
	require.NoError(t, err)
	assert.True(t, hosty.User.HasRole(user.RoleHost))
}

func TestRegisterValidation(t *testing.T) {
	svc := newService(t)

	cases := []struct {
		name    string
		params  auth.RegisterParams
		wantErr error
	}{
		{"missing email", auth.RegisterParams{Name: "Maya", Password: "wanderlust"}, user.ErrEmailRequired},
		{"missing name", auth.RegisterParams{Email: "a@b.com", Password: "wanderlust"}, user.ErrNameRequired},
		{"short password", auth.RegisterParams{Email: "a@b.com", Name: "Maya", Password: "short"}, auth.ErrPasswordTooShort},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.params)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newService(t)
	params := auth.RegisterParams{Email: "maya@example.com", Name: "Maya", Password: "wanderlust"}

	_, err := svc.Register(context.Background(), params)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), params)
	assert.ErrorIs(t, err, user.ErrEmailAlreadyUsed)

	// email comparison is case insensitive
	params.Email = "MAYA@example.com"
	_, err = svc.Register(context.Background(), params)
	assert.ErrorIs(t, err, user.ErrEmailAlreadyUsed)
}

func TestLogin(t *testing.T) {
	svc := newService(t)
	_, err := svc.Register(context.Background(), auth.RegisterParams{
		Email: "maya@example.com", Name: "Maya", Password: "wanderlust",
	})
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), auth.LoginParams{
		Email: "maya@example.com", Password: "wanderlust",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	_, err = svc.Login(context.Background(), auth.LoginParams{
		Email: "maya@example.com", Password: "wrong-pass",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), auth.LoginParams{
		Email: "nobody@example.com", Password: "wanderlust",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestResolveToken(t *testing.T) {
	svc := newService(t)
	res, err := svc.Register(context.Background(), auth.RegisterParams{
		Email: "maya@example.com", Name: "Maya", Password: "wanderlust",
	})
	require.NoError(t, err)

	resolved, err := svc.ResolveToken(context.Background(), res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, resolved.User.ID)

	_, err = svc.ResolveToken(context.Background(), "tok-unknown")
	assert.ErrorIs(t, err, domainauth.ErrSessionNotFound)

	_, err = svc.ResolveToken(context.Background(), "   ")
	assert.ErrorIs(t, err, domainauth.ErrTokenRequired)
}

func TestResolveTokenExpired(t *testing.T) {
	svc := newService(t)
	svc.SessionTTL = time.Nanosecond

	res, err := svc.Register(context.Background(), auth.RegisterParams{
		Email: "maya@example.com", Name: "Maya", Password: "wanderlust",
	})
	require.NoError(t, err)

	time.Sleep(time.Millisecond)
	_, err = svc.ResolveToken(context.Background(), res.Token)
	assert.ErrorIs(t, err, domainauth.ErrSessionNotFound)

	// the expired session was removed, not just rejected
	_, err = svc.ResolveToken(context.Background(), res.Token)
	assert.ErrorIs(t, err, domainauth.ErrSessionNotFound)
}

func TestLogout(t *testing.T) {
	svc := newService(t)
	res, err := svc.Register(context.Background(), auth.RegisterParams{
		Email: "maya@example.com", Name: "Maya", Password: "wanderlust",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), res.Token))
	_, err = svc.ResolveToken(context.Background(), res.Token)
	assert.ErrorIs(t, err, domainauth.ErrSessionNotFound)

	// blank tokens are a no-op
	assert.NoError(t, svc.Logout(context.Background(), ""))
}

func TestBecomeHost(t *testing.T) {
	svc := newService(t)
	res, err := svc.Register(context.Background(), auth.RegisterParams{
		Email: "maya@example.com", Name: "Maya", Password: "wanderlust",
	})
	require.NoError(t, err)

	u, err := svc.BecomeHost(context.Background(), res.User.ID)
	require.NoError(t, err)
	assert.True(t, u.HasRole(user.RoleHost))

	// idempotent
	again, err := svc.BecomeHost(context.Background(), res.User.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Roles, again.Roles)

	_, err = svc.BecomeHost(context.Background(), "u-missing")
	assert.ErrorIs(t, err, user.ErrNotFound)
}
