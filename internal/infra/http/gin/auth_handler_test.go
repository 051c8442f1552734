package ginserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	gin "github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Beto956/rvnb/internal/app/dto"
	authsvc "github.com/Beto956/rvnb/internal/app/services/auth"
	"github.com/Beto956/rvnb/internal/infra/security"
	"github.com/Beto956/rvnb/internal/infra/storage/memory"
)

func newAuthFixture(t *testing.T) (AuthHandler, *authsvc.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := &authsvc.Service{
		Users:     memory.NewUserRepository(),
		Sessions:  memory.NewSessionStore(),
		Passwords: security.BcryptHasher{Cost: 4},
		Tokens:    security.RandomTokenGenerator{},
	}
	return AuthHandler{Service: svc}, svc
}

func TestBecomeHostHandler(t *testing.T) {
	h, svc := newAuthFixture(t)
	result, err := svc.Register(context.Background(), authsvc.RegisterParams{
		Email:    "maya@example.com",
		Name:     "Maya",
		Password: "long-enough",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/become-host", nil)
	setPrincipal(c, principal{ID: string(result.User.ID), Email: result.User.Email})

	h.BecomeHost(c)
	require.Equal(t, http.StatusOK, w.Code)

	var profile dto.UserProfile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Contains(t, profile.Roles, "host")
}

func TestBecomeHostHandlerRequiresAuth(t *testing.T) {
	h, _ := newAuthFixture(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/become-host", nil)

	h.BecomeHost(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
