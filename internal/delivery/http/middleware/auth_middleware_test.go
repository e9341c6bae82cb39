package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	mockService "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_ValidToken(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateAccessToken("good-token").Return(&service.Claims{
		UserID: userID,
		Roles:  []string{entity.RoleCustomer},
		Type:   "access",
	}, nil)

	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthTestContext("Bearer good-token")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	gotID, ok := GetUserID(c)
	require.True(t, ok)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, []string{entity.RoleCustomer}, c.Get(ContextKeyRoles))
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	t.Parallel()

	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthTestContext("")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	t.Parallel()

	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateAccessToken("bad-token").Return(nil, errors.New("token expired"))

	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthTestContext("Bearer bad-token")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_MalformedHeader(t *testing.T) {
	t.Parallel()

	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthTestContext("Basic abc123")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_OptionalAuthenticate_Anonymous(t *testing.T) {
	t.Parallel()

	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthTestContext("")

	require.NoError(t, m.OptionalAuthenticate(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	_, ok := GetUserID(c)
	assert.False(t, ok)
}

func TestAuthMiddleware_OptionalAuthenticate_WithToken(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateAccessToken("good-token").Return(&service.Claims{
		UserID: userID,
		Roles:  []string{entity.RoleCustomer},
		Type:   "access",
	}, nil)

	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthTestContext("Bearer good-token")

	require.NoError(t, m.OptionalAuthenticate(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	gotID, ok := GetUserID(c)
	require.True(t, ok)
	assert.Equal(t, userID, gotID)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	t.Parallel()

	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	t.Run("admin role present", func(t *testing.T) {
		t.Parallel()

		c, rec := newAuthTestContext("")
		c.Set(ContextKeyRoles, []string{entity.RoleAdmin})

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("customer is rejected", func(t *testing.T) {
		t.Parallel()

		c, rec := newAuthTestContext("")
		c.Set(ContextKeyRoles, []string{entity.RoleCustomer})

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("roles missing entirely", func(t *testing.T) {
		t.Parallel()

		c, rec := newAuthTestContext("")

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
