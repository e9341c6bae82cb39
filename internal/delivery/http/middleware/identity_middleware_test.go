package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/identity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdentityMiddleware() *IdentityMiddleware {
	resolver := identity.NewResolver(slog.New(slog.NewTextHandler(io.Discard, nil)))

	return NewIdentityMiddleware(resolver)
}

func TestIdentityMiddleware_AuthenticatedUserWins(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set(HeaderXGuestID, "guest-abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyUserID, userID)

	require.NoError(t, newIdentityMiddleware().ResolveOwner(okHandler)(c))

	owner, ok := CartOwnerFromContext(c)
	require.True(t, ok)
	assert.Equal(t, entity.IdentityAuthenticated, owner.Kind)
	assert.Equal(t, userID.String(), owner.ID)
}

func TestIdentityMiddleware_GuestHeader(t *testing.T) {
	t.Parallel()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set(HeaderXGuestID, "guest-abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, newIdentityMiddleware().ResolveOwner(okHandler)(c))

	owner, ok := CartOwnerFromContext(c)
	require.True(t, ok)
	assert.Equal(t, entity.IdentityGuest, owner.Kind)
	assert.Equal(t, "guest-abc", owner.ID)
}

func TestIdentityMiddleware_AnonymousGetsEphemeralOwner(t *testing.T) {
	t.Parallel()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, newIdentityMiddleware().ResolveOwner(okHandler)(c))

	owner, ok := CartOwnerFromContext(c)
	require.True(t, ok)
	assert.Equal(t, entity.IdentityEphemeral, owner.Kind)
	assert.NotEmpty(t, owner.ID)
	assert.False(t, owner.Persistent())
}
