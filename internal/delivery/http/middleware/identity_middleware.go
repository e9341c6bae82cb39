package middleware

import (
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXGuestID carries the client-generated guest cart identifier.
const HeaderXGuestID = "X-Guest-Id"

// ContextKeyCartOwner holds the resolved entity.CartOwner for the request.
const ContextKeyCartOwner = "cartOwner"

// IdentityMiddleware resolves the cart owner for each request from the
// authenticated user (when OptionalAuthenticate ran before it) or the
// guest id header. It never rejects a request; an anonymous client
// without a guest id gets an ephemeral owner.
type IdentityMiddleware struct {
	resolver service.IdentityResolver
}

// NewIdentityMiddleware is the constructor for IdentityMiddleware.
func NewIdentityMiddleware(resolver service.IdentityResolver) *IdentityMiddleware {
	return &IdentityMiddleware{resolver: resolver}
}

// ResolveOwner attaches the resolved CartOwner to the Echo context.
func (m *IdentityMiddleware) ResolveOwner(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var userID *uuid.UUID
		if id, ok := c.Get(ContextKeyUserID).(uuid.UUID); ok {
			userID = &id
		}

		guestID := c.Request().Header.Get(HeaderXGuestID)
		owner := m.resolver.Resolve(c.Request().Context(), userID, guestID)

		c.Set(ContextKeyCartOwner, owner)

		return next(c)
	}
}

// CartOwnerFromContext retrieves the owner set by ResolveOwner.
func CartOwnerFromContext(c echo.Context) (entity.CartOwner, bool) {
	owner, ok := c.Get(ContextKeyCartOwner).(entity.CartOwner)

	return owner, ok
}
