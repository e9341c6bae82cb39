// Package identity resolves the cart owner for a request from whatever
// identity signals are available.
package identity

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

// resolver implements service.IdentityResolver. Resolution never fails:
// when neither a user id nor a guest id is present it degrades to an
// ephemeral owner so the request can still be served.
type resolver struct {
	logger *slog.Logger
}

// NewResolver is the constructor for resolver.
func NewResolver(logger *slog.Logger) service.IdentityResolver {
	return &resolver{logger: logger}
}

// Resolve picks the strongest available identity: authenticated user id
// first, then the client-supplied guest id, then a generated fallback.
func (r *resolver) Resolve(ctx context.Context, userID *uuid.UUID, guestID string) entity.CartOwner {
	if userID != nil && *userID != uuid.Nil {
		return entity.AuthenticatedOwner(*userID)
	}

	if guestID != "" {
		return entity.GuestOwner(guestID)
	}

	fallback := uuid.NewString()
	r.logger.DebugContext(ctx, "no identity supplied, using ephemeral cart owner",
		slog.String("fallbackID", fallback),
	)

	return entity.EphemeralOwner(fallback)
}
