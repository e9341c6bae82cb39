package service

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// IdentityResolver derives a stable cart owner for the current request.
//
// Resolution order: an authenticated user id wins over any guest id; a
// client-supplied guest id wins over nothing; with neither, a fresh
// ephemeral owner is generated whose cart will not persist across
// requests (degraded mode, not an error).
type IdentityResolver interface {
	// Resolve never fails; on any internal problem it still returns a
	// usable ephemeral owner.
	Resolve(ctx context.Context, userID *uuid.UUID, guestID string) entity.CartOwner
}
