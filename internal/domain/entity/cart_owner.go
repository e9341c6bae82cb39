// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"github.com/google/uuid"
)

// IdentityKind classifies who a cart belongs to.
type IdentityKind string

const (
	// IdentityAuthenticated marks a cart owned by a logged-in user.
	IdentityAuthenticated IdentityKind = "authenticated"
	// IdentityGuest marks a cart owned by a guest with a client-supplied id.
	IdentityGuest IdentityKind = "guest"
	// IdentityEphemeral marks a degraded-mode owner generated for a single
	// request when no guest id was supplied. Such carts do not survive
	// across requests.
	IdentityEphemeral IdentityKind = "ephemeral"
)

// Storage-key prefixes. Only CartOwner.Key builds these strings; the rest
// of the domain works with the tagged union.
const (
	guestKeyPrefix     = "guest_"
	ephemeralKeyPrefix = "fallback_"
)

// CartOwner is a tagged union identifying the owner of a cart:
// an authenticated user id, a client-supplied guest id, or a generated
// ephemeral id. It is converted to a single opaque string only at the
// storage boundary via Key.
type CartOwner struct {
	Kind IdentityKind
	ID   string
}

// AuthenticatedOwner builds a CartOwner for a logged-in user.
func AuthenticatedOwner(userID uuid.UUID) CartOwner {
	return CartOwner{Kind: IdentityAuthenticated, ID: userID.String()}
}

// GuestOwner builds a CartOwner from a client-supplied guest id.
func GuestOwner(guestID string) CartOwner {
	return CartOwner{Kind: IdentityGuest, ID: guestID}
}

// EphemeralOwner builds a single-request fallback owner.
func EphemeralOwner(id string) CartOwner {
	return CartOwner{Kind: IdentityEphemeral, ID: id}
}

// Key returns the opaque owner key used by the cart store.
func (o CartOwner) Key() string {
	switch o.Kind {
	case IdentityAuthenticated:
		return o.ID
	case IdentityGuest:
		return guestKeyPrefix + o.ID
	case IdentityEphemeral:
		return ephemeralKeyPrefix + o.ID
	default:
		return ephemeralKeyPrefix + o.ID
	}
}

// IsAuthenticated reports whether the owner is a logged-in user.
func (o CartOwner) IsAuthenticated() bool {
	return o.Kind == IdentityAuthenticated
}

// Persistent reports whether the owner's cart survives across requests.
// Ephemeral owners lose their cart once the request completes.
func (o CartOwner) Persistent() bool {
	return o.Kind != IdentityEphemeral
}
