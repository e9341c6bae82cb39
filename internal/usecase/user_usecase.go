package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput carries the account registration payload.
type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginInput carries the credential login payload.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	// GuestID, when present, identifies a guest cart to merge into the
	// user's cart after successful authentication.
	GuestID string `json:"-"`
}

// AuthOutput is returned by every operation that issues tokens.
type AuthOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines account registration, authentication and profile access.
type UserUsecase interface {
	// Register creates an account and logs the user in.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials, issues tokens and merges any guest cart.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Refresh rotates a valid refresh token into a fresh token pair.
	Refresh(ctx context.Context, refreshToken string) (*AuthOutput, error)

	// Logout invalidates the user's stored refresh token.
	Logout(ctx context.Context, userID uuid.UUID) error

	// GetProfile retrieves the user's account details.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
