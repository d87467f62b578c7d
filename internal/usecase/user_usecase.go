// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ListUsersInput defines the pagination for the admin user listing.
type ListUsersInput struct {
	Page  int
	Limit int
}

// UpdateProfileInput defines the data for a full profile update. All three
// fields are replaced together; the password is re-hashed.
type UpdateProfileInput struct {
	Name     string
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the issued token after a successful login.
type LoginOutput struct {
	AccessToken string       `json:"access_token"`
	User        *entity.User `json:"user"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Authenticate resolves a bearer token into a live principal. The user is
	// re-read from storage on every call, so a deleted account fails here even
	// when its token is still cryptographically valid.
	Authenticate(ctx context.Context, token string) (*entity.Principal, error)

	// GetUser retrieves a single account's public fields.
	GetUser(ctx context.Context, userID int64) (*entity.User, error)

	// ListUsers retrieves a page of accounts.
	ListUsers(ctx context.Context, input *ListUsersInput) ([]*entity.User, error)

	// UpdateProfile replaces the caller's name, email and password.
	UpdateProfile(ctx context.Context, userID int64, input *UpdateProfileInput) (*entity.User, error)

	// DeleteAccount removes the caller's account and credential. Tokens issued
	// for the account stop working on the next request.
	DeleteAccount(ctx context.Context, userID int64) (*entity.User, error)
}
