package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrCredentialNotFound is returned when no credential exists for a user.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository defines the operations for password credential persistence.
// Credentials are kept separate from users so the hash never travels with
// account reads.
type CredentialRepository interface {
	// FindByUserID retrieves the credential belonging to a user.
	FindByUserID(ctx context.Context, userID int64) (*entity.Credential, error)

	// Create persists a new credential for a user.
	Create(ctx context.Context, credential *entity.Credential) error

	// Update replaces the stored hash after a password change.
	Update(ctx context.Context, credential *entity.Credential) error

	// DeleteByUserID removes a user's credential when the account goes away.
	DeleteByUserID(ctx context.Context, userID int64) error
}
