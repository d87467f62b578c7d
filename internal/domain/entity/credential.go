package entity

import "time"

// Credential stores a user's password hash. The hash is write-once per
// password change and is never reversible; only the hasher ever reads it.
type Credential struct {
	ID           int64     // The unique ID for this credential record.
	UserID       int64     // Links this credential to the User it belongs to.
	PasswordHash string    // The bcrypt-hashed password.
	CreatedAt    time.Time // Timestamp of when this credential was set.
	UpdatedAt    time.Time // Timestamp of the last password change.
}
