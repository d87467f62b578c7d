// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core account entity. It never carries the credential hash;
// credentials live in a separate Credential record so the hash cannot leak
// past the persistence boundary by accident.
type User struct {
	ID        int64     `json:"id"`         // Numeric identifier, generated by the database.
	Email     string    `json:"email"`      // The user's login identifier, unique across accounts.
	Name      string    `json:"name"`       // The user's display name.
	Role      Role      `json:"role"`       // Privilege tier (customer or admin).
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this account was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification to this account.
}

// Principal is the authenticated identity attached to a request after the
// access guard succeeds. It is created fresh per request from the user store
// and discarded when the response ends.
type Principal struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// PrincipalFromUser builds a request principal from a stored user record.
func PrincipalFromUser(user *User) *Principal {
	return &Principal{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
}
