package models

import "time"

// User represents a registered account on the wall.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the server-assigned UUID of the user.
	ID string `json:"id"`

	// Email is the unique account identifier used during authentication.
	// Stored and compared case-sensitively.
	Email string `json:"email"`

	// Name is the display name of the user. Non-sensitive, shown in UI.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized to JSON and never returned by any API operation.
	PasswordHash string `json:"-"`

	// CreatedAt is the UTC timestamp when the account was created.
	// Omitted from the public projection where it stays zero.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// Public returns the projection of the user that is safe to expose
// over the API: id, email and display name only.
func (u User) Public() User {
	return User{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
