// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core identity entity. A user owns exactly one Account,
// linked at creation time; both username and the account link are
// immutable afterwards.
type User struct {
	ID           int64     // Unique identifier, generated by the store on creation.
	Username     string    // Login identifier, unique across all users.
	PasswordHash string    // Stores the bcrypt-hashed password. The plaintext is never persisted.
	AccountID    int64     // Foreign key to the user's single Account, set at creation.
	CreatedAt    time.Time // Timestamp of when this user was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}
