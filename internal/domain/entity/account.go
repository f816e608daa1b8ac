package entity

import "time"

// Account is the monetary record owned by exactly one User. It is created
// strictly before its owning user, inside the same transaction, and this
// service only ever reads its balance after that.
type Account struct {
	ID        int64     // Unique identifier, generated by the store on creation.
	Balance   float64   // Current balance. Non-negative at creation.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}
