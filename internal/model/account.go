package model

import "time"

// AccountID uniquely identifies a registered account
type AccountID string

// Account is a registered user of the booking system.
// The password hash lives here and never leaves the storage layer.
type Account struct {
	ID           AccountID
	Username     string // login username (immutable)
	Role         Role
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
}
