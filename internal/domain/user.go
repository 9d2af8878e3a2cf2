package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a platform user. Rows are owned by the identity service;
// this service reads them for creator checks and payout addresses and never
// writes them.
type User struct {
	ID            uuid.UUID
	Username      string
	WalletAddress *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasWalletAddress returns true if a payout address is on file.
func (u *User) HasWalletAddress() bool {
	return u.WalletAddress != nil && *u.WalletAddress != ""
}
