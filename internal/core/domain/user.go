package domain

import "time"

// User models a registered shopper. Address is empty until the user has
// explicitly set one; WalletBalance is debited only by checkout and is never
// allowed to go negative.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	WalletBalance float64   `json:"wallet_balance"`
	Address       string    `json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// HasAddress reports whether the user has set a delivery address. Checkout is
// blocked until this is true.
func (u *User) HasAddress() bool {
	return u.Address != ""
}
