package domain

import "time"

// Order is the immutable record written when a checkout commits. Items and
// Total are copied from the cart inside the same transaction that clears it,
// so the recorded total always equals the debited amount.
type Order struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	CreatedAt time.Time  `json:"created_at"`
}
