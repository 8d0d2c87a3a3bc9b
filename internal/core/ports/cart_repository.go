package ports

import (
	"context"

	"github.com/qkart/commerce-api/internal/core/domain"
)

// CartRepository owns the 1:1 mapping from a user's email to its active cart.
// Reads are authoritative at call time; no caching sits in front of carts.
type CartRepository interface {
	// FindByEmail returns the user's cart or domain.ErrCartNotFound.
	FindByEmail(ctx context.Context, email string) (*domain.Cart, error)
	// Create inserts an empty cart for a user with no existing cart.
	Create(ctx context.Context, cart *domain.Cart) error
	// Save replaces the cart's line-item collection in full. It fails loudly
	// when the target document is missing rather than dropping the write.
	Save(ctx context.Context, cart *domain.Cart) error
}
