package ports

import (
	"context"

	"github.com/qkart/commerce-api/internal/core/domain"
)

// CartService defines the cart and checkout use cases consumed by the HTTP
// layer. The email is the authenticated caller's identity; handlers never pass
// another user's key.
type CartService interface {
	GetCart(ctx context.Context, email string) (*domain.Cart, error)
	AddProduct(ctx context.Context, email, productID string, quantity int) (*domain.Cart, error)
	UpdateProduct(ctx context.Context, email, productID string, quantity int) (*domain.Cart, error)
	RemoveProduct(ctx context.Context, email, productID string) error
	Checkout(ctx context.Context, email string) error
	ListOrders(ctx context.Context, email string) ([]domain.Order, error)
}
