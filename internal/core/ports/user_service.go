package ports

import (
	"context"

	"github.com/qkart/commerce-api/internal/core/domain"
)

// UserService exposes profile operations. Ownership (token user == resource
// user) is enforced by the transport layer before these are called.
type UserService interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	// SetAddress stores a delivery address and returns the value persisted.
	SetAddress(ctx context.Context, userID, address string) (string, error)
}

// ProductService exposes read-only catalog operations.
type ProductService interface {
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, search string) ([]domain.Product, error)
}
