package ports

import (
	"context"

	"github.com/qkart/commerce-api/internal/core/domain"
)

// OrderRepository persists checkout outcomes.
type OrderRepository interface {
	// Insert stores the order and fills in its generated ID.
	Insert(ctx context.Context, order *domain.Order) error
	// ListByEmail returns a user's orders, newest first.
	ListByEmail(ctx context.Context, email string) ([]domain.Order, error)
}
