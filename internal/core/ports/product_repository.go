package ports

import (
	"context"

	"github.com/qkart/commerce-api/internal/core/domain"
)

// ProductCatalog is the read-only lookup the cart engine depends on.
type ProductCatalog interface {
	// FindByID resolves a product id or returns domain.ErrProductNotFound.
	FindByID(ctx context.Context, id string) (*domain.Product, error)
}

// ProductRepository is the full catalog persistence contract.
type ProductRepository interface {
	ProductCatalog
	// List returns products, optionally filtered by a name/category search term.
	List(ctx context.Context, search string) ([]domain.Product, error)
}
