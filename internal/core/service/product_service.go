package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/qkart/commerce-api/internal/core/domain"
	"github.com/qkart/commerce-api/internal/core/ports"
)

// ProductService serves catalog reads. Single-product lookups go through the
// cache-backed catalog; listings always hit the repository.
type ProductService struct {
	repo    ports.ProductRepository
	catalog ports.ProductCatalog
	logger  zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, catalog ports.ProductCatalog, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, catalog: catalog, logger: logger}
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.catalog.FindByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context, search string) ([]domain.Product, error) {
	return s.repo.List(ctx, search)
}
