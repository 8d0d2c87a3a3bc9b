package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/qkart/commerce-api/internal/api/metrics"
	"github.com/qkart/commerce-api/internal/core/domain"
	"github.com/qkart/commerce-api/internal/core/ports"
)

// CartService implements the cart business rules: line-item uniqueness,
// existence checks against the catalog, quantity-zero removal, and the
// checkout orchestration in checkout.go.
type CartService struct {
	carts   ports.CartRepository
	catalog ports.ProductCatalog
	users   ports.UserRepository
	orders  ports.OrderRepository
	tx      ports.TxRunner
	locks   *keyLocks
	logger  zerolog.Logger
}

func NewCartService(
	carts ports.CartRepository,
	catalog ports.ProductCatalog,
	users ports.UserRepository,
	orders ports.OrderRepository,
	tx ports.TxRunner,
	logger zerolog.Logger,
) *CartService {
	return &CartService{
		carts:   carts,
		catalog: catalog,
		users:   users,
		orders:  orders,
		tx:      tx,
		locks:   newKeyLocks(),
		logger:  logger,
	}
}

// GetCart returns the user's cart. A user who never added a product has no
// cart and gets domain.ErrCartNotFound.
func (s *CartService) GetCart(ctx context.Context, email string) (*domain.Cart, error) {
	return s.carts.FindByEmail(ctx, email)
}

// AddProduct appends a new line item to the user's cart, creating the cart
// first when none exists. The product must exist in the catalog and must not
// already be in the cart.
func (s *CartService) AddProduct(ctx context.Context, email, productID string, quantity int) (*domain.Cart, error) {
	unlock := s.locks.Lock(email)
	defer unlock()

	product, err := s.catalog.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrCartNotFound):
		cart = domain.NewCart(email)
		if cerr := s.persist(func() error { return s.carts.Create(ctx, cart) }); cerr != nil {
			s.logger.Error().Err(cerr).Str("email", email).Msg("cart creation failed")
			return nil, cerr
		}
	case err != nil:
		return nil, err
	}

	if err := cart.AddItem(*product, quantity); err != nil {
		return nil, err
	}
	if err := s.persist(func() error { return s.carts.Save(ctx, cart) }); err != nil {
		return nil, err
	}

	metrics.CartMutationsTotal.WithLabelValues("add").Inc()
	s.logger.Info().Str("email", email).Str("product_id", product.ID).Int("quantity", quantity).Msg("product added to cart")
	return cart, nil
}

// UpdateProduct replaces the quantity of an existing line item. Quantity zero
// removes the item. The cart must already exist; add creates carts, update
// does not.
func (s *CartService) UpdateProduct(ctx context.Context, email, productID string, quantity int) (*domain.Cart, error) {
	unlock := s.locks.Lock(email)
	defer unlock()

	cart, err := s.carts.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if _, err := s.catalog.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	if err := cart.SetQuantity(productID, quantity); err != nil {
		return nil, err
	}
	if err := s.persist(func() error { return s.carts.Save(ctx, cart) }); err != nil {
		return nil, err
	}

	metrics.CartMutationsTotal.WithLabelValues("update").Inc()
	s.logger.Info().Str("email", email).Str("product_id", productID).Int("quantity", quantity).Msg("cart item updated")
	return cart, nil
}

// RemoveProduct filters the line item out of the cart.
func (s *CartService) RemoveProduct(ctx context.Context, email, productID string) error {
	unlock := s.locks.Lock(email)
	defer unlock()

	cart, err := s.carts.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if err := cart.RemoveItem(productID); err != nil {
		return err
	}
	if err := s.persist(func() error { return s.carts.Save(ctx, cart) }); err != nil {
		return err
	}

	metrics.CartMutationsTotal.WithLabelValues("remove").Inc()
	s.logger.Info().Str("email", email).Str("product_id", productID).Msg("product removed from cart")
	return nil
}

// ListOrders returns the user's checkout history, newest first.
func (s *CartService) ListOrders(ctx context.Context, email string) ([]domain.Order, error) {
	return s.orders.ListByEmail(ctx, email)
}

// persist runs a write, retrying exactly once when the failure is transient.
// Business-rule errors never reach here and are never retried.
func (s *CartService) persist(write func() error) error {
	err := write()
	if err != nil && domain.IsTransientStorage(err) {
		s.logger.Warn().Err(err).Msg("transient storage failure, retrying write once")
		err = write()
	}
	return err
}
