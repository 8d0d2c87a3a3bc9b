package service

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/qkart/commerce-api/internal/api/metrics"
	"github.com/qkart/commerce-api/internal/core/domain"
)

// Checkout atomically converts the cart into a wallet debit and an order
// record. Preconditions are checked strictly in order; the first failing
// condition wins:
//
//  1. cart exists
//  2. cart is non-empty
//  3. the user has set a delivery address
//  4. the cart total does not exceed the wallet balance
//
// On success the cart clear, the wallet debit, and the order insert run inside
// one storage transaction, so no partial checkout state is ever persisted.
func (s *CartService) Checkout(ctx context.Context, email string) error {
	timer := prometheus.NewTimer(metrics.CheckoutDuration)
	defer timer.ObserveDuration()

	result := "rejected"
	defer func() { metrics.CheckoutsTotal.WithLabelValues(result).Inc() }()

	unlock := s.locks.Lock(email)
	defer unlock()

	cart, err := s.carts.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if cart.IsEmpty() {
		return domain.ErrEmptyCart
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !user.HasAddress() {
		return domain.ErrAddressNotSet
	}

	total := cart.Total()
	if total > user.WalletBalance {
		return domain.ErrInsufficientBalance
	}

	order := &domain.Order{
		Email:     email,
		Items:     cart.Items,
		Total:     total,
		CreatedAt: time.Now().UTC(),
	}
	cleared := *cart
	cleared.Clear()

	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.carts.Save(txCtx, &cleared); err != nil {
			return err
		}
		if err := s.users.DebitWallet(txCtx, email, total); err != nil {
			return err
		}
		return s.orders.Insert(txCtx, order)
	})
	if err != nil {
		// The guarded debit can still reject inside the transaction when a
		// concurrent spend drained the wallet after the balance check above.
		if errors.Is(err, domain.ErrInsufficientBalance) {
			return err
		}
		result = "error"
		s.logger.Error().Err(err).
			Str("email", email).
			Float64("total", total).
			Msg("checkout transaction failed, rolled back")
		return err
	}

	result = "success"
	metrics.CheckoutAmount.Observe(total)
	s.logger.Info().
		Str("email", email).
		Str("order_id", order.ID).
		Float64("total", total).
		Msg("checkout completed")
	return nil
}
