package ports

import (
	"context"

	"github.com/qkart/commerce-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts and wallets.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// SetAddress stores the user's delivery address.
	SetAddress(ctx context.Context, id, address string) error
	// DebitWallet decrements the wallet balance by amount, guarded so the
	// balance can never go negative. Returns domain.ErrInsufficientBalance
	// when the guard rejects the debit.
	DebitWallet(ctx context.Context, email string, amount float64) error
}
