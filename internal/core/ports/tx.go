package ports

import "context"

// TxRunner executes fn inside a single storage transaction. All writes issued
// through the ctx passed to fn commit or roll back together; checkout relies
// on this to make cart-clear and wallet-debit all-or-nothing.
type TxRunner interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
