package domain

import (
	"errors"
	"fmt"
)

var ErrCartNotFound = errors.New("user does not have a cart")
var ErrProductNotFound = errors.New("product doesn't exist in database")
var ErrProductInCart = errors.New("product already in cart, use update to change its quantity")
var ErrProductNotInCart = errors.New("product not in cart")
var ErrEmptyCart = errors.New("cart is empty")
var ErrAddressNotSet = errors.New("address must be set before checkout")
var ErrInsufficientBalance = errors.New("insufficient wallet balance")
var ErrForbidden = errors.New("access forbidden")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("email already taken")
var ErrInvalidCredentials = errors.New("invalid credentials")

// StorageError wraps an unexpected persistence failure. Transient marks
// failures (timeouts, dropped connections) that are worth a single retry;
// everything else is surfaced to the caller as an internal error.
type StorageError struct {
	Op        string
	Transient bool
	Err       error
}

func NewStorageError(op string, transient bool, err error) *StorageError {
	return &StorageError{Op: op, Transient: transient, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsStorageError reports whether err originates from the persistence layer.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// IsTransientStorage reports whether err is a storage failure that may be
// retried once.
func IsTransientStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se) && se.Transient
}
