package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/qkart/commerce-api/internal/core/domain"
	"github.com/qkart/commerce-api/internal/core/ports"
)

// UserService implements profile reads and the address-setting operation.
// Ownership of the resource is enforced by the transport layer.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// SetAddress stores the delivery address, unblocking checkout for the user.
func (s *UserService) SetAddress(ctx context.Context, userID, address string) (string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if err := s.users.SetAddress(ctx, user.ID, address); err != nil {
		return "", err
	}
	s.logger.Info().Str("user_id", user.ID).Msg("address updated")
	return address, nil
}
