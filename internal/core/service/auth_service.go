package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/qkart/commerce-api/internal/core/domain"
	"github.com/qkart/commerce-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	users         ports.UserRepository
	jwtSecret     string
	tokenTTL      time.Duration
	defaultWallet float64
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration, defaultWallet float64) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL, defaultWallet: defaultWallet}
}

// Register creates a new user with the configured starting wallet balance and
// no delivery address.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:          name,
		Email:         email,
		PasswordHash:  string(hash),
		WalletBalance: s.defaultWallet,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return s.users.Create(ctx, user)
}

// Login verifies credentials and returns a signed bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	// An unknown email and a wrong password are indistinguishable to callers.
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// normalizeEmail lowercases the unique user key so lookups never miss on case.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
