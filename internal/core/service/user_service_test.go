package service

import (
	"context"
	"errors"
	"testing"

	"github.com/qkart/commerce-api/internal/core/domain"
)

func TestUserService_Get(t *testing.T) {
	repo := newStubUserRepo()
	repo.users["eve@example.com"] = &domain.User{ID: "user-7", Email: "eve@example.com", WalletBalance: 500}
	svc := NewUserService(repo, discardLogger)

	user, err := svc.Get(context.Background(), "user-7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "eve@example.com" {
		t.Errorf("unexpected user: %+v", user)
	}

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_SetAddress(t *testing.T) {
	repo := newStubUserRepo()
	repo.users["eve@example.com"] = &domain.User{ID: "user-7", Email: "eve@example.com"}
	svc := NewUserService(repo, discardLogger)

	const address = "12 Grimmauld Place, London N1 9PF"
	got, err := svc.SetAddress(context.Background(), "user-7", address)
	if err != nil {
		t.Fatalf("set address failed: %v", err)
	}
	if got != address {
		t.Errorf("expected %q back, got %q", address, got)
	}
	if repo.users["eve@example.com"].Address != address {
		t.Error("address must be persisted")
	}
}

func TestUserService_SetAddress_UnknownUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)

	if _, err := svc.SetAddress(context.Background(), "missing", "somewhere long enough"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
