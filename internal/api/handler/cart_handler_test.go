package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/qkart/commerce-api/internal/core/domain"
)

type stubCartService struct {
	getFn      func(ctx context.Context, email string) (*domain.Cart, error)
	addFn      func(ctx context.Context, email, productID string, quantity int) (*domain.Cart, error)
	updateFn   func(ctx context.Context, email, productID string, quantity int) (*domain.Cart, error)
	removeFn   func(ctx context.Context, email, productID string) error
	checkoutFn func(ctx context.Context, email string) error
	ordersFn   func(ctx context.Context, email string) ([]domain.Order, error)
}

func (s *stubCartService) GetCart(ctx context.Context, email string) (*domain.Cart, error) {
	return s.getFn(ctx, email)
}

func (s *stubCartService) AddProduct(ctx context.Context, email, productID string, quantity int) (*domain.Cart, error) {
	return s.addFn(ctx, email, productID, quantity)
}

func (s *stubCartService) UpdateProduct(ctx context.Context, email, productID string, quantity int) (*domain.Cart, error) {
	return s.updateFn(ctx, email, productID, quantity)
}

func (s *stubCartService) RemoveProduct(ctx context.Context, email, productID string) error {
	return s.removeFn(ctx, email, productID)
}

func (s *stubCartService) Checkout(ctx context.Context, email string) error {
	return s.checkoutFn(ctx, email)
}

func (s *stubCartService) ListOrders(ctx context.Context, email string) ([]domain.Order, error) {
	return s.ordersFn(ctx, email)
}

func authedContext(e *echo.Echo, method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user-1")
	c.Set("email", "alice@example.com")
	return c, rec
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestCartHandler_Get(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		getFn: func(ctx context.Context, email string) (*domain.Cart, error) {
			if email != "alice@example.com" {
				t.Fatalf("unexpected email %q", email)
			}
			cart := domain.NewCart(email)
			cart.AddItem(domain.Product{ID: "p1", Name: "Widget", Cost: 10}, 2)
			return cart, nil
		},
	}
	handler := NewCartHandler(stub)

	c, rec := authedContext(e, http.MethodGet, "/v1/cart", "")
	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp cartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Email != "alice@example.com" {
		t.Fatalf("unexpected email in response: %q", resp.Email)
	}
	if len(resp.CartItems) != 1 || resp.CartItems[0].Quantity != 2 {
		t.Fatalf("unexpected cart items: %+v", resp.CartItems)
	}
}

func TestCartHandler_Add_Created(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		addFn: func(ctx context.Context, email, productID string, quantity int) (*domain.Cart, error) {
			if productID != "p1" || quantity != 3 {
				t.Fatalf("unexpected args: %s %d", productID, quantity)
			}
			cart := domain.NewCart(email)
			cart.AddItem(domain.Product{ID: productID, Cost: 5}, quantity)
			return cart, nil
		},
	}
	handler := NewCartHandler(stub)

	c, rec := authedContext(e, http.MethodPost, "/v1/cart", `{"productId":"p1","quantity":3}`)
	if err := handler.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestCartHandler_Add_RejectsZeroQuantity(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		addFn: func(ctx context.Context, email, productID string, quantity int) (*domain.Cart, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewCartHandler(stub)

	c, _ := authedContext(e, http.MethodPost, "/v1/cart", `{"productId":"p1","quantity":0}`)
	err := handler.Add(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestCartHandler_Add_MissingIdentity(t *testing.T) {
	e := newTestEcho()
	handler := NewCartHandler(&stubCartService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/cart", strings.NewReader(`{"productId":"p1","quantity":1}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Add(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestCartHandler_Update_ZeroQuantityAllowed(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		updateFn: func(ctx context.Context, email, productID string, quantity int) (*domain.Cart, error) {
			if quantity != 0 {
				t.Fatalf("expected quantity 0, got %d", quantity)
			}
			return domain.NewCart(email), nil
		},
	}
	handler := NewCartHandler(stub)

	c, rec := authedContext(e, http.MethodPut, "/v1/cart", `{"productId":"p1","quantity":0}`)
	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCartHandler_Remove_NoContent(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		removeFn: func(ctx context.Context, email, productID string) error {
			if productID != "p1" {
				t.Fatalf("unexpected product id %q", productID)
			}
			return nil
		},
	}
	handler := NewCartHandler(stub)

	c, rec := authedContext(e, http.MethodDelete, "/v1/cart/p1", "")
	c.SetParamNames("productId")
	c.SetParamValues("p1")
	if err := handler.Remove(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestCartHandler_Checkout_NoContent(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		checkoutFn: func(ctx context.Context, email string) error {
			return nil
		},
	}
	handler := NewCartHandler(stub)

	c, rec := authedContext(e, http.MethodPut, "/v1/cart/checkout", "")
	if err := handler.Checkout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestCartHandler_Checkout_PropagatesDomainError(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		checkoutFn: func(ctx context.Context, email string) error {
			return domain.ErrInsufficientBalance
		},
	}
	handler := NewCartHandler(stub)

	c, _ := authedContext(e, http.MethodPut, "/v1/cart/checkout", "")
	if err := handler.Checkout(c); err != domain.ErrInsufficientBalance {
		t.Fatalf("expected domain error to propagate, got %v", err)
	}
}

func TestOrderHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		ordersFn: func(ctx context.Context, email string) ([]domain.Order, error) {
			return []domain.Order{{ID: "o1", Email: email, Total: 42}}, nil
		},
	}
	handler := NewOrderHandler(stub)

	c, rec := authedContext(e, http.MethodGet, "/v1/orders", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp listOrdersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Orders) != 1 || resp.Orders[0].ID != "o1" {
		t.Fatalf("unexpected orders payload: %+v", resp.Orders)
	}
}
