package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// addCartItemRequest adds a new product to the cart; a fresh line item always
// starts with a positive quantity.
type addCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"  validate:"required,gt=0"`
}

// updateCartItemRequest replaces an existing line item's quantity. Zero is
// allowed and removes the item.
type updateCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"  validate:"gte=0"`
}

// --- Response types ---
// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to internal
// changes.

type productResponse struct {
	ID        string  `json:"_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Cost      float64 `json:"cost"`
	Rating    int     `json:"rating"`
	ImageLink string  `json:"image"`
}

type cartItemResponse struct {
	Product  productResponse `json:"product"`
	Quantity int             `json:"quantity"`
}

type cartResponse struct {
	Email     string             `json:"email"`
	CartItems []cartItemResponse `json:"cartItems"`
}

type orderResponse struct {
	ID        string             `json:"id"`
	Items     []cartItemResponse `json:"items"`
	Total     float64            `json:"total"`
	CreatedAt time.Time          `json:"created_at"`
}

type listOrdersResponse struct {
	Orders []orderResponse `json:"orders"`
}
