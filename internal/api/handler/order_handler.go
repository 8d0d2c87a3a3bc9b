package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qkart/commerce-api/internal/core/ports"
)

// OrderHandler serves the authenticated user's order history.
type OrderHandler struct {
	service ports.CartService
}

func NewOrderHandler(service ports.CartService) *OrderHandler {
	return &OrderHandler{service: service}
}

// List returns the caller's orders, most recent first.
//
// @Summary      List the current user's orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listOrdersResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	_, email, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	orders, err := h.service.ListOrders(c.Request().Context(), email)
	if err != nil {
		return err
	}

	out := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderResponse(order))
	}
	return c.JSON(http.StatusOK, listOrdersResponse{Orders: out})
}
