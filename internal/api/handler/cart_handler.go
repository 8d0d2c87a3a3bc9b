package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qkart/commerce-api/internal/core/ports"
)

// CartHandler handles HTTP requests for the authenticated user's cart.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// Get returns the caller's cart.
//
// @Summary      Get the current user's cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  cartResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	_, email, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	cart, err := h.service.GetCart(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(cart))
}

// Add puts a new product into the cart.
//
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addCartItemRequest  true  "Product and quantity"
// @Success      201   {object}  cartResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/cart [post]
func (h *CartHandler) Add(c echo.Context) error {
	_, email, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cart, err := h.service.AddProduct(c.Request().Context(), email, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCartResponse(cart))
}

// Update changes the quantity of a product already in the cart. Quantity zero
// removes the item.
//
// @Summary      Update the quantity of a cart item
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateCartItemRequest  true  "Product and new quantity"
// @Success      200   {object}  cartResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/cart [put]
func (h *CartHandler) Update(c echo.Context) error {
	_, email, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cart, err := h.service.UpdateProduct(c.Request().Context(), email, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(cart))
}

// Remove deletes a product from the cart.
//
// @Summary      Remove a product from the cart
// @Tags         cart
// @Security     BearerAuth
// @Param        productId  path  string  true  "Product ID"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/cart/{productId} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	_, email, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.RemoveProduct(c.Request().Context(), email, c.Param("productId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Checkout converts the cart into an order, debiting the user's wallet.
//
// @Summary      Check out the cart
// @Tags         cart
// @Security     BearerAuth
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/cart/checkout [put]
func (h *CartHandler) Checkout(c echo.Context) error {
	_, email, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Checkout(c.Request().Context(), email); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
