package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qkart/commerce-api/internal/core/ports"
)

// ProductHandler serves the public product catalog.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List returns catalog products, optionally filtered by a search term matched
// against name and category.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        value  query     string  false  "Search term matched against name and category"
// @Success      200    {array}   productResponse
// @Failure      500    {object}  errorResponse
// @Router       /v1/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context(), c.QueryParam("value"))
	if err != nil {
		return err
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns a single product by ID.
//
// @Summary      Get a product by ID
// @Tags         products
// @Produce      json
// @Param        productId  path      string  true  "Product ID"
// @Success      200        {object}  productResponse
// @Failure      400        {object}  errorResponse
// @Failure      500        {object}  errorResponse
// @Router       /v1/products/{productId} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(*product))
}
