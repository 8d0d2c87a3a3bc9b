package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/qkart/commerce-api/internal/core/domain"
	"github.com/qkart/commerce-api/internal/core/ports"
)

// UserHandler serves profile operations. The Owner middleware guarantees the
// :userId path param matches the token subject before these run.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type setAddressRequest struct {
	Address string `json:"address" validate:"required,min=20"`
}

type addressResponse struct {
	Address string `json:"address"`
}

type userResponse struct {
	ID            string    `json:"_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	WalletBalance float64   `json:"walletMoney"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		WalletBalance: u.WalletBalance,
		Address:       u.Address,
		CreatedAt:     u.CreatedAt,
	}
}

// Get returns the user's profile. With ?q=address only the address field is
// returned, empty string when none is set yet.
//
// @Summary      Get a user profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true   "User ID"
// @Param        q       query     string  false  "Field projection, only 'address' is supported"
// @Success      200     {object}  userResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /v1/users/{userId} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}

	if c.QueryParam("q") == "address" {
		return c.JSON(http.StatusOK, addressResponse{Address: user.Address})
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// SetAddress stores the user's delivery address.
//
// @Summary      Set a user's delivery address
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string             true  "User ID"
// @Param        body    body      setAddressRequest  true  "Delivery address"
// @Success      200     {object}  addressResponse
// @Failure      400     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /v1/users/{userId} [put]
func (h *UserHandler) SetAddress(c echo.Context) error {
	var req setAddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	address, err := h.service.SetAddress(c.Request().Context(), c.Param("userId"), req.Address)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, addressResponse{Address: address})
}
