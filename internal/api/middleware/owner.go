package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Owner rejects requests where the authenticated user does not own the
// addressed resource: the path parameter named by param must equal the
// caller's user id from the token.
func Owner(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get("user_id").(string)
			if userID == "" || c.Param(param) != userID {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "access forbidden"})
			}
			return next(c)
		}
	}
}
