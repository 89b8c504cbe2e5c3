package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// LIFF reads the user id set by the LINE front end from the X-Line-Uid
// header or the uid cookie and rejects requests without one. Disabled, it
// passes requests through untouched.
func LIFF(enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c)
			}
			uid := c.Request().Header.Get("X-Line-Uid")
			if uid == "" {
				if ck, err := c.Cookie(uidCookie); err == nil {
					uid = ck.Value
				}
			}
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "LIFF required: missing UID"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
