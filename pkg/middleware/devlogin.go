package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	uidCookie  = "FARM_UID"
	defaultUID = "U_DEV_DEFAULT"
)

// DevLogin takes the uid from the cookie or ?uid= and falls back to a fixed
// development user.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie(uidCookie); err == nil {
				uid = ck.Value
			}
			if q := c.QueryParam("uid"); uid == "" && q != "" {
				uid = q
			}
			if uid == "" {
				uid = defaultUID
			}
			c.SetCookie(&http.Cookie{Name: uidCookie, Value: uid, Path: "/"})
			c.Set("uid", uid)
			return next(c)
		}
	}
}

// Identity selects LIFF header auth in production and DevLogin otherwise.
func Identity(liff bool) echo.MiddlewareFunc {
	if liff {
		return LIFF(true)
	}
	return DevLogin()
}
