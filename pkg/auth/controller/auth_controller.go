package controller

import "github.com/labstack/echo/v4"

// AuthController serves the development identity endpoints. In LIFF mode
// only WhoAmI is routed.
type AuthController interface {
	DevLogin(c echo.Context) error
	Logout(c echo.Context) error
	WhoAmI(c echo.Context) error
}
