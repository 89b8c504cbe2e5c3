package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropplan/pkg/auth/controller"
)

type authCtrl struct{}

func NewAuthController() controller.AuthController { return &authCtrl{} }

func (h *authCtrl) DevLogin(c echo.Context) error {
	uid := c.QueryParam("uid")
	if uid == "" {
		uid = "U_DEV_DEFAULT"
	}
	c.SetCookie(&http.Cookie{Name: "FARM_UID", Value: uid, Path: "/"})
	return c.JSON(http.StatusOK, map[string]string{"uid": uid})
}

// Logout expires the uid cookie. The next request falls back to the
// default development user.
func (h *authCtrl) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{Name: "FARM_UID", Value: "", Path: "/", MaxAge: -1})
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	return c.JSON(http.StatusOK, map[string]string{"uid": uid})
}
