package router

import (
	"github.com/labstack/echo/v4"

	"cropplan/pkg/middleware"
)

func New(
	e *echo.Echo,
	enableLIFF bool,
	fieldCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
	},
	planCtrl interface {
		Recommend(echo.Context) error
		Replan(echo.Context) error
		List(echo.Context) error
	},
	cropCtrl interface {
		List(echo.Context) error
		Get(echo.Context) error
		Put(echo.Context) error
	},
	historyCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
	},
	marketCtrl interface {
		IngestURL(echo.Context) error
		List(echo.Context) error
	},
	authCtrl interface {
		DevLogin(echo.Context) error
		Logout(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	api := e.Group("", middleware.Identity(enableLIFF))
	api.GET("/whoami", authCtrl.WhoAmI)
	if !enableLIFF {
		api.GET("/devlogin", authCtrl.DevLogin)
		api.POST("/logout", authCtrl.Logout)
	}

	api.POST("/fields", fieldCtrl.Create)
	api.GET("/fields/:id", fieldCtrl.Get)

	api.POST("/fields/:id/history", historyCtrl.Create)
	api.GET("/fields/:id/history", historyCtrl.List)

	api.GET("/crops", cropCtrl.List)
	api.GET("/crops/:crop_id", cropCtrl.Get)
	api.PUT("/crops/:crop_id", cropCtrl.Put)

	api.POST("/fields/:id/recommend", planCtrl.Recommend)
	api.POST("/fields/:id/replan", planCtrl.Replan)
	api.GET("/fields/:id/plan", planCtrl.List)

	api.POST("/market/ingest/url", marketCtrl.IngestURL)
	api.GET("/market/prices", marketCtrl.List)
	return e
}
