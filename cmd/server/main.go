package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"cropplan/config"
	"cropplan/database"
	"cropplan/pkg/app"
	"cropplan/router"

	// Auth
	authCtrlImp "cropplan/pkg/auth/controllerImp"

	// Field
	fieldCtrlImp "cropplan/pkg/field/controllerImp"
	fieldSvcImp "cropplan/pkg/field/serviceImp"

	// Crop catalogue + history
	cropCtrlImp "cropplan/pkg/crop/controllerImp"
	cropSvcImp "cropplan/pkg/crop/serviceImp"
	historyCtrlImp "cropplan/pkg/history/controllerImp"
	historySvcImp "cropplan/pkg/history/serviceImp"

	// Plan
	planCtrlImp "cropplan/pkg/plan/controllerImp"
	planSvcImp "cropplan/pkg/plan/serviceImp"

	// Market
	marketCtrlImp "cropplan/pkg/market/controllerImp"
	marketSvcImp "cropplan/pkg/market/serviceImp"

	// Health
	healthCtrlImp "cropplan/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Repositories, catalogue seed, pipeline
	a, err := app.New(cfg, db)
	if err != nil {
		log.Fatalf("app: %v", err)
	}

	// 4) Echo
	e := echo.New()
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())

	// 5) Services/Controllers
	fCtrl := fieldCtrlImp.New(fieldSvcImp.NewFieldService(a.Fields))
	cCtrl := cropCtrlImp.New(cropSvcImp.NewCropService(a.Crops))
	histCtrl := historyCtrlImp.New(a.Fields, historySvcImp.NewHistoryService(a.Crops))
	pSvc := planSvcImp.NewPlanService(a.Pipeline, a.LLM, a.Plans, string(a.Strategy))
	plCtrl := planCtrlImp.NewPlanCtrl(a.Fields, pSvc)
	mCtrl := marketCtrlImp.New(marketSvcImp.New(a.Market, cfg.MarketAllowed, cfg.MarketMaxBytes))
	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 6) Router
	r := router.New(e, cfg.EnableLIFF, fCtrl, plCtrl, cCtrl, histCtrl, mCtrl, authCtrl, hCtrl)

	// 7) Start
	log.Printf("listening on :%s (optimizer=%s)", cfg.Port, a.Strategy)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
