package controller

import "github.com/labstack/echo/v4"

type MarketController interface {
	IngestURL(c echo.Context) error
	List(c echo.Context) error
}
