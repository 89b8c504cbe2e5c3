package controllerImp

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"cropplan/pkg/market/controller"
	"cropplan/pkg/market/service"
)

type MarketCtrl struct{ s service.MarketService }

func New(s service.MarketService) controller.MarketController { return &MarketCtrl{s} }

func (h *MarketCtrl) IngestURL(c echo.Context) error {
	var body struct {
		URL string `json:"url"`
	}
	if err := c.Bind(&body); err != nil || strings.TrimSpace(body.URL) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url required"})
	}
	prices, err := h.s.IngestURL(c.Request().Context(), strings.TrimSpace(body.URL))
	if errors.Is(err, service.ErrDomainNotAllowed) {
		return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"count": len(prices), "prices": prices})
}

func (h *MarketCtrl) List(c echo.Context) error {
	ps, err := h.s.Prices(c.QueryParam("crop"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, ps)
}
