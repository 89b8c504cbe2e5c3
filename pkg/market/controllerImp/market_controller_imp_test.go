package controllerImp

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"cropplan/entities"
	"cropplan/pkg/market/service"
)

type stubSvc struct{}

func (stubSvc) IngestURL(_ context.Context, url string) ([]entities.MarketPrice, error) {
	switch {
	case strings.Contains(url, "blocked"):
		return nil, fmt.Errorf("%w: blocked", service.ErrDomainNotAllowed)
	case strings.Contains(url, "down"):
		return nil, fmt.Errorf("fetch board: timeout")
	}
	return []entities.MarketPrice{{CropID: "rice", PricePerKg: 0.3}}, nil
}

func (stubSvc) Prices(cropID string) ([]entities.MarketPrice, error) {
	return []entities.MarketPrice{{CropID: cropID}}, nil
}

func TestIngestURLStatus(t *testing.T) {
	h := New(stubSvc{})
	e := echo.New()
	for body, want := range map[string]int{
		`{"url":"https://ok.example.org"}`:      http.StatusCreated,
		`{"url":"https://blocked.example.org"}`: http.StatusForbidden,
		`{"url":"https://down.example.org"}`:    http.StatusBadGateway,
		`{}`:                                    http.StatusBadRequest,
	} {
		req := httptest.NewRequest(http.MethodPost, "/market/ingest/url", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		if err := h.IngestURL(e.NewContext(req, rec)); err != nil {
			t.Fatal(err)
		}
		if rec.Code != want {
			t.Errorf("%s: status %d, want %d", body, rec.Code, want)
		}
	}
}

func TestListPrices(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/market/prices?crop=rice", nil)
	rec := httptest.NewRecorder()
	if err := New(stubSvc{}).List(echo.New().NewContext(req, rec)); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"crop_id":"rice"`) {
		t.Errorf("%d %s", rec.Code, rec.Body)
	}
}
