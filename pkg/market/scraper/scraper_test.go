package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const board = `<html><body>
<table><tr><th>Region</th><th>Updated</th></tr><tr><td>North</td><td>today</td></tr></table>
<table>
  <tr><th>Crop</th><th>Season</th><th>Price (per kg)</th></tr>
  <tr><td>Rice</td><td>Wet</td><td>0.35</td></tr>
  <tr><td>maize</td><td>dry</td><td>1,200.5</td></tr>
  <tr><td>cassava</td><td></td><td>n/a</td></tr>
  <tr><td></td><td>wet</td><td>0.10</td></tr>
  <tr><td>sugar</td><td>wet</td><td>-1</td></tr>
</table>
</body></html>`

func TestParseBoard(t *testing.T) {
	prices, err := ParseBoard(strings.NewReader(board))
	if err != nil {
		t.Fatal(err)
	}
	if len(prices) != 2 {
		t.Fatalf("got %d rows: %+v", len(prices), prices)
	}
	if prices[0].CropID != "rice" || prices[0].Season != "wet" || prices[0].PricePerKg != 0.35 {
		t.Errorf("row 0 = %+v", prices[0])
	}
	if prices[1].PricePerKg != 1200.5 {
		t.Errorf("row 1 = %+v", prices[1])
	}
}

func TestParseBoardNoTable(t *testing.T) {
	if _, err := ParseBoard(strings.NewReader("<p>closed today</p>")); err == nil {
		t.Fatal("expected error")
	}
}

func TestFetchBoard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(board))
	}))
	defer srv.Close()

	prices, err := FetchBoard(context.Background(), srv.URL, 1<<20)
	if err != nil {
		t.Fatal(err)
	}
	if len(prices) != 2 || prices[0].Source != srv.URL {
		t.Errorf("got %+v", prices)
	}
	if _, err := FetchBoard(context.Background(), srv.URL, 10); err == nil {
		t.Error("truncated page should not parse into prices")
	}
}
