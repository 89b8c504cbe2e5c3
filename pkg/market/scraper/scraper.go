package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"cropplan/entities"
)

var client = &http.Client{Timeout: 20 * time.Second}

func norm(s string) string {
	s = strings.TrimSpace(strings.TrimPrefix(s, "\uFEFF"))
	s = strings.ToLower(s)
	for _, r := range []string{" ", "-", "_", "(", ")", "/", "."} {
		s = strings.ReplaceAll(s, r, "")
	}
	return s
}

func column(head []string, keys ...string) int {
	for _, k := range keys {
		for i, h := range head {
			if h == norm(k) {
				return i
			}
		}
	}
	return -1
}

// ParseBoard reads the first table whose header names a crop and a price
// column. Rows with an empty crop or an unparsable or negative price are
// skipped.
func ParseBoard(r io.Reader) ([]entities.MarketPrice, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	var out []entities.MarketPrice
	found := false
	doc.Find("table").EachWithBreak(func(_ int, tbl *goquery.Selection) bool {
		var head []string
		tbl.Find("tr").First().Find("th,td").Each(func(_ int, c *goquery.Selection) {
			head = append(head, norm(c.Text()))
		})
		cCrop := column(head, "crop_id", "crop", "commodity", "product")
		cPrice := column(head, "price_per_kg", "price", "priceperkg", "price_kg")
		if cCrop == -1 || cPrice == -1 {
			return true
		}
		cSeason := column(head, "season")
		found = true
		now := time.Now().UTC()
		tbl.Find("tr").Slice(1, goquery.ToEnd).Each(func(_ int, tr *goquery.Selection) {
			var cells []string
			tr.Find("td,th").Each(func(_ int, c *goquery.Selection) {
				cells = append(cells, strings.TrimSpace(c.Text()))
			})
			get := func(i int) string {
				if i < 0 || i >= len(cells) {
					return ""
				}
				return cells[i]
			}
			crop := strings.ToLower(get(cCrop))
			price, err := parsePrice(get(cPrice))
			if crop == "" || err != nil || price < 0 {
				return
			}
			out = append(out, entities.MarketPrice{
				CropID:     crop,
				Season:     strings.ToLower(get(cSeason)),
				PricePerKg: price,
				ObservedAt: now,
			})
		})
		return false
	})
	if !found {
		return nil, fmt.Errorf("no price table found")
	}
	return out, nil
}

func parsePrice(s string) (float64, error) {
	s = strings.NewReplacer(",", "", "$", "", "฿", "", " ", "").Replace(s)
	return strconv.ParseFloat(s, 64)
}

// FetchBoard downloads an HTML price board, reading at most maxBytes.
func FetchBoard(ctx context.Context, url string, maxBytes int) ([]entities.MarketPrice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}
	if resp.ContentLength > int64(maxBytes) {
		return nil, fmt.Errorf("page too large")
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if ct != "" && !strings.Contains(ct, "text/html") {
		return nil, fmt.Errorf("unsupported content-type: %s", ct)
	}
	b, err := io.ReadAll(&io.LimitedReader{R: resp.Body, N: int64(maxBytes)})
	if err != nil {
		return nil, err
	}
	prices, err := ParseBoard(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	for i := range prices {
		prices[i].Source = url
	}
	return prices, nil
}
