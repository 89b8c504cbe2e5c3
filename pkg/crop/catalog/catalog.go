package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"cropplan/entities"
	croprepo "cropplan/pkg/crop/repository"
	marketrepo "cropplan/pkg/market/repository"
	"cropplan/pkg/suitability"
)

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

type header map[string]int

func newHeader(head []string) header {
	h := header{}
	for i, c := range head {
		h[norm(c)] = i
	}
	return h
}

// find returns the column of the first alias present, or -1.
func (h header) find(keys ...string) int {
	for _, k := range keys {
		if idx, ok := h[norm(k)]; ok {
			return idx
		}
	}
	return -1
}

// LoadCropsCSV reads the crop catalogue. Rows with an empty id, an unknown
// water sensitivity or a non-positive growth duration are skipped.
func LoadCropsCSV(path string) ([]entities.Crop, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCrops(f)
}

func ReadCrops(r io.Reader) ([]entities.Crop, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	head, err := cr.Read()
	if err != nil {
		return nil, err
	}
	h := newHeader(head)

	cID := h.find("crop_id", "id", "code")
	cName := h.find("name", "crop_name", "crop")
	cWater := h.find("water_req_mm", "water_requirement_mm", "waterreq", "water_mm")
	cSens := h.find("water_sensitivity", "sensitivity")
	cDays := h.find("growth_days", "growth_duration_days", "duration", "days")
	cCost := h.find("cost_per_ha", "cost")
	cMin := h.find("min_area_ha", "min_area")
	cShare := h.find("max_area_share", "max_share")
	cSoils := h.find("preferred_soils", "soils", "soil")

	if cID == -1 || cWater == -1 || cDays == -1 {
		return nil, fmt.Errorf("crop catalogue missing required columns. Found headers: %v\nNeed at least: crop_id, water_req_mm, growth_days", head)
	}

	var out []entities.Crop
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		num := func(idx int) float64 {
			v, _ := strconv.ParseFloat(get(idx), 64)
			return v
		}

		id := strings.ToLower(get(cID))
		days, _ := strconv.Atoi(get(cDays))
		sens := strings.ToLower(get(cSens))
		if sens == "" {
			sens = string(suitability.SensitivityMedium)
		}
		if _, err := suitability.ParseWaterSensitivity(sens); err != nil || id == "" || days <= 0 {
			log.Printf("[catalog] skipping row %d of crop catalogue: %v", line, rec)
			continue
		}
		c := entities.Crop{
			CropID:           id,
			Name:             get(cName),
			WaterReqMM:       num(cWater),
			WaterSensitivity: sens,
			GrowthDays:       days,
			CostPerHa:        num(cCost),
			MinAreaHa:        num(cMin),
			MaxAreaShare:     num(cShare),
		}
		if c.Name == "" {
			c.Name = id
		}
		for _, s := range strings.Split(get(cSoils), ";") {
			if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
				c.PreferredSoils = append(c.PreferredSoils, s)
			}
		}
		out = append(out, c)
	}
	return out, nil
}

// LoadPricesXLSX reads crop_id, season, price_per_kg rows from a workbook
// sheet. An empty sheet name selects the first sheet.
func LoadPricesXLSX(path, sheet string) ([]entities.MarketPrice, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()
	if sheet == "" {
		sheet = x.GetSheetName(0)
	}
	rows, err := x.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	h := newHeader(rows[0])
	cID := h.find("crop_id", "crop")
	cSeason := h.find("season")
	cPrice := h.find("price_per_kg", "price")
	if cID == -1 || cPrice == -1 {
		return nil, fmt.Errorf("price sheet %q missing crop_id/price_per_kg columns: %v", sheet, rows[0])
	}

	now := time.Now().UTC()
	var out []entities.MarketPrice
	for _, rec := range rows[1:] {
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		id := strings.ToLower(get(cID))
		price, err := strconv.ParseFloat(get(cPrice), 64)
		if id == "" || err != nil || price < 0 {
			continue
		}
		out = append(out, entities.MarketPrice{
			CropID:     id,
			Season:     strings.ToLower(get(cSeason)),
			PricePerKg: price,
			Source:     "xlsx:" + path,
			ObservedAt: now,
		})
	}
	return out, nil
}

// Seed upserts the catalogue and appends the price observations.
func Seed(crops croprepo.CropRepository, market marketrepo.MarketRepository, cs []entities.Crop, ps []entities.MarketPrice) error {
	for i := range cs {
		if err := crops.Upsert(&cs[i]); err != nil {
			return fmt.Errorf("seed crop %s: %w", cs[i].CropID, err)
		}
	}
	if err := market.Add(ps); err != nil {
		return fmt.Errorf("seed prices: %w", err)
	}
	log.Printf("[catalog] seeded %d crops, %d prices", len(cs), len(ps))
	return nil
}

// SeedFiles loads whichever of the two files is configured and seeds them.
func SeedFiles(crops croprepo.CropRepository, market marketrepo.MarketRepository, cropCSV, pricesXLSX string) error {
	var cs []entities.Crop
	var ps []entities.MarketPrice
	var err error
	if cropCSV != "" {
		if cs, err = LoadCropsCSV(cropCSV); err != nil {
			return fmt.Errorf("load %s: %w", cropCSV, err)
		}
	}
	if pricesXLSX != "" {
		if ps, err = LoadPricesXLSX(pricesXLSX, ""); err != nil {
			return fmt.Errorf("load %s: %w", pricesXLSX, err)
		}
	}
	if len(cs) == 0 && len(ps) == 0 {
		return nil
	}
	return Seed(crops, market, cs, ps)
}
