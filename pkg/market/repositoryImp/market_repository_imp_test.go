package repositoryImp

import (
	"testing"
	"time"

	"cropplan/database"
	"cropplan/entities"
)

func TestMarketLatest(t *testing.T) {
	db, err := database.OpenMemory(t.Name())
	if err != nil {
		t.Fatal(err)
	}
	r := New(db)
	day := func(d int) time.Time { return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC) }
	err = r.Add([]entities.MarketPrice{
		{CropID: "rice", Season: "wet", PricePerKg: 0.30, ObservedAt: day(1)},
		{CropID: "rice", Season: "wet", PricePerKg: 0.35, ObservedAt: day(5)},
		{CropID: "rice", Season: "dry", PricePerKg: 0.40, ObservedAt: day(9)},
	})
	if err != nil {
		t.Fatal(err)
	}
	if p, _ := r.Latest("rice", "wet"); p == nil || p.PricePerKg != 0.35 {
		t.Errorf("latest wet = %+v", p)
	}
	if p, _ := r.Latest("rice", ""); p == nil || p.PricePerKg != 0.40 {
		t.Errorf("latest any = %+v", p)
	}
	if p, err := r.Latest("maize", ""); p != nil || err != nil {
		t.Errorf("unknown crop = %+v, %v", p, err)
	}
	if ps, _ := r.List("rice"); len(ps) != 3 || ps[0].PricePerKg != 0.40 {
		t.Errorf("list = %+v", ps)
	}
}
