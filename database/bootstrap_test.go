package database

import (
	"path/filepath"
	"testing"

	"cropplan/entities"
)

func TestOpenMigrates(t *testing.T) {
	db, err := OpenMemory(t.Name())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	for _, m := range []any{&entities.Field{}, &entities.Crop{}, &entities.FieldCropHistory{}, &entities.MarketPrice{}, &entities.Plan{}, &entities.ReplanLog{}} {
		if !db.Migrator().HasTable(m) {
			t.Errorf("missing table for %T", m)
		}
	}
	q := 700.0
	log := entities.ReplanLog{FieldID: 1, QuotaMM: &q, PriceOverrides: map[string]float64{"rice": 0.4}}
	if err := db.Create(&log).Error; err != nil {
		t.Fatal(err)
	}
	var got entities.ReplanLog
	if err := db.First(&got, log.ID).Error; err != nil {
		t.Fatal(err)
	}
	if got.PriceOverrides["rice"] != 0.4 || got.QuotaMM == nil || *got.QuotaMM != 700 {
		t.Errorf("round trip lost data: %+v", got)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cropplan.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := db.Create(&entities.Crop{CropID: "rice", Name: "Rice", PreferredSoils: []string{"clay"}}).Error; err != nil {
		t.Fatal(err)
	}
	sqlDB, _ := db.DB()
	sqlDB.Close()

	db2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	var c entities.Crop
	if err := db2.First(&c, "crop_id = ?", "rice").Error; err != nil {
		t.Fatal(err)
	}
	if len(c.PreferredSoils) != 1 || c.PreferredSoils[0] != "clay" {
		t.Errorf("preferred soils = %v", c.PreferredSoils)
	}
}
