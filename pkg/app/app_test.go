package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"cropplan/config"
	"cropplan/database"
	"cropplan/entities"
	"cropplan/pkg/optimizer"
)

const catalogue = "crop_id,name,water_req_mm,water_sensitivity,growth_days,cost_per_ha,min_area_ha,max_area_share,preferred_soils\n" +
	"rice,Rice,1200,high,120,600,0,0.6,clay\n" +
	"cassava,Cassava,500,low,240,300,0,0,sand;loam\n" +
	"maize,Maize,600,medium,100,400,0.5,0.5,loam\n"

func TestNewWiresPipeline(t *testing.T) {
	for _, strategy := range []string{"greedy", "lp"} {
		t.Run(strategy, func(t *testing.T) {
			db, err := database.OpenMemory(t.Name())
			if err != nil {
				t.Fatal(err)
			}
			csvPath := filepath.Join(t.TempDir(), "crops.csv")
			if err := os.WriteFile(csvPath, []byte(catalogue), 0o644); err != nil {
				t.Fatal(err)
			}
			a, err := New(config.AppConfig{Optimizer: strategy, CropCatalogCSV: csvPath, TopN: 2}, db)
			if err != nil {
				t.Fatal(err)
			}
			f := &entities.Field{UserID: "u", AreaHa: 6, SoilTexture: "loam", WaterQuotaMM: 3000, Season: "wet"}
			if err := a.Fields.Create(f); err != nil {
				t.Fatal(err)
			}
			list, err := a.Pipeline.Recommend(context.Background(), f.FieldID, "wet", nil)
			if err != nil {
				t.Fatal(err)
			}
			if len(list.Recommendations) != 2 || len(list.Scores) != 3 {
				t.Errorf("top-n not applied: %d recs, %d scores", len(list.Recommendations), len(list.Scores))
			}
			// a solver failure falls back to greedy and reports feasible
			if string(list.Allocation.Strategy) != strategy && list.Allocation.Status != optimizer.StatusFeasible {
				t.Errorf("strategy = %s", list.Allocation.Strategy)
			}
			if list.Allocation.Status == optimizer.StatusInfeasible {
				t.Errorf("unexpected infeasible: %s", list.Allocation.Message)
			}
			if list.Allocation.Allocations["maize"] < 0.5-optimizer.Epsilon {
				t.Errorf("maize minimum not honoured: %v", list.Allocation.Allocations)
			}
			if list.Allocation.AllocatedArea() > 6+optimizer.Epsilon || list.Allocation.TotalWaterUsedMM > 3000+optimizer.Epsilon {
				t.Errorf("limits exceeded: %+v", list.Allocation)
			}
		})
	}
}

func TestNewRejectsUnknownStrategy(t *testing.T) {
	db, err := database.OpenMemory(t.Name())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := New(config.AppConfig{Optimizer: "annealing"}, db); err == nil {
		t.Fatal("expected error")
	}
}
