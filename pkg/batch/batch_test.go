package batch

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"cropplan/entities"
	"cropplan/pkg/optimizer"
	"cropplan/pkg/recommend"
)

type countingRecommender struct{ calls int64 }

func (r *countingRecommender) Recommend(_ context.Context, fieldID uint, season string, _ *recommend.Scenario) (*recommend.RankedList, error) {
	atomic.AddInt64(&r.calls, 1)
	if fieldID == 3 {
		return nil, recommend.ErrFieldNotFound
	}
	return &recommend.RankedList{
		FieldID: fieldID,
		Season:  season,
		Scores:  map[string]float64{"rice": 0.8, "maize": 0.4},
		Allocation: optimizer.Result{
			Allocations: map[string]float64{"rice": float64(fieldID), "maize": 0.5},
			Status:      optimizer.StatusOptimal,
		},
	}, nil
}

func TestRunAndWriteCSV(t *testing.T) {
	var fields []entities.Field
	for i := 5; i >= 1; i-- {
		fields = append(fields, entities.Field{FieldID: uint(i), Season: "wet"})
	}
	rec := &countingRecommender{}
	out := Run(context.Background(), rec, fields, Options{Workers: 3})
	if rec.calls != 5 || len(out) != 5 {
		t.Fatalf("calls=%d outcomes=%d", rec.calls, len(out))
	}
	for i, o := range out {
		if o.FieldID != uint(i+1) {
			t.Fatalf("outcomes not ordered: %v", out)
		}
	}
	if !errors.Is(out[2].Err, recommend.ErrFieldNotFound) {
		t.Errorf("field 3 err = %v", out[2].Err)
	}
	if out[0].List.Season != "wet" {
		t.Errorf("field season not used")
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, out); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "field_id,crop_id,area_ha,suitability,status" {
		t.Errorf("header = %q", lines[0])
	}
	// 4 fields x 2 crops + 1 error row
	if len(lines) != 1+8+1 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if lines[1] != "1,maize,0.5000,0.4000,optimal" || lines[2] != "1,rice,1.0000,0.8000,optimal" {
		t.Errorf("first rows = %q %q", lines[1], lines[2])
	}
	if !strings.HasPrefix(lines[5], "3,,0,,error:") {
		t.Errorf("error row = %q", lines[5])
	}
}

func TestRunSeasonOverride(t *testing.T) {
	out := Run(context.Background(), &countingRecommender{}, []entities.Field{{FieldID: 1, Season: "wet"}}, Options{Season: "dry"})
	if out[0].List.Season != "dry" {
		t.Errorf("season = %s", out[0].List.Season)
	}
}

func TestMaxParallelism(t *testing.T) {
	if MaxParallelism() < 1 {
		t.Error("need at least one worker")
	}
}
