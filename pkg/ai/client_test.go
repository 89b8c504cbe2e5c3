package ai

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cropplan/entities"
	"cropplan/pkg/optimizer"
	"cropplan/pkg/recommend"
)

func sample() (*entities.Field, *recommend.RankedList) {
	f := &entities.Field{FieldID: 3, Name: "north", AreaHa: 4, SoilTexture: "clay"}
	l := &recommend.RankedList{
		Season:       "wet",
		WaterQuotaMM: 900,
		Recommendations: []recommend.Recommendation{
			{Rank: 1, CropID: "rice", SuitabilityScore: 0.8, Risk: "medium"},
		},
		Allocation: optimizer.Result{Allocations: map[string]float64{"rice": 1.5, "cassava": 2.5}, Status: optimizer.StatusOptimal},
	}
	return f, l
}

func TestMockSummary(t *testing.T) {
	s := NewMock().SummarizePlan(sample())
	for _, want := range []string{"Field #3", "Best fit: rice", "Plant cassava on 2.50 ha", "Plant rice on 1.50 ha"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary missing %q:\n%s", want, s)
		}
	}
	if strings.Index(s, "cassava") > strings.Index(s, "Plant rice") {
		t.Error("allocations should be listed in id order")
	}
}

func TestOpenAISummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer k" || r.URL.Path != "/v1/chat/completions" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"content": " - plant rice "}}},
		})
	}))
	defer srv.Close()

	if got := New(srv.URL+"/", "k", "m").SummarizePlan(sample()); got != "- plant rice" {
		t.Errorf("got %q", got)
	}
	// bad key: decoder fails, local summary used
	if got := New(srv.URL, "wrong", "m").SummarizePlan(sample()); !strings.HasPrefix(got, "**Crop plan summary**") {
		t.Errorf("fallback not used: %q", got)
	}
	if _, ok := New("", "", "").(*mockClient); !ok {
		t.Error("empty endpoint should select the mock")
	}
}
