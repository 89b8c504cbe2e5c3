package replan

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cropplan/pkg/optimizer"
	"cropplan/pkg/recommend"
)

type stubRecommender struct {
	calls []*recommend.Scenario
	base  *recommend.RankedList
	adj   *recommend.RankedList
	err   error
}

func (s *stubRecommender) Recommend(_ context.Context, _ uint, _ string, sc *recommend.Scenario) (*recommend.RankedList, error) {
	s.calls = append(s.calls, sc)
	if s.err != nil {
		return nil, s.err
	}
	if sc == nil {
		return s.base, nil
	}
	return s.adj, nil
}

func list(quota, profit float64, top ...string) *recommend.RankedList {
	l := &recommend.RankedList{
		WaterQuotaMM: quota,
		Allocation:   optimizer.Result{TotalProfit: profit, Status: optimizer.StatusOptimal},
	}
	for i, id := range top {
		l.Recommendations = append(l.Recommendations, recommend.Recommendation{Rank: i + 1, CropID: id, Rationale: id + " fits."})
	}
	return l
}

func TestReplanAnnotatesAndDescribes(t *testing.T) {
	stub := &stubRecommender{base: list(1500, 4000, "rice", "maize"), adj: list(900, 2500, "cassava", "maize")}
	q := 900.0
	out, err := New(stub).Replan(context.Background(), 1, "wet", &q, map[string]float64{"rice": 0.2})
	if err != nil {
		t.Fatal(err)
	}
	if len(stub.calls) != 2 || stub.calls[0] == nil || *stub.calls[0].WaterQuotaMM != 900 {
		t.Fatalf("unexpected calls: %+v", stub.calls)
	}
	for _, r := range out.AdjustedPlan.Recommendations {
		if !r.Revised || !strings.HasPrefix(r.Rationale, revisedTag) {
			t.Errorf("%s not annotated: %+v", r.CropID, r)
		}
	}
	for _, want := range []string{"1500 -> 900 mm (-600 mm)", "1 price override(s)", "top crop changed from rice to cassava", "4000 -> 2500"} {
		if !strings.Contains(out.Message, want) {
			t.Errorf("message %q missing %q", out.Message, want)
		}
	}
}

func TestDescribeUnchangedTop(t *testing.T) {
	msg := Describe(list(1000, 10, "rice"), list(1000, 10, "rice"), nil, nil)
	if !strings.Contains(msg, "top crop unchanged: rice") || !strings.Contains(msg, "quota unchanged") {
		t.Errorf("message = %q", msg)
	}
	if strings.Contains(msg, "override") {
		t.Errorf("no overrides expected: %q", msg)
	}
}

func TestDescribeEmptyAdjusted(t *testing.T) {
	zero := 0.0
	adj := list(0, 0)
	adj.Allocation.Status = optimizer.StatusInfeasible
	msg := Describe(list(1000, 10, "rice"), adj, &zero, nil)
	if !strings.Contains(msg, "no crop can be recommended") || !strings.Contains(msg, "optimal -> infeasible") {
		t.Errorf("message = %q", msg)
	}
}

func TestReplanPropagatesInputShape(t *testing.T) {
	stub := &stubRecommender{err: recommend.ErrInputShape}
	neg := -5.0
	_, err := New(stub).Replan(context.Background(), 1, "wet", &neg, nil)
	if !errors.Is(err, recommend.ErrInputShape) {
		t.Fatalf("got %v", err)
	}
}
