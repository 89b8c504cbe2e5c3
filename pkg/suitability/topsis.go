package suitability

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Score ranks candidates with TOPSIS and returns a closeness coefficient in
// [0,1] per crop id. Scores are relative to the candidate set: adding or
// removing a crop changes every other score. A nil weights pointer selects
// DefaultWeights.
func Score(candidates map[string]CropCandidate, weights *Weights) map[string]float64 {
	out := make(map[string]float64, len(candidates))
	if len(candidates) == 0 {
		return out
	}
	w := DefaultWeights()
	if weights != nil {
		w = *weights
	}

	// Row order is fixed by crop id so column sums are accumulated in the
	// same order on every call.
	ids := make([]string, 0, len(candidates))
	for id := range candidates {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	m := mat.NewDense(len(ids), numCriteria, nil)
	for i, id := range ids {
		m.SetRow(i, candidates[id].criteria())
	}

	wv := w.vector()
	best := make([]float64, numCriteria)
	worst := make([]float64, numCriteria)
	col := make([]float64, len(ids))
	for j := 0; j < numCriteria; j++ {
		mat.Col(col, j, m)
		// all-zero column stays as is
		if norm := floats.Norm(col, 2); norm != 0 {
			floats.Scale(1/norm, col)
		}
		floats.Scale(wv[j], col)
		m.SetCol(j, col)
		best[j] = floats.Max(col)
		worst[j] = floats.Min(col)
	}

	for i, id := range ids {
		row := m.RawRowView(i)
		dBest := floats.Distance(row, best, 2)
		dWorst := floats.Distance(row, worst, 2)
		out[id] = closeness(dBest, dWorst)
	}
	return out
}

func closeness(dBest, dWorst float64) float64 {
	if dBest+dWorst == 0 {
		return 0.5
	}
	s := dWorst / (dBest + dWorst)
	switch {
	case s < 0:
		return 0
	case s > 1:
		return 1
	}
	return s
}

// Ranked is a crop id with its score.
type Ranked struct {
	CropID string  `json:"crop_id"`
	Score  float64 `json:"score"`
}

// Rank orders scores descending, breaking ties by crop id.
func Rank(scores map[string]float64) []Ranked {
	out := make([]Ranked, 0, len(scores))
	for id, s := range scores {
		out = append(out, Ranked{CropID: id, Score: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].CropID < out[j].CropID
	})
	return out
}
