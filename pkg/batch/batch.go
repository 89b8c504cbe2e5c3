package batch

import (
	"context"
	"encoding/csv"
	"io"
	"runtime"
	"sort"
	"strconv"
	"sync"

	"gopkg.in/cheggaaa/pb.v1"

	"cropplan/entities"
	"cropplan/pkg/recommend"
)

// MaxParallelism is the smaller of GOMAXPROCS and the CPU count.
func MaxParallelism() int {
	maxProcs := runtime.GOMAXPROCS(0)
	numCPU := runtime.NumCPU()
	if maxProcs < numCPU {
		return maxProcs
	}
	return numCPU
}

type Recommender interface {
	Recommend(ctx context.Context, fieldID uint, season string, sc *recommend.Scenario) (*recommend.RankedList, error)
}

// Outcome is one field's run. Err is set instead of List when the run failed.
type Outcome struct {
	FieldID uint
	List    *recommend.RankedList
	Err     error
}

type Options struct {
	Season  string
	Workers int
	// Progress receives the progress bar; nil hides it.
	Progress io.Writer
}

// Run recommends for every field on a pool of workers. Each field is an
// independent pipeline call; results come back ordered by field id.
func Run(ctx context.Context, rec Recommender, fields []entities.Field, opts Options) []Outcome {
	workers := opts.Workers
	if workers <= 0 {
		workers = MaxParallelism()
	}

	bar := pb.New(len(fields))
	if opts.Progress != nil {
		bar.Output = opts.Progress
	} else {
		bar.NotPrint = true
	}
	bar.Start()

	jobs := make(chan entities.Field)
	results := make(chan Outcome, len(fields))
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for f := range jobs {
				season := opts.Season
				if season == "" {
					season = f.Season
				}
				list, err := rec.Recommend(ctx, f.FieldID, season, nil)
				results <- Outcome{FieldID: f.FieldID, List: list, Err: err}
				bar.Increment()
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, f := range fields {
			select {
			case jobs <- f:
			case <-ctx.Done():
				return
			}
		}
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]Outcome, 0, len(fields))
	for r := range results {
		out = append(out, r)
	}
	if opts.Progress != nil {
		bar.FinishPrint("\tFields planned")
	} else {
		bar.Finish()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FieldID < out[j].FieldID })
	return out
}

var Header = []string{"field_id", "crop_id", "area_ha", "suitability", "status"}

// WriteCSV writes one row per allocated crop, crops in id order. Failed
// fields get a single row with an empty crop and the error as status.
func WriteCSV(w io.Writer, outcomes []Outcome) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, o := range outcomes {
		fid := strconv.FormatUint(uint64(o.FieldID), 10)
		if o.Err != nil {
			if err := cw.Write([]string{fid, "", "0", "", "error: " + o.Err.Error()}); err != nil {
				return err
			}
			continue
		}
		ids := make([]string, 0, len(o.List.Allocation.Allocations))
		for id := range o.List.Allocation.Allocations {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		status := string(o.List.Allocation.Status)
		if len(ids) == 0 {
			if err := cw.Write([]string{fid, "", "0", "", status}); err != nil {
				return err
			}
		}
		for _, id := range ids {
			row := []string{
				fid,
				id,
				strconv.FormatFloat(o.List.Allocation.Allocations[id], 'f', 4, 64),
				strconv.FormatFloat(o.List.Scores[id], 'f', 4, 64),
				status,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
