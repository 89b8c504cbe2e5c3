package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"cropplan/config"
	"cropplan/database"
	"cropplan/pkg/app"
	"cropplan/pkg/batch"
)

func main() {
	start := time.Now()

	base, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	season := flag.String("season", "", "season to plan; empty uses each field's own season")
	outPath := flag.String("o", filepath.Join(base, "results.csv"), "output csv path")
	workers := flag.Int("workers", batch.MaxParallelism(), "number of parallel workers")
	flag.Parse()

	cfg := config.Load()
	db := database.OpenSQLite(cfg.DBPath)
	a, err := app.New(cfg, db)
	if err != nil {
		log.Fatalf("app: %v", err)
	}

	fields, err := a.Fields.List()
	if err != nil {
		log.Fatalf("list fields: %v", err)
	}
	log.Printf("[batch] planning %d fields with %d workers (optimizer=%s)", len(fields), *workers, a.Strategy)

	out := batch.Run(context.Background(), a.Pipeline, fields, batch.Options{
		Season:   *season,
		Workers:  *workers,
		Progress: os.Stdout,
	})

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("create %s: %v", *outPath, err)
	}
	defer f.Close()
	if err := batch.WriteCSV(f, out); err != nil {
		log.Fatalf("write %s: %v", *outPath, err)
	}

	failed := 0
	for _, o := range out {
		if o.Err != nil {
			failed++
			log.Printf("[batch] field %d: %v", o.FieldID, o.Err)
		}
	}
	log.Printf("[batch] wrote %s: %d fields, %d failed, elapsed %s", filepath.Base(*outPath), len(out), failed, time.Since(start))
}
