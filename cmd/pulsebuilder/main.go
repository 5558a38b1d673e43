package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"castpulse/internal/config"
	"castpulse/internal/dataprocessing"
	"castpulse/internal/infrastructure"
	"castpulse/internal/sentiment"
	"castpulse/pkg/contracts"
)

func main() {
	input := flag.String("input", "", "input breakdown file (CSV or XLSX)")
	output := flag.String("output", "", "output pulse CSV file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetVersionString())
		return
	}

	if *input == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "usage: pulsebuilder -input <breakdowns.csv> -output <pulse.csv>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.DefaultConfig()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.WithRunID(context.Background(), infrastructure.NewRunID())

	logger.InfoContext(ctx, "starting casting pulse build",
		slog.String("version", contracts.Version),
		slog.String("input", *input),
		slog.String("output", *output),
		slog.Int("suppression_floor", cfg.Pipeline.SuppressionFloor),
		slog.Int("workers", cfg.Pipeline.Workers))

	pipeline := dataprocessing.NewPipeline(logger, sentiment.NewVaderScorer(), cfg.Pipeline)

	summary, err := pipeline.Run(ctx, *input, *output)
	if err != nil {
		logger.ErrorContext(ctx, "pulse build failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Completion summary: date range plus observed category sets
	logger.InfoContext(ctx, "summary",
		slog.Int("input_records", summary.InputRecords),
		slog.Int("dateless_records", summary.DatelessRecords),
		slog.Int("published_rows", summary.PublishedRows),
		slog.Any("regions", summary.Regions),
		slog.Any("project_types", summary.ProjectTypes))

	if summary.PublishedRows > 0 {
		fmt.Printf("Dates: %s to %s\n",
			summary.MinDate.Format("2006-01-02"),
			summary.MaxDate.Format("2006-01-02"))
	}
	fmt.Printf("Regions: %v\n", summary.Regions)
	fmt.Printf("Project Types: %v\n", summary.ProjectTypes)
	fmt.Printf("Wrote %d pulse rows to %s\n", summary.PublishedRows, *output)
}
