package dataprocessing

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"castpulse/internal/config"
	"castpulse/internal/exporter"
	"castpulse/internal/ingest"
	"castpulse/internal/sentiment"
	"castpulse/pkg/contracts/domain"
)

// Pipeline sequences the pulse build: ingest → normalize → aggregate →
// export → summary. It owns no business logic itself.
type Pipeline struct {
	logger     *slog.Logger
	normalizer *Normalizer
	aggregator *Aggregator
	writer     *exporter.PulseWriter
}

// NewPipeline wires the pipeline stages with a shared polarity engine and
// the configured policies.
func NewPipeline(logger *slog.Logger, scorer sentiment.Scorer, cfg config.PipelineConfig) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		logger:     logger,
		normalizer: NewNormalizer(logger, scorer, cfg),
		aggregator: NewAggregator(logger, cfg),
		writer:     exporter.NewPulseWriter(logger),
	}
}

// Summary describes one completed pulse build.
type Summary struct {
	InputRecords    int
	DatelessRecords int
	PublishedRows   int

	// MinDate/MaxDate span the published rows; zero when no row survived.
	MinDate time.Time
	MaxDate time.Time

	Regions      []domain.RegionCode
	ProjectTypes []domain.ProjectTypeCode
}

// Run executes the whole pulse build for one input file. Ingest and export
// failures are fatal; record-level noise never is. No partial output is
// written on ingest failure since export happens after computation.
func (p *Pipeline) Run(ctx context.Context, inputPath, outputPath string) (*Summary, error) {
	rawRecords, err := ingest.ReadRecords(ctx, inputPath)
	if err != nil {
		return nil, err
	}

	derived := p.normalizer.Normalize(ctx, rawRecords)
	rows := p.aggregator.Aggregate(ctx, derived)

	if err := p.writer.Write(ctx, outputPath, rows); err != nil {
		return nil, err
	}

	summary := buildSummary(rawRecords, derived, rows)
	p.logger.InfoContext(ctx, "pulse build complete",
		slog.Int("input_records", summary.InputRecords),
		slog.Int("dateless_records", summary.DatelessRecords),
		slog.Int("published_rows", summary.PublishedRows),
		slog.String("min_date", formatSummaryDate(summary.MinDate)),
		slog.String("max_date", formatSummaryDate(summary.MaxDate)),
		slog.Any("regions", summary.Regions),
		slog.Any("project_types", summary.ProjectTypes))

	return summary, nil
}

// buildSummary collects the date range and observed category sets from the
// published rows.
func buildSummary(raw []domain.RawRecord, derived []domain.DerivedRecord, rows []domain.PulseRow) *Summary {
	s := &Summary{
		InputRecords:  len(raw),
		PublishedRows: len(rows),
	}

	for i := range derived {
		if !derived[i].HasDate {
			s.DatelessRecords++
		}
	}

	regions := make(map[domain.RegionCode]bool)
	projTypes := make(map[domain.ProjectTypeCode]bool)
	for i := range rows {
		row := &rows[i]
		if s.MinDate.IsZero() || row.DateUTC.Before(s.MinDate) {
			s.MinDate = row.DateUTC
		}
		if s.MaxDate.IsZero() || row.DateUTC.After(s.MaxDate) {
			s.MaxDate = row.DateUTC
		}
		regions[row.RegionCode] = true
		projTypes[row.ProjTypeCode] = true
	}

	for code := range regions {
		s.Regions = append(s.Regions, code)
	}
	sort.Slice(s.Regions, func(i, j int) bool { return s.Regions[i] < s.Regions[j] })

	for code := range projTypes {
		s.ProjectTypes = append(s.ProjectTypes, code)
	}
	sort.Slice(s.ProjectTypes, func(i, j int) bool { return s.ProjectTypes[i] < s.ProjectTypes[j] })

	return s
}

func formatSummaryDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
