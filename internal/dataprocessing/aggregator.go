package dataprocessing

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"castpulse/internal/classify"
	"castpulse/internal/config"
	"castpulse/pkg/contracts/domain"
)

// Aggregator reduces derived records into daily pulse rows. The grouping is
// an explicit key→accumulator map so the suppression and rounding rules are
// visible control points rather than side effects of a groupby.
type Aggregator struct {
	logger *slog.Logger
	cfg    config.PipelineConfig
}

// NewAggregator creates an aggregator with the given pipeline policies.
func NewAggregator(logger *slog.Logger, cfg config.PipelineConfig) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.SuppressionFloor <= 0 {
		cfg.SuppressionFloor = 5
	}
	if cfg.RateQuantumUSD <= 0 {
		cfg.RateQuantumUSD = 250
	}
	return &Aggregator{logger: logger, cfg: cfg}
}

// bucketAccumulator collects the running tallies for one bucket key.
type bucketAccumulator struct {
	count        int
	leadCount    int
	unionCount   int
	aiCount      int
	rates        []float64
	sentimentSum float64
}

// Aggregate groups records by (date, region, project type), discards groups
// below the suppression floor and computes the bucket statistics. Dateless
// records never contribute. The result is sorted ascending by key.
func (a *Aggregator) Aggregate(ctx context.Context, records []domain.DerivedRecord) []domain.PulseRow {
	buckets := make(map[domain.BucketKey]*bucketAccumulator)

	for i := range records {
		rec := &records[i]
		if !rec.HasDate {
			continue
		}

		key := domain.BucketKey{
			DateUTC:      rec.DateUTC,
			RegionCode:   rec.RegionCode,
			ProjTypeCode: rec.ProjTypeCode,
		}
		acc := buckets[key]
		if acc == nil {
			acc = &bucketAccumulator{}
			buckets[key] = acc
		}

		acc.count++
		if rec.IsLead {
			acc.leadCount++
		}
		if rec.IsUnion {
			acc.unionCount++
		}
		if rec.HasAI {
			acc.aiCount++
		}
		if rec.HasRate {
			acc.rates = append(acc.rates, rec.RateVal)
		}
		acc.sentimentSum += rec.Sentiment
	}

	suppressed := 0
	rows := make([]domain.PulseRow, 0, len(buckets))
	for key, acc := range buckets {
		if acc.count < a.cfg.SuppressionFloor {
			suppressed++
			continue
		}
		rows = append(rows, a.finalizeBucket(key, acc))
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Key().Before(rows[j].Key())
	})

	a.logger.InfoContext(ctx, "aggregated daily buckets",
		slog.Int("bucket_count", len(buckets)),
		slog.Int("published_count", len(rows)),
		slog.Int("suppressed_count", suppressed),
		slog.Int("suppression_floor", a.cfg.SuppressionFloor))

	return rows
}

// finalizeBucket computes the published statistics for one surviving group.
func (a *Aggregator) finalizeBucket(key domain.BucketKey, acc *bucketAccumulator) domain.PulseRow {
	size := float64(acc.count)

	row := domain.PulseRow{
		DateUTC:            key.DateUTC,
		RegionCode:         key.RegionCode,
		ProjTypeCode:       key.ProjTypeCode,
		RoleCountDay:       acc.count,
		LeadSharePctDay:    round1(classify.Clamp(float64(acc.leadCount)/size, 0, 1)),
		UnionSharePctDay:   round1(classify.Clamp(float64(acc.unionCount)/size, 0, 1)),
		ThemeAISharePctDay: round1(classify.Clamp(float64(acc.aiCount)/size, 0, 1)),
		SentimentAvgDay:    round2(classify.Clamp(acc.sentimentSum/size, -1, 1)),
	}

	if len(acc.rates) > 0 {
		quantum := float64(a.cfg.RateQuantumUSD)
		// half-up: math.Round rounds halves away from zero and rates are
		// non-negative
		snapped := int(math.Round(median(acc.rates)/quantum)) * a.cfg.RateQuantumUSD
		row.MedianRateDayUSD = &snapped
	}

	return row
}

// median returns the median of values; even-sized inputs average the two
// middle values. The input slice is not modified.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
