package dataprocessing

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"castpulse/internal/classify"
	"castpulse/internal/config"
	"castpulse/internal/sentiment"
	"castpulse/pkg/contracts/domain"
)

// Normalizer applies all field classifiers to raw casting records. Each
// derived record depends only on its own raw record, so normalization can
// shard across workers without changing output order.
type Normalizer struct {
	logger *slog.Logger
	scorer sentiment.Scorer
	cfg    config.PipelineConfig
}

// NewNormalizer creates a normalizer using the given polarity engine.
func NewNormalizer(logger *slog.Logger, scorer sentiment.Scorer, cfg config.PipelineConfig) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.SentimentStep <= 0 {
		cfg.SentimentStep = 0.05
	}
	return &Normalizer{logger: logger, scorer: scorer, cfg: cfg}
}

// Normalize derives signals for every raw record, preserving input order.
// It never fails on record content: unparseable fields resolve to the
// documented defaults and unparseable dates mark the record dateless.
func (n *Normalizer) Normalize(ctx context.Context, records []domain.RawRecord) []domain.DerivedRecord {
	derived := make([]domain.DerivedRecord, len(records))

	workers := n.cfg.Workers
	if workers > len(records) {
		workers = len(records)
	}

	if workers <= 1 {
		for i := range records {
			derived[i] = n.normalizeOne(records[i])
		}
	} else {
		g, _ := errgroup.WithContext(ctx)
		chunk := (len(records) + workers - 1) / workers
		for start := 0; start < len(records); start += chunk {
			end := start + chunk
			if end > len(records) {
				end = len(records)
			}
			g.Go(func() error {
				for i := start; i < end; i++ {
					derived[i] = n.normalizeOne(records[i])
				}
				return nil
			})
		}
		// workers return no errors; Wait only joins the group
		_ = g.Wait()
	}

	dateless := 0
	for i := range derived {
		if !derived[i].HasDate {
			dateless++
		}
	}
	n.logger.InfoContext(ctx, "normalized raw records",
		slog.Int("record_count", len(records)),
		slog.Int("dateless_count", dateless),
		slog.Int("workers", workers))

	return derived
}

// normalizeOne computes all derived signals for a single record.
func (n *Normalizer) normalizeOne(raw domain.RawRecord) domain.DerivedRecord {
	d := domain.DerivedRecord{Raw: raw}

	d.DateUTC, d.HasDate = ParsePostedDate(raw.PostedDate)
	d.RegionCode = classify.MapRegion(raw.WorkLocation)
	d.ProjTypeCode = classify.MapProjectType(raw.ProjectType)
	d.IsLead = classify.IsLead(raw.RoleType)
	d.IsUnion = classify.IsUnion(raw.Union)
	d.RateVal, d.HasRate = classify.ExtractRate(raw.Rate)
	d.Sentiment = classify.ScoreSentiment(n.scorer, raw.RoleDescription, n.cfg.SentimentStep)
	d.HasAI = classify.HasAITheme(raw.RoleDescription)

	return d
}
