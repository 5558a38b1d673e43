package exporter

import (
	"context"
	"log/slog"
	"strconv"

	"castpulse/pkg/contracts/domain"
)

// PulseWriter writes pulse rows with the published column order and
// formatting rules.
type PulseWriter struct {
	logger    *slog.Logger
	csvWriter *CSVWriter
}

// NewPulseWriter creates a pulse report writer.
func NewPulseWriter(logger *slog.Logger) *PulseWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &PulseWriter{logger: logger, csvWriter: NewCSVWriter(logger)}
}

// Write persists the rows to outputPath. Rows are written in the order
// given; the aggregator already sorted them by (date, region, project type).
func (w *PulseWriter) Write(ctx context.Context, outputPath string, rows []domain.PulseRow) error {
	records := make([][]string, 0, len(rows))
	for i := range rows {
		records = append(records, rowToCSV(&rows[i]))
	}

	if err := w.csvWriter.WriteCSV(outputPath, WriteOptions{
		Headers: Headers(),
		Records: records,
	}); err != nil {
		return err
	}

	w.logger.InfoContext(ctx, "wrote pulse report",
		slog.String("path", outputPath),
		slog.Int("row_count", len(rows)))
	return nil
}

// Headers returns the output columns in their published order.
func Headers() []string {
	return []string{
		"date_utc",
		"region_code",
		"proj_type_code",
		"role_count_day",
		"lead_share_pct_day",
		"union_share_pct_day",
		"median_rate_day_usd",
		"sentiment_avg_day",
		"theme_ai_share_pct_day",
	}
}

// rowToCSV formats one pulse row. Shares carry one decimal, sentiment two;
// an absent median renders as an empty cell, not zero.
func rowToCSV(row *domain.PulseRow) []string {
	medianRate := ""
	if row.MedianRateDayUSD != nil {
		medianRate = strconv.Itoa(*row.MedianRateDayUSD)
	}

	return []string{
		row.DateUTC.Format("2006-01-02"),
		string(row.RegionCode),
		string(row.ProjTypeCode),
		strconv.Itoa(row.RoleCountDay),
		strconv.FormatFloat(row.LeadSharePctDay, 'f', 1, 64),
		strconv.FormatFloat(row.UnionSharePctDay, 'f', 1, 64),
		medianRate,
		strconv.FormatFloat(row.SentimentAvgDay, 'f', 2, 64),
		strconv.FormatFloat(row.ThemeAISharePctDay, 'f', 1, 64),
	}
}
