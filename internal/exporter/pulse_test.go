package exporter

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"castpulse/pkg/contracts/domain"
)

func TestHeaders_Order(t *testing.T) {
	assert.Equal(t, []string{
		"date_utc",
		"region_code",
		"proj_type_code",
		"role_count_day",
		"lead_share_pct_day",
		"union_share_pct_day",
		"median_rate_day_usd",
		"sentiment_avg_day",
		"theme_ai_share_pct_day",
	}, Headers())
}

func TestPulseWriter_Write(t *testing.T) {
	rate := 1250
	rows := []domain.PulseRow{
		{
			DateUTC:            time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			RegionCode:         domain.RegionNA,
			ProjTypeCode:       domain.ProjectFilm,
			RoleCountDay:       5,
			LeadSharePctDay:    0.4,
			UnionSharePctDay:   1.0,
			ThemeAISharePctDay: 0.0,
			MedianRateDayUSD:   &rate,
			SentimentAvgDay:    0.18,
		},
		{
			DateUTC:            time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC),
			RegionCode:         domain.RegionEU,
			ProjTypeCode:       domain.ProjectTV,
			RoleCountDay:       8,
			LeadSharePctDay:    0.1,
			UnionSharePctDay:   0.5,
			ThemeAISharePctDay: 0.3,
			MedianRateDayUSD:   nil,
			SentimentAvgDay:    -0.25,
		},
	}

	path := filepath.Join(t.TempDir(), "pulse.csv")
	writer := NewPulseWriter(nil)
	require.NoError(t, writer.Write(context.Background(), path, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "2024-03-15,NA,F,5,0.4,1.0,1250,0.18,0.0", lines[1])
	// absent median renders as an empty cell, never zero
	assert.Equal(t, "2024-03-16,EU,T,8,0.1,0.5,,-0.25,0.3", lines[2])
}

func TestPulseWriter_EmptyRowsWritesHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pulse.csv")
	writer := NewPulseWriter(nil)
	require.NoError(t, writer.Write(context.Background(), path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(Headers(), ","), strings.TrimSpace(string(data)))
}

func TestCSVWriter_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "out.csv")
	writer := NewCSVWriter(nil)

	err := writer.WriteCSV(path, WriteOptions{
		Headers: []string{"a", "b"},
		Records: [][]string{{"1", "2"}},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(data))
}

func TestCSVWriter_BOMPrefix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	writer := NewCSVWriter(nil)

	err := writer.WriteCSV(path, WriteOptions{
		Headers:   []string{"a"},
		BOMPrefix: true,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])
}

func TestCSVWriter_UnwritableDestination(t *testing.T) {
	writer := NewCSVWriter(nil)
	err := writer.WriteCSV(filepath.Join(t.TempDir(), "missing", "\x00bad", "out.csv"), WriteOptions{})
	assert.Error(t, err)
}
