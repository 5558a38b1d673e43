// Package sentiment abstracts polarity scoring behind a narrow interface so
// the concrete engine is swappable without touching classification or
// aggregation logic.
package sentiment

import (
	"fmt"

	"github.com/jonreiter/govader"

	apperrors "castpulse/internal/errors"
)

// Scorer scores free text for polarity. Implementations return a value in
// [-1, 1]; any failure is reported as an error and callers substitute a
// neutral 0.0.
type Scorer interface {
	Score(text string) (float64, error)
}

// VaderScorer scores text with the VADER lexicon via govader. The compound
// score is already normalized to [-1, 1].
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer creates a scorer backed by the VADER lexicon.
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score implements Scorer. The engine can panic on pathological input, so
// that case is converted into an error for the caller's neutral fallback.
func (s *VaderScorer) Score(text string) (score float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			score = 0
			err = apperrors.NewSentimentError("polarity engine failure", fmt.Errorf("%v", r))
		}
	}()

	result := s.analyzer.PolarityScores(text)
	return result.Compound, nil
}

// StaticScorer returns a fixed score for every input. Test seam.
type StaticScorer struct {
	Value float64
	Err   error
}

// Score implements Scorer.
func (s StaticScorer) Score(string) (float64, error) {
	return s.Value, s.Err
}
