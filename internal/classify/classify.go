// Package classify holds the field classifiers that turn the free-text
// fields of a casting listing into normalized categorical and numeric
// signals. All classifiers are pure, total functions: missing or
// unparseable input resolves to a documented default, never an error.
//
// The keyword taxonomies live in tables.go as ordered (category, keyword
// set) pairs so the priority rules are visible and testable as data.
package classify

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"castpulse/internal/sentiment"
	"castpulse/pkg/contracts/domain"
)

// numberPattern matches the first numeric token in a rate string: digits
// with an optional decimal part. Units, currency symbols and ranges are
// deliberately not interpreted.
var numberPattern = regexp.MustCompile(`\d+\.?\d*`)

// MapRegion maps free-text location to a region code. The first region in
// table order with a substring match wins; no match defaults to NA.
func MapRegion(location string) domain.RegionCode {
	loc := strings.ToLower(location)
	for _, entry := range regionTable {
		if containsAny(loc, entry.Keywords) {
			return entry.Code
		}
	}
	return domain.RegionNA
}

// MapProjectType maps free-text project type to a code, defaulting to V.
func MapProjectType(projectType string) domain.ProjectTypeCode {
	pt := strings.ToLower(projectType)
	for _, entry := range projectTypeTable {
		if containsAny(pt, entry.Keywords) {
			return entry.Code
		}
	}
	return domain.ProjectVariety
}

// ExtractRate scans the rate text for the first numeric token and parses it
// as a float. Returns (0, false) when no numeric token is present.
func ExtractRate(text string) (float64, bool) {
	token := numberPattern.FindString(text)
	if token == "" {
		return 0, false
	}
	val, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return val, true
}

// IsLead reports whether the role type marks a lead/principal part.
func IsLead(roleType string) bool {
	return containsAny(strings.ToLower(roleType), leadKeywords)
}

// IsUnion reports whether the union text indicates union coverage. The
// literal "non-union" vetoes any positive keyword in the same text.
func IsUnion(unionStatus string) bool {
	status := strings.ToLower(unionStatus)
	if strings.Contains(status, unionNegation) {
		return false
	}
	return containsAny(status, unionKeywords)
}

// HasAITheme reports whether the description carries an AI/robotics theme.
func HasAITheme(text string) bool {
	return containsAny(strings.ToLower(text), aiThemeKeywords)
}

// ScoreSentiment scores the description with the given polarity engine and
// quantizes the result to multiples of step. Empty input returns 0.0
// without invoking the engine; engine failures also resolve to 0.0.
func ScoreSentiment(scorer sentiment.Scorer, text string, step float64) float64 {
	if text == "" {
		return 0.0
	}
	polarity, err := scorer.Score(text)
	if err != nil {
		return 0.0
	}
	return Quantize(Clamp(polarity, -1.0, 1.0), step)
}

// Quantize snaps v to the nearest multiple of step (half away from zero).
func Quantize(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Round(v/step) * step
}

// Clamp restricts v to the closed interval [min, max]. It guards share and
// sentiment outputs against floating-point drift outside valid ranges.
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// containsAny reports whether s contains any of the given substrings.
func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
