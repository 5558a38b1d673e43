package classify

import (
	"castpulse/pkg/contracts/domain"
)

// regionEntry pairs a region code with its keyword set. Table order is the
// tie-break rule: the first entry whose keyword substring-matches wins, so
// a location mentioning both "london" and "toronto" resolves to NA.
type regionEntry struct {
	Code     domain.RegionCode
	Keywords []string
}

// regionTable is ordered; do not sort or reorder entries.
var regionTable = []regionEntry{
	{domain.RegionNA, []string{
		"us", "united states", "canada", "mexico", "los angeles",
		"atlanta", "chicago", "toronto", "vancouver",
	}},
	{domain.RegionEU, []string{
		"uk", "united kingdom", "germany", "france", "italy",
		"spain", "netherlands", "london", "paris", "berlin",
	}},
	{domain.RegionAP, []string{
		"india", "china", "japan", "korea", "australia",
		"singapore", "hong kong", "new zealand", "thailand",
	}},
	{domain.RegionLA, []string{
		"brazil", "argentina", "chile", "colombia", "peru",
		"venezuela", "mexico city",
	}},
}

// projectTypeEntry pairs a project-type code with its keyword set.
type projectTypeEntry struct {
	Code     domain.ProjectTypeCode
	Keywords []string
}

// projectTypeTable keyword sets are disjoint in practice; V is the fallback
// and carries no keywords of its own.
var projectTypeTable = []projectTypeEntry{
	{domain.ProjectFilm, []string{"film", "movie", "feature"}},
	{domain.ProjectTV, []string{"tv", "series", "streaming", "show", "episode"}},
	{domain.ProjectCommercial, []string{"commercial", "advertisement", "ad"}},
}

// leadKeywords mark a role as a lead/principal part.
var leadKeywords = []string{"lead", "principal", "main", "starring"}

// unionKeywords indicate union coverage; unionNegation vetoes them.
var (
	unionKeywords = []string{"sag", "aftra", "equity", "union"}
	unionNegation = "non-union"
)

// aiThemeKeywords flag AI/robotics-themed role descriptions.
var aiThemeKeywords = []string{
	"ai", "robot", "android", "artificial intelligence", "cyborg",
	"machine learning",
}
