package domain

import (
	"time"
)

// RegionCode represents a normalized geographic region
type RegionCode string

const (
	RegionNA RegionCode = "NA" // North America (default)
	RegionEU RegionCode = "EU" // Europe
	RegionAP RegionCode = "AP" // Asia-Pacific
	RegionLA RegionCode = "LA" // Latin America
)

// ProjectTypeCode represents a normalized project category
type ProjectTypeCode string

const (
	ProjectFilm       ProjectTypeCode = "F"
	ProjectTV         ProjectTypeCode = "T"
	ProjectCommercial ProjectTypeCode = "C"
	ProjectVariety    ProjectTypeCode = "V" // default when nothing matches
)

// RawRecord represents one casting listing exactly as ingested.
// All fields are free text; no invariants are enforced beyond presence.
type RawRecord struct {
	PostedDate      string `json:"posted_date" csv:"posted_date"`
	WorkLocation    string `json:"work_location" csv:"work_location"`
	ProjectType     string `json:"project_type" csv:"project_type"`
	RoleType        string `json:"role_type" csv:"role_type"`
	Union           string `json:"union" csv:"union"`
	Rate            string `json:"rate" csv:"rate"`
	RoleDescription string `json:"role_description" csv:"role_description"`
}

// DerivedRecord is a RawRecord with all classifier signals computed.
// It is one-to-one with its RawRecord and never mutated after creation.
type DerivedRecord struct {
	Raw RawRecord `json:"raw"`

	// DateUTC is the parsed posting date. HasDate is false when the raw
	// date was unparseable; such records never contribute to any bucket.
	DateUTC time.Time `json:"date_utc"`
	HasDate bool      `json:"has_date"`

	RegionCode   RegionCode      `json:"region_code"`
	ProjTypeCode ProjectTypeCode `json:"proj_type_code"`
	IsLead       bool            `json:"is_lead"`
	IsUnion      bool            `json:"is_union"`

	// RateVal is the first numeric token found in the rate text.
	// HasRate is false when no numeric token was present.
	RateVal float64 `json:"rate_val"`
	HasRate bool    `json:"has_rate"`

	// Sentiment is the polarity score in [-1, 1], quantized to 0.05 steps.
	Sentiment float64 `json:"sentiment"`
	HasAI     bool    `json:"has_ai"`
}

// BucketKey is the composite grouping key for daily aggregation.
type BucketKey struct {
	DateUTC      time.Time       `json:"date_utc"`
	RegionCode   RegionCode      `json:"region_code"`
	ProjTypeCode ProjectTypeCode `json:"proj_type_code"`
}

// Before reports whether k sorts ahead of other in the canonical
// (date, region, project type) output order.
func (k BucketKey) Before(other BucketKey) bool {
	if !k.DateUTC.Equal(other.DateUTC) {
		return k.DateUTC.Before(other.DateUTC)
	}
	if k.RegionCode != other.RegionCode {
		return k.RegionCode < other.RegionCode
	}
	return k.ProjTypeCode < other.ProjTypeCode
}

// PulseRow is one aggregated output bucket. Rows are created once by the
// aggregator from a complete group of derived records and are immutable.
type PulseRow struct {
	DateUTC      time.Time       `json:"date_utc"`
	RegionCode   RegionCode      `json:"region_code"`
	ProjTypeCode ProjectTypeCode `json:"proj_type_code"`

	RoleCountDay       int     `json:"role_count_day" validate:"min=5"`
	LeadSharePctDay    float64 `json:"lead_share_pct_day" validate:"min=0,max=1"`
	UnionSharePctDay   float64 `json:"union_share_pct_day" validate:"min=0,max=1"`
	ThemeAISharePctDay float64 `json:"theme_ai_share_pct_day" validate:"min=0,max=1"`

	// MedianRateDayUSD is an exact multiple of the rate quantum (250 USD).
	// Nil when no record in the bucket carried a usable rate.
	MedianRateDayUSD *int `json:"median_rate_day_usd,omitempty"`

	SentimentAvgDay float64 `json:"sentiment_avg_day" validate:"min=-1,max=1"`
}

// Key returns the bucket key this row was aggregated under.
func (r PulseRow) Key() BucketKey {
	return BucketKey{DateUTC: r.DateUTC, RegionCode: r.RegionCode, ProjTypeCode: r.ProjTypeCode}
}
