package entities

import "time"

// DamagedPart is owned by the assessment service; this engine only reads
// it for the estimated cost range used during validation and statistics.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (assessment_id-index): assessment_id
type DamagedPart struct {
	ID               string  `json:"id"`
	AssessmentID     string  `json:"assessment_id"`
	Name             string  `json:"name"`
	MinEstimatedCost float64 `json:"min_estimated_cost"`
	MaxEstimatedCost float64 `json:"max_estimated_cost"`
}

// CollectionStatus is the externally visible quote-collection flag on an
// assessment's quote summary record.

type CollectionStatus string

const (
	CollectionStatusNotStarted CollectionStatus = "not_started"
	CollectionStatusInProgress CollectionStatus = "in_progress"
	CollectionStatusCompleted  CollectionStatus = "completed"
)

// AssessmentQuoteSummary extends an assessment with quote-engine state:
// the assessment-level market-average total and the collection status.
//
// Storage model (DynamoDB):
//   - PK: assessment_id
//
// The record is created lazily on first aggregation; assessments that
// predate the extension have no row, and status writes must skip them
// silently.
type AssessmentQuoteSummary struct {
	AssessmentID       string           `json:"assessment_id"`
	MarketAverageTotal float64          `json:"market_average_total"`
	CollectionStatus   CollectionStatus `json:"collection_status"`
	UpdatedAt          time.Time        `json:"updated_at"`
}
