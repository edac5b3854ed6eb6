package entities

import "time"

// QuoteOutlier references a quote whose total cost sits unusually far
// from the part's quote-set mean.
type QuoteOutlier struct {
	QuoteID      string  `json:"quote_id"`
	ProviderName string  `json:"provider_name"`
	TotalCost    float64 `json:"total_cost"`
	Deviation    float64 `json:"deviation"`
}

// MarketAverage is the derived statistics record for one damaged part.
//
// Storage model (DynamoDB):
//   - PK: part_id
//
// The record is recomputed wholesale on every calculation call and
// upserted; it is never patched incrementally.
type MarketAverage struct {
	PartID          string         `json:"part_id"`
	AverageTotal    float64        `json:"average_total_cost"`
	MinTotal        float64        `json:"min_total_cost"`
	MaxTotal        float64        `json:"max_total_cost"`
	AveragePart     float64        `json:"average_part_cost"`
	AverageLabor    float64        `json:"average_labor_cost"`
	StdDev          float64        `json:"std_deviation"`
	VariancePct     float64        `json:"variance_pct"`
	QuoteCount      int            `json:"quote_count"`
	ConfidenceLevel int            `json:"confidence_level"`
	Outliers        []QuoteOutlier `json:"outliers,omitempty"`
	CalculatedAt    time.Time      `json:"calculated_at"`
}
