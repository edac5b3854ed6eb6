package entities

import "time"

// ProviderType identifies which kind of external party priced the quote.

type ProviderType string

const (
	ProviderTypeAssessor    ProviderType = "assessor"
	ProviderTypeDealer      ProviderType = "dealer"
	ProviderTypeIndependent ProviderType = "independent"
	ProviderTypeNetwork     ProviderType = "network"
)

// ValidProviderType reports whether s is one of the four provider types.
func ValidProviderType(s string) bool {
	switch ProviderType(s) {
	case ProviderTypeAssessor, ProviderTypeDealer, ProviderTypeIndependent, ProviderTypeNetwork:
		return true
	}
	return false
}

// PartType classifies the replacement part a provider priced.

type PartType string

const (
	PartTypeOEM           PartType = "oem"
	PartTypeOEMEquivalent PartType = "oem_equivalent"
	PartTypeAftermarket   PartType = "aftermarket"
	PartTypeUsed          PartType = "used"
)

// ValidPartType reports whether s is one of the enumerated part types.
func ValidPartType(s string) bool {
	switch PartType(s) {
	case PartTypeOEM, PartTypeOEMEquivalent, PartTypeAftermarket, PartTypeUsed:
		return true
	}
	return false
}

// QuoteStatus marks whether a quote still participates in market statistics.

type QuoteStatus string

const (
	QuoteStatusValidated  QuoteStatus = "validated"
	QuoteStatusSuperseded QuoteStatus = "superseded"
)

// Quote is one provider's priced response to a quote request.
//
// Storage model (DynamoDB):
//   - PK: request_id
//   - SK: provider_key (provider_type "#" provider_name)
//   - GSI1 (part_id-index): part_id
//
// The composite key enforces "at most one quote per (request, provider
// type, provider name)": a repeat submission from the same provider
// overwrites the row instead of duplicating it.
//
// Monetary representation:
//   - Costs are validated as 2-decimal fixed-point values at the boundary
//     and stored as float64, matching the rest of the platform.
type Quote struct {
	ID                  string       `json:"id"`
	RequestID           string       `json:"request_id"`
	PartID              string       `json:"part_id"`
	ProviderType        ProviderType `json:"provider_type"`
	ProviderName        string       `json:"provider_name"`
	PartCost            float64      `json:"part_cost"`
	LaborCost           float64      `json:"labor_cost"`
	PaintCost           float64      `json:"paint_cost"`
	AdditionalCosts     float64      `json:"additional_costs"`
	TotalCost           float64      `json:"total_cost"`
	PartType            PartType     `json:"part_type,omitempty"`
	DeliveryDays        int          `json:"estimated_delivery_days"`
	CompletionDays      int          `json:"estimated_completion_days"`
	PartWarrantyMonths  int          `json:"part_warranty_months,omitempty"`
	LaborWarrantyMonths int          `json:"labor_warranty_months,omitempty"`
	ConfidenceScore     int          `json:"confidence_score,omitempty"`
	ValidUntil          time.Time    `json:"valid_until"`
	Notes               string       `json:"notes,omitempty"`
	Status              QuoteStatus  `json:"status"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}

// IsUsableAt reports whether the quote should feed market statistics:
// still validated and not past its validity timestamp.
func (q Quote) IsUsableAt(now time.Time) bool {
	return q.Status == QuoteStatusValidated && q.ValidUntil.After(now)
}
