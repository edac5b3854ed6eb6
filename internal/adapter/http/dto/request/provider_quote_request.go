package request

import "github.com/Fanelemenzi/Carfinity-sub000/internal/usecase"

// ProviderQuoteRequest is the integration-facing payload a provider (or
// the gateway acting for one) submits against a quote request. Fields are
// pointers so the validation engine can tell absent from zero; validation
// itself happens in the usecase, not via binding tags, because missing
// fields must come back as a structured error list rather than a 400.
type ProviderQuoteRequest struct {
	ProviderType            *string `json:"provider_type"`
	ProviderName            *string `json:"provider_name"`
	PartCost                *string `json:"part_cost"`
	LaborCost               *string `json:"labor_cost"`
	PaintCost               *string `json:"paint_cost"`
	AdditionalCosts         *string `json:"additional_costs"`
	TotalCost               *string `json:"total_cost"`
	PartType                *string `json:"part_type"`
	EstimatedDeliveryDays   *int    `json:"estimated_delivery_days"`
	EstimatedCompletionDays *int    `json:"estimated_completion_days"`
	PartWarrantyMonths      *string `json:"part_warranty_months"`
	LaborWarrantyMonths     *string `json:"labor_warranty_months"`
	ConfidenceScore         *int    `json:"confidence_score"`
	ValidUntil              *string `json:"valid_until"`
	Notes                   string  `json:"notes"`
}

func (r ProviderQuoteRequest) ToPayload() usecase.ProviderQuotePayload {
	return usecase.ProviderQuotePayload{
		ProviderType:            r.ProviderType,
		ProviderName:            r.ProviderName,
		PartCost:                r.PartCost,
		LaborCost:               r.LaborCost,
		PaintCost:               r.PaintCost,
		AdditionalCosts:         r.AdditionalCosts,
		TotalCost:               r.TotalCost,
		PartType:                r.PartType,
		EstimatedDeliveryDays:   r.EstimatedDeliveryDays,
		EstimatedCompletionDays: r.EstimatedCompletionDays,
		PartWarrantyMonths:      r.PartWarrantyMonths,
		LaborWarrantyMonths:     r.LaborWarrantyMonths,
		ConfidenceScore:         r.ConfidenceScore,
		ValidUntil:              r.ValidUntil,
		Notes:                   r.Notes,
	}
}

// ValidateQuoteRequest is the dry-run validation payload: the quote plus
// the damaged part to check it against.
type ValidateQuoteRequest struct {
	PartID string               `json:"part_id" binding:"required"`
	Quote  ProviderQuoteRequest `json:"quote"`
}
