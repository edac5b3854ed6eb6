package response

import "github.com/Fanelemenzi/Carfinity-sub000/internal/usecase"

type ValidationResponse struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func FromValidationResult(vr usecase.ValidationResult) ValidationResponse {
	return ValidationResponse{IsValid: vr.Valid, Errors: vr.Errors, Warnings: vr.Warnings}
}

type CompletionResponse struct {
	IsComplete       bool    `json:"is_complete"`
	CompletionPct    float64 `json:"completion_percentage"`
	TotalRequests    int     `json:"total_requests"`
	ReceivedQuotes   int     `json:"received_quotes"`
	PendingRequests  int     `json:"pending_requests"`
	ExpiredRequests  int     `json:"expired_requests"`
	ExpectedQuotes   int     `json:"expected_quotes"`
	PartsWithQuotes  int     `json:"parts_with_quotes"`
	TotalParts       int     `json:"total_parts"`
	CollectionStatus string  `json:"collection_status"`
}

func FromCompletionStatus(cs usecase.CompletionStatus) CompletionResponse {
	return CompletionResponse{
		IsComplete:       cs.IsComplete,
		CompletionPct:    cs.CompletionPct,
		TotalRequests:    cs.TotalRequests,
		ReceivedQuotes:   cs.ReceivedQuotes,
		PendingRequests:  cs.PendingRequests,
		ExpiredRequests:  cs.ExpiredRequests,
		ExpectedQuotes:   cs.ExpectedQuotes,
		PartsWithQuotes:  cs.PartsWithQuotes,
		TotalParts:       cs.TotalParts,
		CollectionStatus: cs.CollectionStatus,
	}
}

type IngestResponse struct {
	Success    bool                `json:"success"`
	QuoteID    string              `json:"quote_id,omitempty"`
	Errors     []string            `json:"errors,omitempty"`
	Warnings   []string            `json:"warnings,omitempty"`
	Completion *CompletionResponse `json:"completion_status,omitempty"`
}

func FromIngestResult(res usecase.IngestResult) IngestResponse {
	out := IngestResponse{
		Success:  res.Success,
		QuoteID:  res.QuoteID,
		Errors:   res.Errors,
		Warnings: res.Warnings,
	}
	if res.Completion != nil {
		c := FromCompletionStatus(*res.Completion)
		out.Completion = &c
	}
	return out
}
