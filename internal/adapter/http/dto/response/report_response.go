package response

import (
	"time"

	"github.com/Fanelemenzi/Carfinity-sub000/internal/usecase"
)

type ReportErrorResponse struct {
	Reason          string `json:"reason"`
	PartName        string `json:"part_name"`
	AvailableQuotes int    `json:"available_quotes"`
}

type PartReportResponse struct {
	PartID         string                 `json:"part_id"`
	PartName       string                 `json:"part_name"`
	EstimatedRange PriceRangeResponse     `json:"estimated_range"`
	MarketAverage  *MarketAverageResponse `json:"market_average,omitempty"`
	Error          *ReportErrorResponse   `json:"error,omitempty"`
	GeneratedAt    time.Time              `json:"generated_at"`
}

func FromPartReport(r usecase.PartReport) PartReportResponse {
	out := PartReportResponse{
		PartID:         r.PartID,
		PartName:       r.PartName,
		EstimatedRange: PriceRangeResponse(r.EstimatedRange),
		GeneratedAt:    r.GeneratedAt,
	}
	if r.MarketAverage != nil {
		ma := FromMarketAverage(*r.MarketAverage)
		out.MarketAverage = &ma
	}
	if r.Error != nil {
		e := ReportErrorResponse(*r.Error)
		out.Error = &e
	}
	return out
}

type QuoteSummaryResponse struct {
	AssessmentID       string    `json:"assessment_id"`
	MarketAverageTotal float64   `json:"market_average_total"`
	CollectionStatus   string    `json:"collection_status"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type AssessmentReportResponse struct {
	AssessmentID string                  `json:"assessment_id"`
	Stats        AssessmentStatsResponse `json:"stats"`
	Summary      *QuoteSummaryResponse   `json:"summary,omitempty"`
	Parts        []PartReportResponse    `json:"parts"`
	GeneratedAt  time.Time               `json:"generated_at"`
}

func FromAssessmentReport(r usecase.AssessmentReport) AssessmentReportResponse {
	out := AssessmentReportResponse{
		AssessmentID: r.AssessmentID,
		Stats:        FromAssessmentStats(r.Stats),
		Parts:        make([]PartReportResponse, 0, len(r.Parts)),
		GeneratedAt:  r.GeneratedAt,
	}
	for _, p := range r.Parts {
		out.Parts = append(out.Parts, FromPartReport(p))
	}
	if r.Summary != nil {
		out.Summary = &QuoteSummaryResponse{
			AssessmentID:       r.Summary.AssessmentID,
			MarketAverageTotal: r.Summary.MarketAverageTotal,
			CollectionStatus:   string(r.Summary.CollectionStatus),
			UpdatedAt:          r.Summary.UpdatedAt,
		}
	}
	return out
}
