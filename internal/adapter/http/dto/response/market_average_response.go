package response

import (
	"time"

	"github.com/Fanelemenzi/Carfinity-sub000/internal/domain/entities"
	"github.com/Fanelemenzi/Carfinity-sub000/internal/usecase"
)

type QuoteOutlierResponse struct {
	QuoteID      string  `json:"quote_id"`
	ProviderName string  `json:"provider_name"`
	TotalCost    float64 `json:"total_cost"`
	Deviation    float64 `json:"deviation"`
}

type MarketAverageResponse struct {
	PartID          string                 `json:"part_id"`
	AverageTotal    float64                `json:"average_total_cost"`
	MinTotal        float64                `json:"min_total_cost"`
	MaxTotal        float64                `json:"max_total_cost"`
	AveragePart     float64                `json:"average_part_cost"`
	AverageLabor    float64                `json:"average_labor_cost"`
	StdDev          float64                `json:"std_deviation"`
	VariancePct     float64                `json:"variance_pct"`
	QuoteCount      int                    `json:"quote_count"`
	ConfidenceLevel int                    `json:"confidence_level"`
	Outliers        []QuoteOutlierResponse `json:"outliers"`
	CalculatedAt    time.Time              `json:"calculated_at"`
}

func FromMarketAverage(ma entities.MarketAverage) MarketAverageResponse {
	outliers := make([]QuoteOutlierResponse, 0, len(ma.Outliers))
	for _, o := range ma.Outliers {
		outliers = append(outliers, QuoteOutlierResponse(o))
	}
	return MarketAverageResponse{
		PartID:          ma.PartID,
		AverageTotal:    ma.AverageTotal,
		MinTotal:        ma.MinTotal,
		MaxTotal:        ma.MaxTotal,
		AveragePart:     ma.AveragePart,
		AverageLabor:    ma.AverageLabor,
		StdDev:          ma.StdDev,
		VariancePct:     ma.VariancePct,
		QuoteCount:      ma.QuoteCount,
		ConfidenceLevel: ma.ConfidenceLevel,
		Outliers:        outliers,
		CalculatedAt:    ma.CalculatedAt,
	}
}

type PriceRangeResponse struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type AssessmentStatsResponse struct {
	AssessmentID       string             `json:"assessment_id"`
	TotalParts         int                `json:"total_parts"`
	PartsWithAverages  int                `json:"parts_with_averages"`
	MarketAverageTotal float64            `json:"market_average_total"`
	PriceRange         PriceRangeResponse `json:"price_range"`
	ConfidenceLevel    float64            `json:"confidence_level"`
	VariancePct        float64            `json:"variance_pct"`
}

func FromAssessmentStats(s usecase.AssessmentStats) AssessmentStatsResponse {
	return AssessmentStatsResponse{
		AssessmentID:       s.AssessmentID,
		TotalParts:         s.TotalParts,
		PartsWithAverages:  s.PartsWithAverages,
		MarketAverageTotal: s.MarketAverageTotal,
		PriceRange:         PriceRangeResponse(s.PriceRange),
		ConfidenceLevel:    s.ConfidenceLevel,
		VariancePct:        s.VariancePct,
	}
}

type AssessmentErrorResponse struct {
	AssessmentID string `json:"assessment_id"`
	Message      string `json:"message"`
}

type BatchStatsResponse struct {
	Processed int                       `json:"processed"`
	Succeeded int                       `json:"succeeded"`
	Failed    int                       `json:"failed"`
	Errors    []AssessmentErrorResponse `json:"errors,omitempty"`
}

func FromBatchStats(b usecase.BatchStats) BatchStatsResponse {
	errs := make([]AssessmentErrorResponse, 0, len(b.Errors))
	for _, e := range b.Errors {
		errs = append(errs, AssessmentErrorResponse(e))
	}
	return BatchStatsResponse{
		Processed: b.Processed,
		Succeeded: b.Succeeded,
		Failed:    b.Failed,
		Errors:    errs,
	}
}

type CleanupStatsResponse struct {
	RequestsExpired  int `json:"requests_expired"`
	QuotesAssociated int `json:"quotes_associated"`
	QuotesDeleted    int `json:"quotes_deleted"`
}

func FromCleanupStats(s usecase.CleanupStats) CleanupStatsResponse {
	return CleanupStatsResponse(s)
}
