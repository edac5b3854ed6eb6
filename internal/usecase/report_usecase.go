package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Fanelemenzi/Carfinity-sub000/internal/domain/entities"
	"github.com/Fanelemenzi/Carfinity-sub000/internal/usecase/interfaces"
)

// ReportError is the structured payload a report carries when a part has
// too little data for statistics. Missing data is an expected condition
// and never surfaces as an error return.
type ReportError struct {
	Reason          string `json:"reason"`
	PartName        string `json:"part_name"`
	AvailableQuotes int    `json:"available_quotes"`
}

// PartReport presents one damaged part's market statistics.
type PartReport struct {
	PartID         string                  `json:"part_id"`
	PartName       string                  `json:"part_name"`
	EstimatedRange PriceRange              `json:"estimated_range"`
	MarketAverage  *entities.MarketAverage `json:"market_average,omitempty"`
	Error          *ReportError            `json:"error,omitempty"`
	GeneratedAt    time.Time               `json:"generated_at"`
}

// AssessmentReport composes the assessment rollup with per-part sections.
type AssessmentReport struct {
	AssessmentID string                           `json:"assessment_id"`
	Stats        AssessmentStats                  `json:"stats"`
	Summary      *entities.AssessmentQuoteSummary `json:"summary,omitempty"`
	Parts        []PartReport                     `json:"parts"`
	GeneratedAt  time.Time                        `json:"generated_at"`
}

// IReportUseCase is the read/compose presentation layer over the
// statistics engine and the assessment aggregator.

type IReportUseCase interface {
	PartReport(ctx context.Context, partID string) (PartReport, error)
	AssessmentReport(ctx context.Context, assessmentID string) (AssessmentReport, error)
}

type ReportUseCase struct {
	quoteRepo       interfaces.IQuoteRepository
	assessmentRepo  interfaces.IAssessmentRepository
	marketRepo      interfaces.IMarketAverageRepository
	stats           IMarketStatsUseCase
	assessmentStats IAssessmentStatsUseCase
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	quoteRepo interfaces.IQuoteRepository,
	assessmentRepo interfaces.IAssessmentRepository,
	marketRepo interfaces.IMarketAverageRepository,
	stats IMarketStatsUseCase,
	assessmentStats IAssessmentStatsUseCase,
) *ReportUseCase {
	return &ReportUseCase{
		quoteRepo:       quoteRepo,
		assessmentRepo:  assessmentRepo,
		marketRepo:      marketRepo,
		stats:           stats,
		assessmentStats: assessmentStats,
	}
}

// PartReport builds the market report for one damaged part. Insufficient
// quote data produces an embedded error payload with the part name and
// the number of usable quotes; only storage failures return an error.
func (u *ReportUseCase) PartReport(ctx context.Context, partID string) (PartReport, error) {
	partID = strings.TrimSpace(partID)
	if partID == "" {
		return PartReport{}, ErrInvalidPartID
	}

	part, err := u.assessmentRepo.GetDamagedPart(ctx, partID)
	if err != nil {
		return PartReport{}, err
	}
	if part.ID == "" {
		return PartReport{}, ErrPartNotFound
	}
	return u.reportForPart(ctx, part)
}

func (u *ReportUseCase) reportForPart(ctx context.Context, part entities.DamagedPart) (PartReport, error) {
	report := PartReport{
		PartID:         part.ID,
		PartName:       part.Name,
		EstimatedRange: PriceRange{Min: part.MinEstimatedCost, Max: part.MaxEstimatedCost},
		GeneratedAt:    time.Now().UTC(),
	}

	ma, err := u.marketRepo.GetByPartID(ctx, part.ID)
	if err != nil {
		return PartReport{}, err
	}
	if ma.PartID == "" {
		// Market averages are created on demand.
		ma, err = u.stats.CalculateMarketAverage(ctx, part.ID)
		if errors.Is(err, ErrInsufficientData) {
			available, countErr := u.countUsableQuotes(ctx, part.ID)
			if countErr != nil {
				return PartReport{}, countErr
			}
			report.Error = &ReportError{
				Reason:          "insufficient_data",
				PartName:        part.Name,
				AvailableQuotes: available,
			}
			return report, nil
		}
		if err != nil {
			return PartReport{}, err
		}
	}

	report.MarketAverage = &ma
	return report, nil
}

func (u *ReportUseCase) countUsableQuotes(ctx context.Context, partID string) (int, error) {
	quotes, err := u.quoteRepo.ListByPartID(ctx, partID)
	if err != nil {
		return 0, err
	}
	now := time.Now()
	count := 0
	for _, q := range quotes {
		if q.IsUsableAt(now) {
			count++
		}
	}
	return count, nil
}

// AssessmentReport composes the assessment-level rollup, the quote
// summary record and a per-part section for every damaged part. Parts
// without enough data appear with their error payload instead of being
// dropped.
func (u *ReportUseCase) AssessmentReport(ctx context.Context, assessmentID string) (AssessmentReport, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return AssessmentReport{}, ErrInvalidAssessmentID
	}

	stats, err := u.assessmentStats.CalculateAssessmentMarketAverage(ctx, assessmentID)
	if err != nil {
		return AssessmentReport{}, err
	}

	parts, err := u.assessmentRepo.ListDamagedParts(ctx, assessmentID)
	if err != nil {
		return AssessmentReport{}, err
	}

	report := AssessmentReport{
		AssessmentID: assessmentID,
		Stats:        stats,
		Parts:        make([]PartReport, 0, len(parts)),
		GeneratedAt:  time.Now().UTC(),
	}

	for _, part := range parts {
		pr, err := u.reportForPart(ctx, part)
		if err != nil {
			return AssessmentReport{}, err
		}
		report.Parts = append(report.Parts, pr)
	}

	summary, err := u.assessmentRepo.GetQuoteSummary(ctx, assessmentID)
	if err != nil {
		return AssessmentReport{}, err
	}
	if summary.AssessmentID != "" {
		report.Summary = &summary
	}
	return report, nil
}
