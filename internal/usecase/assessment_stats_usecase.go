package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Fanelemenzi/Carfinity-sub000/internal/domain/entities"
	"github.com/Fanelemenzi/Carfinity-sub000/internal/usecase/interfaces"
)

// PriceRange is the min/max spread across a set of market averages.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// AssessmentStats is the assessment-level rollup of per-part market
// averages. Confidence and variance are unweighted arithmetic means over
// the parts that had enough data.
type AssessmentStats struct {
	AssessmentID       string     `json:"assessment_id"`
	TotalParts         int        `json:"total_parts"`
	PartsWithAverages  int        `json:"parts_with_averages"`
	MarketAverageTotal float64    `json:"market_average_total"`
	PriceRange         PriceRange `json:"price_range"`
	ConfidenceLevel    float64    `json:"confidence_level"`
	VariancePct        float64    `json:"variance_pct"`
}

// AssessmentError is one failed item in a batch refresh report.
type AssessmentError struct {
	AssessmentID string `json:"assessment_id"`
	Message      string `json:"message"`
}

// BatchStats reports a batch market-average refresh.
type BatchStats struct {
	Processed int               `json:"processed"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Errors    []AssessmentError `json:"errors,omitempty"`
}

// IAssessmentStatsUseCase aggregates per-part statistics per assessment.

type IAssessmentStatsUseCase interface {
	CalculateAssessmentMarketAverage(ctx context.Context, assessmentID string) (AssessmentStats, error)
	BatchUpdateMarketAverages(ctx context.Context, assessmentIDs []string, forceRecalculate bool) (BatchStats, error)
}

type AssessmentStatsUseCase struct {
	assessmentRepo interfaces.IAssessmentRepository
	marketRepo     interfaces.IMarketAverageRepository
	stats          IMarketStatsUseCase
	completion     ICompletionUseCase
}

var _ IAssessmentStatsUseCase = (*AssessmentStatsUseCase)(nil)

func NewAssessmentStatsUseCase(
	assessmentRepo interfaces.IAssessmentRepository,
	marketRepo interfaces.IMarketAverageRepository,
	stats IMarketStatsUseCase,
	completion ICompletionUseCase,
) *AssessmentStatsUseCase {
	return &AssessmentStatsUseCase{
		assessmentRepo: assessmentRepo,
		marketRepo:     marketRepo,
		stats:          stats,
		completion:     completion,
	}
}

// CalculateAssessmentMarketAverage rolls the assessment's per-part market
// averages into assessment totals, reusing stored averages where present.
// Parts without enough quotes are skipped from the totals but still count
// toward TotalParts. The quote summary record is upserted (created lazily
// on first aggregation) with the fresh total.
func (u *AssessmentStatsUseCase) CalculateAssessmentMarketAverage(ctx context.Context, assessmentID string) (AssessmentStats, error) {
	return u.calculate(ctx, assessmentID, false)
}

func (u *AssessmentStatsUseCase) calculate(ctx context.Context, assessmentID string, force bool) (AssessmentStats, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return AssessmentStats{}, ErrInvalidAssessmentID
	}

	parts, err := u.assessmentRepo.ListDamagedParts(ctx, assessmentID)
	if err != nil {
		return AssessmentStats{}, err
	}

	stats := AssessmentStats{AssessmentID: assessmentID, TotalParts: len(parts)}
	var confidenceSum, varianceSum float64

	for _, part := range parts {
		ma, err := u.partAverage(ctx, part.ID, force)
		if errors.Is(err, ErrInsufficientData) {
			continue
		}
		if err != nil {
			return AssessmentStats{}, err
		}

		stats.MarketAverageTotal += ma.AverageTotal
		confidenceSum += float64(ma.ConfidenceLevel)
		varianceSum += ma.VariancePct
		if stats.PartsWithAverages == 0 {
			stats.PriceRange = PriceRange{Min: ma.MinTotal, Max: ma.MaxTotal}
		} else {
			if ma.MinTotal < stats.PriceRange.Min {
				stats.PriceRange.Min = ma.MinTotal
			}
			if ma.MaxTotal > stats.PriceRange.Max {
				stats.PriceRange.Max = ma.MaxTotal
			}
		}
		stats.PartsWithAverages++
	}

	if stats.PartsWithAverages > 0 {
		n := float64(stats.PartsWithAverages)
		stats.ConfidenceLevel = confidenceSum / n
		stats.VariancePct = varianceSum / n
	}

	if err := u.refreshSummary(ctx, assessmentID, stats.MarketAverageTotal); err != nil {
		return AssessmentStats{}, err
	}
	return stats, nil
}

// partAverage resolves a part's market average, reusing the stored record
// unless a recalculation is forced or no record exists yet.
func (u *AssessmentStatsUseCase) partAverage(ctx context.Context, partID string, force bool) (entities.MarketAverage, error) {
	if !force {
		ma, err := u.marketRepo.GetByPartID(ctx, partID)
		if err != nil {
			return entities.MarketAverage{}, err
		}
		if ma.PartID != "" {
			return ma, nil
		}
	}
	return u.stats.CalculateMarketAverage(ctx, partID)
}

func (u *AssessmentStatsUseCase) refreshSummary(ctx context.Context, assessmentID string, total float64) error {
	existing, err := u.assessmentRepo.GetQuoteSummary(ctx, assessmentID)
	if err != nil {
		return err
	}
	summary := entities.AssessmentQuoteSummary{
		AssessmentID:       assessmentID,
		MarketAverageTotal: total,
		CollectionStatus:   existing.CollectionStatus,
		UpdatedAt:          time.Now().UTC(),
	}
	if summary.CollectionStatus == "" {
		summary.CollectionStatus = entities.CollectionStatusNotStarted
	}
	_, err = u.assessmentRepo.UpsertQuoteSummary(ctx, summary)
	return err
}

// BatchUpdateMarketAverages refreshes many assessments, each in isolation:
// one failing assessment lands in the error report instead of aborting the
// batch. An empty id list means every assessment known to the damaged
// parts table. After each rollup the assessment's completion snapshot is
// recomputed so the collection flag stays current.
func (u *AssessmentStatsUseCase) BatchUpdateMarketAverages(ctx context.Context, assessmentIDs []string, forceRecalculate bool) (BatchStats, error) {
	if len(assessmentIDs) == 0 {
		ids, err := u.assessmentRepo.ListAssessmentIDs(ctx)
		if err != nil {
			return BatchStats{}, err
		}
		assessmentIDs = ids
	}

	batch := BatchStats{}
	for _, id := range assessmentIDs {
		if err := ctx.Err(); err != nil {
			return batch, err
		}
		batch.Processed++

		if _, err := u.calculate(ctx, id, forceRecalculate); err != nil {
			batch.Failed++
			batch.Errors = append(batch.Errors, AssessmentError{AssessmentID: id, Message: err.Error()})
			continue
		}
		if _, err := u.completion.CheckCompletion(ctx, id); err != nil {
			log.Printf("[batch] completion refresh failed for assessment %s: %v", id, err)
		}
		batch.Succeeded++
	}
	return batch, nil
}
