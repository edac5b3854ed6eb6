package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/Fanelemenzi/Carfinity-sub000/internal/domain/entities"
	"github.com/Fanelemenzi/Carfinity-sub000/internal/usecase/interfaces"
)

var ErrInsufficientData = errors.New("not enough quotes for market statistics")

// CountBase maps a minimum quote count to a base confidence score.
type CountBase struct {
	MinCount int
	Base     int
}

// VarianceBand maps a variance-percentage ceiling to a confidence
// adjustment.
type VarianceBand struct {
	MaxPct     float64
	Adjustment int
}

// StatsConfig carries the statistics engine's constants. The defaults are
// load-bearing: stored market averages were produced with them, so any
// change breaks numeric compatibility with existing data.
type StatsConfig struct {
	// MinQuotes is the minimum number of usable quotes required to
	// compute a market average at all.
	MinQuotes int

	// OutlierMinQuotes is the minimum quote count for outlier detection;
	// below it the result is always empty (two quotes carry no robust
	// outlier signal).
	OutlierMinQuotes int

	// OutlierVarianceFactor scales the sample variance to form the
	// outlier threshold: a quote is flagged when its squared deviation
	// from the mean exceeds OutlierVarianceFactor times the variance.
	OutlierVarianceFactor float64

	// CountBases, ordered by descending MinCount, select the base
	// confidence score from the quote count.
	CountBases []CountBase
	// BaseFallback applies when the count is below every CountBase.
	BaseFallback int

	// VarianceBands, ordered by ascending MaxPct, select the variance
	// adjustment; VarianceFallback applies above the last band.
	VarianceBands    []VarianceBand
	VarianceFallback int

	// OutlierPenalty is subtracted once per outlier quote.
	OutlierPenalty int
}

// DefaultStatsConfig returns the documented constants: quote volume
// dominates, variance is the secondary quality signal, outliers are a
// penalty layered on top.
func DefaultStatsConfig() StatsConfig {
	return StatsConfig{
		MinQuotes:             2,
		OutlierMinQuotes:      3,
		OutlierVarianceFactor: 2.0,
		CountBases: []CountBase{
			{MinCount: 5, Base: 90},
			{MinCount: 3, Base: 70},
			{MinCount: 2, Base: 50},
		},
		BaseFallback: 20,
		VarianceBands: []VarianceBand{
			{MaxPct: 10, Adjustment: 10},
			{MaxPct: 20, Adjustment: 5},
			{MaxPct: 30, Adjustment: 0},
			{MaxPct: 50, Adjustment: -10},
		},
		VarianceFallback: -20,
		OutlierPenalty:   5,
	}
}

// IMarketStatsUseCase computes and persists per-part market statistics.

type IMarketStatsUseCase interface {
	CalculateMarketAverage(ctx context.Context, partID string) (entities.MarketAverage, error)
}

type MarketStatsUseCase struct {
	quoteRepo      interfaces.IQuoteRepository
	assessmentRepo interfaces.IAssessmentRepository
	marketRepo     interfaces.IMarketAverageRepository
	cfg            StatsConfig
}

var _ IMarketStatsUseCase = (*MarketStatsUseCase)(nil)

func NewMarketStatsUseCase(
	quoteRepo interfaces.IQuoteRepository,
	assessmentRepo interfaces.IAssessmentRepository,
	marketRepo interfaces.IMarketAverageRepository,
	cfg StatsConfig,
) *MarketStatsUseCase {
	return &MarketStatsUseCase{
		quoteRepo:      quoteRepo,
		assessmentRepo: assessmentRepo,
		marketRepo:     marketRepo,
		cfg:            cfg,
	}
}

// CalculateMarketAverage recomputes the part's statistics from its
// validated, unexpired quotes and upserts the result wholesale. It fails
// with ErrInsufficientData below the minimum quote count.
func (u *MarketStatsUseCase) CalculateMarketAverage(ctx context.Context, partID string) (entities.MarketAverage, error) {
	partID = strings.TrimSpace(partID)
	if partID == "" {
		return entities.MarketAverage{}, ErrInvalidPartID
	}

	part, err := u.assessmentRepo.GetDamagedPart(ctx, partID)
	if err != nil {
		return entities.MarketAverage{}, err
	}
	if part.ID == "" {
		return entities.MarketAverage{}, ErrPartNotFound
	}

	quotes, err := u.usableQuotes(ctx, partID)
	if err != nil {
		return entities.MarketAverage{}, err
	}
	if len(quotes) < u.cfg.MinQuotes {
		return entities.MarketAverage{}, ErrInsufficientData
	}

	ma := u.compute(partID, quotes)
	return u.marketRepo.Upsert(ctx, ma)
}

// usableQuotes returns the part's quotes that still feed statistics:
// validated status and validity timestamp in the future.
func (u *MarketStatsUseCase) usableQuotes(ctx context.Context, partID string) ([]entities.Quote, error) {
	all, err := u.quoteRepo.ListByPartID(ctx, partID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	usable := make([]entities.Quote, 0, len(all))
	for _, q := range all {
		if q.IsUsableAt(now) {
			usable = append(usable, q)
		}
	}
	return usable, nil
}

func (u *MarketStatsUseCase) compute(partID string, quotes []entities.Quote) entities.MarketAverage {
	totals := make([]float64, len(quotes))
	var sumTotal, sumPart, sumLabor float64
	minTotal, maxTotal := quotes[0].TotalCost, quotes[0].TotalCost
	for i, q := range quotes {
		totals[i] = q.TotalCost
		sumTotal += q.TotalCost
		sumPart += q.PartCost
		sumLabor += q.LaborCost
		if q.TotalCost < minTotal {
			minTotal = q.TotalCost
		}
		if q.TotalCost > maxTotal {
			maxTotal = q.TotalCost
		}
	}

	n := float64(len(quotes))
	mean := sumTotal / n
	variance := sampleVariance(totals, mean)
	stdev := math.Sqrt(variance)

	variancePct := 0.0
	if mean > 0 {
		variancePct = stdev / mean * 100
	}

	outliers := u.identifyOutliers(quotes, mean, variance)

	return entities.MarketAverage{
		PartID:          partID,
		AverageTotal:    mean,
		MinTotal:        minTotal,
		MaxTotal:        maxTotal,
		AveragePart:     sumPart / n,
		AverageLabor:    sumLabor / n,
		StdDev:          stdev,
		VariancePct:     variancePct,
		QuoteCount:      len(quotes),
		ConfidenceLevel: u.confidenceLevel(len(quotes), variancePct, len(outliers)),
		Outliers:        outliers,
		CalculatedAt:    time.Now().UTC(),
	}
}

// identifyOutliers flags quotes whose squared deviation from the mean
// exceeds OutlierVarianceFactor times the sample variance. Below
// OutlierMinQuotes the result is always empty.
func (u *MarketStatsUseCase) identifyOutliers(quotes []entities.Quote, mean, variance float64) []entities.QuoteOutlier {
	if len(quotes) < u.cfg.OutlierMinQuotes {
		return nil
	}
	var outliers []entities.QuoteOutlier
	for _, q := range quotes {
		dev := q.TotalCost - mean
		if dev*dev > u.cfg.OutlierVarianceFactor*variance {
			outliers = append(outliers, entities.QuoteOutlier{
				QuoteID:      q.ID,
				ProviderName: q.ProviderName,
				TotalCost:    q.TotalCost,
				Deviation:    math.Abs(dev),
			})
		}
	}
	return outliers
}

// confidenceLevel scores trust in the market average on a 0-100 scale:
// base from quote count, adjusted by variance band, minus a per-outlier
// penalty, clamped to the scale.
func (u *MarketStatsUseCase) confidenceLevel(quoteCount int, variancePct float64, outlierCount int) int {
	base := u.cfg.BaseFallback
	for _, cb := range u.cfg.CountBases {
		if quoteCount >= cb.MinCount {
			base = cb.Base
			break
		}
	}

	adj := u.cfg.VarianceFallback
	for _, band := range u.cfg.VarianceBands {
		if variancePct <= band.MaxPct {
			adj = band.Adjustment
			break
		}
	}

	level := base + adj - outlierCount*u.cfg.OutlierPenalty
	if level < 0 {
		return 0
	}
	if level > 100 {
		return 100
	}
	return level
}

// sampleVariance is the n-1 variance; it requires at least two values and
// returns 0 below that.
func sampleVariance(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(values)-1)
}
