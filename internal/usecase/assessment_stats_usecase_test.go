package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Fanelemenzi/Carfinity-sub000/internal/domain/entities"
	mock_interfaces "github.com/Fanelemenzi/Carfinity-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// stubMarketStats satisfies IMarketStatsUseCase with canned per-part
// results.
type stubMarketStats struct {
	results map[string]entities.MarketAverage
	errs    map[string]error
	calls   []string
}

func (s *stubMarketStats) CalculateMarketAverage(ctx context.Context, partID string) (entities.MarketAverage, error) {
	s.calls = append(s.calls, partID)
	if err, ok := s.errs[partID]; ok {
		return entities.MarketAverage{}, err
	}
	return s.results[partID], nil
}

func storedAverage(partID string, avg, minT, maxT float64, confidence int, variancePct float64) entities.MarketAverage {
	return entities.MarketAverage{
		PartID:          partID,
		AverageTotal:    avg,
		MinTotal:        minT,
		MaxTotal:        maxT,
		QuoteCount:      3,
		ConfidenceLevel: confidence,
		VariancePct:     variancePct,
		CalculatedAt:    time.Now().UTC(),
	}
}

func TestAssessmentStatsUseCase_CalculateAssessmentMarketAverage(t *testing.T) {
	parts := []entities.DamagedPart{
		{ID: "part-1", AssessmentID: "assessment-1", Name: "Front bumper"},
		{ID: "part-2", AssessmentID: "assessment-1", Name: "Left headlight"},
		{ID: "part-3", AssessmentID: "assessment-1", Name: "Hood"},
	}

	t.Run("invalid assessment id", func(t *testing.T) {
		uc := NewAssessmentStatsUseCase(nil, nil, nil, nil)
		_, err := uc.CalculateAssessmentMarketAverage(context.Background(), " ")
		if !errors.Is(err, ErrInvalidAssessmentID) {
			t.Fatalf("expected ErrInvalidAssessmentID, got %v", err)
		}
	})

	t.Run("aggregates stored averages and skips thin parts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessmentRepo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		marketRepo := mock_interfaces.NewMockIMarketAverageRepository(ctrl)
		stats := &stubMarketStats{errs: map[string]error{"part-3": ErrInsufficientData}}
		uc := NewAssessmentStatsUseCase(assessmentRepo, marketRepo, stats, nil)

		assessmentRepo.EXPECT().ListDamagedParts(gomock.Any(), "assessment-1").Return(parts, nil)
		// part-1 has a stored average; part-2 and part-3 fall through to
		// recalculation, and part-3 has too few quotes.
		marketRepo.EXPECT().GetByPartID(gomock.Any(), "part-1").
			Return(storedAverage("part-1", 500, 480, 550, 80, 10), nil)
		marketRepo.EXPECT().GetByPartID(gomock.Any(), "part-2").Return(entities.MarketAverage{}, nil)
		marketRepo.EXPECT().GetByPartID(gomock.Any(), "part-3").Return(entities.MarketAverage{}, nil)
		stats.results = map[string]entities.MarketAverage{
			"part-2": storedAverage("part-2", 300, 250, 340, 60, 20),
		}
		assessmentRepo.EXPECT().GetQuoteSummary(gomock.Any(), "assessment-1").
			Return(entities.AssessmentQuoteSummary{}, nil)
		assessmentRepo.EXPECT().UpsertQuoteSummary(gomock.Any(), gomock.AssignableToTypeOf(entities.AssessmentQuoteSummary{})).DoAndReturn(
			func(_ context.Context, s entities.AssessmentQuoteSummary) (entities.AssessmentQuoteSummary, error) {
				if s.MarketAverageTotal != 800 {
					t.Fatalf("expected summary total 800, got %.2f", s.MarketAverageTotal)
				}
				if s.CollectionStatus != entities.CollectionStatusNotStarted {
					t.Fatalf("expected not_started default, got %s", s.CollectionStatus)
				}
				return s, nil
			},
		)

		res, err := uc.CalculateAssessmentMarketAverage(context.Background(), "assessment-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TotalParts != 3 || res.PartsWithAverages != 2 {
			t.Fatalf("unexpected coverage: %+v", res)
		}
		if res.MarketAverageTotal != 800 {
			t.Fatalf("expected total 800, got %.2f", res.MarketAverageTotal)
		}
		if res.PriceRange.Min != 250 || res.PriceRange.Max != 550 {
			t.Fatalf("unexpected price range: %+v", res.PriceRange)
		}
		if res.ConfidenceLevel != 70 || res.VariancePct != 15 {
			t.Fatalf("unexpected quality aggregates: %+v", res)
		}
	})

	t.Run("preserves an existing collection status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessmentRepo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		marketRepo := mock_interfaces.NewMockIMarketAverageRepository(ctrl)
		uc := NewAssessmentStatsUseCase(assessmentRepo, marketRepo, &stubMarketStats{}, nil)

		assessmentRepo.EXPECT().ListDamagedParts(gomock.Any(), "assessment-1").Return(parts[:1], nil)
		marketRepo.EXPECT().GetByPartID(gomock.Any(), "part-1").
			Return(storedAverage("part-1", 500, 480, 550, 80, 10), nil)
		assessmentRepo.EXPECT().GetQuoteSummary(gomock.Any(), "assessment-1").
			Return(entities.AssessmentQuoteSummary{
				AssessmentID:     "assessment-1",
				CollectionStatus: entities.CollectionStatusInProgress,
			}, nil)
		assessmentRepo.EXPECT().UpsertQuoteSummary(gomock.Any(), gomock.AssignableToTypeOf(entities.AssessmentQuoteSummary{})).DoAndReturn(
			func(_ context.Context, s entities.AssessmentQuoteSummary) (entities.AssessmentQuoteSummary, error) {
				if s.CollectionStatus != entities.CollectionStatusInProgress {
					t.Fatalf("expected in_progress preserved, got %s", s.CollectionStatus)
				}
				return s, nil
			},
		)

		if _, err := uc.CalculateAssessmentMarketAverage(context.Background(), "assessment-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAssessmentStatsUseCase_BatchUpdateMarketAverages(t *testing.T) {
	t.Run("empty id list sweeps every assessment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessmentRepo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		marketRepo := mock_interfaces.NewMockIMarketAverageRepository(ctrl)
		completion := &stubCompletion{}
		uc := NewAssessmentStatsUseCase(assessmentRepo, marketRepo, &stubMarketStats{}, completion)

		assessmentRepo.EXPECT().ListAssessmentIDs(gomock.Any()).Return([]string{"a1", "a2"}, nil)
		for _, id := range []string{"a1", "a2"} {
			assessmentRepo.EXPECT().ListDamagedParts(gomock.Any(), id).Return(nil, nil)
			assessmentRepo.EXPECT().GetQuoteSummary(gomock.Any(), id).Return(entities.AssessmentQuoteSummary{}, nil)
			assessmentRepo.EXPECT().UpsertQuoteSummary(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, s entities.AssessmentQuoteSummary) (entities.AssessmentQuoteSummary, error) {
					return s, nil
				},
			)
		}

		batch, err := uc.BatchUpdateMarketAverages(context.Background(), nil, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if batch.Processed != 2 || batch.Succeeded != 2 || batch.Failed != 0 {
			t.Fatalf("unexpected batch stats: %+v", batch)
		}
		if completion.calls != 2 {
			t.Fatalf("expected completion refresh per assessment, got %d", completion.calls)
		}
	})

	t.Run("one failure does not abort the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessmentRepo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		marketRepo := mock_interfaces.NewMockIMarketAverageRepository(ctrl)
		completion := &stubCompletion{}
		uc := NewAssessmentStatsUseCase(assessmentRepo, marketRepo, &stubMarketStats{}, completion)

		assessmentRepo.EXPECT().ListDamagedParts(gomock.Any(), "bad").Return(nil, errors.New("db down"))
		assessmentRepo.EXPECT().ListDamagedParts(gomock.Any(), "good").Return(nil, nil)
		assessmentRepo.EXPECT().GetQuoteSummary(gomock.Any(), "good").Return(entities.AssessmentQuoteSummary{}, nil)
		assessmentRepo.EXPECT().UpsertQuoteSummary(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.AssessmentQuoteSummary) (entities.AssessmentQuoteSummary, error) {
				return s, nil
			},
		)

		batch, err := uc.BatchUpdateMarketAverages(context.Background(), []string{"bad", "good"}, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if batch.Processed != 2 || batch.Succeeded != 1 || batch.Failed != 1 {
			t.Fatalf("unexpected batch stats: %+v", batch)
		}
		if len(batch.Errors) != 1 || batch.Errors[0].AssessmentID != "bad" {
			t.Fatalf("unexpected error report: %+v", batch.Errors)
		}
	})

	t.Run("cancelled context stops the sweep", func(t *testing.T) {
		uc := NewAssessmentStatsUseCase(nil, nil, &stubMarketStats{}, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := uc.BatchUpdateMarketAverages(ctx, []string{"a1"}, false)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}
