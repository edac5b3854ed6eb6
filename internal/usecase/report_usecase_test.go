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

// stubAssessmentStats satisfies IAssessmentStatsUseCase with a canned
// rollup.
type stubAssessmentStats struct {
	stats AssessmentStats
	err   error
}

func (s *stubAssessmentStats) CalculateAssessmentMarketAverage(ctx context.Context, assessmentID string) (AssessmentStats, error) {
	return s.stats, s.err
}

func (s *stubAssessmentStats) BatchUpdateMarketAverages(ctx context.Context, assessmentIDs []string, forceRecalculate bool) (BatchStats, error) {
	return BatchStats{}, nil
}

func TestReportUseCase_PartReport(t *testing.T) {
	part := entities.DamagedPart{
		ID:               "part-1",
		AssessmentID:     "assessment-1",
		Name:             "Front bumper",
		MinEstimatedCost: 300,
		MaxEstimatedCost: 700,
	}

	t.Run("part not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessmentRepo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		uc := NewReportUseCase(nil, assessmentRepo, nil, nil, nil)

		assessmentRepo.EXPECT().GetDamagedPart(gomock.Any(), "part-1").Return(entities.DamagedPart{}, nil)

		_, err := uc.PartReport(context.Background(), "part-1")
		if !errors.Is(err, ErrPartNotFound) {
			t.Fatalf("expected ErrPartNotFound, got %v", err)
		}
	})

	t.Run("serves the stored market average", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessmentRepo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		marketRepo := mock_interfaces.NewMockIMarketAverageRepository(ctrl)
		uc := NewReportUseCase(nil, assessmentRepo, marketRepo, &stubMarketStats{}, nil)

		stored := storedAverage("part-1", 500, 480, 550, 80, 10)
		assessmentRepo.EXPECT().GetDamagedPart(gomock.Any(), "part-1").Return(part, nil)
		marketRepo.EXPECT().GetByPartID(gomock.Any(), "part-1").Return(stored, nil)

		report, err := uc.PartReport(context.Background(), "part-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.MarketAverage == nil || report.MarketAverage.AverageTotal != 500 {
			t.Fatalf("expected stored average in report: %+v", report)
		}
		if report.Error != nil {
			t.Fatalf("expected no error payload: %+v", report.Error)
		}
		if report.EstimatedRange.Min != 300 || report.EstimatedRange.Max != 700 {
			t.Fatalf("unexpected estimated range: %+v", report.EstimatedRange)
		}
	})

	t.Run("computes on demand when no record exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessmentRepo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		marketRepo := mock_interfaces.NewMockIMarketAverageRepository(ctrl)
		stats := &stubMarketStats{results: map[string]entities.MarketAverage{
			"part-1": storedAverage("part-1", 512.5, 480, 550, 70, 12),
		}}
		uc := NewReportUseCase(nil, assessmentRepo, marketRepo, stats, nil)

		assessmentRepo.EXPECT().GetDamagedPart(gomock.Any(), "part-1").Return(part, nil)
		marketRepo.EXPECT().GetByPartID(gomock.Any(), "part-1").Return(entities.MarketAverage{}, nil)

		report, err := uc.PartReport(context.Background(), "part-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.MarketAverage == nil || report.MarketAverage.AverageTotal != 512.5 {
			t.Fatalf("expected computed average: %+v", report)
		}
		if len(stats.calls) != 1 {
			t.Fatalf("expected one on-demand calculation, got %v", stats.calls)
		}
	})

	t.Run("insufficient data becomes an error payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessmentRepo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		marketRepo := mock_interfaces.NewMockIMarketAverageRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		stats := &stubMarketStats{errs: map[string]error{"part-1": ErrInsufficientData}}
		uc := NewReportUseCase(quoteRepo, assessmentRepo, marketRepo, stats, nil)

		assessmentRepo.EXPECT().GetDamagedPart(gomock.Any(), "part-1").Return(part, nil)
		marketRepo.EXPECT().GetByPartID(gomock.Any(), "part-1").Return(entities.MarketAverage{}, nil)
		quoteRepo.EXPECT().ListByPartID(gomock.Any(), "part-1").
			Return([]entities.Quote{usableQuote("q1", 500)}, nil)

		report, err := uc.PartReport(context.Background(), "part-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.MarketAverage != nil {
			t.Fatalf("expected no market average: %+v", report)
		}
		if report.Error == nil || report.Error.Reason != "insufficient_data" {
			t.Fatalf("expected insufficient_data payload: %+v", report.Error)
		}
		if report.Error.AvailableQuotes != 1 || report.Error.PartName != "Front bumper" {
			t.Fatalf("unexpected error payload: %+v", report.Error)
		}
	})
}

func TestReportUseCase_AssessmentReport(t *testing.T) {
	parts := []entities.DamagedPart{
		{ID: "part-1", AssessmentID: "assessment-1", Name: "Front bumper", MinEstimatedCost: 300, MaxEstimatedCost: 700},
		{ID: "part-2", AssessmentID: "assessment-1", Name: "Hood", MinEstimatedCost: 100, MaxEstimatedCost: 200},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	assessmentRepo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
	marketRepo := mock_interfaces.NewMockIMarketAverageRepository(ctrl)
	quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	stats := &stubMarketStats{errs: map[string]error{"part-2": ErrInsufficientData}}
	rollup := &stubAssessmentStats{stats: AssessmentStats{
		AssessmentID:       "assessment-1",
		TotalParts:         2,
		PartsWithAverages:  1,
		MarketAverageTotal: 500,
	}}
	uc := NewReportUseCase(quoteRepo, assessmentRepo, marketRepo, stats, rollup)

	assessmentRepo.EXPECT().ListDamagedParts(gomock.Any(), "assessment-1").Return(parts, nil)
	marketRepo.EXPECT().GetByPartID(gomock.Any(), "part-1").
		Return(storedAverage("part-1", 500, 480, 550, 80, 10), nil)
	marketRepo.EXPECT().GetByPartID(gomock.Any(), "part-2").Return(entities.MarketAverage{}, nil)
	quoteRepo.EXPECT().ListByPartID(gomock.Any(), "part-2").Return(nil, nil)
	assessmentRepo.EXPECT().GetQuoteSummary(gomock.Any(), "assessment-1").
		Return(entities.AssessmentQuoteSummary{
			AssessmentID:       "assessment-1",
			MarketAverageTotal: 500,
			CollectionStatus:   entities.CollectionStatusInProgress,
			UpdatedAt:          time.Now().UTC(),
		}, nil)

	report, err := uc.AssessmentReport(context.Background(), "assessment-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Stats.MarketAverageTotal != 500 {
		t.Fatalf("unexpected rollup: %+v", report.Stats)
	}
	if len(report.Parts) != 2 {
		t.Fatalf("expected a section per part, got %d", len(report.Parts))
	}
	if report.Parts[0].MarketAverage == nil {
		t.Fatalf("expected part-1 average: %+v", report.Parts[0])
	}
	if report.Parts[1].Error == nil || report.Parts[1].Error.Reason != "insufficient_data" {
		t.Fatalf("expected part-2 error payload: %+v", report.Parts[1])
	}
	if report.Summary == nil || report.Summary.CollectionStatus != entities.CollectionStatusInProgress {
		t.Fatalf("expected summary attached: %+v", report.Summary)
	}
}
