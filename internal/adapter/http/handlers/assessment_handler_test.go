package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Fanelemenzi/Carfinity-sub000/internal/adapter/http/handlers/mocks"
	"github.com/Fanelemenzi/Carfinity-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAssessmentHandler_GetCompletionStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid assessment id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		completion := mocks.NewMockICompletionUseCase(ctrl)
		h := NewAssessmentHandler(completion, nil, nil)

		completion.EXPECT().CheckCompletion(gomock.Any(), gomock.Any()).
			Return(usecase.CompletionStatus{}, usecase.ErrInvalidAssessmentID)

		r := gin.New()
		r.GET("/v1/assessments/:assessment_id/completion", h.GetCompletionStatus)

		req := httptest.NewRequest(http.MethodGet, "/v1/assessments/%20/completion", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		completion := mocks.NewMockICompletionUseCase(ctrl)
		h := NewAssessmentHandler(completion, nil, nil)

		completion.EXPECT().CheckCompletion(gomock.Any(), "assessment-1").
			Return(usecase.CompletionStatus{
				IsComplete:       true,
				CompletionPct:    80,
				TotalRequests:    3,
				ReceivedQuotes:   4,
				ExpectedQuotes:   5,
				CollectionStatus: "completed",
			}, nil)

		r := gin.New()
		r.GET("/v1/assessments/:assessment_id/completion", h.GetCompletionStatus)

		req := httptest.NewRequest(http.MethodGet, "/v1/assessments/assessment-1/completion", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["is_complete"] != true || resp["completion_percentage"] != float64(80) {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestAssessmentHandler_ComputeAssessmentMarketAverage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	assessmentStats := mocks.NewMockIAssessmentStatsUseCase(ctrl)
	h := NewAssessmentHandler(nil, assessmentStats, nil)

	assessmentStats.EXPECT().CalculateAssessmentMarketAverage(gomock.Any(), "assessment-1").
		Return(usecase.AssessmentStats{
			AssessmentID:       "assessment-1",
			TotalParts:         3,
			PartsWithAverages:  2,
			MarketAverageTotal: 800,
			PriceRange:         usecase.PriceRange{Min: 250, Max: 550},
		}, nil)

	r := gin.New()
	r.POST("/v1/assessments/:assessment_id/market-average", h.ComputeAssessmentMarketAverage)

	req := httptest.NewRequest(http.MethodPost, "/v1/assessments/assessment-1/market-average", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["market_average_total"] != float64(800) || resp["parts_with_averages"] != float64(2) {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestAssessmentHandler_GetAssessmentReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	reports := mocks.NewMockIReportUseCase(ctrl)
	h := NewAssessmentHandler(nil, nil, reports)

	reports.EXPECT().AssessmentReport(gomock.Any(), "assessment-1").
		Return(usecase.AssessmentReport{
			AssessmentID: "assessment-1",
			Stats:        usecase.AssessmentStats{AssessmentID: "assessment-1", TotalParts: 1},
			Parts: []usecase.PartReport{{
				PartID:   "part-1",
				PartName: "Front bumper",
			}},
		}, nil)

	r := gin.New()
	r.GET("/v1/assessments/:assessment_id/report", h.GetAssessmentReport)

	req := httptest.NewRequest(http.MethodGet, "/v1/assessments/assessment-1/report", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	parts, ok := resp["parts"].([]interface{})
	if !ok || len(parts) != 1 {
		t.Fatalf("expected one part section, got %v", resp)
	}
}
