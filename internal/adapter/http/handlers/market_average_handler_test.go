package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Fanelemenzi/Carfinity-sub000/internal/adapter/http/handlers/mocks"
	"github.com/Fanelemenzi/Carfinity-sub000/internal/domain/entities"
	"github.com/Fanelemenzi/Carfinity-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestMarketAverageHandler_ComputeMarketAverage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("insufficient data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stats := mocks.NewMockIMarketStatsUseCase(ctrl)
		h := NewMarketAverageHandler(stats, nil, nil)

		stats.EXPECT().CalculateMarketAverage(gomock.Any(), "part-1").
			Return(entities.MarketAverage{}, usecase.ErrInsufficientData)

		r := gin.New()
		r.POST("/v1/parts/:part_id/market-average", h.ComputeMarketAverage)

		req := httptest.NewRequest(http.MethodPost, "/v1/parts/part-1/market-average", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("part not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stats := mocks.NewMockIMarketStatsUseCase(ctrl)
		h := NewMarketAverageHandler(stats, nil, nil)

		stats.EXPECT().CalculateMarketAverage(gomock.Any(), "part-404").
			Return(entities.MarketAverage{}, usecase.ErrPartNotFound)

		r := gin.New()
		r.POST("/v1/parts/:part_id/market-average", h.ComputeMarketAverage)

		req := httptest.NewRequest(http.MethodPost, "/v1/parts/part-404/market-average", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("computed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stats := mocks.NewMockIMarketStatsUseCase(ctrl)
		h := NewMarketAverageHandler(stats, nil, nil)

		stats.EXPECT().CalculateMarketAverage(gomock.Any(), "part-1").
			Return(entities.MarketAverage{
				PartID:          "part-1",
				AverageTotal:    512.5,
				MinTotal:        480,
				MaxTotal:        550,
				QuoteCount:      4,
				ConfidenceLevel: 85,
				CalculatedAt:    time.Now().UTC(),
			}, nil)

		r := gin.New()
		r.POST("/v1/parts/:part_id/market-average", h.ComputeMarketAverage)

		req := httptest.NewRequest(http.MethodPost, "/v1/parts/part-1/market-average", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["average_total_cost"] != 512.5 || resp["quote_count"] != float64(4) {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestMarketAverageHandler_BatchUpdateMarketAverages(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		h := NewMarketAverageHandler(nil, nil, nil)

		r := gin.New()
		r.POST("/v1/market-averages/refresh", h.BatchUpdateMarketAverages)

		req := httptest.NewRequest(http.MethodPost, "/v1/market-averages/refresh", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reports per-assessment failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessmentStats := mocks.NewMockIAssessmentStatsUseCase(ctrl)
		h := NewMarketAverageHandler(nil, assessmentStats, nil)

		assessmentStats.EXPECT().BatchUpdateMarketAverages(gomock.Any(), []string{"a1", "a2"}, true).
			Return(usecase.BatchStats{
				Processed: 2,
				Succeeded: 1,
				Failed:    1,
				Errors:    []usecase.AssessmentError{{AssessmentID: "a2", Message: "db down"}},
			}, nil)

		r := gin.New()
		r.POST("/v1/market-averages/refresh", h.BatchUpdateMarketAverages)

		body := `{"assessment_ids":["a1","a2"],"force_recalculate":true}`
		req := httptest.NewRequest(http.MethodPost, "/v1/market-averages/refresh", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["processed"] != float64(2) || resp["failed"] != float64(1) {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestMarketAverageHandler_GetPartReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	reports := mocks.NewMockIReportUseCase(ctrl)
	h := NewMarketAverageHandler(nil, nil, reports)

	reports.EXPECT().PartReport(gomock.Any(), "part-1").
		Return(usecase.PartReport{
			PartID:         "part-1",
			PartName:       "Front bumper",
			EstimatedRange: usecase.PriceRange{Min: 300, Max: 700},
			Error: &usecase.ReportError{
				Reason:          "insufficient_data",
				PartName:        "Front bumper",
				AvailableQuotes: 1,
			},
			GeneratedAt: time.Now().UTC(),
		}, nil)

	r := gin.New()
	r.GET("/v1/parts/:part_id/report", h.GetPartReport)

	req := httptest.NewRequest(http.MethodGet, "/v1/parts/part-1/report", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	errPayload, ok := resp["error"].(map[string]interface{})
	if !ok || errPayload["reason"] != "insufficient_data" {
		t.Fatalf("expected insufficient_data payload, got %v", resp)
	}
}
