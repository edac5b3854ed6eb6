package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Fanelemenzi/Carfinity-sub000/internal/adapter/http/handlers/mocks"
	"github.com/Fanelemenzi/Carfinity-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestMaintenanceHandler_RunCleanup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body uses the default window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cleanup := mocks.NewMockICleanupUseCase(ctrl)
		h := NewMaintenanceHandler(cleanup)

		cleanup.EXPECT().Cleanup(gomock.Any(), 0).
			Return(usecase.CleanupStats{RequestsExpired: 2, QuotesAssociated: 3, QuotesDeleted: 1}, nil)

		r := gin.New()
		r.POST("/v1/maintenance/cleanup", h.RunCleanup)

		req := httptest.NewRequest(http.MethodPost, "/v1/maintenance/cleanup", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["requests_expired"] != float64(2) || resp["quotes_deleted"] != float64(1) {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("explicit window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cleanup := mocks.NewMockICleanupUseCase(ctrl)
		h := NewMaintenanceHandler(cleanup)

		cleanup.EXPECT().Cleanup(gomock.Any(), 45).Return(usecase.CleanupStats{}, nil)

		r := gin.New()
		r.POST("/v1/maintenance/cleanup", h.RunCleanup)

		req := httptest.NewRequest(http.MethodPost, "/v1/maintenance/cleanup", bytes.NewBufferString(`{"days_old":45}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("sweep failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cleanup := mocks.NewMockICleanupUseCase(ctrl)
		h := NewMaintenanceHandler(cleanup)

		cleanup.EXPECT().Cleanup(gomock.Any(), 0).
			Return(usecase.CleanupStats{}, errors.New("dynamo down"))

		r := gin.New()
		r.POST("/v1/maintenance/cleanup", h.RunCleanup)

		req := httptest.NewRequest(http.MethodPost, "/v1/maintenance/cleanup", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
