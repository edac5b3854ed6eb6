package handlers

import (
	"errors"
	"net/http"

	request "github.com/Fanelemenzi/Carfinity-sub000/internal/adapter/http/dto/request"
	response "github.com/Fanelemenzi/Carfinity-sub000/internal/adapter/http/dto/response"
	"github.com/Fanelemenzi/Carfinity-sub000/internal/usecase"
	"github.com/Fanelemenzi/Carfinity-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBatchPayload = pkg.NewDomainErrorSimple("INVALID_BATCH_INPUT", "Invalid batch update payload", http.StatusBadRequest)

// MarketAverageHandler handles HTTP requests for per-part market
// statistics and reports.
type MarketAverageHandler struct {
	stats           usecase.IMarketStatsUseCase
	assessmentStats usecase.IAssessmentStatsUseCase
	reports         usecase.IReportUseCase
}

func NewMarketAverageHandler(
	stats usecase.IMarketStatsUseCase,
	assessmentStats usecase.IAssessmentStatsUseCase,
	reports usecase.IReportUseCase,
) *MarketAverageHandler {
	return &MarketAverageHandler{stats: stats, assessmentStats: assessmentStats, reports: reports}
}

// ComputeMarketAverage recalculates and stores the market average for one
// damaged part from its currently usable quotes.
func (h *MarketAverageHandler) ComputeMarketAverage(c *gin.Context) {
	ma, err := h.stats.CalculateMarketAverage(c.Request.Context(), c.Param("part_id"))
	if err != nil {
		appErr := mapStatsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMarketAverage(ma))
}

// GetPartReport returns the market report for one damaged part. Parts
// without enough quotes still yield a report carrying an error payload.
func (h *MarketAverageHandler) GetPartReport(c *gin.Context) {
	report, err := h.reports.PartReport(c.Request.Context(), c.Param("part_id"))
	if err != nil {
		appErr := mapStatsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPartReport(report))
}

// BatchUpdateMarketAverages refreshes market averages across assessments.
// With no ids in the payload it sweeps every known assessment.
func (h *MarketAverageHandler) BatchUpdateMarketAverages(c *gin.Context) {
	var payload request.BatchUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBatchPayload.HTTPStatus, errInvalidBatchPayload.ToHTTPError())
		return
	}

	stats, err := h.assessmentStats.BatchUpdateMarketAverages(c.Request.Context(), payload.AssessmentIDs, payload.ForceRecalculate)
	if err != nil {
		appErr := mapStatsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBatchStats(stats))
}

func mapStatsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPartID), errors.Is(err, usecase.ErrInvalidAssessmentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PART_NOT_FOUND", "Damaged part not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInsufficientData):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_QUOTE_DATA", "Not enough usable quotes to compute market statistics", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
