package handlers

import (
	"net/http"

	response "github.com/Fanelemenzi/Carfinity-sub000/internal/adapter/http/dto/response"
	"github.com/Fanelemenzi/Carfinity-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AssessmentHandler handles HTTP requests scoped to one assessment:
// completion tracking, aggregated market averages and full reports.
type AssessmentHandler struct {
	completion      usecase.ICompletionUseCase
	assessmentStats usecase.IAssessmentStatsUseCase
	reports         usecase.IReportUseCase
}

func NewAssessmentHandler(
	completion usecase.ICompletionUseCase,
	assessmentStats usecase.IAssessmentStatsUseCase,
	reports usecase.IReportUseCase,
) *AssessmentHandler {
	return &AssessmentHandler{completion: completion, assessmentStats: assessmentStats, reports: reports}
}

// GetCompletionStatus returns the quote collection completion snapshot
// for one assessment.
func (h *AssessmentHandler) GetCompletionStatus(c *gin.Context) {
	status, err := h.completion.CheckCompletion(c.Request.Context(), c.Param("assessment_id"))
	if err != nil {
		appErr := mapStatsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCompletionStatus(status))
}

// ComputeAssessmentMarketAverage aggregates per-part market averages into
// assessment-level totals and persists the quote summary.
func (h *AssessmentHandler) ComputeAssessmentMarketAverage(c *gin.Context) {
	stats, err := h.assessmentStats.CalculateAssessmentMarketAverage(c.Request.Context(), c.Param("assessment_id"))
	if err != nil {
		appErr := mapStatsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAssessmentStats(stats))
}

// GetAssessmentReport returns the full per-part market report for one
// assessment.
func (h *AssessmentHandler) GetAssessmentReport(c *gin.Context) {
	report, err := h.reports.AssessmentReport(c.Request.Context(), c.Param("assessment_id"))
	if err != nil {
		appErr := mapStatsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAssessmentReport(report))
}
