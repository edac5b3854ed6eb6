package routes

import (
	"github.com/Fanelemenzi/Carfinity-sub000/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathParts          = "/parts"
	PathAssessments    = "/assessments"
	PathMarketAverages = "/market-averages"
	PathMaintenance    = "/maintenance"
)

func addMarketRoutes(
	rg *gin.RouterGroup,
	marketHandler *handlers.MarketAverageHandler,
	assessmentHandler *handlers.AssessmentHandler,
	maintenanceHandler *handlers.MaintenanceHandler,
) {
	parts := rg.Group(PathParts)
	{
		parts.POST("/:part_id/market-average", marketHandler.ComputeMarketAverage)
		parts.GET("/:part_id/report", marketHandler.GetPartReport)
	}

	assessments := rg.Group(PathAssessments)
	{
		assessments.GET("/:assessment_id/completion", assessmentHandler.GetCompletionStatus)
		assessments.POST("/:assessment_id/market-average", assessmentHandler.ComputeAssessmentMarketAverage)
		assessments.GET("/:assessment_id/report", assessmentHandler.GetAssessmentReport)
	}

	rg.POST(PathMarketAverages+"/refresh", marketHandler.BatchUpdateMarketAverages)
	rg.POST(PathMaintenance+"/cleanup", maintenanceHandler.RunCleanup)
}
