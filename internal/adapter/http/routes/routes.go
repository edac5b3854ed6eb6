package routes

import (
	"log"
	"strconv"

	_ "github.com/Fanelemenzi/Carfinity-sub000/docs" // This will be auto-generated
	"github.com/Fanelemenzi/Carfinity-sub000/internal/adapter/http/handlers"
	repository2 "github.com/Fanelemenzi/Carfinity-sub000/internal/adapter/persistence/repository"
	"github.com/Fanelemenzi/Carfinity-sub000/internal/infrastructure/database"
	"github.com/Fanelemenzi/Carfinity-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	requestRepo := repository2.NewQuoteRequestDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	marketRepo := repository2.NewMarketAverageDynamoRepository(ddb)
	assessmentRepo := repository2.NewAssessmentDynamoRepository(ddb)

	validator := usecase.NewQuoteValidator(usecase.DefaultValidationConfig())
	completionUseCase := usecase.NewCompletionUseCase(requestRepo, quoteRepo, assessmentRepo, usecase.DefaultCompletionConfig())
	ingestionUseCase := usecase.NewQuoteIngestionUseCase(requestRepo, quoteRepo, assessmentRepo, validator, completionUseCase)
	statsUseCase := usecase.NewMarketStatsUseCase(quoteRepo, assessmentRepo, marketRepo, usecase.DefaultStatsConfig())
	assessmentStatsUseCase := usecase.NewAssessmentStatsUseCase(assessmentRepo, marketRepo, statsUseCase, completionUseCase)
	reportUseCase := usecase.NewReportUseCase(quoteRepo, assessmentRepo, marketRepo, statsUseCase, assessmentStatsUseCase)
	cleanupUseCase := usecase.NewCleanupUseCase(requestRepo, quoteRepo)

	quoteHandler := handlers.NewQuoteHandler(ingestionUseCase)
	marketHandler := handlers.NewMarketAverageHandler(statsUseCase, assessmentStatsUseCase, reportUseCase)
	assessmentHandler := handlers.NewAssessmentHandler(completionUseCase, assessmentStatsUseCase, reportUseCase)
	maintenanceHandler := handlers.NewMaintenanceHandler(cleanupUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler)
	addMarketRoutes(v1, marketHandler, assessmentHandler, maintenanceHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
