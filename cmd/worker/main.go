package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	repository2 "github.com/Fanelemenzi/Carfinity-sub000/internal/adapter/persistence/repository"
	"github.com/Fanelemenzi/Carfinity-sub000/internal/infrastructure/database"
	"github.com/Fanelemenzi/Carfinity-sub000/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/robfig/cron/v3"
)

// The worker runs the two recurring jobs: the expiry/cleanup sweep and
// the batch market-average refresh. Schedules use cron syntax and come
// from the environment:
//   - CLEANUP_SCHEDULE (default: @every 24h)
//   - MARKET_REFRESH_SCHEDULE (default: 0 3 * * *)
func main() {
	ddb := database.ConnectDynamoDB()

	requestRepo := repository2.NewQuoteRequestDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	marketRepo := repository2.NewMarketAverageDynamoRepository(ddb)
	assessmentRepo := repository2.NewAssessmentDynamoRepository(ddb)

	completionUseCase := usecase.NewCompletionUseCase(requestRepo, quoteRepo, assessmentRepo, usecase.DefaultCompletionConfig())
	statsUseCase := usecase.NewMarketStatsUseCase(quoteRepo, assessmentRepo, marketRepo, usecase.DefaultStatsConfig())
	assessmentStatsUseCase := usecase.NewAssessmentStatsUseCase(assessmentRepo, marketRepo, statsUseCase, completionUseCase)
	cleanupUseCase := usecase.NewCleanupUseCase(requestRepo, quoteRepo)

	c := cron.New()

	cleanupSchedule := getenvDefault("CLEANUP_SCHEDULE", "@every 24h")
	if _, err := c.AddFunc(cleanupSchedule, func() {
		stats, err := cleanupUseCase.Cleanup(context.Background(), 0)
		if err != nil {
			log.Printf("[worker][cleanup] sweep failed: %v", err)
			return
		}
		log.Printf("[worker][cleanup] sweep done requests_expired=%d quotes_associated=%d quotes_deleted=%d",
			stats.RequestsExpired, stats.QuotesAssociated, stats.QuotesDeleted)
	}); err != nil {
		log.Fatalf("invalid CLEANUP_SCHEDULE %q: %v", cleanupSchedule, err)
	}

	refreshSchedule := getenvDefault("MARKET_REFRESH_SCHEDULE", "0 3 * * *")
	if _, err := c.AddFunc(refreshSchedule, func() {
		stats, err := assessmentStatsUseCase.BatchUpdateMarketAverages(context.Background(), nil, true)
		if err != nil {
			log.Printf("[worker][market] batch refresh failed: %v", err)
			return
		}
		log.Printf("[worker][market] batch refresh done processed=%d succeeded=%d failed=%d",
			stats.Processed, stats.Succeeded, stats.Failed)
	}); err != nil {
		log.Fatalf("invalid MARKET_REFRESH_SCHEDULE %q: %v", refreshSchedule, err)
	}

	c.Start()
	log.Printf("[worker] started cleanup=%q market_refresh=%q", cleanupSchedule, refreshSchedule)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Printf("[worker] shutting down")
	<-c.Stop().Done()
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
