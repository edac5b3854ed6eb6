package routes

import (
	"github.com/Fanelemenzi/Carfinity-sub000/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuoteRequests = "/quote-requests"
	PathQuotes        = "/quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	requests := rg.Group(PathQuoteRequests)
	{
		requests.POST("", quoteHandler.CreateQuoteRequest)
		requests.GET("/:request_id", quoteHandler.GetQuoteRequest)
		requests.PATCH("/:request_id/cancel", quoteHandler.CancelQuoteRequest)
		requests.POST("/:request_id/quotes", quoteHandler.SubmitProviderQuote)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/validate", quoteHandler.ValidateQuote)
	}
}
