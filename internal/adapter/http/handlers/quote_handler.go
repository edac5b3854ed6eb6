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

var (
	errInvalidQuoteRequestPayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_REQUEST_INPUT", "Invalid quote request payload", http.StatusBadRequest)
	errInvalidProviderPayload     = pkg.NewDomainErrorSimple("INVALID_PROVIDER_QUOTE_INPUT", "Invalid provider quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for quote requests and provider
// quote submissions.
type QuoteHandler struct {
	usecase usecase.IQuoteIngestionUseCase
}

func NewQuoteHandler(uc usecase.IQuoteIngestionUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuoteRequest opens a new quote request for a damaged part.
func (h *QuoteHandler) CreateQuoteRequest(c *gin.Context) {
	var payload request.CreateQuoteRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuoteRequestPayload.HTTPStatus, errInvalidQuoteRequestPayload.ToHTTPError())
		return
	}

	qr, err := h.usecase.CreateQuoteRequest(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapIngestionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuoteRequest(qr))
}

// CancelQuoteRequest cancels a quote request that has not yet received
// quotes.
func (h *QuoteHandler) CancelQuoteRequest(c *gin.Context) {
	qr, err := h.usecase.CancelQuoteRequest(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		appErr := mapIngestionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteRequest(qr))
}

// GetQuoteRequest returns one quote request by id.
func (h *QuoteHandler) GetQuoteRequest(c *gin.Context) {
	qr, err := h.usecase.GetQuoteRequest(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		appErr := mapIngestionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteRequest(qr))
}

// SubmitProviderQuote ingests a provider's quote against an open request.
// Validation failures come back as a 200 with success=false so providers
// can correct and resubmit; only request-level problems map to error
// statuses.
func (h *QuoteHandler) SubmitProviderQuote(c *gin.Context) {
	var payload request.ProviderQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProviderPayload.HTTPStatus, errInvalidProviderPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.ProcessProviderResponse(c.Request.Context(), c.Param("request_id"), payload.ToPayload())
	if err != nil {
		appErr := mapIngestionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIngestResult(res))
}

// ValidateQuote dry-runs validation of a provider quote without
// persisting anything.
func (h *QuoteHandler) ValidateQuote(c *gin.Context) {
	var payload request.ValidateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProviderPayload.HTTPStatus, errInvalidProviderPayload.ToHTTPError())
		return
	}

	vr, err := h.usecase.ValidateQuote(c.Request.Context(), payload.PartID, payload.Quote.ToPayload())
	if err != nil {
		appErr := mapIngestionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromValidationResult(vr))
}

func mapIngestionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID),
		errors.Is(err, usecase.ErrInvalidPartID),
		errors.Is(err, usecase.ErrExpiryNotFuture),
		errors.Is(err, usecase.ErrNoProvidersSelected):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_REQUEST_NOT_FOUND", "Quote request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PART_NOT_FOUND", "Damaged part not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrActiveRequestExists):
		return pkg.NewDomainErrorSimple("ACTIVE_REQUEST_EXISTS", "An active quote request already exists for this part", http.StatusConflict)
	case errors.Is(err, usecase.ErrRequestExpired):
		return pkg.NewDomainErrorSimple("QUOTE_REQUEST_EXPIRED", "Quote request has expired", http.StatusConflict)
	case errors.Is(err, usecase.ErrRequestCancelled):
		return pkg.NewDomainErrorSimple("QUOTE_REQUEST_CANCELLED", "Quote request has been cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrRequestNotActive):
		return pkg.NewDomainErrorSimple("QUOTE_REQUEST_NOT_ACTIVE", "Quote request is not accepting quotes", http.StatusConflict)
	case errors.Is(err, usecase.ErrRequestNotCancellable):
		return pkg.NewDomainErrorSimple("QUOTE_REQUEST_NOT_CANCELLABLE", "Quote request can no longer be cancelled", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
