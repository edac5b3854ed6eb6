package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/Fanelemenzi/Carfinity-sub000/internal/domain/entities"
	"github.com/Fanelemenzi/Carfinity-sub000/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrRequestNotFound       = errors.New("quote request not found")
	ErrRequestExpired        = errors.New("quote request expired")
	ErrRequestCancelled      = errors.New("quote request cancelled")
	ErrRequestNotActive      = errors.New("quote request not active")
	ErrRequestNotCancellable = errors.New("quote request not cancellable")
	ErrActiveRequestExists   = errors.New("active quote request already exists for part")
	ErrExpiryNotFuture       = errors.New("expiry timestamp must be in the future")
	ErrNoProvidersSelected   = errors.New("at least one provider type must be selected")
	ErrPartNotFound          = errors.New("damaged part not found")
	ErrInvalidRequestID      = errors.New("invalid request id")
	ErrInvalidPartID         = errors.New("invalid part id")
	ErrInvalidAssessmentID   = errors.New("invalid assessment id")
)

// CreateQuoteRequestCommand captures one dispatch-to-providers event. The
// assessment reference is derived from the damaged part.
type CreateQuoteRequestCommand struct {
	PartID      string
	ExpiresAt   time.Time
	Providers   entities.ProviderFlags
	RequestedBy string
}

// IngestResult is the outcome of one provider submission. Validation
// failures travel here as data; error returns are reserved for lifecycle
// rejections and storage failures.
type IngestResult struct {
	Success    bool              `json:"success"`
	QuoteID    string            `json:"quote_id,omitempty"`
	Errors     []string          `json:"errors,omitempty"`
	Warnings   []string          `json:"warnings,omitempty"`
	Completion *CompletionStatus `json:"completion_status,omitempty"`
}

// IQuoteIngestionUseCase exposes the quote-request lifecycle and the
// provider-response ingestion pipeline.

type IQuoteIngestionUseCase interface {
	CreateQuoteRequest(ctx context.Context, cmd CreateQuoteRequestCommand) (entities.QuoteRequest, error)
	CancelQuoteRequest(ctx context.Context, requestID string) (entities.QuoteRequest, error)
	GetQuoteRequest(ctx context.Context, requestID string) (entities.QuoteRequest, error)
	ValidateQuote(ctx context.Context, partID string, payload ProviderQuotePayload) (ValidationResult, error)
	ProcessProviderResponse(ctx context.Context, requestID string, payload ProviderQuotePayload) (IngestResult, error)
}

type QuoteIngestionUseCase struct {
	requestRepo    interfaces.IQuoteRequestRepository
	quoteRepo      interfaces.IQuoteRepository
	assessmentRepo interfaces.IAssessmentRepository
	validator      *QuoteValidator
	completion     ICompletionUseCase
}

var _ IQuoteIngestionUseCase = (*QuoteIngestionUseCase)(nil)

func NewQuoteIngestionUseCase(
	requestRepo interfaces.IQuoteRequestRepository,
	quoteRepo interfaces.IQuoteRepository,
	assessmentRepo interfaces.IAssessmentRepository,
	validator *QuoteValidator,
	completion ICompletionUseCase,
) *QuoteIngestionUseCase {
	return &QuoteIngestionUseCase{
		requestRepo:    requestRepo,
		quoteRepo:      quoteRepo,
		assessmentRepo: assessmentRepo,
		validator:      validator,
		completion:     completion,
	}
}

func (u *QuoteIngestionUseCase) CreateQuoteRequest(ctx context.Context, cmd CreateQuoteRequestCommand) (entities.QuoteRequest, error) {
	partID := strings.TrimSpace(cmd.PartID)
	if partID == "" {
		return entities.QuoteRequest{}, ErrInvalidPartID
	}
	if !cmd.ExpiresAt.After(time.Now()) {
		return entities.QuoteRequest{}, ErrExpiryNotFuture
	}
	if cmd.Providers.Count() == 0 {
		return entities.QuoteRequest{}, ErrNoProvidersSelected
	}

	part, err := u.assessmentRepo.GetDamagedPart(ctx, partID)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if part.ID == "" {
		return entities.QuoteRequest{}, ErrPartNotFound
	}

	// Enforce: one active request per damaged part.
	if active, err := u.requestRepo.GetActiveByPartID(ctx, partID); err != nil {
		return entities.QuoteRequest{}, err
	} else if active.ID != "" {
		return entities.QuoteRequest{}, ErrActiveRequestExists
	}

	now := time.Now().UTC()
	r := entities.QuoteRequest{
		ID:           uuid.NewString(),
		PartID:       partID,
		AssessmentID: part.AssessmentID,
		ExpiresAt:    cmd.ExpiresAt.UTC(),
		Providers:    cmd.Providers,
		RequestedBy:  strings.TrimSpace(cmd.RequestedBy),
		Status:       entities.RequestStatusSent,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.requestRepo.Create(ctx, r)
}

func (u *QuoteIngestionUseCase) CancelQuoteRequest(ctx context.Context, requestID string) (entities.QuoteRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.QuoteRequest{}, ErrInvalidRequestID
	}

	r, err := u.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if r.ID == "" {
		return entities.QuoteRequest{}, ErrRequestNotFound
	}
	if r.Status == entities.RequestStatusExpired || r.Status == entities.RequestStatusCancelled {
		return entities.QuoteRequest{}, ErrRequestNotCancellable
	}
	return u.requestRepo.UpdateStatus(ctx, requestID, entities.RequestStatusCancelled)
}

func (u *QuoteIngestionUseCase) GetQuoteRequest(ctx context.Context, requestID string) (entities.QuoteRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.QuoteRequest{}, ErrInvalidRequestID
	}

	r, err := u.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if r.ID == "" {
		return entities.QuoteRequest{}, ErrRequestNotFound
	}
	return r, nil
}

// ValidateQuote dry-runs the validation engine against a damaged part
// without touching any request or quote state.
func (u *QuoteIngestionUseCase) ValidateQuote(ctx context.Context, partID string, payload ProviderQuotePayload) (ValidationResult, error) {
	partID = strings.TrimSpace(partID)
	if partID == "" {
		return ValidationResult{}, ErrInvalidPartID
	}

	part, err := u.assessmentRepo.GetDamagedPart(ctx, partID)
	if err != nil {
		return ValidationResult{}, err
	}
	if part.ID == "" {
		return ValidationResult{}, ErrPartNotFound
	}
	return u.validator.Validate(payload, part), nil
}

// ProcessProviderResponse runs the full ingestion pipeline for one
// provider submission: resolve the request, verify it still accepts
// responses, validate the payload, upsert the quote together with the
// request-status flip, and recompute completion for the assessment.
func (u *QuoteIngestionUseCase) ProcessProviderResponse(ctx context.Context, requestID string, payload ProviderQuotePayload) (IngestResult, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return IngestResult{}, ErrInvalidRequestID
	}

	req, err := u.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return IngestResult{}, err
	}
	if req.ID == "" {
		return IngestResult{}, ErrRequestNotFound
	}
	switch {
	case req.Status == entities.RequestStatusCancelled:
		return IngestResult{}, ErrRequestCancelled
	case req.Status == entities.RequestStatusExpired || req.IsExpiredAt(time.Now()):
		return IngestResult{}, ErrRequestExpired
	case !req.Status.IsActive():
		return IngestResult{}, ErrRequestNotActive
	}

	part, err := u.assessmentRepo.GetDamagedPart(ctx, req.PartID)
	if err != nil {
		return IngestResult{}, err
	}
	if part.ID == "" {
		return IngestResult{}, ErrPartNotFound
	}

	vr := u.validator.Validate(payload, part)
	if !vr.Valid {
		return IngestResult{Success: false, Errors: vr.Errors, Warnings: vr.Warnings}, nil
	}

	quote := buildQuote(req, payload, time.Now().UTC())
	saved, err := u.quoteRepo.UpsertForRequest(ctx, quote)
	if err != nil {
		return IngestResult{}, err
	}

	completion, err := u.completion.CheckCompletion(ctx, req.AssessmentID)
	if err != nil {
		return IngestResult{}, err
	}

	return IngestResult{
		Success:    true,
		QuoteID:    saved.ID,
		Warnings:   vr.Warnings,
		Completion: &completion,
	}, nil
}

// QuoteIDFor derives the deterministic quote id for a provider submission.
// Keying the id off the natural uniqueness tuple lets the transactional
// upsert report the id without a read-back, and keeps repeat submissions
// on a stable identity.
func QuoteIDFor(requestID, providerType, providerName string) string {
	key := requestID + "#" + providerType + "#" + providerName
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
}

// buildQuote converts a validated payload into the quote entity. Parsing
// cannot fail here; the validator has already rejected malformed fields.
func buildQuote(req entities.QuoteRequest, p ProviderQuotePayload, now time.Time) entities.Quote {
	providerType := strings.TrimSpace(*p.ProviderType)
	providerName := strings.TrimSpace(*p.ProviderName)
	validUntil, _ := time.Parse(time.RFC3339, strings.TrimSpace(*p.ValidUntil))

	q := entities.Quote{
		ID:              QuoteIDFor(req.ID, providerType, providerName),
		RequestID:       req.ID,
		PartID:          req.PartID,
		ProviderType:    entities.ProviderType(providerType),
		ProviderName:    providerName,
		PartCost:        moneyValue(p.PartCost),
		LaborCost:       moneyValue(p.LaborCost),
		PaintCost:       moneyValue(p.PaintCost),
		AdditionalCosts: moneyValue(p.AdditionalCosts),
		TotalCost:       moneyValue(p.TotalCost),
		DeliveryDays:    *p.EstimatedDeliveryDays,
		CompletionDays:  *p.EstimatedCompletionDays,
		ValidUntil:      validUntil.UTC(),
		Notes:           strings.TrimSpace(p.Notes),
		Status:          entities.QuoteStatusValidated,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if hasText(p.PartType) {
		q.PartType = entities.PartType(strings.TrimSpace(*p.PartType))
	}
	if hasText(p.PartWarrantyMonths) {
		q.PartWarrantyMonths = intValue(p.PartWarrantyMonths)
	}
	if hasText(p.LaborWarrantyMonths) {
		q.LaborWarrantyMonths = intValue(p.LaborWarrantyMonths)
	}
	if p.ConfidenceScore != nil {
		q.ConfidenceScore = *p.ConfidenceScore
	}
	return q
}

func moneyValue(s *string) float64 {
	if !hasText(s) {
		return 0
	}
	d, err := decimal.NewFromString(strings.TrimSpace(*s))
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}

func intValue(s *string) int {
	n, err := strconv.Atoi(strings.TrimSpace(*s))
	if err != nil {
		return 0
	}
	return n
}
