package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/Fanelemenzi/Carfinity-sub000/internal/domain/entities"
	"github.com/Fanelemenzi/Carfinity-sub000/internal/usecase/interfaces"
)

// defaultCompleteThresholdPct is the received/expected percentage at which
// collection counts as complete even with providers still pending. The
// figure is a long-standing heuristic carried over from the stored data;
// changing it silently alters completion semantics.
const defaultCompleteThresholdPct = 80.0

// CompletionStatus is the snapshot returned by CheckCompletion.
type CompletionStatus struct {
	IsComplete       bool    `json:"is_complete"`
	CompletionPct    float64 `json:"completion_percentage"`
	TotalRequests    int     `json:"total_requests"`
	ReceivedQuotes   int     `json:"received_quotes"`
	PendingRequests  int     `json:"pending_requests"`
	ExpiredRequests  int     `json:"expired_requests"`
	ExpectedQuotes   int     `json:"expected_quotes"`
	PartsWithQuotes  int     `json:"parts_with_quotes"`
	TotalParts       int     `json:"total_parts"`
	CollectionStatus string  `json:"collection_status"`
}

// ICompletionUseCase computes per-assessment quote-collection progress.

type ICompletionUseCase interface {
	CheckCompletion(ctx context.Context, assessmentID string) (CompletionStatus, error)
}

// CompletionConfig holds the completion heuristic's tunables.
type CompletionConfig struct {
	CompleteThresholdPct float64
}

func DefaultCompletionConfig() CompletionConfig {
	return CompletionConfig{CompleteThresholdPct: defaultCompleteThresholdPct}
}

type CompletionUseCase struct {
	requestRepo    interfaces.IQuoteRequestRepository
	quoteRepo      interfaces.IQuoteRepository
	assessmentRepo interfaces.IAssessmentRepository
	cfg            CompletionConfig
}

var _ ICompletionUseCase = (*CompletionUseCase)(nil)

func NewCompletionUseCase(
	requestRepo interfaces.IQuoteRequestRepository,
	quoteRepo interfaces.IQuoteRepository,
	assessmentRepo interfaces.IAssessmentRepository,
	cfg CompletionConfig,
) *CompletionUseCase {
	return &CompletionUseCase{
		requestRepo:    requestRepo,
		quoteRepo:      quoteRepo,
		assessmentRepo: assessmentRepo,
		cfg:            cfg,
	}
}

// CheckCompletion derives the completion snapshot from the assessment's
// sent/received requests and their quotes, then writes the collection
// status flag onto the assessment's quote summary. The flag write is best
// effort: assessments that predate the summary extension are skipped.
//
// An assessment is complete when either every in-scope part has at least
// one quote and nothing is still pending, or the received/expected ratio
// reaches the completion threshold. The dual condition tolerates provider
// non-response while still declaring good-enough coverage.
func (u *CompletionUseCase) CheckCompletion(ctx context.Context, assessmentID string) (CompletionStatus, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return CompletionStatus{}, ErrInvalidAssessmentID
	}

	requests, err := u.requestRepo.ListByAssessmentID(ctx, assessmentID)
	if err != nil {
		return CompletionStatus{}, err
	}

	now := time.Now()
	status := CompletionStatus{}
	partIDs := map[string]bool{}
	partsWithQuotes := map[string]bool{}

	for _, r := range requests {
		if !r.Status.IsActive() {
			continue
		}
		status.TotalRequests++
		status.ExpectedQuotes += r.Providers.Count()
		partIDs[r.PartID] = true

		if r.IsExpiredAt(now) {
			status.ExpiredRequests++
		} else if r.Status == entities.RequestStatusSent {
			status.PendingRequests++
		}

		quotes, err := u.quoteRepo.ListByRequestID(ctx, r.ID)
		if err != nil {
			return CompletionStatus{}, err
		}
		status.ReceivedQuotes += len(quotes)
		if len(quotes) > 0 {
			partsWithQuotes[r.PartID] = true
		}
	}

	status.TotalParts = len(partIDs)
	status.PartsWithQuotes = len(partsWithQuotes)
	if status.ExpectedQuotes > 0 {
		status.CompletionPct = float64(status.ReceivedQuotes) / float64(status.ExpectedQuotes) * 100
	}

	fullCoverage := status.TotalParts > 0 &&
		status.PartsWithQuotes == status.TotalParts &&
		status.PendingRequests == 0
	status.IsComplete = fullCoverage || status.CompletionPct >= u.cfg.CompleteThresholdPct

	collection := collectionStatusFor(status)
	status.CollectionStatus = string(collection)

	ok, err := u.assessmentRepo.SetCollectionStatus(ctx, assessmentID, collection)
	if err != nil {
		return CompletionStatus{}, err
	}
	if !ok {
		// No summary record yet; assessments created before the quote
		// extension simply do not carry the flag.
		log.Printf("[completion] no quote summary for assessment %s, status flag skipped", assessmentID)
	}

	return status, nil
}

func collectionStatusFor(s CompletionStatus) entities.CollectionStatus {
	switch {
	case s.IsComplete && s.ReceivedQuotes > 0:
		return entities.CollectionStatusCompleted
	case s.ReceivedQuotes > 0:
		return entities.CollectionStatusInProgress
	default:
		return entities.CollectionStatusNotStarted
	}
}
