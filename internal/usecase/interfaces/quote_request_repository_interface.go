package interfaces

import (
	"context"
	"time"

	"github.com/Fanelemenzi/Carfinity-sub000/internal/domain/entities"
)

// IQuoteRequestRepository abstracts DynamoDB persistence for QuoteRequest.
//
// The quote engine must be able to:
//   - create a request when a dispatch is recorded
//   - resolve a request by id during provider submissions
//   - find the active request for a part (one-active-per-part invariant)
//   - list an assessment's requests for completion tracking
//   - sweep stale requests during cleanup
//
// Lookups return the zero value with a nil error when nothing matches.

type IQuoteRequestRepository interface {
	Create(ctx context.Context, r entities.QuoteRequest) (entities.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	GetActiveByPartID(ctx context.Context, partID string) (entities.QuoteRequest, error)
	ListByAssessmentID(ctx context.Context, assessmentID string) ([]entities.QuoteRequest, error)
	UpdateStatus(ctx context.Context, id string, status entities.RequestStatus) (entities.QuoteRequest, error)

	// ListSweepable returns requests with status sent or expired whose
	// expiry timestamp is before cutoff.
	ListSweepable(ctx context.Context, cutoff time.Time) ([]entities.QuoteRequest, error)

	// MarkExpired flips a sent request to expired. It reports false when
	// the request was not in sent status, so reruns count nothing twice.
	MarkExpired(ctx context.Context, id string) (bool, error)
}
