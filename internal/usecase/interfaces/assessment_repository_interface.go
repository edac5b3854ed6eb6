package interfaces

import (
	"context"

	"github.com/Fanelemenzi/Carfinity-sub000/internal/domain/entities"
)

// IAssessmentRepository exposes the collaborator-owned assessment data the
// quote engine reads (damaged parts) and the quote-extension record it
// owns (AssessmentQuoteSummary).
//
// Damaged parts are read-only from this service's perspective; the only
// writes are the summary upsert and the collection-status flag.

type IAssessmentRepository interface {
	GetDamagedPart(ctx context.Context, id string) (entities.DamagedPart, error)
	ListDamagedParts(ctx context.Context, assessmentID string) ([]entities.DamagedPart, error)

	// ListAssessmentIDs returns every assessment id that has at least one
	// damaged part on record; used by the batch market refresh.
	ListAssessmentIDs(ctx context.Context) ([]string, error)

	GetQuoteSummary(ctx context.Context, assessmentID string) (entities.AssessmentQuoteSummary, error)
	UpsertQuoteSummary(ctx context.Context, s entities.AssessmentQuoteSummary) (entities.AssessmentQuoteSummary, error)

	// SetCollectionStatus updates the flag on an existing summary record.
	// It reports false (with a nil error) when the assessment has no
	// summary yet, so callers can skip silently.
	SetCollectionStatus(ctx context.Context, assessmentID string, status entities.CollectionStatus) (bool, error)
}
