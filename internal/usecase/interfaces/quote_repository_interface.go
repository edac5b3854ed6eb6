package interfaces

import (
	"context"

	"github.com/Fanelemenzi/Carfinity-sub000/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.

type IQuoteRepository interface {
	// UpsertForRequest writes the quote and flips its request to received
	// in a single transaction. The quote is keyed by (request_id,
	// provider_type, provider_name): concurrent submissions from the same
	// provider serialize onto one row, with the latest payload winning.
	UpsertForRequest(ctx context.Context, q entities.Quote) (entities.Quote, error)

	ListByRequestID(ctx context.Context, requestID string) ([]entities.Quote, error)
	ListByPartID(ctx context.Context, partID string) ([]entities.Quote, error)

	// DeleteByRequestID hard-deletes all quotes of one request in a single
	// transaction and returns how many were removed.
	DeleteByRequestID(ctx context.Context, requestID string) (int, error)
}
