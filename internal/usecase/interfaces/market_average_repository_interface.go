package interfaces

import (
	"context"

	"github.com/Fanelemenzi/Carfinity-sub000/internal/domain/entities"
)

// IMarketAverageRepository abstracts DynamoDB persistence for the derived
// per-part MarketAverage record (one row per damaged part, replaced
// wholesale on every calculation).

type IMarketAverageRepository interface {
	Upsert(ctx context.Context, ma entities.MarketAverage) (entities.MarketAverage, error)
	GetByPartID(ctx context.Context, partID string) (entities.MarketAverage, error)
}
