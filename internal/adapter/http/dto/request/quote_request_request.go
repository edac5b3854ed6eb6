package request

import (
	"strings"
	"time"

	"github.com/Fanelemenzi/Carfinity-sub000/internal/domain/entities"
	"github.com/Fanelemenzi/Carfinity-sub000/internal/usecase"
)

// ProviderFlagsRequest selects which provider types a request goes to.
type ProviderFlagsRequest struct {
	Assessor    bool `json:"assessor"`
	Dealer      bool `json:"dealer"`
	Independent bool `json:"independent"`
	Network     bool `json:"network"`
}

// CreateQuoteRequestRequest records one dispatch-to-providers event.
type CreateQuoteRequestRequest struct {
	PartID      string               `json:"part_id" binding:"required"`
	ExpiresAt   time.Time            `json:"expires_at" binding:"required"`
	Providers   ProviderFlagsRequest `json:"providers"`
	RequestedBy string               `json:"requested_by"`
}

func (r CreateQuoteRequestRequest) ToCommand() usecase.CreateQuoteRequestCommand {
	return usecase.CreateQuoteRequestCommand{
		PartID:    strings.TrimSpace(r.PartID),
		ExpiresAt: r.ExpiresAt,
		Providers: entities.ProviderFlags{
			Assessor:    r.Providers.Assessor,
			Dealer:      r.Providers.Dealer,
			Independent: r.Providers.Independent,
			Network:     r.Providers.Network,
		},
		RequestedBy: strings.TrimSpace(r.RequestedBy),
	}
}
