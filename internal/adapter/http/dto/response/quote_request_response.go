package response

import (
	"time"

	"github.com/Fanelemenzi/Carfinity-sub000/internal/domain/entities"
)

type ProviderFlagsResponse struct {
	Assessor    bool `json:"assessor"`
	Dealer      bool `json:"dealer"`
	Independent bool `json:"independent"`
	Network     bool `json:"network"`
}

type QuoteRequestResponse struct {
	ID             string                `json:"id"`
	PartID         string                `json:"part_id"`
	AssessmentID   string                `json:"assessment_id"`
	ExpiresAt      time.Time             `json:"expires_at"`
	Providers      ProviderFlagsResponse `json:"providers"`
	ExpectedQuotes int                   `json:"expected_quotes"`
	RequestedBy    string                `json:"requested_by,omitempty"`
	Status         string                `json:"status"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

func FromQuoteRequest(r entities.QuoteRequest) QuoteRequestResponse {
	return QuoteRequestResponse{
		ID:           r.ID,
		PartID:       r.PartID,
		AssessmentID: r.AssessmentID,
		ExpiresAt:    r.ExpiresAt,
		Providers: ProviderFlagsResponse{
			Assessor:    r.Providers.Assessor,
			Dealer:      r.Providers.Dealer,
			Independent: r.Providers.Independent,
			Network:     r.Providers.Network,
		},
		ExpectedQuotes: r.Providers.Count(),
		RequestedBy:    r.RequestedBy,
		Status:         string(r.Status),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
