package entities

import "time"

// RequestStatus represents the lifecycle of a quote request.
//
// Domain notes:
//   - A request is dispatched to a subset of provider types and collects
//     their priced responses until it expires or is cancelled.
//   - Only sent/received requests are "active"; at most one active request
//     may exist per damaged part at any time.
//
//go:generate stringer -type=RequestStatus

type RequestStatus string

const (
	RequestStatusDraft     RequestStatus = "draft"
	RequestStatusSent      RequestStatus = "sent"
	RequestStatusReceived  RequestStatus = "received"
	RequestStatusExpired   RequestStatus = "expired"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// IsActive reports whether the request still accepts provider responses
// (subject to its expiry timestamp).
func (s RequestStatus) IsActive() bool {
	return s == RequestStatusSent || s == RequestStatusReceived
}

// ProviderFlags records which provider types a request was dispatched to.
type ProviderFlags struct {
	Assessor    bool `json:"assessor"`
	Dealer      bool `json:"dealer"`
	Independent bool `json:"independent"`
	Network     bool `json:"network"`
}

// Count returns the number of provider types included in the dispatch,
// which is the number of quotes the request expects back.
func (f ProviderFlags) Count() int {
	n := 0
	for _, b := range []bool{f.Assessor, f.Dealer, f.Independent, f.Network} {
		if b {
			n++
		}
	}
	return n
}

// QuoteRequest is one dispatch-to-providers event for one damaged part
// within one assessment, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (assessment_id-index): assessment_id
//   - GSI2 (part_id-index): part_id
type QuoteRequest struct {
	ID           string        `json:"id"`
	PartID       string        `json:"part_id"`
	AssessmentID string        `json:"assessment_id"`
	ExpiresAt    time.Time     `json:"expires_at"`
	Providers    ProviderFlags `json:"providers"`
	RequestedBy  string        `json:"requested_by"`
	Status       RequestStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// IsExpiredAt reports whether the request's expiry timestamp has passed.
func (r QuoteRequest) IsExpiredAt(now time.Time) bool {
	return r.ExpiresAt.Before(now)
}
