package usecase

import (
	"context"
	"log"
	"time"

	"github.com/Fanelemenzi/Carfinity-sub000/internal/domain/entities"
	"github.com/Fanelemenzi/Carfinity-sub000/internal/usecase/interfaces"
)

// defaultCleanupDays is the sweep window applied when the caller passes a
// non-positive daysOld.
const defaultCleanupDays = 30

// CleanupStats reports one sweep run.
type CleanupStats struct {
	RequestsExpired  int `json:"requests_expired"`
	QuotesAssociated int `json:"quotes_associated"`
	QuotesDeleted    int `json:"quotes_deleted"`
}

// ICleanupUseCase is the expiry/cleanup sweep invoked by an external
// scheduler; the engine owns only the operation, never the schedule.

type ICleanupUseCase interface {
	Cleanup(ctx context.Context, daysOld int) (CleanupStats, error)
}

type CleanupUseCase struct {
	requestRepo interfaces.IQuoteRequestRepository
	quoteRepo   interfaces.IQuoteRepository
}

var _ ICleanupUseCase = (*CleanupUseCase)(nil)

func NewCleanupUseCase(requestRepo interfaces.IQuoteRequestRepository, quoteRepo interfaces.IQuoteRepository) *CleanupUseCase {
	return &CleanupUseCase{requestRepo: requestRepo, quoteRepo: quoteRepo}
}

// Cleanup expires stale sent requests whose expiry passed more than
// daysOld ago, and permanently deletes quotes attached to requests expired
// for more than twice that window. Quote deletion is transactional per
// request so a partial failure leaves no orphaned state, and the whole
// sweep is idempotent: rerunning touches only newly qualifying rows.
func (u *CleanupUseCase) Cleanup(ctx context.Context, daysOld int) (CleanupStats, error) {
	if daysOld <= 0 {
		daysOld = defaultCleanupDays
	}

	now := time.Now().UTC()
	expireCutoff := now.AddDate(0, 0, -daysOld)
	purgeCutoff := now.AddDate(0, 0, -2*daysOld)

	sweepable, err := u.requestRepo.ListSweepable(ctx, expireCutoff)
	if err != nil {
		return CleanupStats{}, err
	}

	stats := CleanupStats{}
	for _, r := range sweepable {
		if r.Status == entities.RequestStatusSent {
			changed, err := u.requestRepo.MarkExpired(ctx, r.ID)
			if err != nil {
				return stats, err
			}
			if changed {
				stats.RequestsExpired++
				quotes, err := u.quoteRepo.ListByRequestID(ctx, r.ID)
				if err != nil {
					return stats, err
				}
				stats.QuotesAssociated += len(quotes)
			}
			continue
		}

		// Already expired: purge its quotes once the expiry is old enough.
		if r.ExpiresAt.Before(purgeCutoff) {
			deleted, err := u.quoteRepo.DeleteByRequestID(ctx, r.ID)
			if err != nil {
				return stats, err
			}
			stats.QuotesDeleted += deleted
		}
	}

	log.Printf("[cleanup] days_old=%d requests_expired=%d quotes_associated=%d quotes_deleted=%d",
		daysOld, stats.RequestsExpired, stats.QuotesAssociated, stats.QuotesDeleted)
	return stats, nil
}
