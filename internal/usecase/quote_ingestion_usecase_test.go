package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Fanelemenzi/Carfinity-sub000/internal/domain/entities"
	mock_interfaces "github.com/Fanelemenzi/Carfinity-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// stubCompletion satisfies ICompletionUseCase with a canned snapshot.
type stubCompletion struct {
	status CompletionStatus
	err    error
	calls  int
}

func (s *stubCompletion) CheckCompletion(ctx context.Context, assessmentID string) (CompletionStatus, error) {
	s.calls++
	return s.status, s.err
}

func sentRequest() entities.QuoteRequest {
	now := time.Now().UTC()
	return entities.QuoteRequest{
		ID:           "req-1",
		PartID:       "part-1",
		AssessmentID: "assessment-1",
		ExpiresAt:    now.Add(7 * 24 * time.Hour),
		Providers:    entities.ProviderFlags{Dealer: true, Independent: true},
		Status:       entities.RequestStatusSent,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestQuoteIngestionUseCase_CreateQuoteRequest(t *testing.T) {
	part := entities.DamagedPart{ID: "part-1", AssessmentID: "assessment-1", Name: "Front bumper"}
	cmd := CreateQuoteRequestCommand{
		PartID:      "part-1",
		ExpiresAt:   time.Now().Add(7 * 24 * time.Hour),
		Providers:   entities.ProviderFlags{Dealer: true, Network: true},
		RequestedBy: "adjuster-7",
	}

	t.Run("invalid part id", func(t *testing.T) {
		uc := NewQuoteIngestionUseCase(nil, nil, nil, nil, nil)
		bad := cmd
		bad.PartID = "   "
		_, err := uc.CreateQuoteRequest(context.Background(), bad)
		if !errors.Is(err, ErrInvalidPartID) {
			t.Fatalf("expected ErrInvalidPartID, got %v", err)
		}
	})

	t.Run("expiry not in future", func(t *testing.T) {
		uc := NewQuoteIngestionUseCase(nil, nil, nil, nil, nil)
		bad := cmd
		bad.ExpiresAt = time.Now().Add(-time.Minute)
		_, err := uc.CreateQuoteRequest(context.Background(), bad)
		if !errors.Is(err, ErrExpiryNotFuture) {
			t.Fatalf("expected ErrExpiryNotFuture, got %v", err)
		}
	})

	t.Run("no providers selected", func(t *testing.T) {
		uc := NewQuoteIngestionUseCase(nil, nil, nil, nil, nil)
		bad := cmd
		bad.Providers = entities.ProviderFlags{}
		_, err := uc.CreateQuoteRequest(context.Background(), bad)
		if !errors.Is(err, ErrNoProvidersSelected) {
			t.Fatalf("expected ErrNoProvidersSelected, got %v", err)
		}
	})

	t.Run("part not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessmentRepo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		uc := NewQuoteIngestionUseCase(nil, nil, assessmentRepo, nil, nil)

		assessmentRepo.EXPECT().GetDamagedPart(gomock.Any(), "part-1").Return(entities.DamagedPart{}, nil)

		_, err := uc.CreateQuoteRequest(context.Background(), cmd)
		if !errors.Is(err, ErrPartNotFound) {
			t.Fatalf("expected ErrPartNotFound, got %v", err)
		}
	})

	t.Run("active request already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessmentRepo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		requestRepo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteIngestionUseCase(requestRepo, nil, assessmentRepo, nil, nil)

		assessmentRepo.EXPECT().GetDamagedPart(gomock.Any(), "part-1").Return(part, nil)
		requestRepo.EXPECT().GetActiveByPartID(gomock.Any(), "part-1").Return(sentRequest(), nil)

		_, err := uc.CreateQuoteRequest(context.Background(), cmd)
		if !errors.Is(err, ErrActiveRequestExists) {
			t.Fatalf("expected ErrActiveRequestExists, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessmentRepo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		requestRepo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteIngestionUseCase(requestRepo, nil, assessmentRepo, nil, nil)

		assessmentRepo.EXPECT().GetDamagedPart(gomock.Any(), "part-1").Return(part, nil)
		requestRepo.EXPECT().GetActiveByPartID(gomock.Any(), "part-1").Return(entities.QuoteRequest{}, nil)
		requestRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteRequest{})).DoAndReturn(
			func(_ context.Context, r entities.QuoteRequest) (entities.QuoteRequest, error) {
				if r.ID == "" || r.PartID != "part-1" || r.AssessmentID != "assessment-1" {
					t.Fatalf("unexpected request: %+v", r)
				}
				if r.Status != entities.RequestStatusSent {
					t.Fatalf("expected sent status, got %s", r.Status)
				}
				if r.CreatedAt.IsZero() || r.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return r, nil
			},
		)

		res, err := uc.CreateQuoteRequest(context.Background(), cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestQuoteIngestionUseCase_CancelQuoteRequest(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requestRepo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteIngestionUseCase(requestRepo, nil, nil, nil, nil)

		requestRepo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.QuoteRequest{}, nil)

		_, err := uc.CancelQuoteRequest(context.Background(), "req-1")
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("already expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requestRepo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteIngestionUseCase(requestRepo, nil, nil, nil, nil)

		r := sentRequest()
		r.Status = entities.RequestStatusExpired
		requestRepo.EXPECT().GetByID(gomock.Any(), "req-1").Return(r, nil)

		_, err := uc.CancelQuoteRequest(context.Background(), "req-1")
		if !errors.Is(err, ErrRequestNotCancellable) {
			t.Fatalf("expected ErrRequestNotCancellable, got %v", err)
		}
	})

	t.Run("cancel success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requestRepo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteIngestionUseCase(requestRepo, nil, nil, nil, nil)

		r := sentRequest()
		cancelled := r
		cancelled.Status = entities.RequestStatusCancelled
		requestRepo.EXPECT().GetByID(gomock.Any(), "req-1").Return(r, nil)
		requestRepo.EXPECT().UpdateStatus(gomock.Any(), "req-1", entities.RequestStatusCancelled).Return(cancelled, nil)

		res, err := uc.CancelQuoteRequest(context.Background(), "req-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.RequestStatusCancelled {
			t.Fatalf("expected cancelled status, got %s", res.Status)
		}
	})
}

func TestQuoteIngestionUseCase_ProcessProviderResponse(t *testing.T) {
	part := entities.DamagedPart{
		ID:               "part-1",
		AssessmentID:     "assessment-1",
		Name:             "Front bumper",
		MinEstimatedCost: 300,
		MaxEstimatedCost: 700,
	}

	t.Run("request not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requestRepo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteIngestionUseCase(requestRepo, nil, nil, nil, nil)

		requestRepo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.QuoteRequest{}, nil)

		_, err := uc.ProcessProviderResponse(context.Background(), "req-1", validPayload())
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("cancelled request rejects submissions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requestRepo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteIngestionUseCase(requestRepo, nil, nil, nil, nil)

		r := sentRequest()
		r.Status = entities.RequestStatusCancelled
		requestRepo.EXPECT().GetByID(gomock.Any(), "req-1").Return(r, nil)

		_, err := uc.ProcessProviderResponse(context.Background(), "req-1", validPayload())
		if !errors.Is(err, ErrRequestCancelled) {
			t.Fatalf("expected ErrRequestCancelled, got %v", err)
		}
	})

	t.Run("past expiry rejects even while status is sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requestRepo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteIngestionUseCase(requestRepo, nil, nil, nil, nil)

		r := sentRequest()
		r.ExpiresAt = time.Now().Add(-time.Hour)
		requestRepo.EXPECT().GetByID(gomock.Any(), "req-1").Return(r, nil)

		_, err := uc.ProcessProviderResponse(context.Background(), "req-1", validPayload())
		if !errors.Is(err, ErrRequestExpired) {
			t.Fatalf("expected ErrRequestExpired, got %v", err)
		}
	})

	t.Run("invalid payload returns failure result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requestRepo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		assessmentRepo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		uc := NewQuoteIngestionUseCase(requestRepo, nil, assessmentRepo, NewQuoteValidator(DefaultValidationConfig()), nil)

		requestRepo.EXPECT().GetByID(gomock.Any(), "req-1").Return(sentRequest(), nil)
		assessmentRepo.EXPECT().GetDamagedPart(gomock.Any(), "part-1").Return(part, nil)

		p := validPayload()
		p.TotalCost = strPtr("not-a-number")

		res, err := uc.ProcessProviderResponse(context.Background(), "req-1", p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Success {
			t.Fatalf("expected failed result")
		}
		if len(res.Errors) == 0 {
			t.Fatalf("expected validation errors")
		}
		if res.QuoteID != "" {
			t.Fatalf("expected no quote id on rejection")
		}
	})

	t.Run("valid payload upserts and reports completion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requestRepo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		assessmentRepo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		completion := &stubCompletion{status: CompletionStatus{IsComplete: false, CompletionPct: 50}}
		uc := NewQuoteIngestionUseCase(requestRepo, quoteRepo, assessmentRepo, NewQuoteValidator(DefaultValidationConfig()), completion)

		requestRepo.EXPECT().GetByID(gomock.Any(), "req-1").Return(sentRequest(), nil)
		assessmentRepo.EXPECT().GetDamagedPart(gomock.Any(), "part-1").Return(part, nil)
		quoteRepo.EXPECT().UpsertForRequest(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID != QuoteIDFor("req-1", "dealer", "Main Street Motors") {
					t.Fatalf("unexpected quote id: %s", q.ID)
				}
				if q.RequestID != "req-1" || q.PartID != "part-1" {
					t.Fatalf("unexpected quote keys: %+v", q)
				}
				if q.TotalCost != 500 || q.Status != entities.QuoteStatusValidated {
					t.Fatalf("unexpected quote payload: %+v", q)
				}
				return q, nil
			},
		)

		res, err := uc.ProcessProviderResponse(context.Background(), "req-1", validPayload())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success {
			t.Fatalf("expected success, got errors %v", res.Errors)
		}
		if res.QuoteID == "" {
			t.Fatalf("expected quote id")
		}
		if res.Completion == nil || res.Completion.CompletionPct != 50 {
			t.Fatalf("expected completion snapshot, got %+v", res.Completion)
		}
		if completion.calls != 1 {
			t.Fatalf("expected one completion check, got %d", completion.calls)
		}
	})

	t.Run("repeat submission derives the same quote id", func(t *testing.T) {
		a := QuoteIDFor("req-1", "dealer", "Main Street Motors")
		b := QuoteIDFor("req-1", "dealer", "Main Street Motors")
		c := QuoteIDFor("req-1", "independent", "Main Street Motors")
		if a != b {
			t.Fatalf("expected stable id, got %s vs %s", a, b)
		}
		if a == c {
			t.Fatalf("expected provider type to change the id")
		}
	})
}

func TestQuoteIngestionUseCase_ValidateQuote(t *testing.T) {
	t.Run("part not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessmentRepo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		uc := NewQuoteIngestionUseCase(nil, nil, assessmentRepo, NewQuoteValidator(DefaultValidationConfig()), nil)

		assessmentRepo.EXPECT().GetDamagedPart(gomock.Any(), "part-1").Return(entities.DamagedPart{}, nil)

		_, err := uc.ValidateQuote(context.Background(), "part-1", validPayload())
		if !errors.Is(err, ErrPartNotFound) {
			t.Fatalf("expected ErrPartNotFound, got %v", err)
		}
	})

	t.Run("dry run does not persist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessmentRepo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		uc := NewQuoteIngestionUseCase(nil, nil, assessmentRepo, NewQuoteValidator(DefaultValidationConfig()), nil)

		assessmentRepo.EXPECT().GetDamagedPart(gomock.Any(), "part-1").
			Return(entities.DamagedPart{ID: "part-1", AssessmentID: "assessment-1"}, nil)

		vr, err := uc.ValidateQuote(context.Background(), "part-1", validPayload())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !vr.Valid {
			t.Fatalf("expected valid result, got errors %v", vr.Errors)
		}
	})
}
