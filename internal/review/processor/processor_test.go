package processor

import (
	"context"
	"errors"
	"testing"
	"time"

	"dinetable-server/internal/observability"
	"dinetable-server/internal/review/draft"
	"dinetable-server/internal/store"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func TestPersistFinalized(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := NewMockReviewStore(ctrl)
	p := New(mockStore, observability.NewLogger())

	enhanced := "A lovely dinner."

	mockStore.EXPECT().UpsertReview(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, params store.UpsertReviewParams) (store.Review, error) {
			if params.UniqueCode != "ABCD2345" {
				t.Errorf("review keyed by %s, want ABCD2345", params.UniqueCode)
			}
			if params.ReviewText != "raw notes" {
				t.Errorf("review text = %q", params.ReviewText)
			}
			if params.RefinedReview == nil || *params.RefinedReview != enhanced {
				t.Errorf("refined review = %v", params.RefinedReview)
			}
			if params.ReceiptData == nil {
				t.Error("receipt data missing from upsert")
			}
			return store.Review{
				ID:         uuid.New(),
				UniqueCode: params.UniqueCode,
				ReviewText: params.ReviewText,
				Status:     store.ReviewStatusSubmitted,
			}, nil
		})
	mockStore.EXPECT().RecordReviewSubmission(gomock.Any(), store.RecordReviewSubmissionParams{
		ReviewPageID:    "page-1",
		ReviewLength:    len("raw notes"),
		Refined:         true,
		ReceiptUploaded: true,
	}).Return(store.PageAnalytics{}, nil)

	result, err := p.PersistFinalized(context.Background(), draft.FinalizeRequest{
		RewardCode:     "ABCD2345",
		ReviewPageID:   "page-1",
		RestaurantName: "Osteria Nonna",
		RawText:        "raw notes",
		EnhancedText:   &enhanced,
		Receipt:        &store.ReceiptData{TotalAmount: 40},
		StepTimestamps: map[draft.Step]time.Time{draft.StepThoughts: time.Now().UTC()},
	})
	if err != nil {
		t.Fatalf("PersistFinalized: %v", err)
	}
	if result.RewardCode != "ABCD2345" {
		t.Errorf("result code = %s, want ABCD2345", result.RewardCode)
	}
	if result.Review.Status != store.ReviewStatusSubmitted {
		t.Errorf("review status = %s", result.Review.Status)
	}
}

func TestPersistFinalized_MissingCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := NewMockReviewStore(ctrl)
	p := New(mockStore, observability.NewLogger())

	_, err := p.PersistFinalized(context.Background(), draft.FinalizeRequest{
		ReviewPageID:   "page-1",
		RestaurantName: "Osteria Nonna",
		RawText:        "good",
	})
	if !errors.Is(err, ErrMissingRewardCode) {
		t.Fatalf("expected ErrMissingRewardCode, got %v", err)
	}
}

func TestIssueRewardCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := NewMockReviewStore(ctrl)
	p := New(mockStore, observability.NewLogger())

	var issuedCode string
	mockStore.EXPECT().RewardCodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
	mockStore.EXPECT().InsertRewardCode(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, params store.InsertRewardCodeParams) (store.RewardCode, error) {
			issuedCode = params.Code
			if params.Kind != store.RewardKindReview {
				t.Errorf("reward kind = %s, want review", params.Kind)
			}
			if params.ReviewPageID != "page-1" {
				t.Errorf("review page id = %s", params.ReviewPageID)
			}
			return store.RewardCode{Code: params.Code, ReviewPageID: params.ReviewPageID, Kind: params.Kind}, nil
		})

	code, err := p.IssueRewardCode(context.Background(), "page-1")
	if err != nil {
		t.Fatalf("IssueRewardCode: %v", err)
	}
	if code != issuedCode {
		t.Errorf("returned code = %s, want inserted code %s", code, issuedCode)
	}
}

func TestIssueRewardCode_ConflictRegenerates(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := NewMockReviewStore(ctrl)
	p := New(mockStore, observability.NewLogger())

	// Another session wins the insert race once; the second candidate lands.
	mockStore.EXPECT().RewardCodeExists(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
	first := mockStore.EXPECT().InsertRewardCode(gomock.Any(), gomock.Any()).Return(store.RewardCode{}, store.ErrConflict)
	mockStore.EXPECT().InsertRewardCode(gomock.Any(), gomock.Any()).After(first).DoAndReturn(
		func(ctx context.Context, params store.InsertRewardCodeParams) (store.RewardCode, error) {
			return store.RewardCode{Code: params.Code}, nil
		})

	if _, err := p.IssueRewardCode(context.Background(), "page-1"); err != nil {
		t.Fatalf("IssueRewardCode after conflict: %v", err)
	}
}

func TestPersistFinalized_AnalyticsFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := NewMockReviewStore(ctrl)
	p := New(mockStore, observability.NewLogger())

	mockStore.EXPECT().UpsertReview(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, params store.UpsertReviewParams) (store.Review, error) {
			return store.Review{ID: uuid.New(), UniqueCode: params.UniqueCode}, nil
		})
	mockStore.EXPECT().RecordReviewSubmission(gomock.Any(), gomock.Any()).
		Return(store.PageAnalytics{}, errors.New("notify channel down"))

	// The review is already durable; the analytics bump is best effort.
	if _, err := p.PersistFinalized(context.Background(), draft.FinalizeRequest{
		RewardCode:     "ABCD2345",
		ReviewPageID:   "page-1",
		RestaurantName: "Osteria Nonna",
		RawText:        "good",
	}); err != nil {
		t.Fatalf("PersistFinalized: %v", err)
	}
}

func TestPersistFinalized_PersistenceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := NewMockReviewStore(ctrl)
	p := New(mockStore, observability.NewLogger())

	persistErr := errors.New("connection reset")
	mockStore.EXPECT().UpsertReview(gomock.Any(), gomock.Any()).Return(store.Review{}, persistErr)

	_, err := p.PersistFinalized(context.Background(), draft.FinalizeRequest{
		RewardCode:     "ABCD2345",
		ReviewPageID:   "page-1",
		RestaurantName: "Osteria Nonna",
		RawText:        "good",
	})
	if !errors.Is(err, persistErr) {
		t.Fatalf("expected wrapped persistence error, got %v", err)
	}
}

func TestCaptureEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := NewMockReviewStore(ctrl)
	p := New(mockStore, observability.NewLogger())

	reviewID := uuid.New()
	listID := uuid.New()
	refined := "Polished review."

	mockStore.EXPECT().GetReviewByCode(gomock.Any(), "ABCD2345").Return(store.Review{
		ID:            reviewID,
		UniqueCode:    "ABCD2345",
		ReviewText:    "raw notes",
		RefinedReview: &refined,
		ReceiptData:   store.JSONB{"total_amount": 42.5},
		StepTimestamps: store.JSONB{
			"thoughts": "2026-08-01T12:00:00Z",
			"enhanced": "2026-08-01T12:01:00Z",
		},
	}, nil)
	mockStore.EXPECT().GetOrCreateContactList(gomock.Any(), "Osteria Nonna").
		Return(store.ContactList{ID: listID, RestaurantName: "Osteria Nonna"}, nil)
	mockStore.EXPECT().MergeContactReview(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, params store.MergeContactReviewParams) (store.CustomerContact, error) {
			if params.ListID != listID {
				t.Errorf("list id = %s, want %s", params.ListID, listID)
			}
			if params.Email != "guest@example.com" {
				t.Errorf("email = %s", params.Email)
			}
			if params.Summary.ReviewID != reviewID.String() {
				t.Errorf("summary review id = %s", params.Summary.ReviewID)
			}
			if params.Summary.ReceiptTotal == nil || *params.Summary.ReceiptTotal != 42.5 {
				t.Errorf("summary receipt total = %v", params.Summary.ReceiptTotal)
			}
			if len(params.Summary.CompletedSteps) != 2 {
				t.Errorf("summary steps = %v", params.Summary.CompletedSteps)
			}
			return store.CustomerContact{ID: uuid.New(), ListID: listID, Email: params.Email}, nil
		})

	contact, err := p.CaptureEmail(context.Background(), CaptureEmailRequest{
		RestaurantName: "Osteria Nonna",
		Email:          "guest@example.com",
		RewardCode:     "ABCD2345",
	})
	if err != nil {
		t.Fatalf("CaptureEmail: %v", err)
	}
	if contact.Email != "guest@example.com" {
		t.Errorf("contact email = %s", contact.Email)
	}
}

func TestCaptureEmail_UnknownCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := NewMockReviewStore(ctrl)
	p := New(mockStore, observability.NewLogger())

	mockStore.EXPECT().GetReviewByCode(gomock.Any(), "MISSING1").Return(store.Review{}, store.ErrNotFound)

	_, err := p.CaptureEmail(context.Background(), CaptureEmailRequest{
		RestaurantName: "Osteria Nonna",
		Email:          "guest@example.com",
		RewardCode:     "MISSING1",
	})
	if !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}
