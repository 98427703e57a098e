package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dinetable-server/internal/observability"
	"dinetable-server/internal/review/draft"
	"dinetable-server/internal/rewardcode"
	"dinetable-server/internal/store"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

var (
	ErrReviewNotFound    = errors.New("review not found")
	ErrMissingRewardCode = errors.New("finalize request carries no reward code")
)

// Issuing the reward code races other sessions between the existence check
// and the insert; the unique constraint catches the loser, which regenerates.
const maxIssueAttempts = 3

// ReviewStore is the persistence surface the review pipeline needs
type ReviewStore interface {
	RewardCodeExists(ctx context.Context, code string) (bool, error)
	InsertRewardCode(ctx context.Context, params store.InsertRewardCodeParams) (store.RewardCode, error)
	UpsertReview(ctx context.Context, params store.UpsertReviewParams) (store.Review, error)
	GetReviewByCode(ctx context.Context, uniqueCode string) (store.Review, error)
	GetOrCreateContactList(ctx context.Context, restaurantName string) (store.ContactList, error)
	MergeContactReview(ctx context.Context, params store.MergeContactReviewParams) (store.CustomerContact, error)
	RecordReviewSubmission(ctx context.Context, params store.RecordReviewSubmissionParams) (store.PageAnalytics, error)
}

// ReviewProcessor turns a finalized draft into durable records: the reward
// code, the review row, the CRM merge and the analytics bump
type ReviewProcessor struct {
	store  ReviewStore
	logger *observability.Logger
}

func New(store ReviewStore, logger *observability.Logger) ReviewProcessor {
	return ReviewProcessor{
		store:  store,
		logger: logger,
	}
}

// PersistFinalized persists the review keyed by a previously issued reward
// code. The upsert is idempotent on that code, so callers retry a failed
// persist with the same code rather than issuing a new one. The review row
// is the record of value: once it is durable, the analytics bump failing is
// logged and swallowed rather than failing the user-facing action.
func (p ReviewProcessor) PersistFinalized(ctx context.Context, req draft.FinalizeRequest) (draft.FinalizeResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "review_page_id", Value: req.ReviewPageID},
		observability.Field{Key: "restaurant_name", Value: req.RestaurantName},
	)

	if req.RewardCode == "" {
		return draft.FinalizeResult{}, ErrMissingRewardCode
	}

	var receiptJSON store.JSONB
	var err error
	if req.Receipt != nil {
		receiptJSON, err = req.Receipt.ToJSONB()
		if err != nil {
			return draft.FinalizeResult{}, fmt.Errorf("failed to encode receipt data: %w", err)
		}
	}

	review, err := p.store.UpsertReview(ctx, store.UpsertReviewParams{
		UniqueCode:     req.RewardCode,
		ReviewPageID:   req.ReviewPageID,
		BusinessName:   req.RestaurantName,
		ServerName:     req.ServerName,
		ReviewText:     req.RawText,
		RefinedReview:  req.EnhancedText,
		ReceiptData:    receiptJSON,
		StepTimestamps: stepTimestampsJSON(req.StepTimestamps),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to persist finalized review", err)
		return draft.FinalizeResult{}, fmt.Errorf("failed to persist finalized review: %w", err)
	}

	if _, err := p.store.RecordReviewSubmission(ctx, store.RecordReviewSubmissionParams{
		ReviewPageID:    req.ReviewPageID,
		ReviewLength:    len(req.RawText),
		Refined:         req.EnhancedText != nil,
		ReceiptUploaded: req.Receipt != nil,
	}); err != nil {
		p.logger.Error(ctx, "failed to record review submission analytics", err)
	}

	p.logger.Info(ctx, "review finalized")
	return draft.FinalizeResult{RewardCode: req.RewardCode, Review: review}, nil
}

// IssueRewardCode issues a unique reward code for a review page. Issuance
// is separate from persistence so a draft retrying a failed persist keeps
// its code.
func (p ReviewProcessor) IssueRewardCode(ctx context.Context, reviewPageID string) (string, error) {
	return p.issueRewardCode(ctx, reviewPageID, store.RewardKindReview)
}

func (p ReviewProcessor) issueRewardCode(ctx context.Context, reviewPageID string, kind store.RewardKind) (string, error) {
	generator := rewardcode.New(p.store.RewardCodeExists)

	for attempt := 0; attempt < maxIssueAttempts; attempt++ {
		code, err := generator.Generate(ctx)
		if err != nil {
			if errors.Is(err, rewardcode.ErrExhaustedRetries) {
				p.logger.Error(ctx, "reward code space exhausted", err)
			}
			return "", err
		}

		_, err = p.store.InsertRewardCode(ctx, store.InsertRewardCodeParams{
			Code:         code,
			ReviewPageID: reviewPageID,
			Kind:         kind,
		})
		if err == nil {
			return code, nil
		}
		if errors.Is(err, store.ErrConflict) {
			continue
		}
		return "", fmt.Errorf("failed to record reward code: %w", err)
	}
	p.logger.Error(ctx, "reward code insert kept colliding", rewardcode.ErrExhaustedRetries)
	return "", rewardcode.ErrExhaustedRetries
}

// IssueMysteryCode issues a reward code for a referral milestone
func (p ReviewProcessor) IssueMysteryCode(ctx context.Context, reviewPageID string) (string, error) {
	return p.issueRewardCode(ctx, reviewPageID, store.RewardKindMystery)
}

// CaptureEmailRequest links a customer email to a previously finalized review
type CaptureEmailRequest struct {
	RestaurantName string
	Email          string
	RewardCode     string
}

// CaptureEmail merges the customer into the restaurant's contact list, keyed
// by the reward code they carried out of the review flow. The merge is
// additive: a returning customer keeps every earlier review entry.
func (p ReviewProcessor) CaptureEmail(ctx context.Context, req CaptureEmailRequest) (store.CustomerContact, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "restaurant_name", Value: req.RestaurantName},
		observability.Field{Key: "reward_code", Value: req.RewardCode},
	)

	review, err := p.store.GetReviewByCode(ctx, req.RewardCode)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CustomerContact{}, ErrReviewNotFound
		}
		return store.CustomerContact{}, fmt.Errorf("failed to load review for email capture: %w", err)
	}

	list, err := p.store.GetOrCreateContactList(ctx, req.RestaurantName)
	if err != nil {
		return store.CustomerContact{}, fmt.Errorf("failed to resolve contact list: %w", err)
	}

	contact, err := p.store.MergeContactReview(ctx, store.MergeContactReviewParams{
		ListID:  list.ID,
		Email:   req.Email,
		Summary: summarizeReview(review),
	})
	if err != nil {
		return store.CustomerContact{}, fmt.Errorf("failed to merge contact: %w", err)
	}

	p.logger.Info(ctx, "customer email captured")
	return contact, nil
}

// GetReview fetches a persisted review by reward code
func (p ReviewProcessor) GetReview(ctx context.Context, uniqueCode string) (store.Review, error) {
	review, err := p.store.GetReviewByCode(ctx, uniqueCode)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Review{}, ErrReviewNotFound
		}
		return store.Review{}, err
	}
	return review, nil
}

func summarizeReview(review store.Review) store.ReviewSummary {
	summary := store.ReviewSummary{
		ReviewID:     review.ID.String(),
		InitialText:  review.ReviewText,
		EnhancedText: review.RefinedReview,
		ServerName:   review.ServerName,
		RewardCode:   review.UniqueCode,
		SubmittedAt:  review.CreatedAt,
	}
	if total, ok := review.ReceiptData["total_amount"].(float64); ok {
		summary.ReceiptTotal = &total
	}
	for step := range review.StepTimestamps {
		summary.CompletedSteps = append(summary.CompletedSteps, step)
	}
	return summary
}

func stepTimestampsJSON(timestamps map[draft.Step]time.Time) store.JSONB {
	result := make(store.JSONB, len(timestamps))
	for step, at := range timestamps {
		result[string(step)] = at.Format(time.RFC3339)
	}
	return result
}
