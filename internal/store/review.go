package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// UpsertReviewParams represents parameters for persisting a finalized review
type UpsertReviewParams struct {
	UniqueCode     string
	ReviewPageID   string
	BusinessName   string
	ServerName     *string
	ReviewText     string
	RefinedReview  *string
	ReceiptData    JSONB
	StepTimestamps JSONB
}

const sqlUpsertReview = `
INSERT INTO reviews (unique_code, review_page_id, business_name, server_name, review_text, refined_review, receipt_data, status, step_timestamps)
VALUES ($1, $2, $3, $4, $5, $6, $7, 'submitted', $8)
ON CONFLICT (unique_code) DO UPDATE SET
    business_name = EXCLUDED.business_name,
    server_name = EXCLUDED.server_name,
    review_text = EXCLUDED.review_text,
    refined_review = EXCLUDED.refined_review,
    receipt_data = EXCLUDED.receipt_data,
    step_timestamps = EXCLUDED.step_timestamps,
    updated_at = now()
RETURNING id, unique_code, review_page_id, business_name, server_name, review_text, refined_review, receipt_data, status, step_timestamps, created_at, updated_at
`

// UpsertReview persists a review keyed by its reward code. A retry of the same
// finalize replays the write without creating a duplicate; created_at is
// preserved across retries.
func (s *Store) UpsertReview(ctx context.Context, params UpsertReviewParams) (Review, error) {
	var review Review
	err := s.db.GetContext(ctx, &review, sqlUpsertReview,
		params.UniqueCode,
		params.ReviewPageID,
		params.BusinessName,
		params.ServerName,
		params.ReviewText,
		params.RefinedReview,
		params.ReceiptData,
		params.StepTimestamps)
	if err != nil {
		s.logger.Error(ctx, "failed to upsert review", err)
		return Review{}, fmt.Errorf("failed to upsert review: %w", err)
	}
	return review, nil
}

const sqlGetReviewByCode = `
SELECT id, unique_code, review_page_id, business_name, server_name, review_text, refined_review, receipt_data, status, step_timestamps, created_at, updated_at
FROM reviews
WHERE unique_code = $1
`

// GetReviewByCode retrieves a review by its reward code
func (s *Store) GetReviewByCode(ctx context.Context, uniqueCode string) (Review, error) {
	var review Review
	err := s.db.GetContext(ctx, &review, sqlGetReviewByCode, uniqueCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Review{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get review by code", err)
		return Review{}, fmt.Errorf("failed to get review by code: %w", err)
	}
	return review, nil
}

const sqlGetReviewsByPage = `
SELECT id, unique_code, review_page_id, business_name, server_name, review_text, refined_review, receipt_data, status, step_timestamps, created_at, updated_at
FROM reviews
WHERE review_page_id = $1
ORDER BY created_at DESC
`

// GetReviewsByPage retrieves all reviews submitted through a review page
func (s *Store) GetReviewsByPage(ctx context.Context, reviewPageID string) ([]Review, error) {
	var reviews []Review
	err := s.db.SelectContext(ctx, &reviews, sqlGetReviewsByPage, reviewPageID)
	if err != nil {
		s.logger.Error(ctx, "failed to get reviews by page", err)
		return nil, fmt.Errorf("failed to get reviews by page: %w", err)
	}
	return reviews, nil
}

const sqlUpdateReviewStatus = `
UPDATE reviews
SET status = $2, updated_at = now()
WHERE unique_code = $1
RETURNING id, unique_code, review_page_id, business_name, server_name, review_text, refined_review, receipt_data, status, step_timestamps, created_at, updated_at
`

// UpdateReviewStatus transitions a review's status, e.g. when a reward code
// is redeemed in person
func (s *Store) UpdateReviewStatus(ctx context.Context, uniqueCode string, status ReviewStatus) (Review, error) {
	var review Review
	err := s.db.GetContext(ctx, &review, sqlUpdateReviewStatus, uniqueCode, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Review{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update review status", err)
		return Review{}, fmt.Errorf("failed to update review status: %w", err)
	}
	return review, nil
}
