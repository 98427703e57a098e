package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const sqlIncrementPageViews = `
INSERT INTO page_analytics (review_page_id, page_views)
VALUES ($1, 1)
ON CONFLICT (review_page_id) DO UPDATE SET
    page_views = page_analytics.page_views + 1,
    updated_at = now()
RETURNING review_page_id, page_views, qr_scans, link_clicks, review_submissions, receipts_uploaded, refined_reviews_count, avg_review_length, updated_at
`

// IncrementPageViews bumps the page-view counter for a review page
func (s *Store) IncrementPageViews(ctx context.Context, reviewPageID string) (PageAnalytics, error) {
	return s.incrementCounter(ctx, sqlIncrementPageViews, reviewPageID, PageEventPageView)
}

const sqlIncrementQRScans = `
INSERT INTO page_analytics (review_page_id, qr_scans)
VALUES ($1, 1)
ON CONFLICT (review_page_id) DO UPDATE SET
    qr_scans = page_analytics.qr_scans + 1,
    updated_at = now()
RETURNING review_page_id, page_views, qr_scans, link_clicks, review_submissions, receipts_uploaded, refined_reviews_count, avg_review_length, updated_at
`

// IncrementQRScans bumps the QR-scan counter for a review page
func (s *Store) IncrementQRScans(ctx context.Context, reviewPageID string) (PageAnalytics, error) {
	return s.incrementCounter(ctx, sqlIncrementQRScans, reviewPageID, PageEventQRScan)
}

const sqlIncrementLinkClicks = `
INSERT INTO page_analytics (review_page_id, link_clicks)
VALUES ($1, 1)
ON CONFLICT (review_page_id) DO UPDATE SET
    link_clicks = page_analytics.link_clicks + 1,
    updated_at = now()
RETURNING review_page_id, page_views, qr_scans, link_clicks, review_submissions, receipts_uploaded, refined_reviews_count, avg_review_length, updated_at
`

// IncrementLinkClicks bumps the link-click counter for a review page
func (s *Store) IncrementLinkClicks(ctx context.Context, reviewPageID string) (PageAnalytics, error) {
	return s.incrementCounter(ctx, sqlIncrementLinkClicks, reviewPageID, PageEventLinkClick)
}

func (s *Store) incrementCounter(ctx context.Context, query, reviewPageID string, eventKind PageEventKind) (PageAnalytics, error) {
	var analytics PageAnalytics
	err := s.db.GetContext(ctx, &analytics, query, reviewPageID)
	if err != nil {
		s.logger.Error(ctx, "failed to increment page counter", err)
		return PageAnalytics{}, fmt.Errorf("failed to increment page counter: %w", err)
	}
	s.notifyPageEvent(ctx, reviewPageID, eventKind)
	return analytics, nil
}

// RecordReviewSubmissionParams represents the analytics deltas of one
// finalized review
type RecordReviewSubmissionParams struct {
	ReviewPageID    string
	ReviewLength    int
	Refined         bool
	ReceiptUploaded bool
}

const sqlRecordReviewSubmission = `
INSERT INTO page_analytics (review_page_id, review_submissions, receipts_uploaded, refined_reviews_count, avg_review_length)
VALUES ($1, 1, CASE WHEN $3 THEN 1 ELSE 0 END, CASE WHEN $4 THEN 1 ELSE 0 END, $2)
ON CONFLICT (review_page_id) DO UPDATE SET
    review_submissions = page_analytics.review_submissions + 1,
    receipts_uploaded = page_analytics.receipts_uploaded + CASE WHEN $3 THEN 1 ELSE 0 END,
    refined_reviews_count = page_analytics.refined_reviews_count + CASE WHEN $4 THEN 1 ELSE 0 END,
    avg_review_length = (page_analytics.avg_review_length * page_analytics.review_submissions + $2) / (page_analytics.review_submissions + 1),
    updated_at = now()
RETURNING review_page_id, page_views, qr_scans, link_clicks, review_submissions, receipts_uploaded, refined_reviews_count, avg_review_length, updated_at
`

// RecordReviewSubmission folds one review into the page counters. The running
// mean is recomputed in the same statement as the submission bump, so
// concurrent submissions cannot interleave a count with a stale average.
func (s *Store) RecordReviewSubmission(ctx context.Context, params RecordReviewSubmissionParams) (PageAnalytics, error) {
	var analytics PageAnalytics
	err := s.db.GetContext(ctx, &analytics, sqlRecordReviewSubmission,
		params.ReviewPageID,
		params.ReviewLength,
		params.ReceiptUploaded,
		params.Refined)
	if err != nil {
		s.logger.Error(ctx, "failed to record review submission", err)
		return PageAnalytics{}, fmt.Errorf("failed to record review submission: %w", err)
	}
	s.notifyPageEvent(ctx, params.ReviewPageID, PageEventReviewSubmission)
	return analytics, nil
}

const sqlGetPageAnalytics = `
SELECT review_page_id, page_views, qr_scans, link_clicks, review_submissions, receipts_uploaded, refined_reviews_count, avg_review_length, updated_at
FROM page_analytics
WHERE review_page_id = $1
`

// GetPageAnalytics retrieves the full counter snapshot for a review page
func (s *Store) GetPageAnalytics(ctx context.Context, reviewPageID string) (PageAnalytics, error) {
	var analytics PageAnalytics
	err := s.db.GetContext(ctx, &analytics, sqlGetPageAnalytics, reviewPageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PageAnalytics{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get page analytics", err)
		return PageAnalytics{}, fmt.Errorf("failed to get page analytics: %w", err)
	}
	return analytics, nil
}
