package store

import (
	"context"
	"encoding/json"
)

// PageEventsChannel is the Postgres NOTIFY channel carrying analytics events
const PageEventsChannel = "page_events"

// PageEventKind identifies which counter an event touched
type PageEventKind string

const (
	PageEventPageView         PageEventKind = "page_view"
	PageEventQRScan           PageEventKind = "qr_scan"
	PageEventLinkClick        PageEventKind = "link_click"
	PageEventReviewSubmission PageEventKind = "review_submission"
)

// PageEvent is the change-feed payload published after an analytics write.
// Consumers treat it as a hint to re-fetch the snapshot, so duplicate or
// out-of-order delivery is harmless.
type PageEvent struct {
	ReviewPageID string        `json:"review_page_id"`
	Kind         PageEventKind `json:"kind"`
}

const sqlNotifyPageEvent = `
SELECT pg_notify($1, $2)
`

// notifyPageEvent publishes a change-feed event. Delivery is best effort;
// the counters are already durable when this runs.
func (s *Store) notifyPageEvent(ctx context.Context, reviewPageID string, kind PageEventKind) {
	payload, err := json.Marshal(PageEvent{ReviewPageID: reviewPageID, Kind: kind})
	if err != nil {
		s.logger.Error(ctx, "failed to marshal page event", err)
		return
	}
	if _, err := s.db.ExecContext(ctx, sqlNotifyPageEvent, PageEventsChannel, string(payload)); err != nil {
		s.logger.Error(ctx, "failed to notify page event", err)
	}
}
