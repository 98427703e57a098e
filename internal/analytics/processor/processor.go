package processor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"dinetable-server/internal/observability"
	"dinetable-server/internal/store"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

var (
	ErrPageNotFound     = errors.New("review page not found")
	ErrUnknownEventKind = errors.New("unknown analytics event kind")
)

// Buffered per subscriber; a slow websocket drops intermediate snapshots
// rather than stalling the feed. Every snapshot is complete, so dropping
// one loses nothing a later snapshot doesn't carry.
const subscriberBuffer = 8

// AnalyticsStore is the persistence surface for page analytics
type AnalyticsStore interface {
	GetPageAnalytics(ctx context.Context, reviewPageID string) (store.PageAnalytics, error)
	IncrementPageViews(ctx context.Context, reviewPageID string) (store.PageAnalytics, error)
	IncrementQRScans(ctx context.Context, reviewPageID string) (store.PageAnalytics, error)
	IncrementLinkClicks(ctx context.Context, reviewPageID string) (store.PageAnalytics, error)
}

// Aggregator consumes the page-events change feed and fans complete counter
// snapshots out to live dashboard subscribers. Events carry no payload beyond
// the page they touched; every delivery triggers a re-fetch from the store,
// so duplicated or reordered notifications cannot corrupt what viewers see.
type Aggregator struct {
	store  AnalyticsStore
	logger *observability.Logger

	mu          sync.RWMutex
	subscribers map[string]map[chan store.PageAnalytics]struct{}
}

func New(analyticsStore AnalyticsStore, logger *observability.Logger) *Aggregator {
	return &Aggregator{
		store:       analyticsStore,
		logger:      logger,
		subscribers: make(map[string]map[chan store.PageAnalytics]struct{}),
	}
}

// Run consumes page events until the context is cancelled
func (a *Aggregator) Run(ctx context.Context, events <-chan store.PageEvent) {
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			a.refresh(ctx, event.ReviewPageID)
		case <-ctx.Done():
			return
		}
	}
}

func (a *Aggregator) refresh(ctx context.Context, reviewPageID string) {
	snapshot, err := a.store.GetPageAnalytics(ctx, reviewPageID)
	if err != nil {
		a.logger.Error(ctx, "failed to refresh page analytics snapshot", err)
		return
	}
	a.broadcast(reviewPageID, snapshot)
}

func (a *Aggregator) broadcast(reviewPageID string, snapshot store.PageAnalytics) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for ch := range a.subscribers[reviewPageID] {
		select {
		case ch <- snapshot:
		default:
		}
	}
}

// Subscribe registers a live feed for one page. The returned cancel func must
// be called when the viewer disconnects; it closes the channel.
func (a *Aggregator) Subscribe(reviewPageID string) (<-chan store.PageAnalytics, func()) {
	ch := make(chan store.PageAnalytics, subscriberBuffer)

	a.mu.Lock()
	if a.subscribers[reviewPageID] == nil {
		a.subscribers[reviewPageID] = make(map[chan store.PageAnalytics]struct{})
	}
	a.subscribers[reviewPageID][ch] = struct{}{}
	a.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			a.mu.Lock()
			delete(a.subscribers[reviewPageID], ch)
			if len(a.subscribers[reviewPageID]) == 0 {
				delete(a.subscribers, reviewPageID)
			}
			a.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Snapshot returns the current counters for a page straight from the store
func (a *Aggregator) Snapshot(ctx context.Context, reviewPageID string) (store.PageAnalytics, error) {
	snapshot, err := a.store.GetPageAnalytics(ctx, reviewPageID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.PageAnalytics{}, ErrPageNotFound
		}
		return store.PageAnalytics{}, err
	}
	return snapshot, nil
}

// Track bumps the counter for an engagement event. The store publishes the
// change-feed notification, so subscribers see the bump without any extra
// plumbing here.
func (a *Aggregator) Track(ctx context.Context, reviewPageID string, kind store.PageEventKind) (store.PageAnalytics, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "review_page_id", Value: reviewPageID},
		observability.Field{Key: "event_kind", Value: string(kind)},
	)

	var (
		snapshot store.PageAnalytics
		err      error
	)
	switch kind {
	case store.PageEventPageView:
		snapshot, err = a.store.IncrementPageViews(ctx, reviewPageID)
	case store.PageEventQRScan:
		snapshot, err = a.store.IncrementQRScans(ctx, reviewPageID)
	case store.PageEventLinkClick:
		snapshot, err = a.store.IncrementLinkClicks(ctx, reviewPageID)
	default:
		return store.PageAnalytics{}, ErrUnknownEventKind
	}
	if err != nil {
		return store.PageAnalytics{}, fmt.Errorf("failed to track %s: %w", kind, err)
	}
	return snapshot, nil
}
