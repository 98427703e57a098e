package draft

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dinetable-server/internal/store"
)

var (
	ErrEmptyReviewText       = errors.New("review text is empty")
	ErrUnknownServer         = errors.New("server is not on the restaurant's roster")
	ErrEnhancementFailed     = errors.New("enhancement service failed")
	ErrReceiptAnalysisFailed = errors.New("receipt analysis failed")
)

// Step is one stage of the review flow. The completed set only grows within
// a session; redoing a step refreshes its timestamp but never unmarks others.
type Step string

const (
	StepThoughts Step = "thoughts"
	StepReceipt  Step = "receipt"
	StepEnhanced Step = "enhanced"
	StepCopied   Step = "copied"
)

// RestaurantPreferences is the restaurant-side configuration a draft is
// opened against
type RestaurantPreferences struct {
	RestaurantName      string
	Servers             []string
	TipRewardPercentage float64
	ReviewPageID        string
}

// Enhancer rewrites raw customer text into a polished review
type Enhancer interface {
	EnhanceReview(ctx context.Context, rawText, restaurantName string, serverName *string, receipt *store.ReceiptData) (string, error)
}

// ReceiptAnalyzer extracts structured data from a receipt image
type ReceiptAnalyzer interface {
	AnalyzeReceipt(ctx context.Context, imageURL string) (store.ReceiptData, error)
}

// FinalizeRequest is everything the persistence pipeline needs from a draft
type FinalizeRequest struct {
	RewardCode     string
	ReviewPageID   string
	RestaurantName string
	ServerName     *string
	RawText        string
	EnhancedText   *string
	Receipt        *store.ReceiptData
	StepTimestamps map[Step]time.Time
}

// FinalizeResult is the durable outcome of copying a review
type FinalizeResult struct {
	RewardCode string
	Review     store.Review
}

// Finalizer issues the reward code and persists the review. Issuance and
// persistence are separate calls so a failed persist can be retried under
// the code that was already issued.
type Finalizer interface {
	IssueRewardCode(ctx context.Context, reviewPageID string) (string, error)
	PersistFinalized(ctx context.Context, req FinalizeRequest) (FinalizeResult, error)
}

// Draft is one customer's in-progress review session. Receipt upload and
// enhancement are independent optional branches; finalize is reachable as
// soon as thoughts are captured. Collaborator calls mutate the draft only
// after they succeed, so a failed or cancelled call can always be retried
// without losing prior input.
type Draft struct {
	prefs     RestaurantPreferences
	enhancer  Enhancer
	analyzer  ReceiptAnalyzer
	finalizer Finalizer

	rawText      string
	serverName   *string
	receipt      *store.ReceiptData
	enhancedText *string
	completed    map[Step]time.Time
	rewardCode   *string
	result       *FinalizeResult
}

// New opens a draft session against a restaurant's review page
func New(prefs RestaurantPreferences, enhancer Enhancer, analyzer ReceiptAnalyzer, finalizer Finalizer) *Draft {
	return &Draft{
		prefs:     prefs,
		enhancer:  enhancer,
		analyzer:  analyzer,
		finalizer: finalizer,
		completed: make(map[Step]time.Time),
	}
}

// CaptureThoughts records the customer's raw dining notes. The text can be
// re-captured any number of times before finalizing.
func (d *Draft) CaptureThoughts(text string) error {
	if text == "" {
		return ErrEmptyReviewText
	}
	d.rawText = text
	d.completed[StepThoughts] = time.Now().UTC()
	return nil
}

// SelectServer attributes the visit to one of the restaurant's servers
func (d *Draft) SelectServer(name string) error {
	for _, server := range d.prefs.Servers {
		if server == name {
			d.serverName = &server
			return nil
		}
	}
	return ErrUnknownServer
}

// UploadReceipt runs receipt analysis on the uploaded image. On collaborator
// failure the draft is untouched and the caller may retry.
func (d *Draft) UploadReceipt(ctx context.Context, imageURL string) error {
	receipt, err := d.analyzer.AnalyzeReceipt(ctx, imageURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReceiptAnalysisFailed, err)
	}
	d.receipt = &receipt
	d.completed[StepReceipt] = time.Now().UTC()
	return nil
}

// Enhance asks the AI collaborator for a polished version of the raw text.
// The raw text stays authoritative; a failed enhancement changes nothing.
func (d *Draft) Enhance(ctx context.Context) error {
	if d.rawText == "" {
		return ErrEmptyReviewText
	}
	enhanced, err := d.enhancer.EnhanceReview(ctx, d.rawText, d.prefs.RestaurantName, d.serverName, d.receipt)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEnhancementFailed, err)
	}
	d.enhancedText = &enhanced
	d.completed[StepEnhanced] = time.Now().UTC()
	return nil
}

// Finalize issues the reward code and persists the review. Calling it again
// on an already-finalized draft returns the cached result without issuing a
// second code. The code is retained across a failed persist too: a retry
// runs the upsert again under the same uniqueCode instead of issuing a
// fresh one, so a timed-out-but-committed persist cannot leave two reviews
// behind.
func (d *Draft) Finalize(ctx context.Context) (FinalizeResult, error) {
	if d.result != nil {
		return *d.result, nil
	}
	if d.rawText == "" {
		return FinalizeResult{}, ErrEmptyReviewText
	}

	if d.rewardCode == nil {
		code, err := d.finalizer.IssueRewardCode(ctx, d.prefs.ReviewPageID)
		if err != nil {
			return FinalizeResult{}, err
		}
		d.rewardCode = &code
	}

	timestamps := make(map[Step]time.Time, len(d.completed))
	for step, at := range d.completed {
		timestamps[step] = at
	}

	result, err := d.finalizer.PersistFinalized(ctx, FinalizeRequest{
		RewardCode:     *d.rewardCode,
		ReviewPageID:   d.prefs.ReviewPageID,
		RestaurantName: d.prefs.RestaurantName,
		ServerName:     d.serverName,
		RawText:        d.rawText,
		EnhancedText:   d.enhancedText,
		Receipt:        d.receipt,
		StepTimestamps: timestamps,
	})
	if err != nil {
		return FinalizeResult{}, err
	}

	d.completed[StepCopied] = time.Now().UTC()
	d.result = &result
	return result, nil
}

// RawText returns the captured notes
func (d *Draft) RawText() string {
	return d.rawText
}

// EnhancedText returns the AI-polished text, or nil if never enhanced
func (d *Draft) EnhancedText() *string {
	return d.enhancedText
}

// BestText returns the text the customer would copy: the enhanced version
// when present, otherwise the raw notes
func (d *Draft) BestText() string {
	if d.enhancedText != nil {
		return *d.enhancedText
	}
	return d.rawText
}

// ServerName returns the selected server, or nil
func (d *Draft) ServerName() *string {
	return d.serverName
}

// TipRewardPercentage returns the configured tip-back offer shown alongside
// the draft
func (d *Draft) TipRewardPercentage() float64 {
	return d.prefs.TipRewardPercentage
}

// Receipt returns the analyzed receipt, or nil
func (d *Draft) Receipt() *store.ReceiptData {
	return d.receipt
}

// Completed reports whether a step has been completed
func (d *Draft) Completed(step Step) bool {
	_, ok := d.completed[step]
	return ok
}

// StepTimestamps returns a copy of the completion times per step
func (d *Draft) StepTimestamps() map[Step]time.Time {
	timestamps := make(map[Step]time.Time, len(d.completed))
	for step, at := range d.completed {
		timestamps[step] = at
	}
	return timestamps
}
