package processor

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"dinetable-server/internal/observability"
	"dinetable-server/internal/store"

	"github.com/gosimple/slug"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

var (
	ErrReferralNotFound = errors.New("referral not found")
	ErrInvalidReferrer  = errors.New("referrer name and email are required")
	ErrExhaustedRetries = errors.New("exhausted referral code generation attempts")
)

const (
	suffixAlphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	suffixLength     = 6
	maxIssueAttempts = 5

	// A referrer's third star fires the reward and resets the count.
	starsPerReward = 3
)

// ReferralStore is the persistence surface for the referral ledger
type ReferralStore interface {
	InsertReferralCode(ctx context.Context, params store.InsertReferralCodeParams) (store.ReferralCode, error)
	GetLatestReferrerStars(ctx context.Context, referrerEmail, restaurantName string) (int, error)
	GetReferralByCode(ctx context.Context, code string) (store.ReferralCode, error)
	RecordReferralSignup(ctx context.Context, code string) (store.ReferralCode, error)
}

// CodeIssuer issues mystery reward codes when a referrer completes a star run
type CodeIssuer interface {
	IssueMysteryCode(ctx context.Context, reviewPageID string) (string, error)
}

// ReferralProcessor issues referral codes and maintains the star ledger
type ReferralProcessor struct {
	store      ReferralStore
	codeIssuer CodeIssuer
	webAppURI  string
	logger     *observability.Logger
}

func New(store ReferralStore, codeIssuer CodeIssuer, webAppURI string, logger *observability.Logger) ReferralProcessor {
	return ReferralProcessor{
		store:      store,
		codeIssuer: codeIssuer,
		webAppURI:  webAppURI,
		logger:     logger,
	}
}

// IssueReferralRequest represents a customer asking for a referral link
type IssueReferralRequest struct {
	ReferrerName   string
	ReferrerEmail  string
	RestaurantName string
}

// IssueReferralResponse carries the issued code and its shareable link
type IssueReferralResponse struct {
	Referral  store.ReferralCode `json:"referral"`
	ShareLink string             `json:"share_link"`
}

// IssueReferral creates a referral code for a customer. A returning referrer
// inherits the star progress from their most recent code at the same
// restaurant, so switching links never resets a partially earned reward.
func (p ReferralProcessor) IssueReferral(ctx context.Context, req IssueReferralRequest) (IssueReferralResponse, error) {
	if req.ReferrerName == "" || req.ReferrerEmail == "" {
		return IssueReferralResponse{}, ErrInvalidReferrer
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "restaurant_name", Value: req.RestaurantName},
		observability.Field{Key: "referrer_email", Value: req.ReferrerEmail},
	)

	stars, err := p.store.GetLatestReferrerStars(ctx, req.ReferrerEmail, req.RestaurantName)
	if err != nil {
		return IssueReferralResponse{}, fmt.Errorf("failed to load referrer star progress: %w", err)
	}

	for attempt := 0; attempt < maxIssueAttempts; attempt++ {
		suffix, err := randomSuffix()
		if err != nil {
			return IssueReferralResponse{}, fmt.Errorf("failed to generate referral code: %w", err)
		}
		code := slug.Make(req.ReferrerName) + "-" + suffix

		referral, err := p.store.InsertReferralCode(ctx, store.InsertReferralCodeParams{
			Code:           code,
			ReferrerName:   req.ReferrerName,
			ReferrerEmail:  req.ReferrerEmail,
			RestaurantName: req.RestaurantName,
			StarsCount:     stars,
		})
		if err == nil {
			p.logger.Info(ctx, "referral code issued")
			return IssueReferralResponse{
				Referral:  referral,
				ShareLink: p.shareLink(code),
			}, nil
		}
		if errors.Is(err, store.ErrConflict) {
			continue
		}
		return IssueReferralResponse{}, fmt.Errorf("failed to persist referral code: %w", err)
	}
	p.logger.Error(ctx, "referral code insert kept colliding", ErrExhaustedRetries)
	return IssueReferralResponse{}, ErrExhaustedRetries
}

// GetReferral fetches a referral ledger entry by code
func (p ReferralProcessor) GetReferral(ctx context.Context, code string) (store.ReferralCode, error) {
	referral, err := p.store.GetReferralByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ReferralCode{}, ErrReferralNotFound
		}
		return store.ReferralCode{}, err
	}
	return referral, nil
}

// RecordSignupRequest represents a referred friend signing up
type RecordSignupRequest struct {
	Code         string
	ReviewPageID string
}

// SignupOutcome reports what the signup earned the referrer
type SignupOutcome struct {
	Referral    store.ReferralCode `json:"referral"`
	StarEarned  bool               `json:"star_earned"`
	RewardFired bool               `json:"reward_fired"`
	MysteryCode *string            `json:"mystery_code,omitempty"`
}

// RecordSignup credits a referrer for a friend's signup. The total and star
// count move together in one store statement; a star count that rolled back
// to zero means the third star landed, which fires a mystery reward for the
// referrer.
func (p ReferralProcessor) RecordSignup(ctx context.Context, req RecordSignupRequest) (SignupOutcome, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "referral_code", Value: req.Code},
	)

	referral, err := p.store.RecordReferralSignup(ctx, req.Code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return SignupOutcome{}, ErrReferralNotFound
		}
		return SignupOutcome{}, fmt.Errorf("failed to record referral signup: %w", err)
	}

	outcome := SignupOutcome{
		Referral:   referral,
		StarEarned: true,
	}
	if referral.StarsCount != 0 {
		p.logger.Info(ctx, "referral star earned")
		return outcome, nil
	}

	outcome.RewardFired = true
	mysteryCode, err := p.codeIssuer.IssueMysteryCode(ctx, req.ReviewPageID)
	if err != nil {
		// The ledger already credited the signup; surface the failure so the
		// caller can retry reward issuance rather than losing the star.
		p.logger.Error(ctx, "failed to issue mystery reward code", err)
		return SignupOutcome{}, fmt.Errorf("failed to issue mystery reward code: %w", err)
	}
	outcome.MysteryCode = &mysteryCode

	p.logger.Info(ctx, "referral reward fired")
	return outcome, nil
}

func (p ReferralProcessor) shareLink(code string) string {
	return fmt.Sprintf("%s/referral/%s", p.webAppURI, code)
}

func randomSuffix() (string, error) {
	buf := make([]byte, suffixLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(suffixAlphabet))))
		if err != nil {
			return "", err
		}
		buf[i] = suffixAlphabet[n.Int64()]
	}
	return string(buf), nil
}
