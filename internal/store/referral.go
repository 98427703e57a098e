package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// InsertReferralCodeParams represents parameters for issuing a referral code
type InsertReferralCodeParams struct {
	Code           string
	ReferrerName   string
	ReferrerEmail  string
	RestaurantName string
	StarsCount     int
}

const sqlInsertReferralCode = `
INSERT INTO referral_codes (code, referrer_name, referrer_email, restaurant_name, total_referrals, stars_count)
VALUES ($1, $2, $3, $4, 0, $5)
RETURNING code, referrer_name, referrer_email, restaurant_name, total_referrals, stars_count, created_at, updated_at
`

// InsertReferralCode records a newly issued referral code. StarsCount carries
// the referrer's inherited progress; the code itself is the primary key, so a
// collision returns ErrConflict.
func (s *Store) InsertReferralCode(ctx context.Context, params InsertReferralCodeParams) (ReferralCode, error) {
	var referral ReferralCode
	err := s.db.GetContext(ctx, &referral, sqlInsertReferralCode,
		params.Code,
		params.ReferrerName,
		params.ReferrerEmail,
		params.RestaurantName,
		params.StarsCount)
	if err != nil {
		if isUniqueViolation(err) {
			return ReferralCode{}, ErrConflict
		}
		s.logger.Error(ctx, "failed to insert referral code", err)
		return ReferralCode{}, fmt.Errorf("failed to insert referral code: %w", err)
	}
	return referral, nil
}

const sqlGetLatestReferrerStars = `
SELECT stars_count
FROM referral_codes
WHERE referrer_email = $1 AND restaurant_name = $2
ORDER BY updated_at DESC
LIMIT 1
`

// GetLatestReferrerStars returns the star count a returning referrer carries
// forward at a restaurant, or zero if they have never referred there
func (s *Store) GetLatestReferrerStars(ctx context.Context, referrerEmail, restaurantName string) (int, error) {
	var stars int
	err := s.db.GetContext(ctx, &stars, sqlGetLatestReferrerStars, referrerEmail, restaurantName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		s.logger.Error(ctx, "failed to get latest referrer stars", err)
		return 0, fmt.Errorf("failed to get latest referrer stars: %w", err)
	}
	return stars, nil
}

const sqlGetReferralByCode = `
SELECT code, referrer_name, referrer_email, restaurant_name, total_referrals, stars_count, created_at, updated_at
FROM referral_codes
WHERE code = $1
`

// GetReferralByCode retrieves a referral code record
func (s *Store) GetReferralByCode(ctx context.Context, code string) (ReferralCode, error) {
	var referral ReferralCode
	err := s.db.GetContext(ctx, &referral, sqlGetReferralByCode, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralCode{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get referral by code", err)
		return ReferralCode{}, fmt.Errorf("failed to get referral by code: %w", err)
	}
	return referral, nil
}

const sqlRecordReferralSignup = `
UPDATE referral_codes
SET total_referrals = total_referrals + 1,
    stars_count = (stars_count + 1) % 3,
    updated_at = now()
WHERE code = $1
RETURNING code, referrer_name, referrer_email, restaurant_name, total_referrals, stars_count, created_at, updated_at
`

// RecordReferralSignup increments the referral total and rolls the star count
// in one statement, so concurrent signups for the same code never pair a
// referral increment with a stale star value. A returned stars_count of zero
// means the third star just landed and the reward fires.
func (s *Store) RecordReferralSignup(ctx context.Context, code string) (ReferralCode, error) {
	var referral ReferralCode
	err := s.db.GetContext(ctx, &referral, sqlRecordReferralSignup, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralCode{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to record referral signup", err)
		return ReferralCode{}, fmt.Errorf("failed to record referral signup: %w", err)
	}
	return referral, nil
}
