package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// InsertRewardCodeParams represents parameters for issuing a reward code
type InsertRewardCodeParams struct {
	Code         string
	ReviewPageID string
	Kind         RewardKind
}

const sqlRewardCodeExists = `
SELECT EXISTS(SELECT 1 FROM reward_codes WHERE code = $1)
`

// RewardCodeExists reports whether a reward code has already been issued
func (s *Store) RewardCodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, sqlRewardCodeExists, code)
	if err != nil {
		s.logger.Error(ctx, "failed to check reward code existence", err)
		return false, fmt.Errorf("failed to check reward code existence: %w", err)
	}
	return exists, nil
}

const sqlInsertRewardCode = `
INSERT INTO reward_codes (code, review_page_id, kind)
VALUES ($1, $2, $3)
RETURNING code, review_page_id, kind, issued_at
`

// InsertRewardCode records an issued reward code. The unique constraint on
// code closes the check-then-insert race: a collision returns ErrConflict so
// the caller can regenerate.
func (s *Store) InsertRewardCode(ctx context.Context, params InsertRewardCodeParams) (RewardCode, error) {
	var rewardCode RewardCode
	err := s.db.GetContext(ctx, &rewardCode, sqlInsertRewardCode,
		params.Code,
		params.ReviewPageID,
		params.Kind)
	if err != nil {
		if isUniqueViolation(err) {
			return RewardCode{}, ErrConflict
		}
		s.logger.Error(ctx, "failed to insert reward code", err)
		return RewardCode{}, fmt.Errorf("failed to insert reward code: %w", err)
	}
	return rewardCode, nil
}

const sqlGetRewardCode = `
SELECT code, review_page_id, kind, issued_at
FROM reward_codes
WHERE code = $1
`

// GetRewardCode retrieves an issued reward code
func (s *Store) GetRewardCode(ctx context.Context, code string) (RewardCode, error) {
	var rewardCode RewardCode
	err := s.db.GetContext(ctx, &rewardCode, sqlGetRewardCode, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RewardCode{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get reward code", err)
		return RewardCode{}, fmt.Errorf("failed to get reward code: %w", err)
	}
	return rewardCode, nil
}
