package rewardcode

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// ErrExhaustedRetries means every candidate collided. It implies the code
// space is nearly exhausted or the store is misbehaving, so callers log it
// as an operational anomaly rather than retrying.
var ErrExhaustedRetries = errors.New("exhausted reward code generation retries")

// Codes avoid 0/O and 1/I so staff can read them back over the counter.
const (
	alphabet    = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength  = 8
	maxAttempts = 10
)

// ExistsFunc reports whether a candidate code has already been issued
type ExistsFunc func(ctx context.Context, code string) (bool, error)

// Generator produces unique redeemable reward codes
type Generator struct {
	exists ExistsFunc
}

// New creates a generator backed by the given existence check
func New(exists ExistsFunc) Generator {
	return Generator{exists: exists}
}

// Generate returns a code that passed the existence check. The check is
// optimistic: the store's unique constraint catches the remaining race, and
// an ErrConflict there should be treated like a collision here.
func (g Generator) Generate(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		code, err := randomCode()
		if err != nil {
			return "", fmt.Errorf("failed to generate candidate code: %w", err)
		}

		exists, err := g.exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check candidate code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrExhaustedRetries
}

func randomCode() (string, error) {
	buf := make([]byte, codeLength)
	max := big.NewInt(int64(len(alphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf), nil
}
