package tips

import (
	"errors"
	"math"
	"strconv"
	"time"
)

var (
	ErrInvalidTipAmount  = errors.New("tip amount must be positive")
	ErrInvalidPercentage = errors.New("reward percentage must be between 0 and 100")
)

// Voucher is a computed tip reward before persistence
type Voucher struct {
	TipAmount     float64
	VoucherAmount float64
	VoucherCode   string
	ExpiresAt     time.Time
}

// ComputeTipVoucher maps a tip to its reward voucher. The amount is rounded
// to cents; the code is deterministic per tip amount, so re-selecting the
// same tip in a session reproduces the same code. Percentage and validity
// come from the restaurant's configuration, never from the customer; the
// voucher amount is always derived here, never edited on its own.
func ComputeTipVoucher(tipAmount, percentage float64, issuedAt time.Time, validityDays int) (Voucher, error) {
	if tipAmount <= 0 {
		return Voucher{}, ErrInvalidTipAmount
	}
	if percentage < 0 || percentage > 100 {
		return Voucher{}, ErrInvalidPercentage
	}

	voucherAmount := math.Round(tipAmount*percentage) / 100

	return Voucher{
		TipAmount:     tipAmount,
		VoucherAmount: voucherAmount,
		VoucherCode:   "TIP" + strconv.FormatFloat(tipAmount, 'f', -1, 64) + "BACK",
		ExpiresAt:     issuedAt.AddDate(0, 0, validityDays),
	}, nil
}
