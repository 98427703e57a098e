package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InsertTipVoucherParams represents parameters for issuing a tip voucher
type InsertTipVoucherParams struct {
	ListID        uuid.UUID
	VoucherCode   string
	TipAmount     float64
	VoucherAmount float64
	ServerName    string
	CustomerEmail *string
	ExpiresAt     time.Time
}

const sqlInsertTipVoucher = `
INSERT INTO tip_vouchers (list_id, voucher_code, tip_amount, voucher_amount, server_name, customer_email, expires_at, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, 'available')
RETURNING id, list_id, voucher_code, tip_amount, voucher_amount, server_name, customer_email, expires_at, status, created_at
`

// InsertTipVoucher records an issued tip voucher. Voucher codes are
// deterministic per tip amount and intentionally non-unique.
func (s *Store) InsertTipVoucher(ctx context.Context, params InsertTipVoucherParams) (TipVoucher, error) {
	var voucher TipVoucher
	err := s.db.GetContext(ctx, &voucher, sqlInsertTipVoucher,
		params.ListID,
		params.VoucherCode,
		params.TipAmount,
		params.VoucherAmount,
		params.ServerName,
		params.CustomerEmail,
		params.ExpiresAt)
	if err != nil {
		s.logger.Error(ctx, "failed to insert tip voucher", err)
		return TipVoucher{}, fmt.Errorf("failed to insert tip voucher: %w", err)
	}
	return voucher, nil
}

const sqlAttachVoucherEmail = `
UPDATE tip_vouchers
SET customer_email = $3
WHERE list_id = $1 AND voucher_code = $2 AND customer_email IS NULL
`

// AttachVoucherEmail back-fills the customer email on vouchers issued before
// the customer signed up
func (s *Store) AttachVoucherEmail(ctx context.Context, listID uuid.UUID, voucherCode, email string) error {
	_, err := s.db.ExecContext(ctx, sqlAttachVoucherEmail, listID, voucherCode, email)
	if err != nil {
		s.logger.Error(ctx, "failed to attach voucher email", err)
		return fmt.Errorf("failed to attach voucher email: %w", err)
	}
	return nil
}

const sqlMarkVoucherUsed = `
UPDATE tip_vouchers
SET status = 'used'
WHERE id = $1 AND status = 'available'
RETURNING id, list_id, voucher_code, tip_amount, voucher_amount, server_name, customer_email, expires_at, status, created_at
`

// MarkVoucherUsed redeems a voucher. Redemption of an already-used or unknown
// voucher returns ErrNotFound.
func (s *Store) MarkVoucherUsed(ctx context.Context, voucherID uuid.UUID) (TipVoucher, error) {
	var voucher TipVoucher
	err := s.db.GetContext(ctx, &voucher, sqlMarkVoucherUsed, voucherID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TipVoucher{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to mark voucher used", err)
		return TipVoucher{}, fmt.Errorf("failed to mark voucher used: %w", err)
	}
	return voucher, nil
}

const sqlGetLatestVoucherByCode = `
SELECT id, list_id, voucher_code, tip_amount, voucher_amount, server_name, customer_email, expires_at, status, created_at
FROM tip_vouchers
WHERE list_id = $1 AND voucher_code = $2
ORDER BY created_at DESC
LIMIT 1
`

// GetLatestVoucherByCode retrieves the most recent voucher issued under a
// deterministic code on a list
func (s *Store) GetLatestVoucherByCode(ctx context.Context, listID uuid.UUID, voucherCode string) (TipVoucher, error) {
	var voucher TipVoucher
	err := s.db.GetContext(ctx, &voucher, sqlGetLatestVoucherByCode, listID, voucherCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TipVoucher{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get voucher by code", err)
		return TipVoucher{}, fmt.Errorf("failed to get voucher by code: %w", err)
	}
	return voucher, nil
}

const sqlGetVouchersByList = `
SELECT id, list_id, voucher_code, tip_amount, voucher_amount, server_name, customer_email, expires_at, status, created_at
FROM tip_vouchers
WHERE list_id = $1
ORDER BY created_at DESC
`

// GetVouchersByList retrieves all vouchers issued for a restaurant's list
func (s *Store) GetVouchersByList(ctx context.Context, listID uuid.UUID) ([]TipVoucher, error) {
	var vouchers []TipVoucher
	err := s.db.SelectContext(ctx, &vouchers, sqlGetVouchersByList, listID)
	if err != nil {
		s.logger.Error(ctx, "failed to get vouchers by list", err)
		return nil, fmt.Errorf("failed to get vouchers by list: %w", err)
	}
	return vouchers, nil
}
