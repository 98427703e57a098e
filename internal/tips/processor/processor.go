package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dinetable-server/internal/observability"
	"dinetable-server/internal/store"
	"dinetable-server/internal/tips"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

var (
	ErrVoucherNotFound = errors.New("voucher not found")
	ErrListNotFound    = errors.New("contact list not found")
)

// TipsStore is the persistence surface for tip vouchers
type TipsStore interface {
	GetOrCreateContactList(ctx context.Context, restaurantName string) (store.ContactList, error)
	GetContactListByName(ctx context.Context, restaurantName string) (store.ContactList, error)
	InsertTipVoucher(ctx context.Context, params store.InsertTipVoucherParams) (store.TipVoucher, error)
	GetLatestVoucherByCode(ctx context.Context, listID uuid.UUID, voucherCode string) (store.TipVoucher, error)
	GetVouchersByList(ctx context.Context, listID uuid.UUID) ([]store.TipVoucher, error)
	AttachVoucherEmail(ctx context.Context, listID uuid.UUID, voucherCode, email string) error
	MergeContactTip(ctx context.Context, params store.MergeContactTipParams) (store.CustomerContact, error)
	MarkVoucherUsed(ctx context.Context, voucherID uuid.UUID) (store.TipVoucher, error)
}

// TipsProcessor issues and redeems tip-based reward vouchers. The reward
// percentage and voucher validity are restaurant-side configuration; the
// customer only ever supplies the tip amount.
type TipsProcessor struct {
	store        TipsStore
	percentage   float64
	validityDays int
	logger       *observability.Logger
}

func New(store TipsStore, percentage float64, validityDays int, logger *observability.Logger) TipsProcessor {
	return TipsProcessor{
		store:        store,
		percentage:   percentage,
		validityDays: validityDays,
		logger:       logger,
	}
}

// IssueTipVoucherRequest represents a tip being rewarded
type IssueTipVoucherRequest struct {
	RestaurantName string
	ServerName     string
	TipAmount      float64
	CustomerEmail  *string
}

// IssueTipVoucher computes and persists a voucher for a tip. When the
// customer's email is already known the voucher is also merged into their
// contact record; that merge is best effort since the voucher itself is
// already durable.
func (p TipsProcessor) IssueTipVoucher(ctx context.Context, req IssueTipVoucherRequest) (store.TipVoucher, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "restaurant_name", Value: req.RestaurantName},
		observability.Field{Key: "server_name", Value: req.ServerName},
	)

	computed, err := tips.ComputeTipVoucher(req.TipAmount, p.percentage, time.Now().UTC(), p.validityDays)
	if err != nil {
		return store.TipVoucher{}, err
	}

	list, err := p.store.GetOrCreateContactList(ctx, req.RestaurantName)
	if err != nil {
		return store.TipVoucher{}, fmt.Errorf("failed to resolve contact list: %w", err)
	}

	voucher, err := p.store.InsertTipVoucher(ctx, store.InsertTipVoucherParams{
		ListID:        list.ID,
		VoucherCode:   computed.VoucherCode,
		TipAmount:     computed.TipAmount,
		VoucherAmount: computed.VoucherAmount,
		ServerName:    req.ServerName,
		CustomerEmail: req.CustomerEmail,
		ExpiresAt:     computed.ExpiresAt,
	})
	if err != nil {
		return store.TipVoucher{}, fmt.Errorf("failed to persist tip voucher: %w", err)
	}

	if req.CustomerEmail != nil {
		if _, err := p.store.MergeContactTip(ctx, store.MergeContactTipParams{
			ListID:  list.ID,
			Email:   *req.CustomerEmail,
			Summary: summarizeVoucher(voucher),
		}); err != nil {
			p.logger.Error(ctx, "failed to merge tip voucher into contact", err)
		}
	}

	p.logger.Info(ctx, "tip voucher issued")
	return voucher, nil
}

// AttachEmailRequest back-fills the customer on a voucher issued before signup
type AttachEmailRequest struct {
	RestaurantName string
	VoucherCode    string
	Email          string
}

// AttachEmail links the signing-up customer to their earlier voucher and
// merges it into their contact record
func (p TipsProcessor) AttachEmail(ctx context.Context, req AttachEmailRequest) (store.CustomerContact, error) {
	list, err := p.store.GetContactListByName(ctx, req.RestaurantName)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CustomerContact{}, ErrListNotFound
		}
		return store.CustomerContact{}, fmt.Errorf("failed to resolve contact list: %w", err)
	}

	voucher, err := p.store.GetLatestVoucherByCode(ctx, list.ID, req.VoucherCode)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CustomerContact{}, ErrVoucherNotFound
		}
		return store.CustomerContact{}, fmt.Errorf("failed to load voucher: %w", err)
	}

	if err := p.store.AttachVoucherEmail(ctx, list.ID, req.VoucherCode, req.Email); err != nil {
		return store.CustomerContact{}, fmt.Errorf("failed to attach voucher email: %w", err)
	}

	contact, err := p.store.MergeContactTip(ctx, store.MergeContactTipParams{
		ListID:  list.ID,
		Email:   req.Email,
		Summary: summarizeVoucher(voucher),
	})
	if err != nil {
		return store.CustomerContact{}, fmt.Errorf("failed to merge tip voucher into contact: %w", err)
	}
	return contact, nil
}

// ListVouchers returns every voucher issued for a restaurant
func (p TipsProcessor) ListVouchers(ctx context.Context, restaurantName string) ([]store.TipVoucher, error) {
	list, err := p.store.GetContactListByName(ctx, restaurantName)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrListNotFound
		}
		return nil, fmt.Errorf("failed to resolve contact list: %w", err)
	}
	return p.store.GetVouchersByList(ctx, list.ID)
}

// RedeemVoucher marks a voucher used
func (p TipsProcessor) RedeemVoucher(ctx context.Context, voucherID uuid.UUID) (store.TipVoucher, error) {
	voucher, err := p.store.MarkVoucherUsed(ctx, voucherID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.TipVoucher{}, ErrVoucherNotFound
		}
		return store.TipVoucher{}, fmt.Errorf("failed to redeem voucher: %w", err)
	}
	return voucher, nil
}

func summarizeVoucher(voucher store.TipVoucher) store.TipVoucherSummary {
	return store.TipVoucherSummary{
		VoucherCode:   voucher.VoucherCode,
		TipAmount:     voucher.TipAmount,
		VoucherAmount: voucher.VoucherAmount,
		ServerName:    voucher.ServerName,
		ExpiresAt:     voucher.ExpiresAt,
	}
}
