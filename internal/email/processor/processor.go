package processor

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"dinetable-server/internal/observability"
	"dinetable-server/internal/store"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

var (
	ErrListNotFound = errors.New("contact list not found")
	ErrEmptyBlast   = errors.New("blast subject and body are required")
	ErrNoRecipients = errors.New("contact list has no recipients")
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*([a-z_]+)\s*\}\}`)

// BlastStore is the persistence surface for email blasts
type BlastStore interface {
	GetContactListByName(ctx context.Context, restaurantName string) (store.ContactList, error)
	GetContactsByList(ctx context.Context, listID uuid.UUID) ([]store.CustomerContact, error)
}

// EmailSender delivers a single email and returns the provider's message id
type EmailSender interface {
	SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error)
}

// BlastProcessor sends personalized campaign emails to a restaurant's
// contact list
type BlastProcessor struct {
	store  BlastStore
	sender EmailSender
	from   string
	logger *observability.Logger
}

func New(store BlastStore, sender EmailSender, from string, logger *observability.Logger) BlastProcessor {
	return BlastProcessor{
		store:  store,
		sender: sender,
		from:   from,
		logger: logger,
	}
}

// SendBlastRequest represents one campaign send
type SendBlastRequest struct {
	RestaurantName string
	Subject        string
	HTMLBody       string
}

// BlastReport summarizes a finished blast
type BlastReport struct {
	Recipients   int `json:"recipients"`
	SuccessCount int `json:"success_count"`
	ErrorCount   int `json:"error_count"`
}

// SendBlast delivers the campaign to every contact on the restaurant's list.
// Subject and body may carry {{placeholder}} tokens filled per contact from
// their merged CRM metadata. One failed recipient never aborts the rest of
// the blast; failures are counted and logged.
func (p BlastProcessor) SendBlast(ctx context.Context, req SendBlastRequest) (BlastReport, error) {
	if strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.HTMLBody) == "" {
		return BlastReport{}, ErrEmptyBlast
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "restaurant_name", Value: req.RestaurantName},
	)

	list, err := p.store.GetContactListByName(ctx, req.RestaurantName)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return BlastReport{}, ErrListNotFound
		}
		return BlastReport{}, fmt.Errorf("failed to resolve contact list: %w", err)
	}

	contacts, err := p.store.GetContactsByList(ctx, list.ID)
	if err != nil {
		return BlastReport{}, fmt.Errorf("failed to load contacts: %w", err)
	}
	if len(contacts) == 0 {
		return BlastReport{}, ErrNoRecipients
	}

	report := BlastReport{Recipients: len(contacts)}
	for _, contact := range contacts {
		vars := contactVars(req.RestaurantName, contact)
		subject := substitute(req.Subject, vars)
		body := substitute(req.HTMLBody, vars)

		if _, err := p.sender.SendEmail(ctx, p.from, contact.Email, subject, body); err != nil {
			p.logger.Error(observability.WithFields(ctx,
				observability.Field{Key: "recipient", Value: contact.Email},
			), "failed to send blast email", err)
			report.ErrorCount++
			continue
		}
		report.SuccessCount++
	}

	p.logger.Info(ctx, "email blast finished")
	return report, nil
}

// contactVars flattens a contact's merged metadata into template values. The
// most recently submitted review and most recently issued voucher win when a
// contact has several.
func contactVars(restaurantName string, contact store.CustomerContact) map[string]string {
	vars := map[string]string{
		"email":           contact.Email,
		"restaurant_name": restaurantName,
	}

	var latestReview *store.ReviewSummary
	for code := range contact.Metadata.Reviews {
		summary := contact.Metadata.Reviews[code]
		if latestReview == nil || summary.SubmittedAt.After(latestReview.SubmittedAt) {
			latestReview = &summary
		}
	}
	if latestReview != nil {
		vars["reward_code"] = latestReview.RewardCode
		if latestReview.ServerName != nil {
			vars["server_name"] = *latestReview.ServerName
		}
	}

	var latestTip *store.TipVoucherSummary
	for code := range contact.Metadata.Tips {
		summary := contact.Metadata.Tips[code]
		if latestTip == nil || summary.ExpiresAt.After(latestTip.ExpiresAt) {
			latestTip = &summary
		}
	}
	if latestTip != nil {
		vars["voucher_code"] = latestTip.VoucherCode
		vars["voucher_amount"] = fmt.Sprintf("%.2f", latestTip.VoucherAmount)
	}

	return vars
}

func substitute(text string, vars map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		key := placeholderPattern.FindStringSubmatch(match)[1]
		return vars[key]
	})
}
