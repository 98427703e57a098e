package mail

import (
	"context"
	"errors"
	"fmt"

	"dinetable-server/internal/observability"

	"github.com/resendlabs/resend-go"
)

var ErrMissingRecipient = errors.New("recipient address is empty")

// ResendClient delivers reward notifications and contact-list blast mail
// through Resend
type ResendClient struct {
	client *resend.Client
	logger *observability.Logger
}

func NewResendClient(apiKey string, logger *observability.Logger) (*ResendClient, error) {
	if apiKey == "" {
		return nil, errors.New("resend api key is empty")
	}

	client := resend.NewClient(apiKey)
	if client == nil {
		return nil, errors.New("failed to create Resend client")
	}

	return &ResendClient{
		client: client,
		logger: logger,
	}, nil
}

// SendEmail delivers one HTML email and returns the provider's message id.
// Blast callers invoke it once per contact, so a bounced recipient is
// reported back without touching the rest of the list.
func (c *ResendClient) SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error) {
	if to == "" {
		return "", ErrMissingRecipient
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "recipient", Value: to},
		observability.Field{Key: "subject", Value: subject},
	)

	res, err := c.client.Emails.Send(&resend.SendEmailRequest{
		From:    from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlContent,
	})
	if err != nil {
		c.logger.Error(ctx, "failed to deliver email", err)
		return "", fmt.Errorf("failed to deliver email to %s: %w", to, err)
	}

	c.logger.Info(ctx, "email delivered")
	return res.Id, nil
}
