package bootstrap

import (
	"context"
	"fmt"

	"dinetable-server/internal/auth"
	"dinetable-server/internal/config"
	"dinetable-server/internal/observability"
	"dinetable-server/internal/store"

	analyticsHandler "dinetable-server/internal/analytics/handler"
	analyticsProcessor "dinetable-server/internal/analytics/processor"
	"dinetable-server/internal/clients/googleai"
	"dinetable-server/internal/clients/mail"
	"dinetable-server/internal/clients/openai"
	"dinetable-server/internal/clients/qr"
	emailHandler "dinetable-server/internal/email/handler"
	emailProcessor "dinetable-server/internal/email/processor"
	"dinetable-server/internal/printables"
	printablesHandler "dinetable-server/internal/printables/handler"
	referralHandler "dinetable-server/internal/referral/handler"
	referralProcessor "dinetable-server/internal/referral/processor"
	reviewHandler "dinetable-server/internal/review/handler"
	reviewProcessor "dinetable-server/internal/review/processor"
	tipsHandler "dinetable-server/internal/tips/handler"
	tipsProcessor "dinetable-server/internal/tips/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	ReviewHandler     reviewHandler.Handler
	TipsHandler       tipsHandler.Handler
	ReferralHandler   referralHandler.Handler
	AnalyticsHandler  analyticsHandler.Handler
	EmailHandler      emailHandler.Handler
	PrintablesHandler printablesHandler.Handler

	// Auth
	Authenticator auth.Authenticator

	// Background pieces
	Aggregator *analyticsProcessor.Aggregator
	Listener   *store.Listener

	// Clients needing cleanup
	GoogleAIClient *googleai.GoogleAIClient
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// The change feed needs its own connection: LISTEN notifications only
	// arrive on the connection that subscribed.
	deps.Listener, err = store.NewListener(ctx, connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to start page events listener: %w", err)
	}

	// Initialize clients
	deps.GoogleAIClient, err = googleai.NewGoogleAIClient(cfg.Services.GoogleAIAPIKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create google ai client: %w", err)
	}
	receiptClient := openai.NewReceiptClient(cfg.Services.OpenAIAPIKey, logger)

	mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create resend client: %w", err)
	}
	qrClient := qr.NewQRClient(logger)

	// Initialize review pipeline
	reviewProc := reviewProcessor.New(&deps.Store, logger)
	deps.ReviewHandler = reviewHandler.New(reviewProc, deps.GoogleAIClient, receiptClient, cfg.Rewards.DefaultTipPercentage, logger)

	// Initialize tip rewards; percentage and validity are restaurant-side
	// policy, never taken from the request
	tipsProc := tipsProcessor.New(&deps.Store, cfg.Rewards.DefaultTipPercentage, cfg.Rewards.VoucherValidityDays, logger)
	deps.TipsHandler = tipsHandler.New(tipsProc, logger)

	// Initialize referral ledger; the review processor issues the mystery
	// codes fired by a completed star run
	referralProc := referralProcessor.New(&deps.Store, reviewProc, cfg.Services.WebAppURI, logger)
	deps.ReferralHandler = referralHandler.New(referralProc, logger)

	// Initialize analytics aggregator and handler
	deps.Aggregator = analyticsProcessor.New(&deps.Store, logger)
	deps.AnalyticsHandler = analyticsHandler.New(deps.Aggregator, logger)

	// Initialize email blasts
	emailProc := emailProcessor.New(&deps.Store, mailClient, cfg.Services.DefaultEmailSender, logger)
	deps.EmailHandler = emailHandler.New(emailProc, logger)

	// Initialize printables
	printablesGen := printables.New(qrClient, logger)
	deps.PrintablesHandler = printablesHandler.New(qrClient, printablesGen, logger)

	// Initialize dashboard auth
	deps.Authenticator = auth.New(cfg.Auth.JWTSecret, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup(ctx context.Context) {
	if d.Listener != nil {
		if err := d.Listener.Close(ctx); err != nil {
			d.Logger.Error(ctx, "failed to close page events listener", err)
		}
	}
	if d.GoogleAIClient != nil {
		d.GoogleAIClient.Close()
	}
}
