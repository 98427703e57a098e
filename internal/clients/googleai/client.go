package googleai

import (
	"context"
	"fmt"
	"strings"

	"dinetable-server/internal/observability"
	"dinetable-server/internal/store"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const enhancementModel = "gemini-2.0-flash"

// GoogleAIClient turns raw dining narratives into polished review text
type GoogleAIClient struct {
	client *genai.Client
	logger *observability.Logger
}

// NewGoogleAIClient creates a Gemini-backed enhancement client
func NewGoogleAIClient(apiKey string, logger *observability.Logger) (*GoogleAIClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GoogleAIClient{
		client: client,
		logger: logger,
	}, nil
}

// EnhanceReview rewrites the customer's raw text as a polished review.
// Receipt and server name are optional context, never requirements. On any
// failure the caller keeps the raw text authoritative.
func (g *GoogleAIClient) EnhanceReview(ctx context.Context, rawText, restaurantName string, serverName *string, receipt *store.ReceiptData) (string, error) {
	prompt := buildEnhancementPrompt(rawText, restaurantName, serverName, receipt)

	model := g.client.GenerativeModel(enhancementModel)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		g.logger.Error(ctx, "failed to generate enhanced review", err)
		return "", fmt.Errorf("failed to generate enhanced review: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no enhanced review returned from Gemini")
	}

	part, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response format")
	}

	enhanced := strings.TrimSpace(string(part))
	if enhanced == "" {
		return "", fmt.Errorf("empty enhanced review returned from Gemini")
	}

	g.logger.Info(ctx, "review enhanced successfully")
	return enhanced, nil
}

func buildEnhancementPrompt(rawText, restaurantName string, serverName *string, receipt *store.ReceiptData) string {
	var b strings.Builder
	b.WriteString("Rewrite the following customer's dining notes as a warm, natural-sounding restaurant review. ")
	b.WriteString("Keep every factual detail the customer mentioned and invent nothing. ")
	b.WriteString("Reply with the review text only, no preamble and no quotes.\n\n")
	fmt.Fprintf(&b, "Restaurant: %s\n", restaurantName)
	if serverName != nil && *serverName != "" {
		fmt.Fprintf(&b, "Server: %s\n", *serverName)
	}
	if receipt != nil && len(receipt.Items) > 0 {
		b.WriteString("Dishes from the receipt:\n")
		for _, item := range receipt.Items {
			fmt.Fprintf(&b, "- %s\n", item.Name)
		}
	}
	fmt.Fprintf(&b, "\nCustomer's notes:\n%s\n", rawText)
	return b.String()
}

// Close releases the underlying client
func (g *GoogleAIClient) Close() error {
	return g.client.Close()
}
