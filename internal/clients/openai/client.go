package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"dinetable-server/internal/observability"
	"dinetable-server/internal/store"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ErrMalformedResponse means the model replied with something that does not
// match the receipt schema. Responses are rejected, never coerced.
var ErrMalformedResponse = errors.New("malformed receipt analysis response")

const receiptPrompt = `Analyze this restaurant receipt image and respond with ONLY a JSON object, no markdown, in exactly this shape:
{"total_amount": <number>, "items": [{"name": <string>, "price": <number>}]}
All amounts must be JSON numbers, not strings. If a field cannot be read, use 0 for numbers and [] for items.`

// ReceiptClient extracts structured totals and line items from receipt images
type ReceiptClient struct {
	client openai.Client
	logger *observability.Logger
}

// NewReceiptClient creates a GPT-4o-backed receipt analysis client
func NewReceiptClient(apiKey string, logger *observability.Logger) *ReceiptClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &ReceiptClient{
		client: client,
		logger: logger,
	}
}

// AnalyzeReceipt sends the receipt image to the vision model and decodes the
// strict JSON schema it is instructed to return
func (c *ReceiptClient) AnalyzeReceipt(ctx context.Context, imageURL string) (store.ReceiptData, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4o,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(receiptPrompt),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL: imageURL,
				}),
			}),
		},
	})
	if err != nil {
		c.logger.Error(ctx, "failed to analyze receipt", err)
		return store.ReceiptData{}, fmt.Errorf("failed to analyze receipt: %w", err)
	}

	if len(resp.Choices) == 0 {
		return store.ReceiptData{}, fmt.Errorf("no choices returned: %w", ErrMalformedResponse)
	}

	receipt, err := decodeReceipt(resp.Choices[0].Message.Content)
	if err != nil {
		c.logger.Error(ctx, "failed to decode receipt analysis", err)
		return store.ReceiptData{}, err
	}

	c.logger.Info(ctx, "receipt analyzed successfully")
	return receipt, nil
}

// decodeReceipt enforces the schema: numeric fields must be JSON numbers.
// The model occasionally wraps its reply in a markdown fence despite the
// prompt, so fences are stripped before decoding.
func decodeReceipt(content string) (store.ReceiptData, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	decoder := json.NewDecoder(strings.NewReader(content))
	decoder.DisallowUnknownFields()

	var receipt store.ReceiptData
	if err := decoder.Decode(&receipt); err != nil {
		return store.ReceiptData{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if receipt.TotalAmount < 0 {
		return store.ReceiptData{}, fmt.Errorf("%w: negative total amount", ErrMalformedResponse)
	}
	for _, item := range receipt.Items {
		if item.Name == "" {
			return store.ReceiptData{}, fmt.Errorf("%w: item with empty name", ErrMalformedResponse)
		}
	}
	return receipt, nil
}
