package qr

import (
	"context"
	"fmt"

	"dinetable-server/internal/observability"

	qrcode "github.com/skip2/go-qrcode"
)

const defaultSize = 256

// QRClient renders QR code PNGs for review pages, reward codes and referral links
type QRClient struct {
	logger *observability.Logger
}

func NewQRClient(logger *observability.Logger) *QRClient {
	return &QRClient{logger: logger}
}

// RenderPNG encodes the target URL as a QR code PNG. Size is in pixels per
// side; zero means the default.
func (c *QRClient) RenderPNG(ctx context.Context, targetURL string, size int) ([]byte, error) {
	if size <= 0 {
		size = defaultSize
	}

	png, err := qrcode.Encode(targetURL, qrcode.Medium, size)
	if err != nil {
		c.logger.Error(ctx, "failed to encode QR code", err)
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return png, nil
}
