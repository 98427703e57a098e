package printables

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"dinetable-server/internal/observability"

	"github.com/jung-kurt/gofpdf"
)

var ErrMissingTarget = errors.New("target url is required")

// QRRenderer renders a QR code PNG for a target URL
type QRRenderer interface {
	RenderPNG(ctx context.Context, targetURL string, size int) ([]byte, error)
}

// Generator produces printable table cards restaurants put next to the till:
// the restaurant name, a QR code pointing at the review page and the reward
// terms underneath.
type Generator struct {
	qr     QRRenderer
	logger *observability.Logger
}

func New(qr QRRenderer, logger *observability.Logger) Generator {
	return Generator{
		qr:     qr,
		logger: logger,
	}
}

// RewardCardParams describes one printable card
type RewardCardParams struct {
	RestaurantName string
	TargetURL      string
	Terms          string
}

const qrPixelSize = 512

// RenderRewardCard renders an A5 PDF card
func (g Generator) RenderRewardCard(ctx context.Context, params RewardCardParams) ([]byte, error) {
	if params.TargetURL == "" {
		return nil, ErrMissingTarget
	}

	png, err := g.qr.RenderPNG(ctx, params.TargetURL, qrPixelSize)
	if err != nil {
		return nil, fmt.Errorf("failed to render card QR code: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 14, params.RestaurantName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, "Leave a review, earn a reward", "", 1, "C", false, 0, "")

	// 80mm square QR, centered on the 148mm-wide page.
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(png))
	pdf.ImageOptions("qr", (148-80)/2, 36, 80, 80, false, opts, 0, "")
	pdf.SetY(122)

	if params.Terms != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, params.Terms, "", "C", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		g.logger.Error(ctx, "failed to render reward card PDF", err)
		return nil, fmt.Errorf("failed to render reward card PDF: %w", err)
	}
	return buf.Bytes(), nil
}
