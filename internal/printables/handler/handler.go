package handler

import (
	"errors"
	"net/http"
	"strconv"

	"dinetable-server/internal/apierrors"
	"dinetable-server/internal/observability"
	"dinetable-server/internal/printables"

	"github.com/gin-gonic/gin"
)

// Handler serves printable assets: QR code PNGs and reward card PDFs
type Handler struct {
	qr        printables.QRRenderer
	generator printables.Generator
	logger    *observability.Logger
}

func New(qr printables.QRRenderer, generator printables.Generator, logger *observability.Logger) Handler {
	return Handler{
		qr:        qr,
		generator: generator,
		logger:    logger,
	}
}

// HandleRenderQR handles GET /api/v1/printables/qr?url=...&size=...
func (h *Handler) HandleRenderQR(c *gin.Context) {
	ctx := c.Request.Context()

	targetURL := c.Query("url")
	if targetURL == "" {
		apierrors.BadRequest(c, "MISSING_URL", "url query parameter is required")
		return
	}
	size, _ := strconv.Atoi(c.Query("size"))

	png, err := h.qr.RenderPNG(ctx, targetURL, size)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// RewardCardRequest describes the card to print
type RewardCardRequest struct {
	RestaurantName string `json:"restaurant_name" binding:"required"`
	TargetURL      string `json:"target_url" binding:"required,url"`
	Terms          string `json:"terms"`
}

// HandleRenderRewardCard handles POST /api/v1/printables/reward-card
func (h *Handler) HandleRenderRewardCard(c *gin.Context) {
	ctx := c.Request.Context()

	var req RewardCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	pdf, err := h.generator.RenderRewardCard(ctx, printables.RewardCardParams{
		RestaurantName: req.RestaurantName,
		TargetURL:      req.TargetURL,
		Terms:          req.Terms,
	})
	if err != nil {
		if errors.Is(err, printables.ErrMissingTarget) {
			apierrors.BadRequest(c, "MISSING_TARGET", "target_url is required")
			return
		}
		apierrors.InternalError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="reward-card.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
