package handler

import (
	"errors"
	"net/http"

	"dinetable-server/internal/apierrors"
	"dinetable-server/internal/email/processor"
	"dinetable-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Handler exposes email blasts over HTTP
type Handler struct {
	processor processor.BlastProcessor
	logger    *observability.Logger
}

func New(p processor.BlastProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: p,
		logger:    logger,
	}
}

// SendBlastRequest starts a blast to a restaurant's contact list
type SendBlastRequest struct {
	RestaurantName string `json:"restaurant_name" binding:"required"`
	Subject        string `json:"subject" binding:"required"`
	HTMLBody       string `json:"html_body" binding:"required"`
}

// HandleSendBlast handles POST /api/v1/email/blasts
func (h *Handler) HandleSendBlast(c *gin.Context) {
	ctx := c.Request.Context()

	var req SendBlastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	report, err := h.processor.SendBlast(ctx, processor.SendBlastRequest{
		RestaurantName: req.RestaurantName,
		Subject:        req.Subject,
		HTMLBody:       req.HTMLBody,
	})
	if err != nil {
		switch {
		case errors.Is(err, processor.ErrEmptyBlast):
			apierrors.BadRequest(c, "EMPTY_BLAST", "Blast subject and body are required")
		case errors.Is(err, processor.ErrListNotFound):
			apierrors.NotFound(c, "restaurant not found")
		case errors.Is(err, processor.ErrNoRecipients):
			apierrors.BadRequest(c, "NO_RECIPIENTS", "Contact list has no recipients")
		default:
			apierrors.InternalError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, report)
}
