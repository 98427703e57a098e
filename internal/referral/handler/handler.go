package handler

import (
	"errors"
	"net/http"

	"dinetable-server/internal/apierrors"
	"dinetable-server/internal/observability"
	"dinetable-server/internal/referral/processor"

	"github.com/gin-gonic/gin"
)

// Handler exposes referral issuance and the star ledger over HTTP
type Handler struct {
	processor processor.ReferralProcessor
	logger    *observability.Logger
}

func New(p processor.ReferralProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: p,
		logger:    logger,
	}
}

// IssueReferralRequest creates a referral code for a customer
type IssueReferralRequest struct {
	ReferrerName   string `json:"referrer_name" binding:"required"`
	ReferrerEmail  string `json:"referrer_email" binding:"required,email"`
	RestaurantName string `json:"restaurant_name" binding:"required"`
}

// HandleIssueReferral handles POST /api/v1/referrals
func (h *Handler) HandleIssueReferral(c *gin.Context) {
	ctx := c.Request.Context()

	var req IssueReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	resp, err := h.processor.IssueReferral(ctx, processor.IssueReferralRequest{
		ReferrerName:   req.ReferrerName,
		ReferrerEmail:  req.ReferrerEmail,
		RestaurantName: req.RestaurantName,
	})
	if err != nil {
		if errors.Is(err, processor.ErrInvalidReferrer) {
			apierrors.BadRequest(c, "INVALID_REFERRER", "Referrer name and email are required")
			return
		}
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// HandleGetReferral handles GET /api/v1/referrals/:code
func (h *Handler) HandleGetReferral(c *gin.Context) {
	ctx := c.Request.Context()

	referral, err := h.processor.GetReferral(ctx, c.Param("code"))
	if err != nil {
		if errors.Is(err, processor.ErrReferralNotFound) {
			apierrors.NotFound(c, "referral not found")
			return
		}
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, referral)
}

// RecordSignupRequest credits a referrer for a friend's signup
type RecordSignupRequest struct {
	ReviewPageID string `json:"review_page_id" binding:"required"`
}

// HandleRecordSignup handles POST /api/v1/referrals/:code/signup
func (h *Handler) HandleRecordSignup(c *gin.Context) {
	ctx := c.Request.Context()

	var req RecordSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	outcome, err := h.processor.RecordSignup(ctx, processor.RecordSignupRequest{
		Code:         c.Param("code"),
		ReviewPageID: req.ReviewPageID,
	})
	if err != nil {
		if errors.Is(err, processor.ErrReferralNotFound) {
			apierrors.NotFound(c, "referral not found")
			return
		}
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}
