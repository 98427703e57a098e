package handler

import (
	"errors"
	"net/http"

	"dinetable-server/internal/apierrors"
	"dinetable-server/internal/observability"
	"dinetable-server/internal/tips"
	"dinetable-server/internal/tips/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler exposes tip voucher issuance and redemption over HTTP
type Handler struct {
	processor processor.TipsProcessor
	logger    *observability.Logger
}

func New(p processor.TipsProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: p,
		logger:    logger,
	}
}

// IssueVoucherRequest rewards a tip with a voucher. The reward percentage
// is configured server-side and deliberately not accepted here.
type IssueVoucherRequest struct {
	RestaurantName string  `json:"restaurant_name" binding:"required"`
	ServerName     string  `json:"server_name" binding:"required"`
	TipAmount      float64 `json:"tip_amount" binding:"required"`
	CustomerEmail  *string `json:"customer_email" binding:"omitempty,email"`
}

// HandleIssueVoucher handles POST /api/v1/tips/vouchers
func (h *Handler) HandleIssueVoucher(c *gin.Context) {
	ctx := c.Request.Context()

	var req IssueVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	voucher, err := h.processor.IssueTipVoucher(ctx, processor.IssueTipVoucherRequest{
		RestaurantName: req.RestaurantName,
		ServerName:     req.ServerName,
		TipAmount:      req.TipAmount,
		CustomerEmail:  req.CustomerEmail,
	})
	if err != nil {
		if errors.Is(err, tips.ErrInvalidTipAmount) {
			apierrors.BadRequest(c, "INVALID_TIP_AMOUNT", "Tip amount must be positive")
			return
		}
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, voucher)
}

// AttachEmailRequest links a signing-up customer to an earlier voucher
type AttachEmailRequest struct {
	RestaurantName string `json:"restaurant_name" binding:"required"`
	VoucherCode    string `json:"voucher_code" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
}

// HandleAttachEmail handles POST /api/v1/tips/vouchers/attach-email
func (h *Handler) HandleAttachEmail(c *gin.Context) {
	ctx := c.Request.Context()

	var req AttachEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	contact, err := h.processor.AttachEmail(ctx, processor.AttachEmailRequest{
		RestaurantName: req.RestaurantName,
		VoucherCode:    req.VoucherCode,
		Email:          req.Email,
	})
	if err != nil {
		if errors.Is(err, processor.ErrListNotFound) || errors.Is(err, processor.ErrVoucherNotFound) {
			apierrors.NotFound(c, "voucher not found")
			return
		}
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

// HandleListVouchers handles GET /api/v1/tips/vouchers?restaurant_name=...
func (h *Handler) HandleListVouchers(c *gin.Context) {
	ctx := c.Request.Context()

	restaurantName := c.Query("restaurant_name")
	if restaurantName == "" {
		apierrors.BadRequest(c, "MISSING_RESTAURANT_NAME", "restaurant_name query parameter is required")
		return
	}

	vouchers, err := h.processor.ListVouchers(ctx, restaurantName)
	if err != nil {
		if errors.Is(err, processor.ErrListNotFound) {
			apierrors.NotFound(c, "restaurant not found")
			return
		}
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vouchers": vouchers})
}

// HandleRedeemVoucher handles POST /api/v1/tips/vouchers/:voucher_id/redeem
func (h *Handler) HandleRedeemVoucher(c *gin.Context) {
	ctx := c.Request.Context()

	voucherID, err := uuid.Parse(c.Param("voucher_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_VOUCHER_ID", "Voucher id must be a UUID")
		return
	}

	voucher, err := h.processor.RedeemVoucher(ctx, voucherID)
	if err != nil {
		if errors.Is(err, processor.ErrVoucherNotFound) {
			apierrors.NotFound(c, "voucher not available")
			return
		}
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, voucher)
}
