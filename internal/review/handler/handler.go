package handler

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"dinetable-server/internal/apierrors"
	"dinetable-server/internal/observability"
	"dinetable-server/internal/review/draft"
	"dinetable-server/internal/review/processor"
	"dinetable-server/internal/rewardcode"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler exposes the review flow over HTTP. Each customer session maps to
// one draft held in memory; the store stays the only shared state between
// sessions.
type Handler struct {
	sessions            *sessionStore
	processor           processor.ReviewProcessor
	enhancer            draft.Enhancer
	analyzer            draft.ReceiptAnalyzer
	tipRewardPercentage float64
	logger              *observability.Logger
}

func New(p processor.ReviewProcessor, enhancer draft.Enhancer, analyzer draft.ReceiptAnalyzer, tipRewardPercentage float64, logger *observability.Logger) Handler {
	return Handler{
		sessions:            newSessionStore(),
		processor:           p,
		enhancer:            enhancer,
		analyzer:            analyzer,
		tipRewardPercentage: tipRewardPercentage,
		logger:              logger,
	}
}

// Drafts are ephemeral: a finalized draft is evicted right away and an
// abandoned one is dropped after draftTTL. The customer keeps the reward
// code; nothing in a draft outlives finalize.
const draftTTL = 2 * time.Hour

type sessionEntry struct {
	draft     *draft.Draft
	createdAt time.Time
}

type sessionStore struct {
	mu     sync.Mutex
	drafts map[string]sessionEntry
	now    func() time.Time
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		drafts: make(map[string]sessionEntry),
		now:    time.Now,
	}
}

func (s *sessionStore) put(id string, d *draft.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.drafts[id] = sessionEntry{draft: d, createdAt: s.now()}
}

func (s *sessionStore) get(id string) (*draft.Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.drafts[id]
	if !ok {
		return nil, false
	}
	if s.now().Sub(entry.createdAt) > draftTTL {
		delete(s.drafts, id)
		return nil, false
	}
	return entry.draft, true
}

func (s *sessionStore) delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
}

func (s *sessionStore) sweepLocked() {
	cutoff := s.now().Add(-draftTTL)
	for id, entry := range s.drafts {
		if entry.createdAt.Before(cutoff) {
			delete(s.drafts, id)
		}
	}
}

// StartDraftRequest opens a draft session against a review page. The tip
// reward percentage is server-side configuration, not part of the request.
type StartDraftRequest struct {
	ReviewPageID   string   `json:"review_page_id" binding:"required"`
	RestaurantName string   `json:"restaurant_name" binding:"required"`
	Servers        []string `json:"servers"`
}

// HandleStartDraft handles POST /api/v1/reviews/drafts
func (h *Handler) HandleStartDraft(c *gin.Context) {
	var req StartDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	d := draft.New(draft.RestaurantPreferences{
		RestaurantName:      req.RestaurantName,
		Servers:             req.Servers,
		TipRewardPercentage: h.tipRewardPercentage,
		ReviewPageID:        req.ReviewPageID,
	}, h.enhancer, h.analyzer, h.processor)

	draftID := uuid.New().String()
	h.sessions.put(draftID, d)

	c.JSON(http.StatusCreated, gin.H{
		"draft_id":              draftID,
		"tip_reward_percentage": d.TipRewardPercentage(),
	})
}

func (h *Handler) draftFromPath(c *gin.Context) (*draft.Draft, bool) {
	d, ok := h.sessions.get(c.Param("draft_id"))
	if !ok {
		apierrors.NotFound(c, "draft not found")
		return nil, false
	}
	return d, true
}

// CaptureThoughtsRequest carries the customer's raw notes
type CaptureThoughtsRequest struct {
	Text string `json:"text"`
}

// HandleCaptureThoughts handles POST /api/v1/reviews/drafts/:draft_id/thoughts
func (h *Handler) HandleCaptureThoughts(c *gin.Context) {
	d, ok := h.draftFromPath(c)
	if !ok {
		return
	}

	var req CaptureThoughtsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	if err := d.CaptureThoughts(req.Text); err != nil {
		apierrors.BadRequest(c, "EMPTY_REVIEW_TEXT", "Review text must not be empty")
		return
	}
	c.JSON(http.StatusOK, gin.H{"completed_steps": d.StepTimestamps()})
}

// SelectServerRequest attributes the visit to a server
type SelectServerRequest struct {
	ServerName string `json:"server_name" binding:"required"`
}

// HandleSelectServer handles POST /api/v1/reviews/drafts/:draft_id/server
func (h *Handler) HandleSelectServer(c *gin.Context) {
	d, ok := h.draftFromPath(c)
	if !ok {
		return
	}

	var req SelectServerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	if err := d.SelectServer(req.ServerName); err != nil {
		apierrors.BadRequest(c, "UNKNOWN_SERVER", "Server is not on the restaurant's roster")
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadReceiptRequest points at an uploaded receipt image
type UploadReceiptRequest struct {
	ImageURL string `json:"image_url" binding:"required,url"`
}

// HandleUploadReceipt handles POST /api/v1/reviews/drafts/:draft_id/receipt
func (h *Handler) HandleUploadReceipt(c *gin.Context) {
	ctx := c.Request.Context()
	d, ok := h.draftFromPath(c)
	if !ok {
		return
	}

	var req UploadReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	if err := d.UploadReceipt(ctx, req.ImageURL); err != nil {
		h.logger.Error(ctx, "receipt upload failed", err)
		apierrors.BadGateway(c, "RECEIPT_ANALYSIS_FAILED", "Receipt could not be analyzed. Please retry.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"receipt": d.Receipt()})
}

// HandleEnhance handles POST /api/v1/reviews/drafts/:draft_id/enhance
func (h *Handler) HandleEnhance(c *gin.Context) {
	ctx := c.Request.Context()
	d, ok := h.draftFromPath(c)
	if !ok {
		return
	}

	if err := d.Enhance(ctx); err != nil {
		if errors.Is(err, draft.ErrEmptyReviewText) {
			apierrors.BadRequest(c, "EMPTY_REVIEW_TEXT", "Capture your thoughts before enhancing")
			return
		}
		h.logger.Error(ctx, "enhancement failed", err)
		apierrors.BadGateway(c, "ENHANCEMENT_FAILED", "Enhancement is unavailable right now. Your original text is untouched.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enhanced_text": d.EnhancedText()})
}

// HandleFinalize handles POST /api/v1/reviews/drafts/:draft_id/finalize
func (h *Handler) HandleFinalize(c *gin.Context) {
	ctx := c.Request.Context()
	d, ok := h.draftFromPath(c)
	if !ok {
		return
	}

	result, err := d.Finalize(ctx)
	if err != nil {
		if errors.Is(err, draft.ErrEmptyReviewText) {
			apierrors.BadRequest(c, "EMPTY_REVIEW_TEXT", "Capture your thoughts before copying the review")
			return
		}
		if errors.Is(err, rewardcode.ErrExhaustedRetries) {
			h.logger.Error(ctx, "reward code generation exhausted retries", err)
			apierrors.InternalError(c, err)
			return
		}
		apierrors.InternalError(c, err)
		return
	}

	// Finalized drafts are done; the customer carries the code from here.
	h.sessions.delete(c.Param("draft_id"))

	c.JSON(http.StatusOK, gin.H{
		"reward_code": result.RewardCode,
		"review_text": d.BestText(),
	})
}

// CaptureEmailRequest links a customer email to a finalized review
type CaptureEmailRequest struct {
	RestaurantName string `json:"restaurant_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	RewardCode     string `json:"reward_code" binding:"required"`
}

// HandleCaptureEmail handles POST /api/v1/reviews/capture-email
func (h *Handler) HandleCaptureEmail(c *gin.Context) {
	ctx := c.Request.Context()

	var req CaptureEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	contact, err := h.processor.CaptureEmail(ctx, processor.CaptureEmailRequest{
		RestaurantName: req.RestaurantName,
		Email:          req.Email,
		RewardCode:     req.RewardCode,
	})
	if err != nil {
		if errors.Is(err, processor.ErrReviewNotFound) {
			apierrors.NotFound(c, "reward code not found")
			return
		}
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

// HandleGetReview handles GET /api/v1/reviews/:code
func (h *Handler) HandleGetReview(c *gin.Context) {
	ctx := c.Request.Context()

	review, err := h.processor.GetReview(ctx, c.Param("code"))
	if err != nil {
		if errors.Is(err, processor.ErrReviewNotFound) {
			apierrors.NotFound(c, "review not found")
			return
		}
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}
