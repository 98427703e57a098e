package api

import (
	"net/http"

	"dinetable-server/internal/auth"
	"dinetable-server/internal/bootstrap"

	"github.com/gin-gonic/gin"
)

type API struct {
	router        *gin.RouterGroup
	deps          *bootstrap.Dependencies
	authenticator auth.Authenticator
}

func New(router *gin.RouterGroup, deps *bootstrap.Dependencies) API {
	return API{
		router:        router,
		deps:          deps,
		authenticator: deps.Authenticator,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api/v1")
	{
		apiGroup.POST("/auth/token", a.authenticator.HandleIssueToken)

		reviewGroup := apiGroup.Group("/reviews")
		reviewGroup.POST("/drafts", a.deps.ReviewHandler.HandleStartDraft)
		reviewGroup.POST("/drafts/:draft_id/thoughts", a.deps.ReviewHandler.HandleCaptureThoughts)
		reviewGroup.POST("/drafts/:draft_id/server", a.deps.ReviewHandler.HandleSelectServer)
		reviewGroup.POST("/drafts/:draft_id/receipt", a.deps.ReviewHandler.HandleUploadReceipt)
		reviewGroup.POST("/drafts/:draft_id/enhance", a.deps.ReviewHandler.HandleEnhance)
		reviewGroup.POST("/drafts/:draft_id/finalize", a.deps.ReviewHandler.HandleFinalize)
		reviewGroup.POST("/capture-email", a.deps.ReviewHandler.HandleCaptureEmail)
		reviewGroup.GET("/:code", a.deps.ReviewHandler.HandleGetReview)

		tipsGroup := apiGroup.Group("/tips")
		tipsGroup.POST("/vouchers", a.deps.TipsHandler.HandleIssueVoucher)
		tipsGroup.POST("/vouchers/attach-email", a.deps.TipsHandler.HandleAttachEmail)

		referralGroup := apiGroup.Group("/referrals")
		referralGroup.POST("", a.deps.ReferralHandler.HandleIssueReferral)
		referralGroup.GET("/:code", a.deps.ReferralHandler.HandleGetReferral)
		referralGroup.POST("/:code/signup", a.deps.ReferralHandler.HandleRecordSignup)

		// Engagement tracking fires from customer-facing pages, unauthenticated.
		apiGroup.POST("/analytics/pages/:page_id/track/:kind", a.deps.AnalyticsHandler.HandleTrack)
	}

	// Dashboard routes
	protectedGroup := apiGroup.Group("", a.authenticator.Middleware)
	{
		protectedGroup.GET("/analytics/pages/:page_id", a.deps.AnalyticsHandler.HandleGetSnapshot)
		protectedGroup.GET("/analytics/pages/:page_id/ws", a.deps.AnalyticsHandler.HandleLiveFeed)
		protectedGroup.GET("/tips/vouchers", a.deps.TipsHandler.HandleListVouchers)
		protectedGroup.POST("/tips/vouchers/:voucher_id/redeem", a.deps.TipsHandler.HandleRedeemVoucher)
		protectedGroup.POST("/email/blasts", a.deps.EmailHandler.HandleSendBlast)
		protectedGroup.GET("/printables/qr", a.deps.PrintablesHandler.HandleRenderQR)
		protectedGroup.POST("/printables/reward-card", a.deps.PrintablesHandler.HandleRenderRewardCard)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
