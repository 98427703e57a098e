package handler

import (
	"errors"
	"net/http"
	"time"

	"dinetable-server/internal/analytics/processor"
	"dinetable-server/internal/apierrors"
	"dinetable-server/internal/observability"
	"dinetable-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const writeTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Dashboards are served from a different origin than the API.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler exposes page analytics snapshots, engagement tracking and the live
// websocket feed
type Handler struct {
	aggregator *processor.Aggregator
	logger     *observability.Logger
}

func New(aggregator *processor.Aggregator, logger *observability.Logger) Handler {
	return Handler{
		aggregator: aggregator,
		logger:     logger,
	}
}

// HandleGetSnapshot handles GET /api/v1/analytics/pages/:page_id
func (h *Handler) HandleGetSnapshot(c *gin.Context) {
	ctx := c.Request.Context()

	snapshot, err := h.aggregator.Snapshot(ctx, c.Param("page_id"))
	if err != nil {
		if errors.Is(err, processor.ErrPageNotFound) {
			apierrors.NotFound(c, "no analytics recorded for this page")
			return
		}
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// HandleTrack handles POST /api/v1/analytics/pages/:page_id/track/:kind
func (h *Handler) HandleTrack(c *gin.Context) {
	ctx := c.Request.Context()

	snapshot, err := h.aggregator.Track(ctx, c.Param("page_id"), store.PageEventKind(c.Param("kind")))
	if err != nil {
		if errors.Is(err, processor.ErrUnknownEventKind) {
			apierrors.BadRequest(c, "UNKNOWN_EVENT_KIND", "Event kind must be page_view, qr_scan or link_click")
			return
		}
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// HandleLiveFeed handles GET /api/v1/analytics/pages/:page_id/ws. It upgrades
// to a websocket, sends the current snapshot and then streams every refresh
// until the viewer disconnects.
func (h *Handler) HandleLiveFeed(c *gin.Context) {
	ctx := c.Request.Context()
	pageID := c.Param("page_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error(ctx, "failed to upgrade analytics feed connection", err)
		return
	}
	defer conn.Close()

	feed, cancel := h.aggregator.Subscribe(pageID)
	defer cancel()

	// The read pump exists only to notice the client going away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if snapshot, err := h.aggregator.Snapshot(ctx, pageID); err == nil {
		if err := h.writeSnapshot(conn, snapshot); err != nil {
			return
		}
	}

	for {
		select {
		case snapshot, ok := <-feed:
			if !ok {
				return
			}
			if err := h.writeSnapshot(conn, snapshot); err != nil {
				return
			}
		case <-closed:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (h *Handler) writeSnapshot(conn *websocket.Conn, snapshot store.PageAnalytics) error {
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteJSON(snapshot)
}
