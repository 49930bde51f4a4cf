package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shirley-c/ai-24h-radar/internal/format"
	"github.com/Shirley-c/ai-24h-radar/internal/model"
)

// SnapshotProvider serves the current snapshot, refreshing on a cold
// cache, and exposes the raw cache state for health checks.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (model.Snapshot, error)
	Cached(ctx context.Context) (model.Snapshot, bool, error)
}

// HistoryStore lists past refreshes. Nil when history is disabled.
type HistoryStore interface {
	GetRecent(limit int) ([]model.SnapshotRecord, error)
	GetTotal() (int, error)
}

type DashboardHandler struct {
	snapshots SnapshotProvider
	history   HistoryStore
}

func NewDashboardHandler(snapshots SnapshotProvider, history HistoryStore) *DashboardHandler {
	return &DashboardHandler{snapshots: snapshots, history: history}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	snap, err := h.snapshots.Snapshot(c.Request.Context())
	if err != nil {
		slog.Error("error loading snapshot", "error", err)
		c.String(http.StatusInternalServerError, "snapshot unavailable")
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"FetchedAt": snap.FetchedAt.UTC().Format("2006-01-02 15:04 MST"),
		"Headlines": toHeadlineResponses(snap),
		"Quotes":    toQuoteResponses(snap),
		"Brief":     snap.Brief,
		"Summary":   snap.Summary,
	})
}

func (h *DashboardHandler) GetSnapshot(c *gin.Context) {
	snap, err := h.snapshots.Snapshot(c.Request.Context())
	if err != nil {
		slog.Error("error loading snapshot", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Snapshot unavailable"})
		return
	}

	c.JSON(http.StatusOK, toSnapshotResponse(snap))
}

func (h *DashboardHandler) GetNews(c *gin.Context) {
	snap, err := h.snapshots.Snapshot(c.Request.Context())
	if err != nil {
		slog.Error("error loading snapshot", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Snapshot unavailable"})
		return
	}

	headlines := toHeadlineResponses(snap)

	c.JSON(http.StatusOK, NewsResponse{
		Headlines: headlines,
		Total:     len(headlines),
		FetchedAt: snap.FetchedAt.Format(time.RFC3339),
	})
}

func (h *DashboardHandler) GetStocks(c *gin.Context) {
	snap, err := h.snapshots.Snapshot(c.Request.Context())
	if err != nil {
		slog.Error("error loading snapshot", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Snapshot unavailable"})
		return
	}

	quotes := toQuoteResponses(snap)

	c.JSON(http.StatusOK, StocksResponse{
		Quotes:    quotes,
		Total:     len(quotes),
		FetchedAt: snap.FetchedAt.Format(time.RFC3339),
	})
}

// GetSummary serves the copyable plain-text summary document.
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	snap, err := h.snapshots.Snapshot(c.Request.Context())
	if err != nil {
		slog.Error("error loading snapshot", "error", err)
		c.String(http.StatusInternalServerError, "summary unavailable")
		return
	}

	c.String(http.StatusOK, snap.Summary)
}

func (h *DashboardHandler) GetHistory(c *gin.Context) {
	limit := getQueryLimit(c)

	res := HistoryResponse{
		Records: []SnapshotRecordResponse{},
		Limit:   limit,
		Enabled: h.history != nil,
	}

	if h.history == nil {
		c.JSON(http.StatusOK, res)
		return
	}

	records, err := h.history.GetRecent(limit)
	if err != nil {
		slog.Error("error fetching snapshot history", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.history.GetTotal()
	if err != nil {
		slog.Error("error fetching snapshot history total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	res.Total = total

	for _, rec := range records {
		res.Records = append(res.Records, SnapshotRecordResponse{
			ID:            rec.ID,
			FetchedAt:     rec.FetchedAt.Format(time.RFC3339),
			HeadlineCount: rec.HeadlineCount,
			QuoteCount:    rec.QuoteCount,
			Summary:       rec.Summary,
			CreatedAt:     rec.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *DashboardHandler) GetHealth(c *gin.Context) {
	_, cached, err := h.snapshots.Cached(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"cache":  "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          "healthy",
		"cache":           "connected",
		"snapshot_cached": cached,
	})
}

func toSnapshotResponse(snap model.Snapshot) SnapshotResponse {
	return SnapshotResponse{
		FetchedAt: snap.FetchedAt.Format(time.RFC3339),
		Headlines: toHeadlineResponses(snap),
		Quotes:    toQuoteResponses(snap),
		Brief:     snap.Brief,
		Summary:   snap.Summary,
	}
}

func toHeadlineResponses(snap model.Snapshot) []HeadlineResponse {
	headlines := make([]HeadlineResponse, 0, len(snap.Headlines))
	for _, h := range snap.Headlines {
		headlines = append(headlines, HeadlineResponse{
			Title:       h.Title,
			URL:         h.URL,
			Publisher:   h.Publisher,
			Topic:       h.Topic,
			PublishedAt: h.PublishedAt.Format(time.RFC3339),
			Age:         format.RelativeAge(h.PublishedAt, snap.FetchedAt),
		})
	}
	return headlines
}

func toQuoteResponses(snap model.Snapshot) []QuoteResponse {
	quotes := make([]QuoteResponse, 0, len(snap.Quotes))
	for _, q := range snap.Quotes {
		available := q.Price != 0 || q.PreviousClose != 0

		res := QuoteResponse{
			Symbol:    q.Symbol,
			Available: available,
		}

		if available {
			res.Price = q.Price
			res.PriceDisplay = format.Price(q.Price, q.Currency)
			res.PreviousClose = q.PreviousClose
			res.Change = q.Change
			res.ChangePct = q.ChangePct
			res.ChangeDisplay = format.ChangePct(q.ChangePct)
			res.Currency = q.Currency
			res.AsOf = q.AsOf.Format(time.RFC3339)
		}

		quotes = append(quotes, res)
	}
	return quotes
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 20
		maxLimit     = 100
	)

	raw := c.Query("limit")
	if raw == "" {
		return defaultLimit
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", raw, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}
