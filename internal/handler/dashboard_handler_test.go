package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/Shirley-c/ai-24h-radar/internal/model"
)

type fakeProvider struct {
	snap   model.Snapshot
	cached bool
	err    error
}

func (f *fakeProvider) Snapshot(ctx context.Context) (model.Snapshot, error) {
	return f.snap, f.err
}

func (f *fakeProvider) Cached(ctx context.Context) (model.Snapshot, bool, error) {
	return f.snap, f.cached, f.err
}

type fakeHistoryStore struct {
	records  []model.SnapshotRecord
	err      error
	gotLimit int
}

func (f *fakeHistoryStore) GetRecent(limit int) ([]model.SnapshotRecord, error) {
	f.gotLimit = limit
	return f.records, f.err
}

func (f *fakeHistoryStore) GetTotal() (int, error) {
	return len(f.records), f.err
}

func newTestRouter(provider SnapshotProvider, history HistoryStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewDashboardHandler(provider, history)
	r.GET("/api/snapshot", h.GetSnapshot)
	r.GET("/api/news", h.GetNews)
	r.GET("/api/stocks", h.GetStocks)
	r.GET("/api/summary", h.GetSummary)
	r.GET("/api/history", h.GetHistory)
	r.GET("/health", h.GetHealth)
	return r
}

func testSnapshot() model.Snapshot {
	fetchedAt := time.Date(2026, 8, 31, 14, 5, 0, 0, time.UTC)
	return model.Snapshot{
		FetchedAt: fetchedAt,
		Headlines: []model.Headline{
			{Title: "new model", URL: "https://example.com/a", Publisher: "Reuters", Topic: "OpenAI", PublishedAt: fetchedAt.Add(-2 * time.Hour)},
		},
		Quotes: []model.Quote{
			{Symbol: "NVDA", Price: 187.42, PreviousClose: 181.48, Change: 5.94, ChangePct: 3.27, Currency: "USD", AsOf: fetchedAt},
			{Symbol: "AMD"},
		},
		Summary: "AI 24H RADAR - 2026-08-31 14:05 UTC\n",
	}
}

func TestGetSnapshot(t *testing.T) {
	r := newTestRouter(&fakeProvider{snap: testSnapshot()}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/snapshot", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res SnapshotResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, "2026-08-31T14:05:00Z", res.FetchedAt)
	assert.Equal(t, 1, len(res.Headlines))
	assert.Equal(t, "new model", res.Headlines[0].Title)
	assert.Equal(t, "2h ago", res.Headlines[0].Age)
	assert.Equal(t, 2, len(res.Quotes))
	assert.Equal(t, "$187.42", res.Quotes[0].PriceDisplay)
	assert.Equal(t, "+3.27%", res.Quotes[0].ChangeDisplay)
	assert.Equal(t, true, res.Quotes[0].Available)
	assert.Equal(t, false, res.Quotes[1].Available)
	assert.Equal(t, "", res.Quotes[1].PriceDisplay)
}

func TestGetSnapshot_ProviderError(t *testing.T) {
	r := newTestRouter(&fakeProvider{err: errors.New("cache down")}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/snapshot", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetNews(t *testing.T) {
	r := newTestRouter(&fakeProvider{snap: testSnapshot()}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/news", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res NewsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, "OpenAI", res.Headlines[0].Topic)
	assert.Equal(t, "Reuters", res.Headlines[0].Publisher)
}

func TestGetStocks(t *testing.T) {
	r := newTestRouter(&fakeProvider{snap: testSnapshot()}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/stocks", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res StocksResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, "NVDA", res.Quotes[0].Symbol)
	assert.Equal(t, 3.27, res.Quotes[0].ChangePct)
}

func TestGetSummary_PlainText(t *testing.T) {
	snap := testSnapshot()
	r := newTestRouter(&fakeProvider{snap: snap}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/summary", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, snap.Summary, w.Body.String())
}

func TestGetHistory_Disabled(t *testing.T) {
	r := newTestRouter(&fakeProvider{snap: testSnapshot()}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/history", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res HistoryResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, false, res.Enabled)
	assert.Equal(t, 0, len(res.Records))
}

func TestGetHistory_ReturnsRecords(t *testing.T) {
	history := &fakeHistoryStore{
		records: []model.SnapshotRecord{
			{ID: 2, HeadlineCount: 12, QuoteCount: 6, Summary: "doc", FetchedAt: time.Now(), CreatedAt: time.Now()},
		},
	}
	r := newTestRouter(&fakeProvider{snap: testSnapshot()}, history)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/history?limit=5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, history.gotLimit)

	var res HistoryResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res.Enabled)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, 1, len(res.Records))
	assert.Equal(t, 12, res.Records[0].HeadlineCount)
}

func TestGetHistory_LimitClamped(t *testing.T) {
	history := &fakeHistoryStore{}
	r := newTestRouter(&fakeProvider{snap: testSnapshot()}, history)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/history?limit=5000", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, 100, history.gotLimit)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/history?limit=abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, 20, history.gotLimit)
}

func TestGetHistory_DBError(t *testing.T) {
	history := &fakeHistoryStore{err: errors.New("DB down")}
	r := newTestRouter(&fakeProvider{snap: testSnapshot()}, history)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/history", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetHealth(t *testing.T) {
	r := newTestRouter(&fakeProvider{cached: true}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	r = newTestRouter(&fakeProvider{err: errors.New("redis down")}, nil)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
