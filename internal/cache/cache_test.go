package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-playground/assert/v2"
	"github.com/redis/go-redis/v9"

	"github.com/Shirley-c/ai-24h-radar/internal/model"
)

func newTestCache(t *testing.T, ttl time.Duration) (*SnapshotCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewSnapshotCache(client, ttl), mr
}

func TestGet_MissingKey(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	snap, ok, err := c.Get(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, false, ok)
	assert.Equal(t, model.Snapshot{}, snap)
}

func TestSetGet_Roundtrip(t *testing.T) {
	c, mr := newTestCache(t, 20*time.Minute)

	want := model.Snapshot{
		FetchedAt: time.Date(2026, 8, 31, 14, 5, 0, 0, time.UTC),
		Headlines: []model.Headline{
			{Title: "OpenAI releases new model", Topic: "OpenAI", URL: "https://example.com/a"},
		},
		Quotes: []model.Quote{
			{Symbol: "NVDA", Price: 187.42, PreviousClose: 181.48, ChangePct: 3.27, Currency: "USD"},
		},
		Summary: "AI 24H RADAR - 2026-08-31 14:05 UTC\n",
	}

	err := c.Set(context.Background(), want)
	assert.Equal(t, nil, err)

	got, ok, err := c.Get(context.Background())
	assert.Equal(t, nil, err)
	assert.Equal(t, true, ok)
	assert.Equal(t, want.Summary, got.Summary)
	assert.Equal(t, 1, len(got.Headlines))
	assert.Equal(t, "NVDA", got.Quotes[0].Symbol)
	assert.Equal(t, 3.27, got.Quotes[0].ChangePct)

	assert.Equal(t, 20*time.Minute, mr.TTL(snapshotKey))
}

func TestGet_ExpiredKey(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)

	err := c.Set(context.Background(), model.Snapshot{Summary: "stale"})
	assert.Equal(t, nil, err)

	mr.FastForward(2 * time.Minute)

	_, ok, err := c.Get(context.Background())
	assert.Equal(t, nil, err)
	assert.Equal(t, false, ok)
}
