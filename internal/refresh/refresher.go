package refresh

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Shirley-c/ai-24h-radar/internal/format"
	"github.com/Shirley-c/ai-24h-radar/internal/model"
	"github.com/Shirley-c/ai-24h-radar/pkg/llm"
	"github.com/Shirley-c/ai-24h-radar/pkg/market"
	"github.com/Shirley-c/ai-24h-radar/pkg/news"
)

// SnapshotStore is the snapshot cache as seen by the refresher.
type SnapshotStore interface {
	Get(ctx context.Context) (model.Snapshot, bool, error)
	Set(ctx context.Context, snap model.Snapshot) error
}

// HistoryStore records one row per refresh when a database is
// configured.
type HistoryStore interface {
	Save(rec *model.SnapshotRecord) error
}

type Config struct {
	Topics   []string
	Symbols  []string
	News     news.Client
	Quotes   market.QuoteClient
	Brief    llm.Client
	Cache    SnapshotStore
	History  HistoryStore
	Interval time.Duration
}

type Refresher struct {
	topics   []string
	symbols  []string
	news     news.Client
	quotes   market.QuoteClient
	brief    llm.Client
	cache    SnapshotStore
	history  HistoryStore
	interval time.Duration
	window   time.Duration
	now      func() time.Time
}

func New(cfg Config) *Refresher {
	return &Refresher{
		topics:   cfg.Topics,
		symbols:  cfg.Symbols,
		news:     cfg.News,
		quotes:   cfg.Quotes,
		brief:    cfg.Brief,
		cache:    cfg.Cache,
		history:  cfg.History,
		interval: cfg.Interval,
		window:   news.RecencyWindow,
		now:      time.Now,
	}
}

// Run refreshes immediately, then on every tick until the context is
// cancelled.
func (r *Refresher) Run(ctx context.Context) {
	r.RefreshOnce(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.RefreshOnce(ctx)
		}
	}
}

// RefreshOnce fans out one fetch per topic and per symbol, then builds
// the snapshot. Source failures are logged and leave their slot empty;
// a snapshot is always produced.
func (r *Refresher) RefreshOnce(ctx context.Context) model.Snapshot {
	start := r.now()
	now := start.UTC()

	byTopic := make([][]news.Headline, len(r.topics))
	quotes := make([]model.Quote, len(r.symbols))

	var g errgroup.Group

	for i, topic := range r.topics {
		g.Go(func() error {
			items, err := r.news.Fetch(ctx, topic)
			if err != nil {
				slog.Error("error fetching news", "source", r.news.Name(), "topic", topic, "error", err)
				return nil
			}
			byTopic[i] = items
			return nil
		})
	}

	for i, symbol := range r.symbols {
		g.Go(func() error {
			q, err := r.quotes.Quote(ctx, symbol)
			if err != nil {
				slog.Error("error fetching quote", "source", r.quotes.Name(), "symbol", symbol, "error", err)
				quotes[i] = model.Quote{Symbol: symbol}
				return nil
			}
			quotes[i] = model.Quote{
				Symbol:        q.Symbol,
				Price:         q.Price,
				PreviousClose: q.PreviousClose,
				Change:        q.Change,
				ChangePct:     q.ChangePct,
				Currency:      q.Currency,
				AsOf:          q.AsOf,
			}
			return nil
		})
	}

	g.Wait()

	var merged []news.Headline
	for _, items := range byTopic {
		merged = append(merged, items...)
	}

	merged = news.FilterRecent(merged, now, r.window)
	merged = news.Dedupe(merged)
	news.SortNewestFirst(merged)

	headlines := make([]model.Headline, len(merged))
	for i, h := range merged {
		headlines[i] = model.Headline{
			Title:       h.Title,
			URL:         h.URL,
			Publisher:   h.Publisher,
			Topic:       h.Topic,
			PublishedAt: h.PublishedAt,
		}
	}

	brief := r.buildBrief(headlines)

	snap := model.Snapshot{
		FetchedAt: now,
		Headlines: headlines,
		Quotes:    quotes,
		Brief:     brief,
		Summary:   format.BuildSummary(now, quotes, headlines, brief),
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, snap); err != nil {
			slog.Error("error caching snapshot", "error", err)
		}
	}

	if r.history != nil {
		rec := model.SnapshotRecord{
			FetchedAt:     snap.FetchedAt,
			HeadlineCount: len(snap.Headlines),
			QuoteCount:    len(snap.Quotes),
			Summary:       snap.Summary,
			Quotes:        snap.Quotes,
		}
		if err := r.history.Save(&rec); err != nil {
			slog.Error("error saving snapshot history", "error", err)
		}
	}

	slog.Info("refresh complete",
		"headlines", len(snap.Headlines),
		"quotes", len(snap.Quotes),
		"duration", time.Since(start).String(),
	)

	return snap
}

// Snapshot serves the cached snapshot, refreshing synchronously when
// the cache is cold so the first request after boot is never empty.
func (r *Refresher) Snapshot(ctx context.Context) (model.Snapshot, error) {
	snap, ok, err := r.Cached(ctx)
	if err != nil {
		slog.Error("error reading snapshot cache", "error", err)
	}
	if ok {
		return snap, nil
	}
	return r.RefreshOnce(ctx), nil
}

// Cached reports the cache state without triggering a refresh.
func (r *Refresher) Cached(ctx context.Context) (model.Snapshot, bool, error) {
	if r.cache == nil {
		return model.Snapshot{}, false, nil
	}
	return r.cache.Get(ctx)
}

func (r *Refresher) buildBrief(headlines []model.Headline) string {
	if r.brief == nil || len(headlines) == 0 {
		return ""
	}

	inputs := make([]llm.BriefInput, len(headlines))
	for i, h := range headlines {
		inputs[i] = llm.BriefInput{
			Title:     h.Title,
			Publisher: h.Publisher,
			Topic:     h.Topic,
		}
	}

	brief, err := r.brief.Brief(inputs)
	if err != nil {
		slog.Error("error generating brief", "model", r.brief.ModelName(), "error", err)
		return ""
	}
	return brief
}
