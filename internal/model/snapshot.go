package model

import "time"

// Headline is a single news item kept after recency filtering.
type Headline struct {
	Title       string
	URL         string
	Publisher   string
	Topic       string
	PublishedAt time.Time
}

// Quote holds a derived two-day price change for a watchlist symbol.
// A zero-valued Quote (Price and PreviousClose both 0) means the
// source was unavailable for that symbol.
type Quote struct {
	Symbol        string
	Price         float64
	PreviousClose float64
	Change        float64
	ChangePct     float64
	Currency      string
	AsOf          time.Time
}

// Snapshot is one full refresh of the dashboard: recent headlines,
// watchlist quotes and the rendered copyable text summary.
type Snapshot struct {
	FetchedAt time.Time
	Headlines []Headline
	Quotes    []Quote
	Brief     string
	Summary   string
}

type SnapshotRecord struct {
	ID            int64
	FetchedAt     time.Time
	HeadlineCount int
	QuoteCount    int
	Summary       string
	Quotes        []Quote
	CreatedAt     time.Time
}
