package handler

type HeadlineResponse struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Publisher   string `json:"publisher"`
	Topic       string `json:"topic"`
	PublishedAt string `json:"published_at"`
	Age         string `json:"age"`
}

type QuoteResponse struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	PriceDisplay  string  `json:"price_display"`
	PreviousClose float64 `json:"previous_close"`
	Change        float64 `json:"change"`
	ChangePct     float64 `json:"change_pct"`
	ChangeDisplay string  `json:"change_display"`
	Currency      string  `json:"currency"`
	AsOf          string  `json:"as_of"`
	Available     bool    `json:"available"`
}

type SnapshotResponse struct {
	FetchedAt string             `json:"fetched_at"`
	Headlines []HeadlineResponse `json:"headlines"`
	Quotes    []QuoteResponse    `json:"quotes"`
	Brief     string             `json:"brief,omitempty"`
	Summary   string             `json:"summary"`
}

type NewsResponse struct {
	Headlines []HeadlineResponse `json:"headlines"`
	Total     int                `json:"total"`
	FetchedAt string             `json:"fetched_at"`
}

type StocksResponse struct {
	Quotes    []QuoteResponse `json:"quotes"`
	Total     int             `json:"total"`
	FetchedAt string          `json:"fetched_at"`
}

type SnapshotRecordResponse struct {
	ID            int64  `json:"id"`
	FetchedAt     string `json:"fetched_at"`
	HeadlineCount int    `json:"headline_count"`
	QuoteCount    int    `json:"quote_count"`
	Summary       string `json:"summary"`
	CreatedAt     string `json:"created_at"`
}

type HistoryResponse struct {
	Records []SnapshotRecordResponse `json:"records"`
	Total   int                      `json:"total"`
	Limit   int                      `json:"limit"`
	Enabled bool                     `json:"enabled"`
}
