package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Shirley-c/ai-24h-radar/internal/config"
	"github.com/Shirley-c/ai-24h-radar/internal/refresh"
	"github.com/Shirley-c/ai-24h-radar/pkg/llm"
	"github.com/Shirley-c/ai-24h-radar/pkg/market"
	"github.com/Shirley-c/ai-24h-radar/pkg/news"
)

// One-shot: fetch everything once and print the copyable text summary
// to stdout. Runs without Redis or Postgres.
func main() {

	godotenv.Load()

	// Logs go to stderr so the summary stays clean on stdout.
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	watchlist, err := config.LoadWatchlist(os.Getenv("WATCHLIST_FILE"))
	if err != nil {
		slog.Error("error loading watchlist, using defaults", "error", err)
	}

	var quoteClient market.QuoteClient = market.NewYahooChartClient()
	if key := os.Getenv("FINNHUB_API_KEY"); key != "" {
		quoteClient = market.NewFinnhubClient(key)
	}

	var briefClient llm.Client
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		briefClient = llm.NewOpenAIClient(key)
	} else if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		briefClient = llm.NewAnthropicClient(key)
	}

	refresher := refresh.New(refresh.Config{
		Topics:   watchlist.Topics,
		Symbols:  watchlist.Symbols,
		News:     news.NewGoogleNewsClient(),
		Quotes:   quoteClient,
		Brief:    briefClient,
		Interval: time.Minute,
	})

	snap := refresher.RefreshOnce(context.Background())

	fmt.Print(snap.Summary)
}
