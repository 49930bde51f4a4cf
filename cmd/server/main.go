package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Shirley-c/ai-24h-radar/db"
	"github.com/Shirley-c/ai-24h-radar/internal/cache"
	"github.com/Shirley-c/ai-24h-radar/internal/config"
	"github.com/Shirley-c/ai-24h-radar/internal/handler"
	"github.com/Shirley-c/ai-24h-radar/internal/refresh"
	"github.com/Shirley-c/ai-24h-radar/internal/repository"
	"github.com/Shirley-c/ai-24h-radar/pkg/llm"
	"github.com/Shirley-c/ai-24h-radar/pkg/market"
	"github.com/Shirley-c/ai-24h-radar/pkg/news"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	err = db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	watchlist, err := config.LoadWatchlist(os.Getenv("WATCHLIST_FILE"))
	if err != nil {
		slog.Error("error loading watchlist, using defaults", "error", err)
	}

	interval := config.RefreshInterval()

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

	cfg := refresh.Config{
		Topics:   watchlist.Topics,
		Symbols:  watchlist.Symbols,
		News:     news.NewGoogleNewsClient(),
		Quotes:   quoteClient,
		Brief:    briefClient,
		Cache:    cache.NewSnapshotCache(db.Redis, 2*interval),
		Interval: interval,
	}

	var history handler.HistoryStore
	if db.DB != nil {
		repo := repository.NewSnapshotRepository(db.DB)
		cfg.History = repo
		history = repo
	} else {
		slog.Info("DATABASE_URL not set, snapshot history disabled")
	}

	refresher := refresh.New(cfg)
	go refresher.Run(context.Background())

	slog.Info("refresh loop started",
		"interval", interval.String(),
		"topics", len(watchlist.Topics),
		"symbols", len(watchlist.Symbols),
		"quote_source", quoteClient.Name(),
	)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.LoadHTMLGlob("web/templates/*.html")

	dashboardHandler := handler.NewDashboardHandler(refresher, history)

	r.GET("/", dashboardHandler.GetDashboard)
	r.GET("/api/snapshot", dashboardHandler.GetSnapshot)
	r.GET("/api/news", dashboardHandler.GetNews)
	r.GET("/api/stocks", dashboardHandler.GetStocks)
	r.GET("/api/summary", dashboardHandler.GetSummary)
	r.GET("/api/history", dashboardHandler.GetHistory)
	r.GET("/health", dashboardHandler.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	err = r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
