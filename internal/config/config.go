package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRefreshInterval = 10 * time.Minute
	minRefreshInterval     = time.Minute
)

// Watchlist is the fixed set of topic queries and ticker symbols the
// dashboard tracks. Order is display order.
type Watchlist struct {
	Topics  []string `yaml:"topics"`
	Symbols []string `yaml:"symbols"`
}

func DefaultWatchlist() Watchlist {
	return Watchlist{
		Topics: []string{
			"artificial intelligence",
			"OpenAI",
			"AI chips",
			"machine learning",
		},
		Symbols: []string{"NVDA", "MSFT", "GOOGL", "META", "TSLA", "AMD"},
	}
}

// LoadWatchlist reads a YAML watchlist file. An empty path returns the
// defaults; a file with a missing section keeps the default for it.
func LoadWatchlist(path string) (Watchlist, error) {
	wl := DefaultWatchlist()
	if path == "" {
		return wl, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return wl, fmt.Errorf("read watchlist: %w", err)
	}

	var loaded Watchlist
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return wl, fmt.Errorf("parse watchlist: %w", err)
	}

	if len(loaded.Topics) > 0 {
		wl.Topics = loaded.Topics
	}
	if len(loaded.Symbols) > 0 {
		wl.Symbols = loaded.Symbols
	}
	return wl, nil
}

// RefreshInterval reads REFRESH_INTERVAL as a Go duration. Unset or
// unparsable values fall back to the default, values under a minute
// are clamped up to a minute.
func RefreshInterval() time.Duration {
	raw := os.Getenv("REFRESH_INTERVAL")
	if raw == "" {
		return DefaultRefreshInterval
	}

	interval, err := time.ParseDuration(raw)
	if err != nil {
		return DefaultRefreshInterval
	}

	if interval < minRefreshInterval {
		return minRefreshInterval
	}
	return interval
}
