package news

import (
	"sort"
	"time"
)

// RecencyWindow is the cutoff for discarding stale items by published
// timestamp.
const RecencyWindow = 24 * time.Hour

// FilterRecent drops items older than the window or without a usable
// published timestamp. Timestamps ahead of the wall clock are capped
// at now so relative ages never go negative.
func FilterRecent(items []Headline, now time.Time, window time.Duration) []Headline {
	cutoff := now.Add(-window)

	recent := make([]Headline, 0, len(items))
	for _, h := range items {
		if h.PublishedAt.IsZero() || h.PublishedAt.Before(cutoff) {
			continue
		}
		if h.PublishedAt.After(now) {
			h.PublishedAt = now
		}
		recent = append(recent, h)
	}
	return recent
}

// Dedupe removes items sharing a URL. The first occurrence wins, so
// an item surfacing under several topic queries keeps its first topic.
func Dedupe(items []Headline) []Headline {
	seen := make(map[string]struct{}, len(items))

	out := make([]Headline, 0, len(items))
	for _, h := range items {
		if _, ok := seen[h.URL]; ok {
			continue
		}
		seen[h.URL] = struct{}{}
		out = append(out, h)
	}
	return out
}

func SortNewestFirst(items []Headline) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})
}
