package news

import (
	"context"
	"time"
)

type Headline struct {
	Title       string
	URL         string
	Publisher   string
	Topic       string
	PublishedAt time.Time
}

type Client interface {
	Fetch(ctx context.Context, topic string) ([]Headline, error)
	Name() string
}
