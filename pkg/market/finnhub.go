package market

import (
	"context"
	"fmt"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnhubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubClient{client: client}
}

func (c *FinnhubClient) Name() string {
	return "Finnhub"
}

// Quote maps Finnhub's current price and previous close onto the same
// two-point change derivation the chart client uses.
func (c *FinnhubClient) Quote(ctx context.Context, symbol string) (Quote, error) {
	res, _, err := c.client.Quote(ctx).Symbol(symbol).Execute()
	if err != nil {
		return Quote{Symbol: symbol}, fmt.Errorf("finnhub quote: %w", err)
	}

	latest := float64(res.GetC())
	previous := float64(res.GetPc())

	if latest == 0 && previous == 0 {
		return Quote{Symbol: symbol}, fmt.Errorf("finnhub quote: empty quote for %s", symbol)
	}

	asOf := time.Now()
	if res.GetT() > 0 {
		asOf = time.Unix(res.GetT(), 0)
	}

	return Quote{
		Symbol:        symbol,
		Price:         latest,
		PreviousClose: previous,
		Change:        changeAmount(latest, previous),
		ChangePct:     ChangePercent(latest, previous),
		Currency:      "USD",
		AsOf:          asOf,
	}, nil
}
