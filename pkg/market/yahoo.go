package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type YahooChartClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewYahooChartClient() *YahooChartClient {
	return &YahooChartClient{
		baseURL:    "https://query1.finance.yahoo.com/v8/finance/chart",
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *YahooChartClient) Name() string {
	return "YahooChart"
}

// Quote fetches the two-day daily chart for a symbol and derives the
// change percentage from the last two closes.
func (c *YahooChartClient) Quote(ctx context.Context, symbol string) (Quote, error) {
	u := fmt.Sprintf("%s/%s?range=2d&interval=1d", c.baseURL, url.PathEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Quote{Symbol: symbol}, fmt.Errorf("yahoo chart request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; ai-24h-radar/1.0)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Quote{Symbol: symbol}, fmt.Errorf("yahoo chart fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Quote{Symbol: symbol}, fmt.Errorf("yahoo chart status %d for %s", resp.StatusCode, symbol)
	}

	var raw chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return Quote{Symbol: symbol}, fmt.Errorf("yahoo chart decode: %w", err)
	}

	if raw.Chart.Error != nil {
		return Quote{Symbol: symbol}, fmt.Errorf("yahoo chart error for %s: %s", symbol, raw.Chart.Error.Description)
	}

	if len(raw.Chart.Result) == 0 || len(raw.Chart.Result[0].Indicators.Quote) == 0 {
		return Quote{Symbol: symbol}, fmt.Errorf("yahoo chart: empty result for %s", symbol)
	}

	result := raw.Chart.Result[0]

	closes := make([]float64, 0, 2)
	for _, v := range result.Indicators.Quote[0].Close {
		if v != nil {
			closes = append(closes, *v)
		}
	}

	var latest, previous float64
	switch {
	case len(closes) >= 2:
		previous = closes[len(closes)-2]
		latest = closes[len(closes)-1]
	case len(closes) == 1 && result.Meta.ChartPreviousClose > 0:
		previous = result.Meta.ChartPreviousClose
		latest = closes[0]
	default:
		return Quote{Symbol: symbol}, fmt.Errorf("yahoo chart: no closes for %s", symbol)
	}

	currency := result.Meta.Currency
	if currency == "" {
		currency = "USD"
	}

	asOf := time.Now()
	if result.Meta.RegularMarketTime > 0 {
		asOf = time.Unix(result.Meta.RegularMarketTime, 0)
	}

	return Quote{
		Symbol:        symbol,
		Price:         latest,
		PreviousClose: previous,
		Change:        changeAmount(latest, previous),
		ChangePct:     ChangePercent(latest, previous),
		Currency:      currency,
		AsOf:          asOf,
	}, nil
}

type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *chartError   `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Meta struct {
		Currency           string  `json:"currency"`
		Symbol             string  `json:"symbol"`
		RegularMarketTime  int64   `json:"regularMarketTime"`
		ChartPreviousClose float64 `json:"chartPreviousClose"`
	} `json:"meta"`
	Indicators struct {
		Quote []struct {
			Close []*float64 `json:"close"`
		} `json:"quote"`
	} `json:"indicators"`
}

type chartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
