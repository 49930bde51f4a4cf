package market

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Quote struct {
	Symbol        string
	Price         float64
	PreviousClose float64
	Change        float64
	ChangePct     float64
	Currency      string
	AsOf          time.Time
}

type QuoteClient interface {
	Quote(ctx context.Context, symbol string) (Quote, error)
	Name() string
}

// ChangePercent derives (latest - previous) / previous * 100 from the
// two most recent closes, rounded to 2 places. A previous close of 0
// yields 0 rather than a division.
func ChangePercent(latest, previous float64) float64 {
	if previous == 0 {
		return 0
	}

	l := decimal.NewFromFloat(latest)
	p := decimal.NewFromFloat(previous)

	pct, _ := l.Sub(p).Div(p).Mul(decimal.NewFromInt(100)).Round(2).Float64()
	return pct
}

func changeAmount(latest, previous float64) float64 {
	change, _ := decimal.NewFromFloat(latest).Sub(decimal.NewFromFloat(previous)).Round(4).Float64()
	return change
}
