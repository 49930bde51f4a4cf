package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/Shirley-c/ai-24h-radar/internal/model"
)

const headlinesPerTopic = 3

// ChangePct renders a signed two-decimal percentage: "+3.27%",
// "-0.84%", "0.00%".
func ChangePct(pct float64) string {
	s := strconv.FormatFloat(pct, 'f', 2, 64)
	if pct > 0 {
		return "+" + s + "%"
	}
	return s + "%"
}

// Price renders a currency display string, e.g. "$187.42". Unknown
// currency codes fall back to USD.
func Price(amount float64, currency string) string {
	if currency == "" || money.GetCurrency(currency) == nil {
		currency = money.USD
	}

	units := decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return money.New(units, currency).Display()
}

// RelativeAge renders an age within the recency window: "just now",
// "12m ago", "3h ago".
func RelativeAge(t, now time.Time) string {
	d := now.Sub(t)
	if d < time.Minute {
		return "just now"
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	}
	return fmt.Sprintf("%dh ago", int(d.Hours()))
}

// BuildSummary renders the copyable plain-text summary document: a
// dated header, a MARKET section in watchlist order, a NEWS section
// grouped by topic, and an optional AI BRIEF paragraph.
func BuildSummary(fetchedAt time.Time, quotes []model.Quote, headlines []model.Headline, brief string) string {
	var sb strings.Builder

	sb.WriteString("AI 24H RADAR - ")
	sb.WriteString(fetchedAt.UTC().Format("2006-01-02 15:04 MST"))
	sb.WriteString("\n")

	sb.WriteString("\nMARKET\n")
	if len(quotes) == 0 {
		sb.WriteString("no quotes available\n")
	}
	for _, q := range quotes {
		if quoteUnavailable(q) {
			sb.WriteString(fmt.Sprintf("%-6s n/a\n", q.Symbol))
			continue
		}
		sb.WriteString(fmt.Sprintf("%-6s %-10s %s\n", q.Symbol, Price(q.Price, q.Currency), ChangePct(q.ChangePct)))
	}

	sb.WriteString("\nNEWS\n")
	if len(headlines) == 0 {
		sb.WriteString("no recent headlines\n")
	}
	for _, topic := range topicOrder(headlines) {
		sb.WriteString(fmt.Sprintf("# %s\n", topic))

		count := 0
		for _, h := range headlines {
			if h.Topic != topic || count == headlinesPerTopic {
				continue
			}
			count++

			sb.WriteString("- ")
			sb.WriteString(h.Title)
			if h.Publisher != "" {
				sb.WriteString(fmt.Sprintf(" (%s, %s)", h.Publisher, RelativeAge(h.PublishedAt, fetchedAt)))
			} else {
				sb.WriteString(fmt.Sprintf(" (%s)", RelativeAge(h.PublishedAt, fetchedAt)))
			}
			sb.WriteString("\n")
		}
	}

	if brief != "" {
		sb.WriteString("\nAI BRIEF\n")
		sb.WriteString(brief)
		sb.WriteString("\n")
	}

	return sb.String()
}

func quoteUnavailable(q model.Quote) bool {
	return q.Price == 0 && q.PreviousClose == 0
}

func topicOrder(headlines []model.Headline) []string {
	seen := make(map[string]struct{})

	var topics []string
	for _, h := range headlines {
		if _, ok := seen[h.Topic]; ok {
			continue
		}
		seen[h.Topic] = struct{}{}
		topics = append(topics, h.Topic)
	}
	return topics
}
