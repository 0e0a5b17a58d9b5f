package renderer

import (
	"fmt"

	"github.com/etnz/quotes"
	"github.com/etnz/quotes/date"
)

// Quote is the view of a Bar over a period of days.
type Quote struct {
	Symbol string
	From   date.Date // equal to To for a single day
	To     date.Date
	Open   string
	High   string
	Low    string
	Close  string
	Change string
	Trend  string
	Volume uint64
}

// NewQuote creates the view of bar between from and to, with prices in currency.
func NewQuote(symbol string, from, to date.Date, bar quotes.Bar, currency string) *Quote {
	q := &Quote{
		Symbol: symbol,
		From:   from,
		To:     to,
		Open:   bar.Start.Money(currency),
		High:   bar.High.Money(currency),
		Low:    bar.Low.Money(currency),
		Close:  bar.End.Money(currency),
		Change: bar.Change().Money(currency),
		Volume: bar.Volume,
	}
	switch {
	case bar.Increased():
		q.Trend = "▲"
	case bar.Decreased():
		q.Trend = "▼"
	default:
		q.Trend = "="
	}
	return q
}

// Period describes the days covered by the quote.
func (q *Quote) Period() string {
	if q.From == q.To {
		return fmt.Sprintf("on %s", q.To)
	}
	return fmt.Sprintf("from %s to %s", q.From, q.To)
}
