package quotes

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Digits is the number of decimal digits kept by a Price.
const Digits = 2

// Scale is the factor between a decimal price and its Price value.
const Scale = 100

// Price is a fixed-point amount, in hundredths of the quote currency.
type Price int64

// Decimal returns the exact decimal value of the price.
func (p Price) Decimal() decimal.Decimal { return decimal.New(int64(p), -Digits) }

// String returns the price with exactly two decimals, e.g. "10.50".
func (p Price) String() string { return p.Decimal().StringFixed(Digits) }

// Money formats the price as an amount of currency, e.g. "$10.50".
func (p Price) Money(currency string) string {
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, currency).Currency()
	amount := p.Decimal().Shift(int32(cur.Fraction))
	return cur.Formatter().Format(amount.IntPart())
}

// Bar is the summary of the trading over one day, or over a range of days.
type Bar struct {
	Start  Price  `json:"start" msgpack:"start"` // opening price
	End    Price  `json:"end" msgpack:"end"`     // closing price
	High   Price  `json:"high" msgpack:"high"`
	Low    Price  `json:"low" msgpack:"low"`
	Volume uint64 `json:"volume" msgpack:"volume"`
}

// Change returns the difference between the closing and the opening price.
func (b Bar) Change() Price { return b.End - b.Start }

// Increased reports whether the bar closed above its open.
func (b Bar) Increased() bool { return b.Change() > 0 }

// Decreased reports whether the bar closed below its open.
func (b Bar) Decreased() bool { return b.Change() < 0 }

// Changed reports whether the bar closed away from its open.
func (b Bar) Changed() bool { return b.Change() != 0 }
