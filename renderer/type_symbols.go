package renderer

import "github.com/etnz/quotes"

// Store is a set of series by symbol.
type Store interface {
	Symbols() []string
	Series(symbol string) (*quotes.Series, bool)
}

// SymbolList is the view of the series held by a Store.
type SymbolList struct {
	Symbols []Symbol
}

// Symbol summarizes one series.
type Symbol struct {
	Name  string
	Days  int
	First string
	Last  string
	Close string // last closing price
}

// NewSymbolList creates the view of every series in s, with prices in currency.
func NewSymbolList(s Store, currency string) *SymbolList {
	l := &SymbolList{}
	for _, name := range s.Symbols() {
		series, ok := s.Series(name)
		if !ok {
			continue
		}
		sym := Symbol{Name: name, Days: series.Len()}
		if series.Len() > 0 {
			sym.First, sym.Last = series.First().String(), series.Last().String()
			if p, ok := series.Close(series.Last()); ok {
				sym.Close = p.Money(currency)
			}
		}
		l.Symbols = append(l.Symbols, sym)
	}
	return l
}
