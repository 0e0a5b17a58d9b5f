package cmd

import (
	"errors"
	"fmt"

	"github.com/etnz/quotes"
	"github.com/etnz/quotes/date"
	"github.com/etnz/quotes/renderer"
)

// ErrUnknownSymbol is returned when no series is loaded for a symbol.
var ErrUnknownSymbol = errors.New("unknown symbol")

func series(store renderer.Store, symbol string) (*quotes.Series, error) {
	s, ok := store.Series(symbol)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSymbol, symbol)
	}
	return s, nil
}

// quoteOn returns the quote of symbol on a single day.
func quoteOn(store renderer.Store, symbol string, on date.Date, currency string) (*renderer.Quote, error) {
	s, err := series(store, symbol)
	if err != nil {
		return nil, err
	}
	bar, ok := s.Lookup(on)
	if !ok {
		return nil, fmt.Errorf("%s on %s: %w", symbol, on, quotes.ErrNoData)
	}
	return renderer.NewQuote(symbol, on, on, bar, currency), nil
}

// quoteRange returns the quote of symbol aggregated from 'from' to 'to', both included.
func quoteRange(store renderer.Store, symbol string, from, to date.Date, currency string) (*renderer.Quote, error) {
	s, err := series(store, symbol)
	if err != nil {
		return nil, err
	}
	bar, err := s.Range(from, to)
	if err != nil {
		return nil, fmt.Errorf("%s from %s to %s: %w", symbol, from, to, err)
	}
	return renderer.NewQuote(symbol, from, to, bar, currency), nil
}

// quoteDay returns the quote of symbol from the prior day to 'on'.
func quoteDay(store renderer.Store, symbol string, on date.Date, currency string) (*renderer.Quote, error) {
	s, err := series(store, symbol)
	if err != nil {
		return nil, err
	}
	bar, err := s.Day(on)
	if err != nil {
		return nil, fmt.Errorf("%s on %s: %w", symbol, on, err)
	}
	return renderer.NewQuote(symbol, on.Prior(), on, bar, currency), nil
}

// parseDates parses every argument as a date.
func parseDates(args ...string) ([]date.Date, error) {
	days := make([]date.Date, len(args))
	for i, a := range args {
		d, err := date.Parse(a)
		if err != nil {
			return nil, err
		}
		days[i] = d
	}
	return days, nil
}
