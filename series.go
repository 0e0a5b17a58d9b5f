package quotes

import (
	"fmt"
	"iter"

	"github.com/etnz/quotes/date"
)

// Series holds the daily bars of one security.
//
// Dates are unique: adding a bar on a date that already has one replaces it.
// The zero value is an empty series ready to use.
type Series struct {
	bars date.History[Bar]
}

// NewSeries returns a new empty series.
func NewSeries() *Series { return new(Series) }

// Add records the bar of a day, replacing any previous one.
func (s *Series) Add(on date.Date, bar Bar) { s.bars.Append(on, bar) }

// Lookup returns the bar recorded on that exact day.
func (s *Series) Lookup(on date.Date) (Bar, bool) { return s.bars.Get(on) }

// Close returns the closing price on that exact day.
func (s *Series) Close(on date.Date) (Price, bool) {
	bar, ok := s.bars.Get(on)
	return bar.End, ok
}

// Len returns the number of days in the series.
func (s *Series) Len() int { return s.bars.Len() }

// Values iterates over days and bars in chronological order.
func (s *Series) Values() iter.Seq2[date.Date, Bar] { return s.bars.Values() }

// First returns the earliest day of the series, or the zero date if it is empty.
func (s *Series) First() date.Date {
	on, _ := s.bars.First()
	return on
}

// Last returns the latest day of the series, or the zero date if it is empty.
func (s *Series) Last() date.Date {
	on, _ := s.bars.Latest()
	return on
}

// Range aggregates all the bars from 'from' to 'to', both included.
//
// The result opens at the opening price of 'from', closes at the closing
// price of 'to', and carries the highest high, the lowest low and the total
// volume of the range.
//
// 'from' must be strictly before 'to', otherwise ErrInvalidRange is returned.
// If no bar falls in the range ErrEmptyRange is returned, and if either
// boundary has no bar ErrMissingBoundary is returned.
func (s *Series) Range(from, to date.Date) (Bar, error) {
	r := date.Range{From: from, To: to}
	if !r.Valid() {
		return Bar{}, fmt.Errorf("%w: %v is not before %v", ErrInvalidRange, from, to)
	}

	var agg Bar
	n := 0
	for _, bar := range s.bars.Between(r) {
		if n == 0 {
			agg.High, agg.Low = bar.High, bar.Low
		}
		agg.High = max(agg.High, bar.High)
		agg.Low = min(agg.Low, bar.Low)
		agg.Volume += bar.Volume
		n++
	}
	if n == 0 {
		return Bar{}, fmt.Errorf("%w: %v", ErrEmptyRange, r)
	}

	open, ok := s.bars.Get(from)
	if !ok {
		return Bar{}, fmt.Errorf("%w: nothing on %v", ErrMissingBoundary, from)
	}
	closing, ok := s.bars.Get(to)
	if !ok {
		return Bar{}, fmt.Errorf("%w: nothing on %v", ErrMissingBoundary, to)
	}
	agg.Start, agg.End = open.Start, closing.End
	return agg, nil
}

// Day aggregates the bars of the day before and of the day itself.
func (s *Series) Day(on date.Date) (Bar, error) { return s.Range(on.Prior(), on) }

// Equal reports whether both series hold the same bars on the same days.
func (s *Series) Equal(x *Series) bool {
	if s.Len() != x.Len() {
		return false
	}
	for on, bar := range s.Values() {
		if got, ok := x.Lookup(on); !ok || got != bar {
			return false
		}
	}
	return true
}
