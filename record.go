package quotes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/etnz/quotes/date"
	"github.com/shopspring/decimal"
)

// FieldSeparator separates the fields of a record line.
const FieldSeparator = ","

// FieldCount is the number of fields of a record line: DATE,OPEN,HIGH,LOW,CLOSE,VOLUME,ADJCLOSE.
const FieldCount = 7

// headerField is the first field of the optional header line.
const headerField = "date"

var errNotFinite = errors.New("not a finite number")
var errOverflow = errors.New("out of range")

// Conversion selects how decimal prices are turned into fixed-point Price values.
type Conversion int

const (
	// Truncate multiplies the float64 value by Scale and truncates toward zero.
	// It reproduces historical documents bit for bit, including its rounding
	// drift: "0.29" becomes 28.
	Truncate Conversion = iota
	// Exact shifts the decimal text by Digits and truncates toward zero without
	// any binary floating-point step: "0.29" becomes 29.
	Exact
)

func (c Conversion) String() string {
	switch c {
	case Truncate:
		return "truncate"
	case Exact:
		return "exact"
	default:
		panic(fmt.Sprintf("unknown conversion %d", c))
	}
}

// ParseConversion parses the name of a Conversion.
func ParseConversion(s string) (Conversion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "truncate", "":
		return Truncate, nil
	case "exact":
		return Exact, nil
	default:
		return Truncate, fmt.Errorf("unknown conversion %q want truncate or exact", s)
	}
}

// price converts the decimal text into a Price.
func (c Conversion) price(text string) (Price, error) {
	switch c {
	case Exact:
		d, err := decimal.NewFromString(text)
		if err != nil {
			return 0, err
		}
		if d.IsZero() {
			return 0, nil
		}
		// bound the magnitude before any rescaling: exponents reach 2^31.
		switch mag := d.NumDigits() + int(d.Exponent()); {
		case mag > 19:
			return 0, errOverflow
		case mag < -Digits:
			return 0, nil
		}
		d = d.Shift(Digits).Truncate(0)
		if d.GreaterThan(decimal.NewFromInt(math.MaxInt64)) || d.LessThan(decimal.NewFromInt(math.MinInt64)) {
			return 0, errOverflow
		}
		return Price(d.IntPart()), nil
	default:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, errNotFinite
		}
		scaled := f * Scale
		if scaled >= math.MaxInt64 || scaled <= math.MinInt64 {
			return 0, errOverflow
		}
		// conversion truncates toward zero.
		return Price(scaled), nil
	}
}

// ParseRecord parses a single DATE,OPEN,HIGH,LOW,CLOSE,VOLUME,ADJCLOSE line.
//
// The ADJCLOSE field must be present but is ignored.
func ParseRecord(line string, c Conversion) (date.Date, Bar, error) {
	fields := strings.Split(line, FieldSeparator)
	if len(fields) != FieldCount {
		return date.Date{}, Bar{}, &MalformedLineError{Line: line, Fields: len(fields)}
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	on, err := date.Parse(fields[0])
	if err != nil {
		return date.Date{}, Bar{}, &ParseError{Field: "date", Kind: "date", Text: fields[0], Err: err}
	}

	var bar Bar
	prices := []struct {
		name string
		dst  *Price
	}{
		{"open", &bar.Start},
		{"high", &bar.High},
		{"low", &bar.Low},
		{"close", &bar.End},
	}
	for i, p := range prices {
		text := fields[1+i]
		v, err := c.price(text)
		if err != nil {
			return date.Date{}, Bar{}, &ParseError{Field: p.name, Kind: "decimal", Text: text, Err: err}
		}
		*p.dst = v
	}

	bar.Volume, err = strconv.ParseUint(fields[5], 10, 64)
	if err != nil {
		return date.Date{}, Bar{}, &ParseError{Field: "volume", Kind: "unsigned integer", Text: fields[5], Err: err}
	}
	return on, bar, nil
}

// isHeader reports whether the line is a column header like "Date,Open,High,...".
func isHeader(line string) bool {
	first, _, _ := strings.Cut(line, FieldSeparator)
	return strings.EqualFold(strings.TrimSpace(first), headerField)
}

// ParseRecords reads every record of r into a new Series.
//
// Blank lines are ignored, and so is a column header on the first line. The
// first invalid line aborts the parsing: the partial series is never returned.
func ParseRecords(r io.Reader, c Conversion) (*Series, error) {
	s := NewSeries()
	scanner := bufio.NewScanner(r)
	i, first := 0, true
	for scanner.Scan() {
		i++
		txt := scanner.Text()
		// Start simply ignoring empty lines.
		if strings.TrimSpace(txt) == "" {
			continue
		}
		if first {
			first = false
			if isHeader(txt) {
				continue
			}
		}
		on, bar, err := ParseRecord(txt, c)
		if err != nil {
			return nil, &LineError{Line: i, Err: err}
		}
		s.Add(on, bar)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read error after line %d: %w", i, err)
	}
	return s, nil
}
