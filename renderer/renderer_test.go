package renderer

import (
	"errors"
	"strings"
	"testing"

	"github.com/etnz/quotes"
	"github.com/etnz/quotes/date"
	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// parseTables parses a markdown document and returns the text of every table cell, row by row.
func parseTables(t *testing.T, content string) (headings []string, rows [][]string) {
	t.Helper()
	source := []byte(content)
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader(source))

	var row []string
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch n := n.(type) {
		case *ast.Heading:
			if entering {
				headings = append(headings, cellText(n, source))
			}
			return ast.WalkSkipChildren, nil
		case *east.TableCell:
			if entering {
				row = append(row, cellText(n, source))
			}
			return ast.WalkSkipChildren, nil
		case *east.TableHeader, *east.TableRow:
			if !entering {
				rows = append(rows, row)
				row = nil
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking markdown: %v", err)
	}
	return headings, rows
}

// cellText concatenates the text nodes under n.
func cellText(n ast.Node, source []byte) string {
	var b strings.Builder
	ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := c.(*ast.Text); ok && entering {
			b.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

func TestRenderQuote(t *testing.T) {
	bar := quotes.Bar{Start: 90, End: 120, High: 140, Low: 88, Volume: 850}
	q := NewQuote("AAPL", date.New(2020, 1, 1), date.New(2020, 1, 5), bar, "USD")

	want := `# AAPL from 2020-01-01 to 2020-01-05

| Open | High | Low | Close | Change | Volume |
|---:|---:|---:|---:|---:|---:|
| $0.90 | $1.40 | $0.88 | $1.20 | ▲ $0.30 | 850 |

`
	if got := RenderQuote(q); got != want {
		t.Errorf("RenderQuote() got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderQuoteDay(t *testing.T) {
	bar := quotes.Bar{Start: 1000, End: 950, High: 1010, Low: 940, Volume: 12}
	on := date.New(2020, 3, 2)
	headings, rows := parseTables(t, RenderQuote(NewQuote("MSFT", on, on, bar, "USD")))

	if len(headings) != 1 || headings[0] != "MSFT on 2020-03-02" {
		t.Errorf("headings = %q want [\"MSFT on 2020-03-02\"]", headings)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows want 2: %q", len(rows), rows)
	}
	if got := rows[1][4]; got != "▼ -$0.50" {
		t.Errorf("change cell = %q want %q", got, "▼ -$0.50")
	}
	if got := rows[1][5]; got != "12" {
		t.Errorf("volume cell = %q want 12", got)
	}
}

func TestRenderConversion(t *testing.T) {
	r := &quotes.Report{
		RunID: uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		Dir:   "data",
		Outcomes: []quotes.Outcome{
			{File: "AAPL.txt", Symbol: "AAPL", Action: quotes.Converted, Records: 3},
			{File: "BAD.txt", Symbol: "BAD", Action: quotes.Failed, Err: errors.New("line 2: malformed")},
			{File: "MSFT.json", Symbol: "MSFT", Action: quotes.Loaded, Records: 10},
			{File: "README.md", Symbol: "README", Action: quotes.Skipped},
		},
	}
	c := NewConversion(r)
	if c.Converted != 1 || c.Failed != 1 || c.Loaded != 1 || c.Skipped != 1 {
		t.Errorf("NewConversion() counters = %+v", c)
	}

	headings, rows := parseTables(t, RenderConversion(c))
	if len(headings) != 1 || headings[0] != "Conversion of data" {
		t.Errorf("headings = %q want [\"Conversion of data\"]", headings)
	}
	// summary header and row, files header and four rows.
	if len(rows) != 7 {
		t.Fatalf("got %d rows want 7: %q", len(rows), rows)
	}
	if got := strings.Join(rows[1], ","); got != "1,1,1,1" {
		t.Errorf("summary row = %q want 1,1,1,1", got)
	}
	if got := strings.Join(rows[4], ","); got != "BAD.txt,BAD,failed,0,line 2: malformed" {
		t.Errorf("failed row = %q", got)
	}
}

func TestRenderCheck(t *testing.T) {
	r := &quotes.Report{Dir: "data", DryRun: true}
	out := RenderConversion(NewConversion(r))

	headings, rows := parseTables(t, out)
	if len(headings) != 1 || headings[0] != "Check of data" {
		t.Errorf("headings = %q want [\"Check of data\"]", headings)
	}
	if len(rows) != 0 {
		t.Errorf("a dry run without files must not render tables, got %q", rows)
	}
	if !strings.Contains(out, "No files in data.") {
		t.Errorf("RenderConversion() = %q, want a note about the empty folder", out)
	}
}

type store map[string]*quotes.Series

func (s store) Symbols() []string {
	return []string{"AAPL", "EMPTY", "GONE"}
}

func (s store) Series(symbol string) (*quotes.Series, bool) {
	series, ok := s[symbol]
	return series, ok
}

func TestRenderSymbols(t *testing.T) {
	aapl := quotes.NewSeries()
	aapl.Add(date.New(2020, 1, 1), quotes.Bar{Start: 90, End: 100, High: 105, Low: 88, Volume: 100})
	aapl.Add(date.New(2020, 1, 3), quotes.Bar{Start: 101, End: 108, High: 140, Low: 99, Volume: 250})
	s := store{"AAPL": aapl, "EMPTY": quotes.NewSeries()}

	_, rows := parseTables(t, RenderSymbols(NewSymbolList(s, "USD")))
	want := [][]string{
		{"Symbol", "Days", "First", "Last", "Close"},
		{"AAPL", "2", "2020-01-01", "2020-01-03", "$1.08"},
		{"EMPTY", "0", "", "", ""},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows want %d: %q", len(rows), len(want), rows)
	}
	for i := range want {
		if strings.Join(rows[i], ",") != strings.Join(want[i], ",") {
			t.Errorf("row %d = %q want %q", i, rows[i], want[i])
		}
	}
}
