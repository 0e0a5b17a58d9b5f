package cmd

import (
	"strings"
	"testing"

	"github.com/etnz/quotes"
	"github.com/etnz/quotes/date"
)

type memStore map[string]*quotes.Series

func (m memStore) Symbols() []string {
	var symbols []string
	for s := range m {
		symbols = append(symbols, s)
	}
	return symbols
}

func (m memStore) Series(symbol string) (*quotes.Series, bool) {
	s, ok := m[symbol]
	return s, ok
}

func testStore() memStore {
	s := quotes.NewSeries()
	s.Add(date.New(2020, 2, 28), quotes.Bar{Start: 90, End: 100, High: 105, Low: 88, Volume: 100})
	s.Add(date.New(2020, 2, 29), quotes.Bar{Start: 101, End: 108, High: 140, Low: 99, Volume: 250})
	s.Add(date.New(2020, 3, 1), quotes.Bar{Start: 110, End: 95, High: 130, Low: 95, Volume: 500})
	return memStore{"AAPL": s}
}

func runShell(t *testing.T, input string) string {
	t.Helper()
	var out strings.Builder
	sh := &Shell{Store: testStore(), Currency: "USD"}
	if err := sh.Run(strings.NewReader(input), &out); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	return out.String()
}

func TestShellQuit(t *testing.T) {
	out := runShell(t, "quit\nget AAPL 2020-02-28\n")
	if out != "" {
		t.Errorf("commands after quit must not run, got %q", out)
	}
}

func TestShellIgnoresUnknownCommands(t *testing.T) {
	out := runShell(t, "\n   \nhello world\nsell AAPL\n")
	if out != "" {
		t.Errorf("unknown commands must be ignored, got %q", out)
	}
}

func TestShellQueries(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"get AAPL 2020-02-29", "| $1.01 | $1.40 | $0.99 | $1.08 | ▲ $0.07 | 250 |"},
		{"range AAPL 2020-02-28 2020-03-01", "| $0.90 | $1.40 | $0.88 | $0.95 | ▲ $0.05 | 850 |"},
		{"day AAPL 2020-03-01", "# AAPL from 2020-02-29 to 2020-03-01"},
		{"list", "| AAPL | 3 | 2020-02-28 | 2020-03-01 | $0.95 |"},
		{"help", "- range <symbol> <from> <to>"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out := runShell(t, tt.input+"\n")
			if !strings.Contains(out, tt.want) {
				t.Errorf("%q printed:\n%s\nwant it to contain %q", tt.input, out, tt.want)
			}
		})
	}
}

func TestShellErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"get MSFT 2020-02-28", "unknown symbol"},
		{"get AAPL 2020-02-30", "error: "},
		{"get AAPL", "usage: get <symbol> <date>"},
		{"range AAPL 2020-03-01 2020-02-28", quotes.ErrInvalidRange.Error()},
		{"range AAPL 2020-02-01 2020-02-10", quotes.ErrNoData.Error()},
		{"day AAPL 2020-02-28", quotes.ErrMissingBoundary.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out := runShell(t, tt.input+"\nquit\n")
			if !strings.HasPrefix(out, "error: ") || !strings.Contains(out, tt.want) {
				t.Errorf("%q printed %q want an error containing %q", tt.input, out, tt.want)
			}
		})
	}
}

func TestShellPromptAndRender(t *testing.T) {
	var out strings.Builder
	sh := &Shell{
		Store:    testStore(),
		Currency: "USD",
		Prompt:   "> ",
		Render:   strings.ToUpper,
	}
	if err := sh.Run(strings.NewReader("help\n"), &out); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	got := out.String()
	if !strings.HasPrefix(got, "> COMMANDS:") || !strings.HasSuffix(got, "> ") {
		t.Errorf("Run() printed %q want a prompt before each line and rendered answers", got)
	}
}
