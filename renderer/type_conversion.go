package renderer

import (
	"strings"

	"github.com/etnz/quotes"
)

// Conversion is the view of a pipeline Report.
type Conversion struct {
	RunID     string
	Dir       string
	DryRun    bool
	Converted int
	Loaded    int
	Skipped   int
	Failed    int
	Files     []ConversionFile
}

// ConversionFile is one row of the conversion report.
type ConversionFile struct {
	File    string
	Symbol  string
	Action  string
	Records int
	Error   string
}

// NewConversion creates the view of a pipeline report.
func NewConversion(r *quotes.Report) *Conversion {
	c := &Conversion{
		RunID:     r.RunID.String(),
		Dir:       r.Dir,
		DryRun:    r.DryRun,
		Converted: r.Count(quotes.Converted),
		Loaded:    r.Count(quotes.Loaded),
		Skipped:   r.Count(quotes.Skipped),
		Failed:    r.Count(quotes.Failed),
	}
	for _, o := range r.Outcomes {
		f := ConversionFile{
			File:    o.File,
			Symbol:  o.Symbol,
			Action:  o.Action.String(),
			Records: o.Records,
		}
		if o.Err != nil {
			f.Error = escapeCell(o.Err.Error())
		}
		c.Files = append(c.Files, f)
	}
	return c
}

// escapeCell makes text safe inside a markdown table cell.
func escapeCell(text string) string {
	text = strings.ReplaceAll(text, "|", `\|`)
	return strings.ReplaceAll(text, "\n", " ")
}
