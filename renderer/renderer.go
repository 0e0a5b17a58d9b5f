// Package renderer renders quotes and pipeline reports as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// RenderQuote renders a Quote to a markdown string.
func RenderQuote(q *Quote) string {
	partials := map[string]string{
		"quote_title": "quote_title.md",
		"quote_table": "quote_table.md",
	}
	return renderTemplate("quote", "quote.md", partials, q)
}

// RenderConversion renders a Conversion report to a markdown string.
func RenderConversion(c *Conversion) string {
	partials := map[string]string{
		"conversion_title":   "conversion_title.md",
		"conversion_summary": "conversion_summary.md",
		"conversion_files":   "conversion_files.md",
	}
	// a dry run has nothing to summarize but the files.
	if c.DryRun {
		partials["conversion_summary"] = ""
	}
	return renderTemplate("conversion", "conversion.md", partials, c)
}

// RenderSymbols renders the list of resident series to a markdown string.
func RenderSymbols(l *SymbolList) string {
	return renderTemplate("symbols", "symbols.md", nil, l)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, "templates/"+file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
