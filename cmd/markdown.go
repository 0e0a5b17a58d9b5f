package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
)

var plain = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal")

// renderMarkdown renders md for the terminal, unless -plain is set.
//
// On any rendering error the raw markdown is returned.
func renderMarkdown(md string) string {
	if *plain {
		return md
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func printMarkdown(md string) { fmt.Print(renderMarkdown(md)) }
