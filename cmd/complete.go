package cmd

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/etnz/quotes/config"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete runs the shell completion if the program was invoked for it, and
// exits. Otherwise it returns immediately.
//
// Install it with: COMP_INSTALL=1 quotes
func Complete(name string) {
	symbols := complete.PredictFunc(func(prefix string) []string {
		cfg, err := config.Load(config.DefaultFile)
		if err != nil {
			return nil
		}
		return symbolsIn(cfg.Dir)
	})

	cmd := &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":     predict.Files("*.yaml"),
			"dir":        predict.Dirs("*"),
			"format":     predict.Set{"json", "msgpack"},
			"conversion": predict.Set{"truncate", "exact"},
			"currency":   predict.Something,
			"v":          predict.Nothing,
			"plain":      predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"convert": {Flags: map[string]complete.Predictor{"check": predict.Nothing, "json": predict.Nothing}},
			"export":  {Flags: map[string]complete.Predictor{"db": predict.Files("*.db")}},
			"get":     {Args: symbols},
			"range":   {Args: symbols},
			"day":     {Args: symbols},
			"inspect": {Args: symbols},
			"shell":   {},
			"help":    {},
			"flags":   {},
		},
	}
	cmd.Complete(name)
}

// symbolsIn returns the symbols of the text files and documents in dir, sorted and unique.
func symbolsIn(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var symbols []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		name := e.Name()
		switch ext := filepath.Ext(name); ext {
		case ".txt", ".json", ".msgpack":
			if s := strings.TrimSuffix(name, ext); s != "" {
				symbols = append(symbols, s)
			}
		}
	}
	slices.Sort(symbols)
	return slices.Compact(symbols)
}
