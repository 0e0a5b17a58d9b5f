package quotes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultDir is the data folder used when none is configured.
const DefaultDir = "data"

// DefaultTextExt is the extension of legacy text files.
const DefaultTextExt = ".txt"

// Config holds the settings of a Pipeline.
type Config struct {
	Dir        string     // data folder
	TextExt    string     // extension of legacy text files, including the dot
	Format     Format     // document format
	Conversion Conversion // decimal to fixed-point conversion of legacy prices
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Dir:        DefaultDir,
		TextExt:    DefaultTextExt,
		Format:     JSON,
		Conversion: Truncate,
	}
}

// Action is what a pipeline did with a file.
type Action int

const (
	Skipped   Action = iota // neither a text file nor a document
	Converted               // text file migrated into a document, source removed
	Checked                 // text file parsed successfully, nothing written (dry run)
	Loaded                  // document read in memory
	Failed                  // see Outcome.Err
)

func (a Action) String() string {
	switch a {
	case Skipped:
		return "skipped"
	case Converted:
		return "converted"
	case Checked:
		return "checked"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		panic(fmt.Sprintf("unknown action %d", a))
	}
}

// Outcome is the result of processing one file of the data folder.
type Outcome struct {
	File    string // file name, relative to the data folder
	Symbol  string // file name without extension
	Action  Action
	Records int   // number of days read
	Err     error // non nil iff Action is Failed
}

// MarshalJSON writes the outcome with a stable field order, omitting empty fields.
func (o Outcome) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("file", o.File)
	w.Append("symbol", o.Symbol)
	w.Append("action", o.Action.String())
	w.Optional("records", o.Records)
	if o.Err != nil {
		w.Append("error", o.Err.Error())
	}
	return w.MarshalJSON()
}

// Report lists the outcomes of a full scan of the data folder.
type Report struct {
	RunID    uuid.UUID `json:"run_id"`
	Dir      string    `json:"dir"`
	DryRun   bool      `json:"dry_run,omitempty"`
	Outcomes []Outcome `json:"outcomes"`
}

// Count returns the number of files that ended with that action.
func (r *Report) Count(a Action) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Action == a {
			n++
		}
	}
	return n
}

// Failed returns the outcomes of files that could not be processed.
func (r *Report) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Action == Failed {
			failed = append(failed, o)
		}
	}
	return failed
}

// Err joins the errors of all failed files, or returns nil.
func (r *Report) Err() error {
	var errs []error
	for _, o := range r.Failed() {
		errs = append(errs, fmt.Errorf("%s: %w", o.File, o.Err))
	}
	return errors.Join(errs...)
}

// Pipeline migrates the legacy text files of a data folder into documents, and
// keeps every series of the folder in memory.
type Pipeline struct {
	cfg      Config
	codec    Codec
	log      zerolog.Logger
	resident map[string]*Series
}

// NewPipeline returns a Pipeline over the configured data folder.
func NewPipeline(cfg Config, logger zerolog.Logger) (*Pipeline, error) {
	if cfg.Dir == "" {
		cfg.Dir = DefaultDir
	}
	if cfg.TextExt == "" {
		cfg.TextExt = DefaultTextExt
	}
	codec, err := NewCodec(cfg.Format)
	if err != nil {
		return nil, err
	}
	if cfg.TextExt == codec.Ext() {
		return nil, fmt.Errorf("text extension %q must differ from document extension", cfg.TextExt)
	}
	return &Pipeline{
		cfg:      cfg,
		codec:    codec,
		log:      logger,
		resident: make(map[string]*Series),
	}, nil
}

// Config returns the pipeline configuration.
func (p *Pipeline) Config() Config { return p.cfg }

// Codec returns the codec used for documents.
func (p *Pipeline) Codec() Codec { return p.codec }

// Path returns the document file name of a symbol.
func (p *Pipeline) Path(symbol string) string {
	return filepath.Join(p.cfg.Dir, symbol+p.codec.Ext())
}

// Series returns the in-memory series of a symbol.
func (p *Pipeline) Series(symbol string) (*Series, bool) {
	s, ok := p.resident[symbol]
	return s, ok
}

// Symbols returns the symbols held in memory, sorted.
func (p *Pipeline) Symbols() []string {
	symbols := make([]string, 0, len(p.resident))
	for symbol := range p.resident {
		symbols = append(symbols, symbol)
	}
	slices.Sort(symbols)
	return symbols
}

// Run scans the data folder once, creating it if needed.
//
// Each legacy text file is converted into a document, all or nothing: the
// document is only written once every line has been parsed, and the text file
// is only removed once the document has been written and read back. Documents
// are loaded in memory. Other files are skipped.
//
// A text file whose document already exists is reported as Failed with
// ErrDocumentExists, and both files are left untouched.
//
// A file that cannot be processed is reported as Failed and does not stop the
// scan. The returned error is only about the folder itself.
func (p *Pipeline) Run() (*Report, error) { return p.scan(false) }

// Check is like Run but only parses text files: nothing is written or removed.
func (p *Pipeline) Check() (*Report, error) { return p.scan(true) }

func (p *Pipeline) scan(dryRun bool) (*Report, error) {
	dir := p.cfg.Dir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &IOError{Op: "create", Path: dir, Err: err}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &IOError{Op: "list", Path: dir, Err: err}
	}

	report := &Report{RunID: uuid.New(), Dir: dir, DryRun: dryRun}
	log := p.log.With().Str("run", report.RunID.String()).Logger()
	log.Debug().Str("dir", dir).Bool("dry_run", dryRun).Int("entries", len(entries)).Msg("scan-folder")

	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		name := e.Name()
		ext := filepath.Ext(name)
		o := Outcome{File: name, Symbol: strings.TrimSuffix(name, ext)}
		path := filepath.Join(dir, name)

		switch {
		case o.Symbol == "":
			o.Action = Skipped
		case ext == p.cfg.TextExt:
			o = p.convert(o, path, dryRun)
		case ext == p.codec.Ext():
			o = p.load(o, path)
		default:
			o.Action = Skipped
		}

		switch o.Action {
		case Failed:
			log.Error().Err(o.Err).Str("name", name).Msg("process-file")
		case Skipped:
			log.Debug().Str("name", name).Msg("skip-file")
		default:
			log.Info().Str("name", name).Stringer("action", o.Action).Int("records", o.Records).Msg("process-file")
		}
		report.Outcomes = append(report.Outcomes, o)
	}
	return report, nil
}

// load reads a document into memory.
func (p *Pipeline) load(o Outcome, path string) Outcome {
	s, err := p.decodeFile(path)
	if err != nil {
		o.Action, o.Err = Failed, err
		return o
	}
	p.resident[o.Symbol] = s
	o.Action, o.Records = Loaded, s.Len()
	return o
}

// convert migrates a legacy text file into a document.
func (p *Pipeline) convert(o Outcome, path string, dryRun bool) Outcome {
	f, err := os.Open(path)
	if err != nil {
		o.Action, o.Err = Failed, &IOError{Op: "open", Path: path, Err: err}
		return o
	}
	s, err := ParseRecords(f, p.cfg.Conversion)
	f.Close()
	if err != nil {
		o.Action, o.Err = Failed, err
		return o
	}
	o.Records = s.Len()

	// never merge into nor replace a document: both files stay for the user to reconcile.
	target := p.Path(o.Symbol)
	if info, err := os.Lstat(target); err == nil && !info.IsDir() {
		o.Action, o.Err = Failed, fmt.Errorf("%w: %s", ErrDocumentExists, target)
		return o
	}
	if dryRun {
		o.Action = Checked
		return o
	}

	if err := p.writeFile(target, s); err != nil {
		o.Action, o.Err = Failed, err
		return o
	}
	p.log.Debug().Str("name", target).Msg("create-document-file")
	// The document exists from now on, so the series is resident even if the source cannot be removed.
	p.resident[o.Symbol] = s

	if err := os.Remove(path); err != nil {
		o.Action, o.Err = Failed, &IOError{Op: "remove", Path: path, Err: err}
		return o
	}
	p.log.Debug().Str("name", path).Msg("delete-source-file")
	o.Action = Converted
	return o
}

func (p *Pipeline) decodeFile(path string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()
	return p.codec.Decode(f)
}

// writeFile atomically replaces target with the document of s.
//
// The document is written to a temporary file in the same folder, synced, and
// read back before being renamed to target.
func (p *Pipeline) writeFile(target string, s *Series) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+"-*.tmp")
	if err != nil {
		return &IOError{Op: "create", Path: target, Err: err}
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if err := p.codec.Encode(tmp, s); err != nil {
		return &IOError{Op: "write", Path: tmpName, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		return &IOError{Op: "sync", Path: tmpName, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &IOError{Op: "close", Path: tmpName, Err: err}
	}

	written, err := p.decodeFile(tmpName)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrVerify, tmpName, err)
	}
	if !written.Equal(s) {
		return fmt.Errorf("%w: %s does not hold the %d converted days", ErrVerify, tmpName, s.Len())
	}

	if err := os.Rename(tmpName, target); err != nil {
		return &IOError{Op: "rename", Path: tmpName, Err: err}
	}
	return nil
}
