package quotes

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/quotes/date"
)

// Format names a document format.
type Format string

const (
	JSON    Format = "json"
	MsgPack Format = "msgpack"
)

// ParseFormat parses the name of a document Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return JSON, nil
	case JSON, MsgPack:
		return f, nil
	default:
		return JSON, fmt.Errorf("unknown document format %q want json or msgpack", s)
	}
}

// Codec encodes and decodes a Series as a structured document.
type Codec interface {
	// Ext is the file name extension of documents, including the dot.
	Ext() string
	Encode(w io.Writer, s *Series) error
	Decode(r io.Reader) (*Series, error)
}

// NewCodec returns the Codec of a document format.
func NewCodec(f Format) (Codec, error) {
	switch f {
	case JSON, "":
		return jsonCodec{}, nil
	case MsgPack:
		return msgpackCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown document format %q", f)
	}
}

// document is the object model shared by all formats.
//
// Dates are keyed by their canonical string, only at this boundary.
type document struct {
	Dates map[string]Bar `json:"dates" msgpack:"dates"`
}

func newDocument(s *Series) document {
	doc := document{Dates: make(map[string]Bar, s.Len())}
	for on, bar := range s.Values() {
		doc.Dates[on.String()] = bar
	}
	return doc
}

func (doc document) series() (*Series, error) {
	s := NewSeries()
	for key, bar := range doc.Dates {
		on, err := date.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("format error: key %q: %w", key, err)
		}
		s.Add(on, bar)
	}
	return s, nil
}

// jsonCodec is the human-readable document format.
type jsonCodec struct{}

func (jsonCodec) Ext() string { return ".json" }

// Encode writes the series as an indented json object. Dates are sorted.
func (jsonCodec) Encode(w io.Writer, s *Series) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(newDocument(s)); err != nil {
		return fmt.Errorf("persist error: %w", err)
	}
	return nil
}

// Decode reads a json document. Prices must be integers.
func (jsonCodec) Decode(r io.Reader) (*Series, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("format error: not a correct json document: %w", err)
	}
	return doc.series()
}
