package quotes

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// msgpackCodec is the compact binary document format.
type msgpackCodec struct{}

func (msgpackCodec) Ext() string { return ".msgpack" }

func (msgpackCodec) Encode(w io.Writer, s *Series) error {
	enc := msgpack.NewEncoder(w)
	// stable output for identical series.
	enc.SetSortMapKeys(true)
	if err := enc.Encode(newDocument(s)); err != nil {
		return fmt.Errorf("persist error: %w", err)
	}
	return nil
}

func (msgpackCodec) Decode(r io.Reader) (*Series, error) {
	var doc document
	if err := msgpack.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("format error: not a correct msgpack document: %w", err)
	}
	return doc.series()
}
