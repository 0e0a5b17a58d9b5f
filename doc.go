// Package quotes stores daily equity prices as fixed-point bars keyed by
// calendar date, and answers aggregate queries over date ranges.
//
// The core pieces are:
//   - Bar: one day of open/close/high/low prices, scaled by 100, and a volume.
//   - Series: the bars of one security, keyed by date.Date, with point lookup
//     and inclusive range aggregation.
//   - ParseRecord and ParseRecords: the reader of the legacy
//     DATE,OPEN,HIGH,LOW,CLOSE,VOLUME,ADJCLOSE text format.
//   - Codec: the structured document format a Series is persisted to (JSON or
//     MessagePack).
//   - Pipeline: the one-shot scan of a data folder that migrates legacy text
//     files into documents, and loads existing documents in memory.
//
// Nothing in this package is safe for concurrent mutation. A Series belongs to
// whoever built it, and can be shared for reading only once it is complete.
package quotes
