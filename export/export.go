// Package export copies price series into a SQLite database.
package export

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/etnz/quotes"
	"github.com/etnz/quotes/date"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// ErrVolumeOverflow is returned for a volume that SQLite cannot store.
var ErrVolumeOverflow = errors.New("volume does not fit a SQLite integer")

// Source is a set of series by symbol.
type Source interface {
	Symbols() []string
	Series(symbol string) (*quotes.Series, bool)
}

// DB is a SQLite database of daily bars.
type DB struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open opens (or creates) the SQLite database and runs migrations.
func Open(path string, logger zerolog.Logger) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	d := &DB{db: db, log: logger}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	logger.Debug().Str("path", path).Msg("open-database")
	return d, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS bars (
		symbol TEXT    NOT NULL,
		day    TEXT    NOT NULL,
		open   INTEGER NOT NULL,
		high   INTEGER NOT NULL,
		low    INTEGER NOT NULL,
		close  INTEGER NOT NULL,
		volume INTEGER NOT NULL,
		PRIMARY KEY (symbol, day)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bars_day ON bars(day)`,
}

func (d *DB) migrate() error { return d.exec(schema...) }

// exec runs each statement in turn, stopping at the first failure.
func (d *DB) exec(stmts ...string) error {
	for _, s := range stmts {
		if _, err := d.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:min(len(s), 30)], err)
		}
	}
	return nil
}

// Write replaces the bars of symbol by the ones of s, in a single transaction.
//
// It returns the number of bars written.
func (d *DB) Write(ctx context.Context, symbol string, s *quotes.Series) (n int, err error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM bars WHERE symbol = ?`, symbol); err != nil {
		return 0, fmt.Errorf("delete %s: %w", symbol, err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO bars
		(symbol, day, open, high, low, close, volume)
		VALUES (?,?,?,?,?,?,?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	for on, bar := range s.Values() {
		if bar.Volume > math.MaxInt64 {
			return 0, fmt.Errorf("%s %s: %w", symbol, on, ErrVolumeOverflow)
		}
		_, err = stmt.ExecContext(ctx, symbol, on.String(),
			int64(bar.Start), int64(bar.High), int64(bar.Low), int64(bar.End), int64(bar.Volume))
		if err != nil {
			return 0, fmt.Errorf("insert %s %s: %w", symbol, on, err)
		}
		n++
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	d.log.Info().Str("symbol", symbol).Int("bars", n).Msg("export-series")
	return n, nil
}

// WriteAll writes every series of src, and returns the total number of bars written.
func (d *DB) WriteAll(ctx context.Context, src Source) (int, error) {
	total := 0
	for _, symbol := range src.Symbols() {
		s, ok := src.Series(symbol)
		if !ok {
			continue
		}
		n, err := d.Write(ctx, symbol, s)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// Symbols returns the symbols in the database, sorted.
func (d *DB) Symbols(ctx context.Context) ([]string, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT DISTINCT symbol FROM bars ORDER BY symbol`)
	if err != nil {
		return nil, fmt.Errorf("query symbols: %w", err)
	}
	defer rows.Close()

	var symbols []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan symbol: %w", err)
		}
		symbols = append(symbols, s)
	}
	return symbols, rows.Err()
}

// Series reads back the series of symbol. It is empty if the symbol is unknown.
func (d *DB) Series(ctx context.Context, symbol string) (*quotes.Series, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT day, open, high, low, close, volume
		FROM bars WHERE symbol = ? ORDER BY day`, symbol)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", symbol, err)
	}
	defer rows.Close()

	s := quotes.NewSeries()
	for rows.Next() {
		var (
			day        string
			o, h, l, c int64
			volume     int64
		)
		if err := rows.Scan(&day, &o, &h, &l, &c, &volume); err != nil {
			return nil, fmt.Errorf("scan %s: %w", symbol, err)
		}
		on, err := date.Parse(day)
		if err != nil {
			return nil, fmt.Errorf("parse error %s:%s: %w", symbol, day, err)
		}
		s.Add(on, quotes.Bar{
			Start:  quotes.Price(o),
			High:   quotes.Price(h),
			Low:    quotes.Price(l),
			End:    quotes.Price(c),
			Volume: uint64(volume),
		})
	}
	return s, rows.Err()
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}
