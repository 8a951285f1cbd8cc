package tuplestore

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/databuf-xyz/go-databuf/tuplekey"
)

// SQLiteStore persists entries in a SQLite database. Keys are stored as
// packed order-preserving blobs, so prefix scans become key ranges.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates a store at the given database path.
// Use ":memory:" for a transient store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS tuples (
		key BLOB PRIMARY KEY,
		value BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key tuplekey.Tuple) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM tuples WHERE key = ?`, tuplekey.Pack(key)).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get: %w", err)
	}
	return value, nil
}

func (s *SQLiteStore) Put(ctx context.Context, key tuplekey.Tuple, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tuples (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		tuplekey.Pack(key), value)
	if err != nil {
		return fmt.Errorf("put: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Scan(ctx context.Context, prefix tuplekey.Tuple) ([]Entry, error) {
	packed := tuplekey.Pack(prefix)

	var rows *sql.Rows
	var err error
	if len(packed) == 0 {
		rows, err = s.db.QueryContext(ctx,
			`SELECT key, value FROM tuples ORDER BY key`)
	} else if upper := tuplekey.PrefixSuccessor(packed); upper != nil {
		rows, err = s.db.QueryContext(ctx,
			`SELECT key, value FROM tuples WHERE key >= ? AND key < ? ORDER BY key`,
			packed, upper)
	} else {
		rows, err = s.db.QueryContext(ctx,
			`SELECT key, value FROM tuples WHERE key >= ? ORDER BY key`,
			packed)
	}
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var key, value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		tup, err := tuplekey.Unpack(key)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Key: tup, Value: value})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return entries, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ Store = (*SQLiteStore)(nil)
