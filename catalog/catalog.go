// Package catalog provides a SQLite-backed registry of named schema
// revisions. Every put re-compiles the source through the schema parser,
// so only valid schemas enter the catalog; the stored AST JSON is what a
// code generator or storage binding reads back out.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/databuf-xyz/go-databuf/schema"
)

// ErrNotFound is returned when a schema name has no revisions.
var ErrNotFound = errors.New("catalog: schema not found")

// Revision is one registered version of a named schema.
type Revision struct {
	ID        string
	Name      string
	Source    string
	AST       []byte // JSON encoding of the parsed definitions
	CreatedAt time.Time
}

// Definitions decodes the stored AST.
func (r *Revision) Definitions() ([]schema.Definition, error) {
	return schema.UnmarshalDefinitions(r.AST)
}

// Catalog stores schema revisions in a SQLite database.
type Catalog struct {
	db *sql.DB
}

// Open opens or creates a catalog at the given database path. Use
// ":memory:" for a transient catalog.
func Open(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	c := &Catalog{db: db}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return c, nil
}

func (c *Catalog) migrate() error {
	_, err := c.db.Exec(`
	CREATE TABLE IF NOT EXISTS revisions (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		source TEXT NOT NULL,
		ast TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_revisions_name ON revisions(name, seq);
	`)
	return err
}

// Close closes the underlying database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Put compiles source and registers it as the newest revision of name.
// The parse error is returned unchanged when the source is invalid.
func (c *Catalog) Put(ctx context.Context, name, source string) (*Revision, error) {
	defs, err := schema.Parse(source)
	if err != nil {
		return nil, err
	}
	ast, err := schema.MarshalDefinitions(defs)
	if err != nil {
		return nil, fmt.Errorf("encode ast: %w", err)
	}

	rev := &Revision{
		ID:        uuid.New().String(),
		Name:      name,
		Source:    source,
		AST:       ast,
		CreatedAt: time.Now().UTC(),
	}
	_, err = c.db.ExecContext(ctx,
		`INSERT INTO revisions (id, name, source, ast, created_at) VALUES (?, ?, ?, ?, ?)`,
		rev.ID, rev.Name, rev.Source, string(rev.AST), rev.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert revision: %w", err)
	}
	return rev, nil
}

// Get returns the newest revision of name.
func (c *Catalog) Get(ctx context.Context, name string) (*Revision, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT id, name, source, ast, created_at FROM revisions
		 WHERE name = ? ORDER BY seq DESC LIMIT 1`, name)
	return scanRevision(row)
}

// Revisions returns every revision of name, oldest first.
func (c *Catalog) Revisions(ctx context.Context, name string) ([]*Revision, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, name, source, ast, created_at FROM revisions
		 WHERE name = ? ORDER BY seq`, name)
	if err != nil {
		return nil, fmt.Errorf("list revisions: %w", err)
	}
	defer rows.Close()

	var revs []*Revision
	for rows.Next() {
		rev, err := scanRevision(rows)
		if err != nil {
			return nil, err
		}
		revs = append(revs, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list revisions: %w", err)
	}
	if len(revs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return revs, nil
}

// Names returns every schema name in the catalog, sorted.
func (c *Catalog) Names(ctx context.Context) ([]string, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT DISTINCT name FROM revisions ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list names: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRevision(row rowScanner) (*Revision, error) {
	var rev Revision
	var ast string
	err := row.Scan(&rev.ID, &rev.Name, &rev.Source, &ast, &rev.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan revision: %w", err)
	}
	rev.AST = []byte(ast)
	return &rev, nil
}
