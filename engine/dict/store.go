package dict

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/wippyai/khiin-bridge/errors"
)

// MaxCandidates bounds a single lookup.
const MaxCandidates = 32

const lookupQuery = `SELECT output, COALESCE(annotation, '')
FROM conversions
WHERE input = ?
ORDER BY weight DESC, rowid ASC
LIMIT ?`

// Entry is one conversion row.
type Entry struct {
	Output     string
	Annotation string
}

// Store reads conversions from a SQLite dictionary file.
type Store struct {
	db     *sql.DB
	lookup *sql.Stmt
}

// OpenStore opens an existing dictionary file. A missing file or a file
// without a conversions table is an initialization error; the file is never
// created.
func OpenStore(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.Initialization(path, fmt.Errorf("dictionary path is required"))
	}
	cleanPath := filepath.Clean(path)
	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, errors.Initialization(path, err)
	}
	if info.IsDir() {
		return nil, errors.Initialization(path, fmt.Errorf("%s is a directory", cleanPath))
	}

	db, err := sql.Open("sqlite", cleanPath)
	if err != nil {
		return nil, errors.Initialization(path, fmt.Errorf("open sqlite db: %w", err))
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Initialization(path, fmt.Errorf("ping sqlite db: %w", err))
	}
	var tables int
	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'conversions'`).Scan(&tables)
	if err != nil {
		_ = db.Close()
		return nil, errors.Initialization(path, fmt.Errorf("inspect schema: %w", err))
	}
	if tables == 0 {
		_ = db.Close()
		return nil, errors.Initialization(path, fmt.Errorf("no conversions table"))
	}
	stmt, err := db.PrepareContext(ctx, lookupQuery)
	if err != nil {
		_ = db.Close()
		return nil, errors.Initialization(path, fmt.Errorf("prepare lookup: %w", err))
	}
	return &Store{db: db, lookup: stmt}, nil
}

// Lookup returns the conversions for input, best first, with duplicate
// outputs removed.
func (s *Store) Lookup(ctx context.Context, input string) ([]Entry, error) {
	rows, err := s.lookup.QueryContext(ctx, input, MaxCandidates)
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", input, err)
	}
	defer rows.Close()

	var entries []Entry
	seen := make(map[string]struct{})
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Output, &e.Annotation); err != nil {
			return nil, fmt.Errorf("scan conversion: %w", err)
		}
		if _, dup := seen[e.Output]; dup {
			continue
		}
		seen[e.Output] = struct{}{}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversions: %w", err)
	}
	return entries, nil
}

// Close releases the statement and the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	if s.lookup != nil {
		_ = s.lookup.Close()
	}
	return s.db.Close()
}
