// Package sqlite stores dictionaries in a SQLite file so large word lists can
// be shared between runs and tools without re-parsing text files.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/wordladder/lexicon"
	_ "modernc.org/sqlite"
)

var (
	// ErrPathRequired is returned by Open and OpenReadOnly for an empty path.
	ErrPathRequired = errors.New("sqlite: storage path is required")

	// ErrNoWordsTable is returned by OpenReadOnly when the database holds no
	// words table, e.g. an empty file or a database written by another program.
	ErrNoWordsTable = errors.New("sqlite: database has no words table")
)

const schema = `CREATE TABLE IF NOT EXISTS words (
	word TEXT PRIMARY KEY NOT NULL
) WITHOUT ROWID`

// Store provides SQLite-backed persistence for dictionary words.
type Store struct {
	sqlDB *sql.DB
}

// DB returns the underlying sql.DB instance.
func (s *Store) DB() *sql.DB {
	if s == nil {
		return nil
	}
	return s.sqlDB
}

// Open opens or creates a SQLite dictionary at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrPathRequired
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// OpenReadOnly opens an existing dictionary without modifying the file: no
// journal mode change, no schema creation, and writes are rejected.
func OpenReadOnly(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrPathRequired
	}

	cleanPath := filepath.Clean(path)
	// surface a missing file as fs.ErrNotExist instead of SQLITE_CANTOPEN
	if _, err := os.Stat(cleanPath); err != nil {
		return nil, fmt.Errorf("stat sqlite db: %w", err)
	}
	dsn := "file:" + filepath.ToSlash(cleanPath) +
		"?mode=ro&_pragma=busy_timeout(5000)&_pragma=query_only(1)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	var n int
	err = sqlDB.QueryRow(`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'words'`).Scan(&n)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("inspect schema: %w", err)
	}
	if n == 0 {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%w: %s", ErrNoWordsTable, cleanPath)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Put inserts words in a single transaction. Words already present and
// empty words are skipped.
func (s *Store) Put(ctx context.Context, words ...string) (err error) {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words (word) VALUES (?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, w := range words {
		if w == "" {
			continue
		}
		if _, err = stmt.ExecContext(ctx, w); err != nil {
			return fmt.Errorf("insert %q: %w", w, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Words returns every stored word in ascending order.
func (s *Store) Words(ctx context.Context) ([]string, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT word FROM words ORDER BY word`)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate words: %w", err)
	}
	return words, nil
}

// Lexicon loads every stored word into an in-memory lexicon.
// Failures are reported as lexicon.ErrDictionaryLoad.
func (s *Store) Lexicon(ctx context.Context, opts ...lexicon.Option) (*lexicon.Lexicon, error) {
	words, err := s.Words(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", lexicon.ErrDictionaryLoad, err)
	}
	return lexicon.New(words, opts...)
}

// IsStorePath reports whether path names a SQLite dictionary by extension.
func IsStorePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}
