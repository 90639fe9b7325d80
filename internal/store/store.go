// Package store caches GitHub README lookups in a local SQLite database so
// repeated runs over the same reporeapers pages do not hit the API again.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS readmes (
	repo       TEXT PRIMARY KEY,
	status     INTEGER NOT NULL,
	content    TEXT NOT NULL DEFAULT '',
	fetched_at INTEGER NOT NULL
)`

// Entry is one cached README lookup. Status is the HTTP status GitHub
// answered with, so misses are cached as well as hits.
type Entry struct {
	Repo      string
	Status    int
	Content   string
	FetchedAt time.Time
}

// Store provides SQLite-backed persistence for README lookups.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("cache path is required")
	}

	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

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

func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Get returns the entry for repo when it is younger than ttl. A zero ttl
// never expires.
func (s *Store) Get(ctx context.Context, repo string, ttl time.Duration) (Entry, bool, error) {
	if s == nil || s.sqlDB == nil {
		return Entry{}, false, errors.New("storage is not configured")
	}
	repo = normalizeKey(repo)
	if repo == "" {
		return Entry{}, false, errors.New("repo is required")
	}

	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT repo, status, content, fetched_at FROM readmes WHERE repo = ?`, repo)

	var e Entry
	var fetchedAt int64
	if err := row.Scan(&e.Repo, &e.Status, &e.Content, &fetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, false, nil
		}
		return Entry{}, false, fmt.Errorf("get readme: %w", err)
	}
	e.FetchedAt = time.UnixMilli(fetchedAt).UTC()

	if ttl > 0 && time.Since(e.FetchedAt) > ttl {
		return Entry{}, false, nil
	}

	return e, true, nil
}

// Put upserts an entry.
func (s *Store) Put(ctx context.Context, e Entry) error {
	if s == nil || s.sqlDB == nil {
		return errors.New("storage is not configured")
	}
	e.Repo = normalizeKey(e.Repo)
	if e.Repo == "" {
		return errors.New("repo is required")
	}
	if e.FetchedAt.IsZero() {
		e.FetchedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO readmes (repo, status, content, fetched_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(repo) DO UPDATE SET
		    status = excluded.status,
		    content = excluded.content,
		    fetched_at = excluded.fetched_at`,
		e.Repo, e.Status, e.Content, e.FetchedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put readme: %w", err)
	}

	return nil
}

// Clear removes every cached entry and returns how many were dropped.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, errors.New("storage is not configured")
	}

	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM readmes`)
	if err != nil {
		return 0, fmt.Errorf("clear readmes: %w", err)
	}

	n, _ := res.RowsAffected()
	return n, nil
}

// Stats summarizes the cache contents.
type Stats struct {
	Total    int64
	Found    int64
	NotFound int64
	Bytes    int64
}

func (s *Store) Count(ctx context.Context) (Stats, error) {
	if s == nil || s.sqlDB == nil {
		return Stats{}, errors.New("storage is not configured")
	}

	var st Stats
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN status = 200 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN status = 404 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(LENGTH(content)), 0)
		 FROM readmes`)
	if err := row.Scan(&st.Total, &st.Found, &st.NotFound, &st.Bytes); err != nil {
		return Stats{}, fmt.Errorf("count readmes: %w", err)
	}

	return st, nil
}

func normalizeKey(repo string) string {
	return strings.ToLower(strings.TrimSpace(repo))
}
