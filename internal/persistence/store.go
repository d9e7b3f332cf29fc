package persistence

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/subweave/subweave/pkg/log"
)

// Store is a small key→JSON-value store on SQLite, one logical table per
// backend name, auto-committing. It persists translation caches across
// runs; a run without one just uses an in-memory cache.
type Store struct {
	db *sql.DB
}

var tableNameRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("db path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Bucket opens (creating if needed) the table for one backend name and
// returns a cache bound to it.
func (s *Store) Bucket(name string) (*Bucket, error) {
	if !tableNameRe.MatchString(name) {
		return nil, fmt.Errorf("invalid bucket name %q", name)
	}
	table := "cache_" + name
	stmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		key TEXT PRIMARY KEY,
		value_json TEXT NOT NULL,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`, table)
	if _, err := s.db.Exec(stmt); err != nil {
		return nil, fmt.Errorf("create bucket %s: %w", name, err)
	}
	return &Bucket{db: s.db, table: table}, nil
}

// Bucket is one backend's translation cache. It satisfies the cache
// contract: Get never fails (absence or a store error both read as a miss)
// and Put is best-effort.
type Bucket struct {
	db    *sql.DB
	table string
}

func (b *Bucket) Get(key string) (string, bool) {
	row := b.db.QueryRow(
		fmt.Sprintf(`SELECT value_json FROM %s WHERE key = ?`, b.table), key)
	var valueJSON string
	if err := row.Scan(&valueJSON); err != nil {
		if err != sql.ErrNoRows {
			log.Warn("cache read failed, treating as miss: %v", err)
		}
		return "", false
	}
	var value string
	if err := json.Unmarshal([]byte(valueJSON), &value); err != nil {
		log.Warn("cache entry for %q is not valid JSON, treating as miss", key)
		return "", false
	}
	return value, true
}

// Put records a translation, first write wins. A failed write degrades to
// no persistence rather than failing the job.
func (b *Bucket) Put(key, value string) {
	valueJSON, err := json.Marshal(value)
	if err != nil {
		log.Warn("cache write skipped: %v", err)
		return
	}
	_, err = b.db.Exec(
		fmt.Sprintf(`INSERT INTO %s (key, value_json) VALUES (?, ?)
			ON CONFLICT(key) DO NOTHING`, b.table),
		key, string(valueJSON))
	if err != nil {
		log.Warn("cache write failed: %v", err)
	}
}
