package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	mserror "github.com/msto63/mscript/foundation/core/error"
	"github.com/msto63/mscript/foundation/mscript/ast"
	"github.com/msto63/mscript/pkg/core/version"
)

// CacheStats summarises the contents of the parse cache
type CacheStats struct {
	Path        string    `json:"path"`
	Entries     int64     `json:"entries"`
	Hits        int64     `json:"hits"`
	SourceBytes int64     `json:"source_bytes"`
	Oldest      time.Time `json:"oldest,omitempty"`
	Newest      time.Time `json:"newest,omitempty"`
}

// CacheStore maps source text to its parsed tree
type CacheStore interface {
	// Get returns the cached tree for source. A miss is (nil, false, nil).
	Get(ctx context.Context, source string) (*ast.Node, bool, error)
	Put(ctx context.Context, source string, root *ast.Node) error

	Stats(ctx context.Context) (CacheStats, error)
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
	Clear(ctx context.Context) (int64, error)
	Close() error
}

// SQLiteCacheStore implements CacheStore using SQLite
type SQLiteCacheStore struct {
	db   *sql.DB
	path string
	mu   sync.RWMutex
	now  func() time.Time
}

// SQLiteCacheConfig holds configuration for the SQLite cache
type SQLiteCacheConfig struct {
	Path string

	// FrontEnd identifies the lexer and parser the cached trees came
	// from. Empty selects FrontEnd().
	FrontEnd string
}

// FrontEnd returns the marker of the running lexer and parser versions
func FrontEnd() string {
	return "lexer " + version.Lexer + ", parser " + version.Parser
}

// NewSQLiteCacheStore opens or creates the cache database. A database
// written with a different cache schema version or by another lexer or
// parser version is emptied.
func NewSQLiteCacheStore(cfg SQLiteCacheConfig) (*SQLiteCacheStore, error) {
	if cfg.Path == "" {
		return nil, cacheError(errors.New("cache path is empty"), "open", cfg.Path)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return nil, cacheError(err, "open", cfg.Path)
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, cacheError(err, "open", cfg.Path)
	}

	if cfg.FrontEnd == "" {
		cfg.FrontEnd = FrontEnd()
	}

	s := &SQLiteCacheStore{db: db, path: cfg.Path, now: time.Now}
	if err := s.initSchema(cfg.FrontEnd); err != nil {
		db.Close()
		return nil, cacheError(err, "init", cfg.Path)
	}

	return s, nil
}

func (s *SQLiteCacheStore) initSchema(frontEnd string) error {
	schema := `
	CREATE TABLE IF NOT EXISTS parse_cache (
		hash TEXT PRIMARY KEY,
		source_len INTEGER NOT NULL,
		ast TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		hits INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_parse_cache_created_at ON parse_cache(created_at);

	CREATE TABLE IF NOT EXISTS cache_meta (
		name TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	var stored int
	if err := s.db.QueryRow(`PRAGMA user_version`).Scan(&stored); err != nil {
		return err
	}
	var builtBy string
	err := s.db.QueryRow(`SELECT value FROM cache_meta WHERE name = 'front_end'`).Scan(&builtBy)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if stored == version.CacheSchema && builtBy == frontEnd {
		return nil
	}

	// Trees from another schema may not decode and trees from another
	// grammar may no longer be valid; start over.
	if _, err := s.db.Exec(`DELETE FROM parse_cache`); err != nil {
		return err
	}
	if _, err := s.db.Exec(`
		INSERT INTO cache_meta (name, value) VALUES ('front_end', ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value
	`, frontEnd); err != nil {
		return err
	}
	_, err = s.db.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, version.CacheSchema))
	return err
}

// Path returns the database file
func (s *SQLiteCacheStore) Path() string {
	return s.path
}

// Key returns the cache key of source
func Key(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// Get looks up source and counts a hit
func (s *SQLiteCacheStore) Get(ctx context.Context, source string) (*ast.Node, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := Key(source)
	var encoded string
	err := s.db.QueryRowContext(ctx, `SELECT ast FROM parse_cache WHERE hash = ?`, key).Scan(&encoded)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, cacheError(err, "get", s.path)
	}

	root := &ast.Node{}
	if err := decode(encoded, root); err != nil {
		// Undecodable rows are dropped and reported as a miss.
		if _, derr := s.db.ExecContext(ctx, `DELETE FROM parse_cache WHERE hash = ?`, key); derr != nil {
			return nil, false, cacheError(derr, "get", s.path)
		}
		return nil, false, nil
	}

	if _, err := s.db.ExecContext(ctx, `UPDATE parse_cache SET hits = hits + 1 WHERE hash = ?`, key); err != nil {
		return nil, false, cacheError(err, "get", s.path)
	}
	return root, true, nil
}

// decode reads a stored tree and checks its shape
func decode(encoded string, root *ast.Node) error {
	if err := json.Unmarshal([]byte(encoded), root); err != nil {
		return err
	}
	if errs := ast.Validate(root); len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// Put stores the tree for source, replacing an existing entry
func (s *SQLiteCacheStore) Put(ctx context.Context, source string, root *ast.Node) error {
	if root == nil {
		return mserror.New("cannot cache a nil tree").
			WithCode(mserror.CodeInvalidInput).
			WithOperation("store.put")
	}

	encoded, err := json.Marshal(root)
	if err != nil {
		return cacheError(err, "put", s.path)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO parse_cache (hash, source_len, ast, created_at, hits)
		VALUES (?, ?, ?, ?, 0)
		ON CONFLICT(hash) DO UPDATE SET ast = excluded.ast, created_at = excluded.created_at
	`, Key(source), len(source), string(encoded), s.now().UTC())
	if err != nil {
		return cacheError(err, "put", s.path)
	}
	return nil
}

// Stats returns entry and hit counts
func (s *SQLiteCacheStore) Stats(ctx context.Context) (CacheStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := CacheStats{Path: s.path}

	var oldest, newest sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(hits), 0), COALESCE(SUM(source_len), 0),
		       MIN(created_at), MAX(created_at)
		FROM parse_cache
	`).Scan(&stats.Entries, &stats.Hits, &stats.SourceBytes, &oldest, &newest)
	if err != nil {
		return stats, cacheError(err, "stats", s.path)
	}

	stats.Oldest = parseTimestamp(oldest)
	stats.Newest = parseTimestamp(newest)
	return stats, nil
}

// timestampLayouts are the forms go-sqlite3 writes for DATETIME values
var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	time.RFC3339Nano,
}

func parseTimestamp(value sql.NullString) time.Time {
	if !value.Valid {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value.String); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// Prune removes entries created more than olderThan ago
func (s *SQLiteCacheStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().UTC().Add(-olderThan)
	result, err := s.db.ExecContext(ctx, `DELETE FROM parse_cache WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, cacheError(err, "prune", s.path)
	}
	deleted, _ := result.RowsAffected()
	return deleted, nil
}

// Clear removes every entry
func (s *SQLiteCacheStore) Clear(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM parse_cache`)
	if err != nil {
		return 0, cacheError(err, "clear", s.path)
	}
	deleted, _ := result.RowsAffected()
	return deleted, nil
}

// Close closes the database
func (s *SQLiteCacheStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

func cacheError(err error, op, path string) error {
	return mserror.Wrap(err, "parse cache "+op+" failed").
		WithCode(mserror.CodeCacheError).
		WithOperation("store."+op).
		WithDetail("path", path).
		WithMessage(mserror.CodeCacheError.MessageKey(), map[string]interface{}{"Reason": err.Error()})
}
