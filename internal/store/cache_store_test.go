package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	mserror "github.com/msto63/mscript/foundation/core/error"
	"github.com/msto63/mscript/foundation/mscript/ast"
	"github.com/msto63/mscript/foundation/mscript/lexer"
	"github.com/msto63/mscript/foundation/mscript/parser"
)

func openStore(t *testing.T) (*SQLiteCacheStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache", "parse-cache.db")
	s, err := NewSQLiteCacheStore(SQLiteCacheConfig{Path: path})
	if err != nil {
		t.Fatalf("NewSQLiteCacheStore() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, path
}

func parse(t *testing.T, src string) *ast.Node {
	t.Helper()
	tokens, err := lexer.Scan(src)
	if err != nil {
		t.Fatalf("Scan(%q) error = %v", src, err)
	}
	root, err := parser.Parse(tokens)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", src, err)
	}
	return root
}

func TestKey(t *testing.T) {
	if Key("a") == Key("b") {
		t.Error("different sources share a key")
	}
	if got := Key(""); got != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
		t.Errorf("Key(\"\") = %s", got)
	}
}

func TestGetPut(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)
	src := "x = [1 -2]';\nif x(1) > 0, disp(x), end\n"

	if root, ok, err := s.Get(ctx, src); err != nil || ok || root != nil {
		t.Fatalf("Get() on empty cache = %v, %v, %v", root, ok, err)
	}

	want := parse(t, src)
	if err := s.Put(ctx, src, want); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, ok, err := s.Get(ctx, src)
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v", ok, err)
	}
	if got.String() != want.String() {
		t.Errorf("cached tree = %s, want %s", got, want)
	}
	if got.Child(0).Position() != want.Child(0).Position() {
		t.Errorf("cached position = %v, want %v", got.Child(0).Position(), want.Child(0).Position())
	}

	if _, ok, _ := s.Get(ctx, src+" "); ok {
		t.Error("Get() hit for a different source")
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.Entries != 1 || stats.Hits != 1 || stats.SourceBytes != int64(len(src)) {
		t.Errorf("Stats() = %+v", stats)
	}
}

func TestPutReplaces(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)

	first := parse(t, "a")
	second := parse(t, "b")
	if err := s.Put(ctx, "a", first); err != nil {
		t.Fatal(err)
	}
	if err := s.Put(ctx, "a", second); err != nil {
		t.Fatal(err)
	}

	got, ok, err := s.Get(ctx, "a")
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v", ok, err)
	}
	if got.String() != second.String() {
		t.Errorf("Get() = %s, want replaced tree %s", got, second)
	}
	stats, _ := s.Stats(ctx)
	if stats.Entries != 1 {
		t.Errorf("Entries = %d, want 1", stats.Entries)
	}
}

func TestPutNil(t *testing.T) {
	s, _ := openStore(t)
	err := s.Put(context.Background(), "a", nil)
	if !mserror.HasCode(err, mserror.CodeInvalidInput) {
		t.Errorf("Put(nil) error = %v, want INVALID_INPUT", err)
	}
}

func TestPruneAndClear(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)

	start := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	clock := start
	s.now = func() time.Time { return clock }

	if err := s.Put(ctx, "old", parse(t, "old")); err != nil {
		t.Fatal(err)
	}
	clock = start.Add(48 * time.Hour)
	if err := s.Put(ctx, "new", parse(t, "new")); err != nil {
		t.Fatal(err)
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !stats.Oldest.Equal(start) || !stats.Newest.Equal(clock) {
		t.Errorf("Stats() oldest/newest = %v/%v, want %v/%v", stats.Oldest, stats.Newest, start, clock)
	}

	deleted, err := s.Prune(ctx, 24*time.Hour)
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if deleted != 1 {
		t.Errorf("Prune() deleted %d, want 1", deleted)
	}
	if _, ok, _ := s.Get(ctx, "old"); ok {
		t.Error("pruned entry still cached")
	}
	if _, ok, _ := s.Get(ctx, "new"); !ok {
		t.Error("recent entry pruned")
	}

	deleted, err = s.Clear(ctx)
	if err != nil || deleted != 1 {
		t.Errorf("Clear() = %d, %v, want 1", deleted, err)
	}
	stats, _ = s.Stats(ctx)
	if stats.Entries != 0 || stats.Hits != 0 || !stats.Oldest.IsZero() {
		t.Errorf("Stats() after Clear = %+v", stats)
	}
}

func TestCorruptEntryIsAMiss(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)

	if err := s.Put(ctx, "a", parse(t, "a")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.db.Exec(`UPDATE parse_cache SET ast = '{"kind":"NoSuchKind"}'`); err != nil {
		t.Fatal(err)
	}

	root, ok, err := s.Get(ctx, "a")
	if err != nil || ok || root != nil {
		t.Errorf("Get() corrupt = %v, %v, %v", root, ok, err)
	}
	stats, _ := s.Stats(ctx)
	if stats.Entries != 0 {
		t.Errorf("corrupt entry kept, Entries = %d", stats.Entries)
	}
}

func TestSchemaVersionResetsCache(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "parse-cache.db")

	s, err := NewSQLiteCacheStore(SQLiteCacheConfig{Path: path})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Put(ctx, "a", parse(t, "a")); err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopening with the same schema keeps entries.
	s, err = NewSQLiteCacheStore(SQLiteCacheConfig{Path: path})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Get(ctx, "a"); !ok {
		t.Error("entry lost on reopen")
	}
	s.Close()

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`PRAGMA user_version = 99`); err != nil {
		t.Fatal(err)
	}
	db.Close()

	s, err = NewSQLiteCacheStore(SQLiteCacheConfig{Path: path})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Entries != 0 {
		t.Errorf("Entries = %d after schema change, want 0", stats.Entries)
	}
}

func TestFrontEndChangeResetsCache(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "parse-cache.db")
	open := func(frontEnd string) *SQLiteCacheStore {
		t.Helper()
		s, err := NewSQLiteCacheStore(SQLiteCacheConfig{Path: path, FrontEnd: frontEnd})
		if err != nil {
			t.Fatalf("NewSQLiteCacheStore(%q) error = %v", frontEnd, err)
		}
		return s
	}

	s := open("")
	if err := s.Put(ctx, "for i = 1:3, end", parse(t, "for i = 1:3, end")); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s = open(FrontEnd())
	if _, ok, _ := s.Get(ctx, "for i = 1:3, end"); !ok {
		t.Error("entry lost when reopened by the same front end")
	}
	s.Close()

	s = open("lexer 0.2.0, parser 99.0.0")
	if _, ok, err := s.Get(ctx, "for i = 1:3, end"); ok || err != nil {
		t.Errorf("Get() after parser change = %v, %v, want a miss", ok, err)
	}
	if err := s.Put(ctx, "a", parse(t, "a")); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s = open("lexer 0.2.0, parser 99.0.0")
	defer s.Close()
	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Entries != 1 {
		t.Errorf("Entries = %d, want the entry written by the new parser", stats.Entries)
	}
}

func TestMalformedTreeIsAMiss(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)

	rows := []string{
		`{"kind":"StatementList","children":[null]}`,
		`{"kind":"StatementList","children":[{"kind":"NumberLiteralExpression","text":"1"}]}`,
	}
	for _, row := range rows {
		if err := s.Put(ctx, "a", parse(t, "a")); err != nil {
			t.Fatal(err)
		}
		if _, err := s.db.Exec(`UPDATE parse_cache SET ast = ?`, row); err != nil {
			t.Fatal(err)
		}

		root, ok, err := s.Get(ctx, "a")
		if err != nil || ok || root != nil {
			t.Errorf("Get() with %s = %v, %v, %v", row, root, ok, err)
		}
		if stats, _ := s.Stats(ctx); stats.Entries != 0 {
			t.Errorf("malformed row %s kept", row)
		}
	}
}

func TestOpenErrors(t *testing.T) {
	_, err := NewSQLiteCacheStore(SQLiteCacheConfig{})
	if !mserror.HasCode(err, mserror.CodeCacheError) {
		t.Errorf("empty path error = %v, want CACHE_ERROR", err)
	}

	var msErr *mserror.Error
	if e, ok := err.(*mserror.Error); ok {
		msErr = e
	}
	if msErr == nil || msErr.MessageKey() != "errors.cache" {
		t.Errorf("error lacks cache message key: %v", err)
	}
}

func TestConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)
	sources := []string{"a", "b = 1", "c(1, :)", "while 1, break, end"}
	trees := make([]*ast.Node, len(sources))
	for i, src := range sources {
		trees[i] = parse(t, src)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				k := (i + j) % len(sources)
				if err := s.Put(ctx, sources[k], trees[k]); err != nil {
					t.Errorf("Put() error = %v", err)
					return
				}
				if _, _, err := s.Get(ctx, sources[k]); err != nil {
					t.Errorf("Get() error = %v", err)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Entries != int64(len(sources)) || stats.Hits == 0 {
		t.Errorf("Stats() = %+v", stats)
	}
}
