package nandoku_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"nandoku"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func openTestCache(t *testing.T) (*nandoku.Cache, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	cache, err := nandoku.OpenCache(dbPath, "distractor_cache")
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return cache, dbPath
}

func TestCacheKeyDeterministic(t *testing.T) {
	k1 := nandoku.CacheKey("札幌")
	k2 := nandoku.CacheKey("札幌")
	require.Equal(t, k1, k2)
	require.Len(t, k1, 64) // SHA-256 hex

	require.NotEqual(t, k1, nandoku.CacheKey("函館"))
}

func TestCacheLookupMiss(t *testing.T) {
	cache, _ := openTestCache(t)

	options, err := cache.Lookup(context.Background(), "札幌")
	require.NoError(t, err)
	require.Nil(t, options)
}

func TestCacheStoreAndLookup(t *testing.T) {
	cache, _ := openTestCache(t)
	ctx := context.Background()

	stored := []string{"おしゃまんべ", "おさまんべ", "おしゃまべ"}
	require.NoError(t, cache.Store(ctx, "札幌", stored))

	options, err := cache.Lookup(ctx, "札幌")
	require.NoError(t, err)
	require.Equal(t, stored, options)

	// Other names stay unaffected.
	options, err = cache.Lookup(ctx, "函館")
	require.NoError(t, err)
	require.Nil(t, options)
}

func TestCacheStoreOverwrites(t *testing.T) {
	cache, _ := openTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Store(ctx, "札幌", []string{"a", "b", "c"}))
	require.NoError(t, cache.Store(ctx, "札幌", []string{"x", "y", "z"}))

	options, err := cache.Lookup(ctx, "札幌")
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y", "z"}, options)
}

func TestCacheExpiredEntryIsAMiss(t *testing.T) {
	cache, dbPath := openTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Store(ctx, "札幌", []string{"a", "b", "c"}))

	// Backdate the entry past its TTL.
	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()
	_, err = db.Exec("UPDATE distractor_cache SET expires_at = ? WHERE cache_key = ?",
		time.Now().Add(-time.Hour).Unix(), nandoku.CacheKey("札幌"))
	require.NoError(t, err)

	options, err := cache.Lookup(ctx, "札幌")
	require.NoError(t, err)
	require.Nil(t, options)

	// The expired row is gone, not just skipped.
	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM distractor_cache").Scan(&count))
	require.Zero(t, count)
}

func TestCacheExpirySetTwentyEightDaysOut(t *testing.T) {
	cache, dbPath := openTestCache(t)
	require.NoError(t, cache.Store(context.Background(), "札幌", []string{"a", "b", "c"}))

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var expiresAt int64
	require.NoError(t, db.QueryRow("SELECT expires_at FROM distractor_cache WHERE cache_key = ?",
		nandoku.CacheKey("札幌")).Scan(&expiresAt))

	want := time.Now().Add(nandoku.CacheTTL).Unix()
	require.InDelta(t, want, expiresAt, 60)
}
