package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framewright/pipeconf/internal/location"
	"github.com/framewright/pipeconf/internal/testutil"
)

func openTestCache(t *testing.T) *LocationCache {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "locations.db")
	cache, err := OpenCache(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, cache.Close()) })
	return cache
}

func TestCachePutAndGet(t *testing.T) {
	t.Cleanup(func() { testutil.VerifyNoLeaks(t) })

	cache := openTestCache(t)
	ctx := context.Background()

	rec := location.Record{Type: "app_store", Name: "tk-multi-workfiles2", Version: "v0.13.5"}
	require.NoError(t, cache.Put(ctx, "config/env/asset_step.yml", "apps.tk-multi-workfiles2.location", rec))

	got, found, err := cache.Get(ctx, "config/env/asset_step.yml", "apps.tk-multi-workfiles2.location")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, rec, got)
}

func TestCacheGetMiss(t *testing.T) {
	t.Cleanup(func() { testutil.VerifyNoLeaks(t) })

	cache := openTestCache(t)

	_, found, err := cache.Get(context.Background(), "env.yml", "apps.missing.location")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCachePutReplaces(t *testing.T) {
	t.Cleanup(func() { testutil.VerifyNoLeaks(t) })

	cache := openTestCache(t)
	ctx := context.Background()

	first := location.Record{Type: "app_store", Name: "tk-multi-publish2", Version: "v2.10.3"}
	second := location.Record{Type: "app_store", Name: "tk-multi-publish2", Version: "v2.11.0"}
	require.NoError(t, cache.Put(ctx, "env.yml", "apps.tk-multi-publish2.location", first))
	require.NoError(t, cache.Put(ctx, "env.yml", "apps.tk-multi-publish2.location", second))

	got, found, err := cache.Get(ctx, "env.yml", "apps.tk-multi-publish2.location")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "v2.11.0", got.Version)
}

func TestCacheList(t *testing.T) {
	t.Cleanup(func() { testutil.VerifyNoLeaks(t) })

	cache := openTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "env.yml", "engines.tk-clarisse.location",
		location.Record{Type: "git", Path: "https://example.com/tk-clarisse.git", Version: "v1.2.0"}))
	require.NoError(t, cache.Put(ctx, "env.yml", "apps.tk-multi-loader2.location",
		location.Record{Type: "app_store", Name: "tk-multi-loader2", Version: "v1.24.1"}))
	require.NoError(t, cache.Put(ctx, "other.yml", "apps.tk-multi-loader2.location",
		location.Record{Type: "dev", Path: "/builds/tk-multi-loader2"}))

	cached, err := cache.List(ctx, "env.yml")
	require.NoError(t, err)

	require.Len(t, cached, 2)
	assert.Equal(t, "apps.tk-multi-loader2.location", cached[0].SettingPath)
	assert.Equal(t, "engines.tk-clarisse.location", cached[1].SettingPath)
}
