package cli

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/fasim/internal/config"
	"github.com/aretw0/fasim/internal/logging"
	"github.com/aretw0/fasim/pkg/adapters/memory"
	"github.com/aretw0/fasim/pkg/adapters/redis"
	"github.com/aretw0/fasim/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLogger_DebugOverride(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "error"

	assert.False(t, CreateLogger(&cfg, false).Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, CreateLogger(&cfg, true).Enabled(context.Background(), slog.LevelDebug))
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	logger := logging.NewNop()

	t.Run("none", func(t *testing.T) {
		cfg := config.Default()
		store, closeFn, err := OpenStore(ctx, &cfg, logger)
		require.NoError(t, err)
		assert.Nil(t, store)
		assert.NoError(t, closeFn())
	})

	t.Run("memory", func(t *testing.T) {
		cfg := config.Default()
		cfg.Store.Driver = "memory"
		store, closeFn, err := OpenStore(ctx, &cfg, logger)
		require.NoError(t, err)
		assert.IsType(t, &memory.Store{}, store)
		assert.NoError(t, closeFn())
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := config.Default()
		cfg.Store.Driver = "redis"
		cfg.Store.Redis.Addr = mr.Addr()

		store, closeFn, err := OpenStore(ctx, &cfg, logger)
		require.NoError(t, err)
		assert.IsType(t, &redis.Store{}, store)
		assert.NoError(t, closeFn())
	})

	t.Run("redis unreachable", func(t *testing.T) {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		addr := mr.Addr()
		mr.Close()

		cfg := config.Default()
		cfg.Store.Driver = "redis"
		cfg.Store.Redis.Addr = addr

		_, closeFn, err := OpenStore(ctx, &cfg, logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), addr)
		assert.NoError(t, closeFn())
	})
}

func TestCreateEngine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.txt")
	require.NoError(t, os.WriteFile(path, []byte(" A ; 0 ; B \n"), 0o644))

	cfg := config.Default()
	cfg.Parse.TrimSpace = true

	var transitions int
	store := memory.NewStore()
	engine, err := CreateEngine(EngineParams{
		TablePath: path,
		Config:    &cfg,
		Logger:    logging.NewNop(),
		Store:     store,
		Debug:     true,
		Hooks: []domain.LifecycleHooks{{
			OnTransition: func(context.Context, *domain.TransitionEvent) { transitions++ },
		}},
	})
	require.NoError(t, err)

	rec, err := engine.SimulateLine(context.Background(), "A;0")
	require.NoError(t, err)
	assert.Equal(t, domain.Some("B"), rec.Trace[1].To)
	assert.Equal(t, 1, transitions)

	ids, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{rec.ID}, ids)
}

func TestCreateEngine_MissingTable(t *testing.T) {
	cfg := config.Default()
	_, err := CreateEngine(EngineParams{
		TablePath: filepath.Join(t.TempDir(), "missing.txt"),
		Config:    &cfg,
		Logger:    logging.NewNop(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error initializing engine")
}
