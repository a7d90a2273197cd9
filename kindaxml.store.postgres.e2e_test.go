//go:build integration

package kindaxml

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgresStore creates an ephemeral PostgreSQL container and a
// PostgresStore pointed at it, with migrations already applied.
func setupPostgresStore(t *testing.T) (*PostgresStore, func()) {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:15",
		postgres.WithDatabase("kindaxml_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start postgres container")

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	store, err := NewPostgresStore(ctx, PostgresConfig{
		ConnectionString: connStr,
		AutoMigrate:      true,
		QueryTimeout:     30 * time.Second,
	})
	require.NoError(t, err, "failed to create postgres store")

	cleanup := func() {
		_ = store.Close()
		_ = container.Terminate(ctx)
	}
	return store, cleanup
}

func TestPostgresStore_E2E_SaveLoadDelete(t *testing.T) {
	store, cleanup := setupPostgresStore(t)
	defer cleanup()
	ctx := context.Background()

	cfg := MustNewConfig(WithRecognizedTags("cite"), WithTagStrategy("cite", StrategyRetroLine))
	text := `We shipped <cite id="1">last week</cite>.`
	result := ParseWithConfig(text, cfg)

	require.NoError(t, store.Save(ctx, text, cfg, result))

	loaded, ok, err := store.Load(ctx, text, cfg)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, result.Text, loaded.Text)
	assert.Equal(t, len(result.Segments), len(loaded.Segments))

	require.NoError(t, store.Delete(ctx, text, cfg))
	_, ok, err = store.Load(ctx, text, cfg)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPostgresStore_E2E_LoadMissingKeyReturnsFalse(t *testing.T) {
	store, cleanup := setupPostgresStore(t)
	defer cleanup()
	ctx := context.Background()

	cfg := MustNewConfig()
	_, ok, err := store.Load(ctx, "never saved", cfg)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPostgresStore_E2E_SaveUpsertsOnConflict(t *testing.T) {
	store, cleanup := setupPostgresStore(t)
	defer cleanup()
	ctx := context.Background()

	cfg := MustNewConfig(WithRecognizedTags("note"))
	text := "before <note>after"

	first := ParseWithConfig(text, cfg)
	require.NoError(t, store.Save(ctx, text, cfg, first))

	second := ParseWithConfig(text, cfg)
	require.NoError(t, store.Save(ctx, text, cfg, second))

	loaded, ok, err := store.Load(ctx, text, cfg)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, second.Text, loaded.Text)
}
