package kvstore_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/limbo/rehab/pkg/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyString(t *testing.T) {
	playerID := uuid.MustParse("7c1f0d4e-2b2f-4f57-9a0e-3f5d8a1b2c3d")
	assert.Equal(t, "rehab_log:7c1f0d4e-2b2f-4f57-9a0e-3f5d8a1b2c3d:locked_42_0", kvstore.CompletionKey(playerID, "locked_42_0").String())
	assert.Equal(t, "rehab_streak:7c1f0d4e-2b2f-4f57-9a0e-3f5d8a1b2c3d", kvstore.StreakKey(playerID).String())
}

func TestStores(t *testing.T) {
	badgerStore, err := kvstore.OpenBadger("")
	require.NoError(t, err)
	t.Cleanup(func() {
		badgerStore.Close()
	})
	diskStore, err := kvstore.OpenBadger(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		diskStore.Close()
	})
	stores := map[string]kvstore.Store{
		"memory":           kvstore.NewMemoryStore(),
		"badger in-memory": badgerStore,
		"badger on disk":   diskStore,
	}
	ctx := context.Background()
	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			playerID := uuid.New()
			key := kvstore.CompletionKey(playerID, "daily_1")

			_, err := store.Get(ctx, key)
			assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)

			require.NoError(t, store.Set(ctx, key, []byte("first")))
			require.NoError(t, store.Set(ctx, key, []byte("second")))
			value, err := store.Get(ctx, key)
			require.NoError(t, err)
			assert.Equal(t, []byte("second"), value)

			_, err = store.Get(ctx, kvstore.CompletionKey(uuid.New(), "daily_1"))
			assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)
			_, err = store.Get(ctx, kvstore.StreakKey(playerID))
			assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)
		})
	}
}
