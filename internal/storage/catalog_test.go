package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/ledgerfield/internal/common"
)

func TestTxMethods(t *testing.T) {
	ctx := context.Background()

	t.Run("listed in creation order", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		for _, name := range []string{"Cash", "Bank", "Credit Card"} {
			require.NoError(t, store.AddTxMethod(ctx, name))
		}

		methods, err := store.ListTxMethods(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Cash", "Bank", "Credit Card"}, methods)
	})

	t.Run("duplicate ignores case", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		require.NoError(t, store.AddTxMethod(ctx, "Bank"))
		err := store.AddTxMethod(ctx, "BANK")
		assert.ErrorIs(t, err, common.ErrDuplicateEntry)
	})

	t.Run("remove", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		require.NoError(t, store.AddTxMethod(ctx, "Bank"))
		require.NoError(t, store.AddTxMethod(ctx, "Cash"))
		require.NoError(t, store.RemoveTxMethod(ctx, "bank"))

		methods, err := store.ListTxMethods(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Cash"}, methods)

		assert.ErrorIs(t, store.RemoveTxMethod(ctx, "Bank"), common.ErrNotFound)
	})

	t.Run("new entries go after removed ones", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		require.NoError(t, store.AddTxMethod(ctx, "Bank"))
		require.NoError(t, store.AddTxMethod(ctx, "Cash"))
		require.NoError(t, store.RemoveTxMethod(ctx, "Bank"))
		require.NoError(t, store.AddTxMethod(ctx, "Bank"))

		methods, err := store.ListTxMethods(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Cash", "Bank"}, methods)
	})
}

func TestTags(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	tags, err := store.ListTags(ctx)
	require.NoError(t, err)
	assert.Empty(t, tags)

	require.NoError(t, store.AddTag(ctx, "food"))
	require.NoError(t, store.AddTag(ctx, "travel"))
	assert.ErrorIs(t, store.AddTag(ctx, "Food"), common.ErrDuplicateEntry)

	tags, err = store.ListTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"food", "travel"}, tags)

	require.NoError(t, store.RemoveTag(ctx, "FOOD"))
	tags, err = store.ListTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"travel"}, tags)
}

func TestAddEntryValidation(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty", input: "", wantErr: ErrEmptyString},
		{name: "spaces", input: " food ", wantErr: ErrInvalidName},
		{name: "comma", input: "food,travel", wantErr: ErrInvalidName},
		{name: "too long", input: strings.Repeat("a", maxNameLength+1), wantErr: ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, store.AddTag(ctx, tt.input), tt.wantErr)
		})
	}
}

func TestSnapshot(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.NoError(t, store.AddTxMethod(ctx, "Bank"))
	require.NoError(t, store.AddTxMethod(ctx, "Cash"))
	require.NoError(t, store.AddTag(ctx, "food"))

	catalog, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bank", "Cash"}, catalog.TxMethods())
	assert.Equal(t, []string{"food"}, catalog.Tags())

	// Later writes do not leak into an existing snapshot
	require.NoError(t, store.AddTag(ctx, "travel"))
	assert.Equal(t, []string{"food"}, catalog.Tags())
}
