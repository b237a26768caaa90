package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MilosMiki/GPGSL-boosts/internal/common"
	"github.com/MilosMiki/GPGSL-boosts/internal/model"
)

func TestFixedTitleRoundTrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	fixed := &model.FixedTitle{
		MessageID:     "12345",
		OriginalTitle: "boost pls!!",
		FixedTitle:    "Driver Boost - John Smith - Monaco",
		Sender:        "jsmith",
	}
	require.NoError(t, store.SaveFixedTitle(ctx, fixed))
	assert.False(t, fixed.CreatedAt.IsZero(), "created-at is stamped on save")

	overrides, err := store.GetOverrides(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"12345": "Driver Boost - John Smith - Monaco"}, overrides)

	// Re-fixing the same message replaces the override.
	fixed.FixedTitle = "Driver Boost - Maria Lopez - Monaco"
	require.NoError(t, store.SaveFixedTitle(ctx, fixed))

	fixes, err := store.ListFixedTitles(ctx)
	require.NoError(t, err)
	require.Len(t, fixes, 1)
	assert.Equal(t, "Driver Boost - Maria Lopez - Monaco", fixes[0].FixedTitle)
	assert.Equal(t, "boost pls!!", fixes[0].OriginalTitle)

	require.NoError(t, store.DeleteFixedTitle(ctx, "12345"))
	assert.ErrorIs(t, store.DeleteFixedTitle(ctx, "12345"), common.ErrNotFound)
}

func TestSaveFixedTitleValidation(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	assert.ErrorIs(t, store.SaveFixedTitle(ctx, nil), ErrNilParameter)
	assert.ErrorIs(t, store.SaveFixedTitle(ctx, &model.FixedTitle{FixedTitle: "x"}), ErrInvalidFix)
	assert.ErrorIs(t, store.SaveFixedTitle(ctx, &model.FixedTitle{MessageID: "1"}), ErrInvalidFix)
}

func TestWarningRoundTrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveWarning(ctx, &model.WarningTotal{Username: "jsmith", Warnings: 1}))
	require.NoError(t, store.SaveWarning(ctx, &model.WarningTotal{Username: "enzo", Warnings: 2, NotPosted: true}))

	// Upsert bumps the count in place.
	require.NoError(t, store.SaveWarning(ctx, &model.WarningTotal{Username: "jsmith", Warnings: 2}))

	totals, err := store.ListWarnings(ctx)
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, model.WarningTotal{Username: "enzo", Warnings: 2, NotPosted: true}, totals[0])
	assert.Equal(t, model.WarningTotal{Username: "jsmith", Warnings: 2}, totals[1])
}
