package storage

import (
	"context"
	"testing"

	"github.com/Misgexx/Fairtrack/internal/common"
	"github.com/Misgexx/Fairtrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecords_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	records := NewRecords(NewMemoryStore())

	r := model.NewRecord("Initech")
	r = model.ApplyEdit(r, model.SetNotes{Value: "booth 12"})
	r = model.ApplyEdit(r, model.SetReminder{When: model.Date("2026-09-15")})

	require.NoError(t, records.Save(ctx, r))

	got, err := records.Load(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r, got)
}

func TestRecords_LoadMissing(t *testing.T) {
	records := NewRecords(NewMemoryStore())

	_, err := records.Load(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestRecords_ListSortsByCompany(t *testing.T) {
	ctx := context.Background()
	records := NewRecords(NewMemoryStore())

	for _, name := range []string{"Zenefits", "aviato", "Initech"} {
		require.NoError(t, records.Save(ctx, model.NewRecord(name)))
	}

	got, err := records.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "aviato", got[0].Company)
	assert.Equal(t, "Initech", got[1].Company)
	assert.Equal(t, "Zenefits", got[2].Company)
}

func TestRecords_FindByCompany(t *testing.T) {
	ctx := context.Background()
	records := NewRecords(NewMemoryStore())

	r := model.NewRecord("Initech")
	require.NoError(t, records.Save(ctx, r))

	got, err := records.FindByCompany(ctx, "  initech ")
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)

	_, err = records.FindByCompany(ctx, "Hooli")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestRecords_Delete(t *testing.T) {
	ctx := context.Background()
	records := NewRecords(NewMemoryStore())

	r := model.NewRecord("Initech")
	require.NoError(t, records.Save(ctx, r))
	require.NoError(t, records.Delete(ctx, r.ID))

	_, err := records.Load(ctx, r.ID)
	require.ErrorIs(t, err, common.ErrNotFound)

	// Deleting again is a no-op.
	require.NoError(t, records.Delete(ctx, r.ID))
}
