package session

import (
	"context"
	"testing"

	"github.com/Misgexx/Fairtrack/internal/common"
	"github.com/Misgexx/Fairtrack/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_StartsLoading(t *testing.T) {
	m := NewManager(storage.NewMemoryStore())
	assert.True(t, m.Loading())

	_, ok := m.CurrentUser()
	assert.False(t, ok)
}

func TestManager_TransitionsRequireLoad(t *testing.T) {
	ctx := context.Background()
	m := NewManager(storage.NewMemoryStore())

	_, err := m.SignInEmail(ctx, "a@b.com", "x")
	assert.ErrorIs(t, err, common.ErrSessionLoading)

	_, err = m.SignInGoogle(ctx)
	assert.ErrorIs(t, err, common.ErrSessionLoading)

	assert.ErrorIs(t, m.SignOut(ctx), common.ErrSessionLoading)
}

func TestManager_LoadWithoutSnapshotSignsOut(t *testing.T) {
	m := NewManager(storage.NewMemoryStore())
	require.NoError(t, m.Load(context.Background()))

	assert.False(t, m.Loading())
	_, ok := m.CurrentUser()
	assert.False(t, ok)
}

func TestManager_SignInEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid email", email: "a@b.com"},
		{name: "missing at sign", email: "not-an-email", wantErr: true},
		{name: "empty", email: "", wantErr: true},
		{name: "whitespace trimmed", email: "  a@b.com  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := storage.NewMemoryStore()
			m := NewManager(store)
			require.NoError(t, m.Load(ctx))

			u, err := m.SignInEmail(ctx, tt.email, "hunter2")
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, common.IsValidation(err))

				// Failed sign-in leaves the session signed out and
				// nothing persisted.
				_, ok := m.CurrentUser()
				assert.False(t, ok)
				assert.Equal(t, 0, store.Len())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, ProviderEmail, u.Provider)
			assert.Contains(t, u.Email, "@")
			assert.NotEmpty(t, u.ID)

			got, ok := m.CurrentUser()
			require.True(t, ok)
			assert.Equal(t, u, got)
		})
	}
}

func TestManager_SignInPersistsAcrossRestart(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	m := NewManager(store)
	require.NoError(t, m.Load(ctx))
	u, err := m.SignInEmail(ctx, "a@b.com", "x")
	require.NoError(t, err)

	// A fresh manager over the same store restores the same user.
	restarted := NewManager(store)
	require.NoError(t, restarted.Load(ctx))

	got, ok := restarted.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, u, got)
}

func TestManager_SignUpEmailMintsFreshSession(t *testing.T) {
	ctx := context.Background()
	m := NewManager(storage.NewMemoryStore())
	require.NoError(t, m.Load(ctx))

	first, err := m.SignUpEmail(ctx, "a@b.com", "x")
	require.NoError(t, err)
	second, err := m.SignInEmail(ctx, "a@b.com", "x")
	require.NoError(t, err)

	// Sessions are replaced wholesale, each with its own id.
	assert.NotEqual(t, first.ID, second.ID)
}

func TestManager_SignInGoogle(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	m := NewManager(store)
	require.NoError(t, m.Load(ctx))

	u, err := m.SignInGoogle(ctx)
	require.NoError(t, err)
	assert.Equal(t, ProviderGoogle, u.Provider)
	assert.Empty(t, u.Email)

	restarted := NewManager(store)
	require.NoError(t, restarted.Load(ctx))
	got, ok := restarted.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, u, got)
}

func TestManager_SignOutErasesSnapshot(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	m := NewManager(store)
	require.NoError(t, m.Load(ctx))

	_, err := m.SignInEmail(ctx, "a@b.com", "x")
	require.NoError(t, err)
	require.Equal(t, 1, store.Len())

	require.NoError(t, m.SignOut(ctx))
	_, ok := m.CurrentUser()
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())

	// Restart after sign-out stays signed out.
	restarted := NewManager(store)
	require.NoError(t, restarted.Load(ctx))
	_, ok = restarted.CurrentUser()
	assert.False(t, ok)
}

func TestManager_PersistFailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	m := NewManager(store)
	require.NoError(t, m.Load(ctx))

	store.SetFailWrites(assert.AnError)
	_, err := m.SignInEmail(ctx, "a@b.com", "x")
	require.Error(t, err)

	var perr *common.PersistenceError
	require.ErrorAs(t, err, &perr)

	// The in-memory session never advanced past what storage holds.
	_, ok := m.CurrentUser()
	assert.False(t, ok)
}

func TestManager_LoadRejectsCorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, storage.SessionKey, "{corrupt"))

	m := NewManager(store)
	err := m.Load(ctx)
	require.Error(t, err)

	// Corrupt state resolves to signed out, not a stuck loading flag.
	assert.False(t, m.Loading())
	_, ok := m.CurrentUser()
	assert.False(t, ok)
}
