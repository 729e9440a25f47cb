package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikens/recetas-api/internal/client/api"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestFileStore_SessionRoundTrip(t *testing.T) {
	store := newTestStore(t)

	rec := &Record{
		User:  api.User{ID: "user-1", Nombre: "Ana", Email: "ana@x.com"},
		Token: "tok-abc",
	}
	require.NoError(t, store.SaveSession(rec))

	loaded, err := store.LoadSession()
	require.NoError(t, err)
	assert.Equal(t, rec, loaded)
}

func TestFileStore_LoadSession_Missing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.LoadSession()
	assert.ErrorIs(t, err, ErrNoRecord)
}

func TestFileStore_LoadSession_IncompleteRecord(t *testing.T) {
	store := newTestStore(t)

	// A record without a token is as good as no record.
	require.NoError(t, store.SaveSession(&Record{User: api.User{ID: "user-1"}}))

	_, err := store.LoadSession()
	assert.ErrorIs(t, err, ErrNoRecord)
}

func TestFileStore_LoadSession_Corrupt(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte("{not json"), 0o600))

	_, err = store.LoadSession()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoRecord)
}

func TestFileStore_ClearSession_Idempotent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveSession(&Record{User: api.User{ID: "u"}, Token: "t"}))
	require.NoError(t, store.ClearSession())
	require.NoError(t, store.ClearSession())

	_, err := store.LoadSession()
	assert.ErrorIs(t, err, ErrNoRecord)
}

func TestFileStore_RememberIndependentFromSession(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveSession(&Record{User: api.User{ID: "u"}, Token: "t"}))
	require.NoError(t, store.SaveRemember(Touch("ana@x.com")))

	require.NoError(t, store.ClearSession())

	rec, err := store.LoadRemember()
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", rec.Email)
	assert.True(t, rec.RememberMe)
	assert.NotZero(t, rec.Timestamp)
}

func TestFileStore_LoadRemember_DisabledFlag(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveRemember(&RememberRecord{Email: "ana@x.com", RememberMe: false}))

	_, err := store.LoadRemember()
	assert.ErrorIs(t, err, ErrNoRecord)
}
