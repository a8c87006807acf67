package storage

import (
	"errors"
	"testing"

	"github.com/ingdavann/bookverse-project/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissingKey(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	var dest []string
	ok, err := s.Get("nope", &dest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetGetRoundTrip(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	want := []string{"978-1", "978-2"}
	require.NoError(t, s.Set("favorites", want))

	var got []string
	ok, err := s.Get("favorites", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestReopenSeesPersistedData(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set("key", map[string]int{"a": 1}))
	require.NoError(t, s.Close())

	s2, err := Open(dir)
	require.NoError(t, err)
	defer s2.Close()

	var got map[string]int
	ok, err := s2.Get("key", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, got["a"])
}

func TestDeleteIsIdempotent(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set("key", "value"))
	require.NoError(t, s.Delete("key"))
	require.NoError(t, s.Delete("key")) // absent key is a no-op

	var got string
	ok, err := s.Get("key", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryOnlyMode(t *testing.T) {
	s, err := Open("")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set("key", 42))

	var got int
	ok, err := s.Get("key", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 42, got)
}

func TestMalformedStoredDataIsPersistenceError(t *testing.T) {
	s, err := Open("")
	require.NoError(t, err)
	defer s.Close()

	// Plant a value of the wrong shape under the key
	require.NoError(t, s.Set("key", "not a slice"))

	var dest []string
	_, err = s.Get("key", &dest)
	require.Error(t, err)

	var perr *domain.PersistenceError
	assert.True(t, errors.As(err, &perr))
	assert.Equal(t, "decode", perr.Op)
}
