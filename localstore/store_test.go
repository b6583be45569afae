package localstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemory()

	_, ok, err := s.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("petzone-cart", `[{"product_id":"1","quantity":2}]`))
	v, ok, err := s.Get("petzone-cart")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"product_id":"1","quantity":2}]`, v)

	require.NoError(t, s.Set("petzone-cart", `[]`))
	v, _, _ = s.Get("petzone-cart")
	assert.Equal(t, `[]`, v)

	require.NoError(t, s.Remove("petzone-cart"))
	_, ok, _ = s.Get("petzone-cart")
	assert.False(t, ok)

	// Removing an absent key is a no-op.
	require.NoError(t, s.Remove("petzone-cart"))
}

func TestDBStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "petzone.db")

	s, err := Open("", path)
	require.NoError(t, err)

	require.NoError(t, s.Set("petzone-user", `{"username":"admin"}`))
	require.NoError(t, s.Set("petzone-user", `{"username":"demo"}`))

	v, ok, err := s.Get("petzone-user")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"username":"demo"}`, v)

	// Values survive reopening the same file.
	s2, err := Open("", path)
	require.NoError(t, err)
	v, ok, err = s2.Get("petzone-user")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"username":"demo"}`, v)

	require.NoError(t, s2.Remove("petzone-user"))
	_, ok, err = s2.Get("petzone-user")
	require.NoError(t, err)
	assert.False(t, ok)
}
