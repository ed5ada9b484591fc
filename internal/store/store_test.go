package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStores(t *testing.T) {
	newFileStore := func(t *testing.T) Store {
		s, err := NewFileStore(filepath.Join(t.TempDir(), "data"))
		require.NoError(t, err)
		return s
	}
	newMemoryStore := func(t *testing.T) Store { return NewMemoryStore() }

	for name, newStore := range map[string]func(*testing.T) Store{
		"memory": newMemoryStore,
		"file":   newFileStore,
	} {
		t.Run(name, func(t *testing.T) {
			t.Run("missing key loads nothing", func(t *testing.T) {
				s := newStore(t)
				data, ok, err := s.Load(GameStateKey)
				require.NoError(t, err)
				assert.False(t, ok)
				assert.Nil(t, data)
			})

			t.Run("save then load", func(t *testing.T) {
				s := newStore(t)
				require.NoError(t, s.Save(GameStateKey, []byte(`{"currentRound":3}`)))

				data, ok, err := s.Load(GameStateKey)
				require.NoError(t, err)
				require.True(t, ok)
				assert.JSONEq(t, `{"currentRound":3}`, string(data))
			})

			t.Run("save overwrites", func(t *testing.T) {
				s := newStore(t)
				require.NoError(t, s.Save(GameHistoryKey, []byte(`[1]`)))
				require.NoError(t, s.Save(GameHistoryKey, []byte(`[2]`)))

				data, ok, err := s.Load(GameHistoryKey)
				require.NoError(t, err)
				require.True(t, ok)
				assert.Equal(t, `[2]`, string(data))
			})

			t.Run("delete removes and tolerates missing keys", func(t *testing.T) {
				s := newStore(t)
				require.NoError(t, s.Save(GameStateKey, []byte(`{}`)))
				require.NoError(t, s.Delete(GameStateKey))
				require.NoError(t, s.Delete(GameStateKey))

				_, ok, err := s.Load(GameStateKey)
				require.NoError(t, err)
				assert.False(t, ok)
			})

			t.Run("empty key rejected", func(t *testing.T) {
				s := newStore(t)
				assert.ErrorIs(t, s.Save("", []byte(`{}`)), ErrInvalidKey)
				_, _, err := s.Load("")
				assert.ErrorIs(t, err, ErrInvalidKey)
				assert.ErrorIs(t, s.Delete(""), ErrInvalidKey)
			})
		})
	}
}

func TestMemoryStoreCopiesData(t *testing.T) {
	s := NewMemoryStore()
	buf := []byte(`{"a":1}`)
	require.NoError(t, s.Save("k", buf))
	buf[2] = 'b'

	data, _, err := s.Load("k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(data))
	assert.Equal(t, []string{"k"}, s.Keys())
}

func TestFileStore(t *testing.T) {
	t.Run("writes one file per key", func(t *testing.T) {
		dir := t.TempDir()
		s, err := NewFileStore(dir)
		require.NoError(t, err)
		require.NoError(t, s.Save(GameStateKey, []byte(`{}`)))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, GameStateKey+".json", entries[0].Name())
	})

	t.Run("rejects path separators", func(t *testing.T) {
		s, err := NewFileStore(t.TempDir())
		require.NoError(t, err)
		assert.ErrorIs(t, s.Save("../escape", []byte(`{}`)), ErrInvalidKey)
	})

	t.Run("requires a directory", func(t *testing.T) {
		_, err := NewFileStore("")
		assert.Error(t, err)
	})
}
