package snapshot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techmart/storefront/internal/adapter/snapshot"
	"github.com/techmart/storefront/internal/core/domain"
)

type payload struct {
	Name  string
	Count int
}

func TestFileStore(t *testing.T) {
	t.Run("SaveLoadRoundTrip", func(t *testing.T) {
		store, err := snapshot.NewFileStore(t.TempDir())
		require.NoError(t, err)

		saved := payload{Name: "cart", Count: 3}
		require.NoError(t, store.Save("testKey", saved))

		var loaded payload
		require.NoError(t, store.Load("testKey", &loaded))
		assert.Equal(t, saved, loaded)
	})

	t.Run("SaveOverwritesWholeValue", func(t *testing.T) {
		store, err := snapshot.NewFileStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Save("testKey", payload{Name: "first"}))
		require.NoError(t, store.Save("testKey", payload{Name: "second"}))

		var loaded payload
		require.NoError(t, store.Load("testKey", &loaded))
		assert.Equal(t, "second", loaded.Name)
	})

	t.Run("MissingKey", func(t *testing.T) {
		store, err := snapshot.NewFileStore(t.TempDir())
		require.NoError(t, err)

		var loaded payload
		err = store.Load("absent", &loaded)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("CorruptFile", func(t *testing.T) {
		dir := t.TempDir()
		store, err := snapshot.NewFileStore(dir)
		require.NoError(t, err)

		err = os.WriteFile(filepath.Join(dir, "testKey.json"), []byte("{broken"), 0o644)
		require.NoError(t, err)

		var loaded payload
		err = store.Load("testKey", &loaded)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		store, err := snapshot.NewFileStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Save("testKey", payload{Name: "gone"}))
		require.NoError(t, store.Delete("testKey"))

		var loaded payload
		assert.ErrorIs(t, store.Load("testKey", &loaded), domain.ErrNotFound)
	})

	t.Run("DeleteMissingKeyIsNoop", func(t *testing.T) {
		store, err := snapshot.NewFileStore(t.TempDir())
		require.NoError(t, err)
		assert.NoError(t, store.Delete("absent"))
	})
}
