package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/techmart/storefront/internal/core/domain"
	"github.com/techmart/storefront/internal/core/port"
)

var _ port.Snapshotter = (*FileStore)(nil)

// FileStore keeps one flat JSON file per snapshot key. Every Save rewrites
// the whole value; there is no partial update.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (FileStore, error) {
	const op = "NewFileStore"

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return FileStore{}, fmt.Errorf("%s: %w", op, err)
	}
	return FileStore{dir}, nil
}

func (s FileStore) Save(key string, v any) error {
	const op = "FileStore.Save"

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	// write aside and rename so a crash never leaves a half-written snapshot
	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s FileStore) Load(key string, v any) error {
	const op = "FileStore.Load"

	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s FileStore) Delete(key string) error {
	const op = "FileStore.Delete"

	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
