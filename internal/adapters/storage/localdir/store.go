package localdir

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"petpal/internal/store"
)

// dirStore persiste cada colección como un archivo JSON dentro de un
// directorio de datos: el análogo de localStorage cuando PetPal corre
// fuera del navegador. Un archivo por colección, valor completo.
type dirStore struct {
	dir string
}

func NewStore(dir string) (store.Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("localdir: data dir required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &dirStore{dir: dir}, nil
}

func (s *dirStore) Read(ctx context.Context, collection string) ([]byte, error) {
	raw, err := os.ReadFile(s.path(collection))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return raw, nil
}

func (s *dirStore) Write(ctx context.Context, collection string, data []byte) error {
	// Escribir a un temp y renombrar: el rename es atómico dentro del mismo
	// filesystem, así nunca queda un archivo a medio escribir.
	tmp := s.path(collection) + ".tmp-" + uuid.NewString()
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path(collection)); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func (s *dirStore) Delete(ctx context.Context, collection string) error {
	err := os.Remove(s.path(collection))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *dirStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}
