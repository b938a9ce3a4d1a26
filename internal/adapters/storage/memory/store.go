package memory

import (
	"context"
	"sync"

	"petpal/internal/store"
)

// kvStore guarda las colecciones en un map. Es el backend por defecto
// (dev y tests); todo se pierde al reiniciar.
type kvStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewStore() store.Store {
	return &kvStore{
		data: make(map[string][]byte),
	}
}

func (s *kvStore) Read(ctx context.Context, collection string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.data[collection]
	if !ok {
		return nil, nil
	}

	// Copia defensiva: el caller no debe poder mutar el valor guardado.
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

func (s *kvStore) Write(ctx context.Context, collection string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]byte, len(data))
	copy(cp, data)
	s.data[collection] = cp
	return nil
}

func (s *kvStore) Delete(ctx context.Context, collection string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, collection)
	return nil
}
