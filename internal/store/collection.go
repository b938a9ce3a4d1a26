package store

import (
	"context"
	"encoding/json"
)

// Collection tipa una colección del Store como secuencia ordenada de T.
//
// La deserialización "falla abierta": colección ausente o corrupta se lee
// como secuencia vacía, nunca como error. Así un valor dañado en el medio
// de persistencia no tumba la app; el usuario simplemente ve la lista vacía.
type Collection[T any] struct {
	store Store
	name  string
}

func NewCollection[T any](s Store, name string) *Collection[T] {
	return &Collection[T]{store: s, name: name}
}

func (c *Collection[T]) Name() string { return c.name }

// Load lee y decodifica la colección completa, en orden de inserción.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	raw, err := c.store.Read(ctx, c.name)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []T{}, nil
	}

	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		// Valor corrupto => colección vacía (fail-open).
		return []T{}, nil
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// Save serializa y sobreescribe la colección completa.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	b, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return c.store.Write(ctx, c.name, b)
}
