// Package records implementa el ciclo CRUD común a todas las colecciones de
// entidades de PetPal (pets, schedules, healthRecords): listar filtrando por
// dueño, agregar, parchear por id y borrar por id, siempre como
// read-modify-write de la colección completa contra el Store.
package records

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"petpal/internal/store"
)

var (
	ErrNotFound = errors.New("not found")
)

// Entity es cualquier registro con id propio y dueño.
type Entity interface {
	EntityID() string
	EntityUserID() string
}

// NewID genera el id de un registro nuevo: el timestamp de creación en
// milisegundos, como string decimal. Una colisión sub-milisegundo es posible
// y tolerada; no se detecta.
func NewID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// Manager parametriza el CRUD por colección y orden de listado.
type Manager[T Entity] struct {
	col  *store.Collection[T]
	less func(a, b T) bool // nil => orden de inserción
}

func NewManager[T Entity](s store.Store, collection string, less func(a, b T) bool) *Manager[T] {
	return &Manager[T]{
		col:  store.NewCollection[T](s, collection),
		less: less,
	}
}

// ListForUser devuelve los registros cuyo userId coincide, en el orden de
// listado del manager. Sin usuario (userID vacío) la lista es vacía: nunca
// se filtran registros de otro dueño hacia afuera.
func (m *Manager[T]) ListForUser(ctx context.Context, userID string) ([]T, error) {
	if userID == "" {
		return []T{}, nil
	}

	all, err := m.col.Load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(all))
	for _, rec := range all {
		if rec.EntityUserID() == userID {
			out = append(out, rec)
		}
	}

	if m.less != nil {
		sort.SliceStable(out, func(i, j int) bool { return m.less(out[i], out[j]) })
	}
	return out, nil
}

// Get busca por id en la colección completa.
func (m *Manager[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T

	all, err := m.col.Load(ctx)
	if err != nil {
		return zero, err
	}
	for _, rec := range all {
		if rec.EntityID() == id {
			return rec, nil
		}
	}
	return zero, ErrNotFound
}

// Append agrega el registro al final y persiste la colección completa.
func (m *Manager[T]) Append(ctx context.Context, rec T) error {
	all, err := m.col.Load(ctx)
	if err != nil {
		return err
	}
	all = append(all, rec)
	return m.col.Save(ctx, all)
}

// Update localiza por id en la colección COMPLETA (sin chequeo de dueño,
// igual que el diseño original; ver DESIGN.md), aplica el merge y persiste.
// Los campos que apply no toca se conservan tal cual.
func (m *Manager[T]) Update(ctx context.Context, id string, apply func(T) T) (T, error) {
	var zero T

	all, err := m.col.Load(ctx)
	if err != nil {
		return zero, err
	}

	for i, rec := range all {
		if rec.EntityID() != id {
			continue
		}
		updated := apply(rec)
		all[i] = updated
		if err := m.col.Save(ctx, all); err != nil {
			return zero, err
		}
		return updated, nil
	}

	return zero, ErrNotFound
}

// Delete remueve el registro con ese id y persiste. Borrar un id inexistente
// es un no-op, no un error (idempotente).
func (m *Manager[T]) Delete(ctx context.Context, id string) error {
	all, err := m.col.Load(ctx)
	if err != nil {
		return err
	}

	kept := make([]T, 0, len(all))
	for _, rec := range all {
		if rec.EntityID() != id {
			kept = append(kept, rec)
		}
	}
	return m.col.Save(ctx, kept)
}
