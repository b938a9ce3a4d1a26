package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"petpal/internal/domain/records"
	"petpal/internal/store"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = records.ErrNotFound
)

type Service struct {
	mgr *records.Manager[Pet]
	now func() time.Time
}

func NewService(st store.Store) *Service {
	return &Service{
		// Pets se listan en orden de alta (sin orden especial).
		mgr: records.NewManager[Pet](st, store.CollectionPets, nil),
		now: time.Now,
	}
}

type CreateInput struct {
	Name   string
	Type   string
	Breed  string
	Age    float64
	Weight float64
	Notes  string
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(userID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Type) == "" {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		ID:        records.NewID(now),
		UserID:    userID,
		Name:      strings.TrimSpace(in.Name),
		Type:      strings.TrimSpace(in.Type),
		Breed:     strings.TrimSpace(in.Breed),
		Age:       in.Age,
		Weight:    in.Weight,
		Notes:     in.Notes,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}

	if err := s.mgr.Append(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.mgr.Get(ctx, id)
}

func (s *Service) ListForUser(ctx context.Context, userID string) ([]Pet, error) {
	return s.mgr.ListForUser(ctx, userID)
}

// UpdateInput es un patch: nil = no tocar ese campo.
type UpdateInput struct {
	Name   *string
	Type   *string
	Breed  *string
	Age    *float64
	Weight *float64
	Notes  *string
}

// Update mergea el patch sobre el registro existente; los campos no enviados
// se conservan. Busca en la colección completa, sin chequeo de dueño
// (decisión documentada en DESIGN.md).
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	if strings.TrimSpace(id) == "" {
		return Pet{}, ErrInvalidInput
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}

	return s.mgr.Update(ctx, id, func(p Pet) Pet {
		if in.Name != nil {
			p.Name = strings.TrimSpace(*in.Name)
		}
		if in.Type != nil {
			p.Type = strings.TrimSpace(*in.Type)
		}
		if in.Breed != nil {
			p.Breed = strings.TrimSpace(*in.Breed)
		}
		if in.Age != nil {
			p.Age = *in.Age
		}
		if in.Weight != nil {
			p.Weight = *in.Weight
		}
		if in.Notes != nil {
			p.Notes = *in.Notes
		}
		return p
	})
}

// Delete es idempotente. No borra en cascada: schedules y healthRecords que
// referencien esta mascota quedan con petId colgante, igual que el original.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.mgr.Delete(ctx, id)
}
