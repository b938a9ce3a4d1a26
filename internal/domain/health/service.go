package health

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
	mgr *records.Manager[Record]
	now func() time.Time
}

func NewService(st store.Store) *Service {
	return &Service{
		// Descendente por date: lo más reciente primero. Igual que en
		// schedules, el orden es parte del contrato de listado.
		mgr: records.NewManager[Record](st, store.CollectionHealthRecords, func(a, b Record) bool {
			return a.Date > b.Date
		}),
		now: time.Now,
	}
}

type CreateInput struct {
	PetID    string
	Type     string
	Title    string
	Date     string
	NextDate string // vacío => null
	Notes    string
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Record, error) {
	if strings.TrimSpace(userID) == "" {
		return Record{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Type) == "" {
		return Record{}, ErrInvalidInput
	}
	if !validDate(in.Date) {
		return Record{}, ErrInvalidInput
	}

	var next *string
	if strings.TrimSpace(in.NextDate) != "" {
		if !validDate(in.NextDate) {
			return Record{}, ErrInvalidInput
		}
		nd := in.NextDate
		next = &nd
	}

	now := s.now()
	rec := Record{
		ID:        records.NewID(now),
		UserID:    userID,
		PetID:     strings.TrimSpace(in.PetID),
		Type:      strings.TrimSpace(in.Type),
		Title:     strings.TrimSpace(in.Title),
		Date:      in.Date,
		NextDate:  next,
		Notes:     in.Notes,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}

	if err := s.mgr.Append(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Service) ListForUser(ctx context.Context, userID string) ([]Record, error) {
	return s.mgr.ListForUser(ctx, userID)
}

// UpdateInput es un patch. NextDate distingue tres estados: no enviado
// (Present=false), enviado null (Value=nil, limpia la fecha) y enviado con
// valor.
type UpdateInput struct {
	PetID    *string
	Type     *string
	Title    *string
	Date     *string
	NextDate PatchNextDate
	Notes    *string
}

type PatchNextDate struct {
	Present bool
	Value   *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Record, error) {
	if strings.TrimSpace(id) == "" {
		return Record{}, ErrInvalidInput
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return Record{}, ErrInvalidInput
	}
	if in.Date != nil && !validDate(*in.Date) {
		return Record{}, ErrInvalidInput
	}
	if in.NextDate.Present && in.NextDate.Value != nil && !validDate(*in.NextDate.Value) {
		return Record{}, ErrInvalidInput
	}

	return s.mgr.Update(ctx, id, func(rec Record) Record {
		if in.PetID != nil {
			rec.PetID = strings.TrimSpace(*in.PetID)
		}
		if in.Type != nil {
			rec.Type = strings.TrimSpace(*in.Type)
		}
		if in.Title != nil {
			rec.Title = strings.TrimSpace(*in.Title)
		}
		if in.Date != nil {
			rec.Date = *in.Date
		}
		if in.NextDate.Present {
			rec.NextDate = in.NextDate.Value
		}
		if in.Notes != nil {
			rec.Notes = *in.Notes
		}
		return rec
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.mgr.Delete(ctx, id)
}

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
