package schedules

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
	mgr *records.Manager[Schedule]
	now func() time.Time
}

func NewService(st store.Store) *Service {
	return &Service{
		// Listado ascendente por (date, time): el primer registro es el
		// próximo recordatorio. El orden es contrato, no cosmética.
		mgr: records.NewManager[Schedule](st, store.CollectionSchedules, func(a, b Schedule) bool {
			return a.sortKey() < b.sortKey()
		}),
		now: time.Now,
	}
}

type CreateInput struct {
	PetID  string
	Type   string
	Title  string
	Date   string
	Time   string
	Notes  string
	Repeat string
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Schedule, error) {
	if strings.TrimSpace(userID) == "" {
		return Schedule{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Type) == "" {
		return Schedule{}, ErrInvalidInput
	}
	if !validDate(in.Date) || !validTime(in.Time) {
		return Schedule{}, ErrInvalidInput
	}

	repeat := strings.TrimSpace(in.Repeat)
	if repeat == "" {
		repeat = string(RepeatNone)
	}

	now := s.now()
	rec := Schedule{
		ID:        records.NewID(now),
		UserID:    userID,
		PetID:     strings.TrimSpace(in.PetID),
		Type:      strings.TrimSpace(in.Type),
		Title:     strings.TrimSpace(in.Title),
		Date:      in.Date,
		Time:      in.Time,
		Notes:     in.Notes,
		Repeat:    repeat,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}

	if err := s.mgr.Append(ctx, rec); err != nil {
		return Schedule{}, err
	}
	return rec, nil
}

func (s *Service) ListForUser(ctx context.Context, userID string) ([]Schedule, error) {
	return s.mgr.ListForUser(ctx, userID)
}

type UpdateInput struct {
	PetID  *string
	Type   *string
	Title  *string
	Date   *string
	Time   *string
	Notes  *string
	Repeat *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Schedule, error) {
	if strings.TrimSpace(id) == "" {
		return Schedule{}, ErrInvalidInput
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return Schedule{}, ErrInvalidInput
	}
	if in.Date != nil && !validDate(*in.Date) {
		return Schedule{}, ErrInvalidInput
	}
	if in.Time != nil && !validTime(*in.Time) {
		return Schedule{}, ErrInvalidInput
	}

	return s.mgr.Update(ctx, id, func(rec Schedule) Schedule {
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
		if in.Time != nil {
			rec.Time = *in.Time
		}
		if in.Notes != nil {
			rec.Notes = *in.Notes
		}
		if in.Repeat != nil {
			rec.Repeat = *in.Repeat
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

func validTime(hhmm string) bool {
	_, err := time.Parse("15:04", hhmm)
	return err == nil
}
