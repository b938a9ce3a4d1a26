package schedules

import (
	"encoding/json"
	"errors"
	"net/http"

	"petpal/internal/middleware"
	"petpal/internal/platform/format"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/schedules", func(sr chi.Router) {
		sr.Post("/", createScheduleHandler(svc))
		sr.Get("/", listSchedulesHandler(svc))
		sr.Patch("/{scheduleID}", updateScheduleHandler(svc))
		sr.Delete("/{scheduleID}", deleteScheduleHandler(svc))
	})
}

type createScheduleRequest struct {
	PetID  string `json:"pet_id"`
	Type   string `json:"type" enums:"feeding,walk,medication,vet,grooming,other"`
	Title  string `json:"title"`
	Date   string `json:"date"` // YYYY-MM-DD
	Time   string `json:"time"` // HH:MM
	Notes  string `json:"notes"`
	Repeat string `json:"repeat" enums:"none,daily,weekly,monthly"`
}

type updateScheduleRequest struct {
	PetID  *string `json:"pet_id"`
	Type   *string `json:"type"`
	Title  *string `json:"title"`
	Date   *string `json:"date"`
	Time   *string `json:"time"`
	Notes  *string `json:"notes"`
	Repeat *string `json:"repeat"`
}

type scheduleResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	PetID       string `json:"pet_id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	DateDisplay string `json:"date_display"` // "Jan 2, 2006"
	TimeDisplay string `json:"time_display"` // "3:04 PM"
	Notes       string `json:"notes"`
	Repeat      string `json:"repeat"`
	CreatedAt   string `json:"created_at"`
}

func createScheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.GetCurrentUser(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createScheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rec, err := svc.Create(r.Context(), user.ID, CreateInput{
			PetID:  req.PetID,
			Type:   req.Type,
			Title:  req.Title,
			Date:   req.Date,
			Time:   req.Time,
			Notes:  req.Notes,
			Repeat: req.Repeat,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toScheduleResponse(rec))
	}
}

func listSchedulesHandler(svc *Service) http.HandlerFunc {
	// El orden de salida (date, time ascendente) es el que la UI muestra;
	// el primer elemento es "el próximo recordatorio".
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.GetCurrentUser(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListForUser(r.Context(), user.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]scheduleResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toScheduleResponse(rec))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func updateScheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetCurrentUser(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateScheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rec, err := svc.Update(r.Context(), chi.URLParam(r, "scheduleID"), UpdateInput{
			PetID:  req.PetID,
			Type:   req.Type,
			Title:  req.Title,
			Date:   req.Date,
			Time:   req.Time,
			Notes:  req.Notes,
			Repeat: req.Repeat,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "schedule not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toScheduleResponse(rec))
	}
}

func deleteScheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetCurrentUser(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "scheduleID")); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toScheduleResponse(s Schedule) scheduleResponse {
	return scheduleResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		PetID:       s.PetID,
		Type:        s.Type,
		Title:       s.Title,
		Date:        s.Date,
		Time:        s.Time,
		DateDisplay: format.Date(s.Date),
		TimeDisplay: format.Time(s.Time),
		Notes:       s.Notes,
		Repeat:      s.Repeat,
		CreatedAt:   s.CreatedAt,
	}
}

// writeJSON duplicado a propósito por módulo; ver pets/handler.go.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
