package health

import (
	"encoding/json"
	"errors"
	"net/http"

	"petpal/internal/middleware"
	"petpal/internal/platform/format"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/health-records", func(hr chi.Router) {
		hr.Post("/", createRecordHandler(svc))
		hr.Get("/", listRecordsHandler(svc))
		hr.Patch("/{recordID}", updateRecordHandler(svc))
		hr.Delete("/{recordID}", deleteRecordHandler(svc))
	})
}

// createRecordRequest es el cuerpo para registrar una entrada de salud.
type createRecordRequest struct {
	PetID    string `json:"pet_id"`
	Type     string `json:"type" enums:"vaccination,checkup,medication,surgery,dental,other"`
	Title    string `json:"title"`
	Date     string `json:"date"`      // YYYY-MM-DD
	NextDate string `json:"next_date"` // YYYY-MM-DD opcional
	Notes    string `json:"notes"`
}

type updateRecordRequest struct {
	PetID *string `json:"pet_id"`
	Type  *string `json:"type"`
	Title *string `json:"title"`
	Date  *string `json:"date"`
	Notes *string `json:"notes"`
	// next_date se maneja aparte para distinguir "no enviado" de null.
}

type recordResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	PetID           string  `json:"pet_id"`
	Type            string  `json:"type"`
	Title           string  `json:"title"`
	Date            string  `json:"date"`
	DateDisplay     string  `json:"date_display"`
	NextDate        *string `json:"next_date"`
	NextDateDisplay string  `json:"next_date_display,omitempty"`
	Notes           string  `json:"notes"`
	CreatedAt       string  `json:"created_at"`
}

// createRecordHandler godoc
// @Summary Registrar entrada de salud
// @Description Crea una entrada en el historial de salud de una mascota del usuario logueado. next_date es opcional (próxima dosis/control).
// @Tags health-records
// @Accept json
// @Produce json
// @Param payload body createRecordRequest true "Datos del registro; fechas en YYYY-MM-DD"
// @Success 201 {object} recordResponse
// @Failure 400 {string} string "invalid json / fecha inválida / campos requeridos"
// @Failure 401 {string} string "unauthorized"
// @Router /health-records [post]
func createRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.GetCurrentUser(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rec, err := svc.Create(r.Context(), user.ID, CreateInput{
			PetID:    req.PetID,
			Type:     req.Type,
			Title:    req.Title,
			Date:     req.Date,
			NextDate: req.NextDate,
			Notes:    req.Notes,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toRecordResponse(rec))
	}
}

// listRecordsHandler godoc
// @Summary Listar historial de salud
// @Description Lista las entradas de salud del usuario logueado, más recientes primero (date descendente).
// @Tags health-records
// @Produce json
// @Success 200 {array} recordResponse
// @Failure 401 {string} string "unauthorized"
// @Router /health-records [get]
func listRecordsHandler(svc *Service) http.HandlerFunc {
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

		out := make([]recordResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toRecordResponse(rec))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// updateRecordHandler godoc
// @Summary Actualizar entrada de salud
// @Description Patch parcial: los campos no enviados se conservan. Para limpiar next_date enviar null explícito.
// @Tags health-records
// @Accept json
// @Produce json
// @Param recordID path string true "ID del registro"
// @Param payload body updateRecordRequest true "Campos a actualizar"
// @Success 200 {object} recordResponse
// @Failure 400 {string} string "invalid json / fecha inválida"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "record not found"
// @Router /health-records/{recordID} [patch]
func updateRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetCurrentUser(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// Decodificar a map primero para saber si next_date vino en el body
		// (y diferenciar "no enviado" de "null = limpiar").
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var req updateRecordRequest
		{
			b, _ := json.Marshal(raw)
			if err := json.Unmarshal(b, &req); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
		}

		next := PatchNextDate{}
		if v, exists := raw["next_date"]; exists {
			next.Present = true
			if string(v) != "null" {
				var s string
				if err := json.Unmarshal(v, &s); err != nil {
					http.Error(w, "next_date must be YYYY-MM-DD or null", http.StatusBadRequest)
					return
				}
				next.Value = &s
			}
		}

		rec, err := svc.Update(r.Context(), chi.URLParam(r, "recordID"), UpdateInput{
			PetID:    req.PetID,
			Type:     req.Type,
			Title:    req.Title,
			Date:     req.Date,
			NextDate: next,
			Notes:    req.Notes,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "record not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toRecordResponse(rec))
	}
}

// deleteRecordHandler godoc
// @Summary Borrar entrada de salud
// @Description Borra por id. Borrar un id inexistente también responde 204 (idempotente).
// @Tags health-records
// @Param recordID path string true "ID del registro"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Router /health-records/{recordID} [delete]
func deleteRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetCurrentUser(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "recordID")); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toRecordResponse(rec Record) recordResponse {
	out := recordResponse{
		ID:          rec.ID,
		UserID:      rec.UserID,
		PetID:       rec.PetID,
		Type:        rec.Type,
		Title:       rec.Title,
		Date:        rec.Date,
		DateDisplay: format.Date(rec.Date),
		NextDate:    rec.NextDate,
		Notes:       rec.Notes,
		CreatedAt:   rec.CreatedAt,
	}
	if rec.NextDate != nil {
		out.NextDateDisplay = format.Date(*rec.NextDate)
	}
	return out
}

// writeJSON duplicado a propósito por módulo; ver pets/handler.go.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
