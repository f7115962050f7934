package doses

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"glucose-iob/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/doses", func(dr chi.Router) {
		dr.Post("/", createDoseHandler(svc))
		dr.Get("/", listDosesHandler(svc))
	})
}

// createDoseRequest es el cuerpo para registrar una dosis inyectable.
type createDoseRequest struct {
	MedicationID string  `json:"medication_id"`
	Units        float64 `json:"units"`
	TakenAt      string  `json:"taken_at"` // RFC3339
	Notes        string  `json:"notes"`
}

// doseResponse representa una dosis devuelta por la API.
type doseResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	MedicationID string    `json:"medication_id"`
	Units        float64   `json:"units"`
	TakenAt      time.Time `json:"taken_at"`
	RecordedAt   time.Time `json:"recorded_at"`
	Notes        string    `json:"notes"`
}

// createDoseHandler godoc
// @Summary Registrar dosis inyectable
// @Description Registra una dosis de pluma/jeringa asociada a un medicamento del usuario. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>`.
// @Tags doses
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createDoseRequest true "Datos de la dosis; taken_at en formato RFC3339"
// @Success 201 {object} doseResponse
// @Failure 400 {string} string "invalid json / unidades o taken_at inválidos / medicamento desconocido"
// @Failure 401 {string} string "unauthorized"
// @Router /doses [post]
func createDoseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createDoseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, err := time.Parse(time.RFC3339, req.TakenAt)
		if err != nil {
			http.Error(w, "taken_at must be RFC3339", http.StatusBadRequest)
			return
		}

		d, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			MedicationID: req.MedicationID,
			Units:        req.Units,
			TakenAt:      t,
			Notes:        req.Notes,
		})
		if err != nil {
			if errors.Is(err, ErrMedicationUnknown) {
				http.Error(w, "medication unknown", http.StatusBadRequest)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toDoseResponse(d))
	}
}

// listDosesHandler godoc
// @Summary Listar dosis del usuario
// @Description Lista dosis inyectables del usuario, más recientes primero. Permite filtrar por rango de fechas.
// @Tags doses
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param limit query int false "Máximo de dosis a devolver (1-200). Por defecto 50"
// @Param from query string false "Fecha/hora mínima taken_at (RFC3339)"
// @Param to query string false "Fecha/hora máxima taken_at (RFC3339)"
// @Success 200 {array} doseResponse
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /doses [get]
func listDosesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.ListByUser(r.Context(), claims.UserID, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]doseResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toDoseResponse(d))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	filter := ListFilter{Limit: limit}

	if v := strings.TrimSpace(r.URL.Query().Get("from")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return ListFilter{}, errors.New("from must be RFC3339")
		}
		filter.From = &t
	}
	if v := strings.TrimSpace(r.URL.Query().Get("to")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return ListFilter{}, errors.New("to must be RFC3339")
		}
		filter.To = &t
	}

	return filter, nil
}

func toDoseResponse(d Dose) doseResponse {
	return doseResponse{
		ID:           d.ID,
		UserID:       d.UserID,
		MedicationID: d.MedicationID,
		Units:        d.Units,
		TakenAt:      d.TakenAt,
		RecordedAt:   d.RecordedAt,
		Notes:        d.Notes,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
