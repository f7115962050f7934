package treatments

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
	r.Route("/treatments", func(tr chi.Router) {
		tr.Post("/", createTreatmentHandler(svc))
		tr.Get("/", listTreatmentsHandler(svc))
	})
}

// treatmentRequest usa los nombres careportal (camelCase) que ya mandan
// los uploaders de bomba.
type treatmentRequest struct {
	EventType string  `json:"eventType"`
	Date      int64   `json:"date"` // millis epoch; 0 = usar created_at
	CreatedAt string  `json:"created_at"`
	Insulin   float64 `json:"insulin"`
	Carbs     float64 `json:"carbs"`
	Rate      float64 `json:"rate"`
	Absolute  float64 `json:"absolute"`
	Duration  float64 `json:"duration"`
	EnteredBy string  `json:"enteredBy"`
	Notes     string  `json:"notes"`
}

type treatmentResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	EventType string  `json:"eventType"`
	Date      int64   `json:"date"`
	CreatedAt string  `json:"created_at,omitempty"`
	Insulin   float64 `json:"insulin,omitempty"`
	Carbs     float64 `json:"carbs,omitempty"`
	Rate      float64 `json:"rate,omitempty"`
	Absolute  float64 `json:"absolute,omitempty"`
	Duration  float64 `json:"duration,omitempty"`
	EnteredBy string  `json:"enteredBy,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

// createTreatmentHandler godoc
// @Summary Subir tratamiento de bomba
// @Description Registra un tratamiento (bolo o temp basal) con los campos careportal estándar. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>`.
// @Tags treatments
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body treatmentRequest true "Tratamiento careportal; date en millis epoch o created_at RFC3339"
// @Success 201 {object} treatmentResponse
// @Failure 400 {string} string "invalid json / eventType o valores inválidos"
// @Failure 401 {string} string "unauthorized"
// @Router /treatments [post]
func createTreatmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req treatmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			EventType: req.EventType,
			Mills:     req.Date,
			CreatedAt: req.CreatedAt,
			Insulin:   req.Insulin,
			Carbs:     req.Carbs,
			Rate:      req.Rate,
			Absolute:  req.Absolute,
			Duration:  req.Duration,
			EnteredBy: req.EnteredBy,
			Notes:     req.Notes,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toTreatmentResponse(t))
	}
}

// listTreatmentsHandler godoc
// @Summary Listar tratamientos del usuario
// @Description Lista tratamientos subidos, más recientes primero. Permite filtrar por rango de fechas.
// @Tags treatments
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param limit query int false "Máximo de tratamientos (1-500). Por defecto 100"
// @Param from query string false "Fecha/hora mínima (RFC3339)"
// @Param to query string false "Fecha/hora máxima (RFC3339)"
// @Success 200 {array} treatmentResponse
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /treatments [get]
func listTreatmentsHandler(svc *Service) http.HandlerFunc {
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

		out := make([]treatmentResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toTreatmentResponse(t))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
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

func toTreatmentResponse(t Treatment) treatmentResponse {
	return treatmentResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		EventType: t.EventType,
		Date:      t.Mills,
		CreatedAt: t.CreatedAt,
		Insulin:   t.Insulin,
		Carbs:     t.Carbs,
		Rate:      t.Rate,
		Absolute:  t.Absolute,
		Duration:  t.Duration,
		EnteredBy: t.EnteredBy,
		Notes:     t.Notes,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
