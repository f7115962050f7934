package medications

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"glucose-iob/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/medications", func(mr chi.Router) {
		mr.Post("/", createMedicationHandler(svc))
		mr.Get("/", listMedicationsHandler(svc))
		mr.Get("/{medicationID}", getMedicationHandler(svc))
		mr.Delete("/{medicationID}", deleteMedicationHandler(svc))
	})
}

// createMedicationRequest es el cuerpo para registrar un medicamento.
type createMedicationRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category" enums:"ultra_rapid,rapid_acting,short_acting,intermediate,long_acting,ultra_long,glp1_daily,glp1_weekly,other"`
	DIAHours    *float64 `json:"dia_hours"`    // opcional, horas (> 0)
	PeakMinutes *float64 `json:"peak_minutes"` // opcional, minutos (> 0)
	Notes       string   `json:"notes"`
}

// medicationResponse representa un medicamento devuelto por la API.
type medicationResponse struct {
	ID          string    `json:"id"`
	OwnerUserID string    `json:"owner_user_id"`
	Name        string    `json:"name"`
	Category    Category  `json:"category"`
	DIAHours    *float64  `json:"dia_hours,omitempty"`
	PeakMinutes *float64  `json:"peak_minutes,omitempty"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// createMedicationHandler godoc
// @Summary Registrar medicamento
// @Description Registra un medicamento inyectable del usuario, con overrides farmacocinéticos opcionales (dia_hours, peak_minutes). Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>`.
// @Tags medications
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createMedicationRequest true "Datos del medicamento"
// @Success 201 {object} medicationResponse
// @Failure 400 {string} string "invalid json / categoría o overrides inválidos"
// @Failure 401 {string} string "unauthorized"
// @Router /medications [post]
func createMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createMedicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		m, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:        req.Name,
			Category:    req.Category,
			DIAHours:    req.DIAHours,
			PeakMinutes: req.PeakMinutes,
			Notes:       req.Notes,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toMedicationResponse(m))
	}
}

// listMedicationsHandler godoc
// @Summary Listar medicamentos del usuario
// @Tags medications
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} medicationResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /medications [get]
func listMedicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]medicationResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMedicationResponse(m))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getMedicationHandler godoc
// @Summary Obtener un medicamento
// @Tags medications
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param medicationID path string true "ID del medicamento"
// @Success 200 {object} medicationResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "medication not found"
// @Router /medications/{medicationID} [get]
func getMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		m, err := svc.GetByID(r.Context(), chi.URLParam(r, "medicationID"))
		if err != nil || m.OwnerUserID != claims.UserID {
			http.Error(w, "medication not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toMedicationResponse(m))
	}
}

// deleteMedicationHandler godoc
// @Summary Borrar un medicamento
// @Description Borra el medicamento. Las dosis históricas que lo referencien se conservan; el cálculo de IOB las descarta en silencio.
// @Tags medications
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param medicationID path string true "ID del medicamento"
// @Success 204 {string} string "no content"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "medication not found"
// @Router /medications/{medicationID} [delete]
func deleteMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id := chi.URLParam(r, "medicationID")
		m, err := svc.GetByID(r.Context(), id)
		if err != nil || m.OwnerUserID != claims.UserID {
			http.Error(w, "medication not found", http.StatusNotFound)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "medication not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toMedicationResponse(m Medication) medicationResponse {
	return medicationResponse{
		ID:          m.ID,
		OwnerUserID: m.OwnerUserID,
		Name:        m.Name,
		Category:    m.Category,
		DIAHours:    m.DIAHours,
		PeakMinutes: m.PeakMinutes,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
