package iob

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strings"
	"time"

	"glucose-iob/internal/domain/doses"
	"glucose-iob/internal/domain/medications"
	"glucose-iob/internal/domain/profile"
	"glucose-iob/internal/domain/treatments"
	"glucose-iob/internal/middleware"
	"glucose-iob/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// treatmentLookbackHours acota cuántos tratamientos careportal se cargan
// por cálculo. Con DIA máximos razonables (<24h) todo lo anterior aporta
// cero de todas formas.
const treatmentLookbackHours = 24

// HandlerDeps agrupa lo que el endpoint de IOB necesita para armar el motor
// por request (los repos son globales; el scope por usuario se aplica en los
// adaptadores de abajo).
type HandlerDeps struct {
	Doses      doses.Repository
	Meds       medications.Repository
	Treatments treatments.Repository
	Profiles   profile.Provider
	Log        logger.Logger
}

func RegisterRoutes(r chi.Router, deps HandlerDeps) {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	r.Get("/iob", computeIOBHandler(deps))
}

// iobResponse es la respuesta del cálculo de insulina activa.
type iobResponse struct {
	IOB        float64   `json:"iob"`
	ComputedAt time.Time `json:"computed_at"`
}

// computeIOBHandler godoc
// @Summary Calcular insulina activa (IOB)
// @Description Suma la insulina que sigue activa para el usuario en un instante dado, combinando dosis inyectables, bolos careportal y basales temporales. Colaboradores caídos aportan cero (nunca 500 por eso).
// @Tags iob
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param at query string false "Instante de cálculo (RFC3339). Por defecto, ahora"
// @Success 200 {object} iobResponse
// @Failure 400 {string} string "at must be RFC3339"
// @Failure 401 {string} string "unauthorized"
// @Router /iob [get]
func computeIOBHandler(deps HandlerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		at := time.Now().UTC()
		if v := strings.TrimSpace(r.URL.Query().Get("at")); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				http.Error(w, "at must be RFC3339", http.StatusBadRequest)
				return
			}
			at = t.UTC()
		}

		log := deps.Log.With(map[string]any{"user_id": claims.UserID})

		treats := loadTreatments(r.Context(), deps.Treatments, claims.UserID, at, log)
		amb := loadProfile(r.Context(), deps.Profiles, claims.UserID, log)

		engine := NewEngine(
			userDoseProvider{repo: deps.Doses, userID: claims.UserID},
			repoLookup{repo: deps.Meds},
			log,
		)
		res := engine.ComputeIOB(r.Context(), treats, nil, amb, at)

		writeJSON(w, http.StatusOK, iobResponse{
			IOB:        math.Round(res.TotalUnits*100) / 100,
			ComputedAt: res.ComputedAt,
		})
	}
}

// loadTreatments trae los tratamientos recientes. Un storage caído no tumba
// el cálculo: se sigue sin esa fuente.
func loadTreatments(ctx context.Context, repo treatments.Repository, userID string, at time.Time, log logger.Logger) []treatments.Treatment {
	if repo == nil {
		return nil
	}
	from := at.Add(-treatmentLookbackHours * time.Hour)
	list, err := repo.ListByUser(ctx, userID, treatments.ListFilter{From: &from, To: &at, Limit: 500})
	if err != nil {
		log.Warn("iob: no se pudieron cargar tratamientos, se omiten", map[string]any{"error": err.Error()})
		return nil
	}
	return list
}

func loadProfile(ctx context.Context, p profile.Provider, userID string, log logger.Logger) *profile.AmbientProfile {
	if p == nil {
		return nil
	}
	amb, err := p.Current(ctx, userID)
	if err != nil {
		log.Warn("iob: perfil ambiental no disponible, se usa DIA default", map[string]any{"error": err.Error()})
		return nil
	}
	return amb
}

// userDoseProvider adapta el repositorio global de dosis al contrato del
// motor, fijando el usuario del request.
type userDoseProvider struct {
	repo   doses.Repository
	userID string
}

func (p userDoseProvider) ListRecentRapidActing(ctx context.Context, before time.Time, limit int) ([]InjectableDose, error) {
	if p.repo == nil {
		return nil, nil
	}
	list, err := p.repo.ListRecentRapidActing(ctx, p.userID, before, limit)
	if err != nil {
		return nil, err
	}
	out := make([]InjectableDose, 0, len(list))
	for _, d := range list {
		out = append(out, InjectableDose{
			MedicationID: d.MedicationID,
			Units:        d.Units,
			TakenAt:      d.TakenAt,
		})
	}
	return out, nil
}

// repoLookup traduce el sentinel de "no encontrado" del repositorio a la
// convención (nil, nil) del motor, para que borrado y fallo real no se
// confundan.
type repoLookup struct {
	repo medications.Repository
}

func (l repoLookup) Lookup(ctx context.Context, medicationID string) (*medications.Medication, error) {
	if l.repo == nil {
		return nil, nil
	}
	m, err := l.repo.GetByID(ctx, medicationID)
	if err != nil {
		if errors.Is(err, medications.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
