package iob

import (
	"context"
	"math"
	"time"

	"glucose-iob/internal/domain/medications"
	"glucose-iob/internal/domain/profile"
	"glucose-iob/internal/domain/treatments"
	"glucose-iob/internal/platform/logger"
)

// DoseProvider entrega las dosis inyectables recientes de un usuario,
// ya filtradas a categorías de acción rápida. El motor no conoce el
// almacenamiento concreto detrás.
type DoseProvider interface {
	ListRecentRapidActing(ctx context.Context, before time.Time, limit int) ([]InjectableDose, error)
}

// MedicationLookup resuelve el medicamento de una dosis. Devolver
// (nil, nil) significa "no existe" (borrado o nunca registrado): la dosis
// se descarta en silencio. Un error significa fallo del colaborador y se
// trata fail-soft (contribución cero, no 500).
type MedicationLookup interface {
	Lookup(ctx context.Context, medicationID string) (*medications.Medication, error)
}

// InjectableDose es la vista mínima de una dosis registrada que el motor
// necesita: cuándo, cuánto y con qué medicamento.
type InjectableDose struct {
	MedicationID string
	Units        float64
	TakenAt      time.Time
}

// Result es el agregado final del cálculo.
type Result struct {
	TotalUnits float64
	ComputedAt time.Time
}

// DefaultLookbackLimit acota cuántas dosis recientes se consultan por
// cálculo. Cualquier dosis fuera de su DIA contribuye cero de todas
// formas, así que el límite solo protege contra historiales enormes.
const DefaultLookbackLimit = 200

// Engine calcula la insulina activa total de un usuario en un instante
// dado, combinando dosis registradas, tratamientos careportal y basales
// temporales bajo una sola curva.
type Engine struct {
	doses         DoseProvider
	meds          MedicationLookup
	log           logger.Logger
	lookbackLimit int
}

func NewEngine(doses DoseProvider, meds MedicationLookup, log logger.Logger) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{
		doses:         doses,
		meds:          meds,
		log:           log,
		lookbackLimit: DefaultLookbackLimit,
	}
}

// ComputeIOB suma las contribuciones de todas las fuentes en el instante
// at. Nunca devuelve error por fallos de colaboradores: una fuente caída
// aporta cero y deja un warn en el log. Los device statuses se aceptan por
// compatibilidad de firma con el pipeline de careportal pero hoy no
// aportan dosis.
func (e *Engine) ComputeIOB(ctx context.Context, treats []treatments.Treatment, _ []treatments.DeviceStatus, amb *profile.AmbientProfile, at time.Time) Result {
	events := e.injectableDoses(ctx, amb, at)

	ambDIA, ambPeak := ResolveParams(nil, amb)
	events = append(events, extractTreatmentDoses(treats, ambDIA, ambPeak)...)

	total := 0.0
	for _, ev := range events {
		total += ev.Contribution(at)
	}
	if total < 0 || math.IsNaN(total) {
		total = 0
	}
	return Result{TotalUnits: total, ComputedAt: at}
}

// injectableDoses baja las dosis registradas a eventos con parámetros
// resueltos por medicamento. Toda falla aquí es fail-soft: el cálculo
// sigue con las fuentes que sí respondieron.
func (e *Engine) injectableDoses(ctx context.Context, amb *profile.AmbientProfile, at time.Time) []DoseEvent {
	if e.doses == nil {
		return nil
	}

	doses, err := e.doses.ListRecentRapidActing(ctx, at, e.lookbackLimit)
	if err != nil {
		e.log.Warn("iob: proveedor de dosis falló, se omiten dosis inyectables", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	out := make([]DoseEvent, 0, len(doses))
	for _, d := range doses {
		if d.Units <= 0 || math.IsNaN(d.Units) || math.IsInf(d.Units, 0) || d.TakenAt.IsZero() {
			continue
		}

		var med *medications.Medication
		if e.meds != nil {
			med, err = e.meds.Lookup(ctx, d.MedicationID)
			if err != nil {
				e.log.Warn("iob: lookup de medicamento falló, dosis omitida", map[string]any{
					"medication_id": d.MedicationID,
					"error":         err.Error(),
				})
				continue
			}
		}
		// Medicamento borrado o desconocido: la dosis huérfana no cuenta.
		if med == nil {
			continue
		}
		if !med.Category.ContributesToIOB() {
			continue
		}

		dia, peak := ResolveParams(med, amb)
		out = append(out, DoseEvent{
			Time:        d.TakenAt,
			Units:       d.Units,
			DIAHours:    dia,
			PeakMinutes: peak,
		})
	}
	return out
}
