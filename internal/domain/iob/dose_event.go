package iob

import (
	"math"
	"time"

	"glucose-iob/internal/domain/treatments"
)

// DoseEvent es la unidad interna del motor: una cantidad de insulina con
// su instante y los parámetros farmacocinéticos ya resueltos. Las tres
// fuentes (dosis registradas, tratamientos, basales temporales) se
// normalizan a este tipo antes de agregar.
type DoseEvent struct {
	Time        time.Time
	Units       float64
	DIAHours    float64
	PeakMinutes float64
}

// Contribution evalúa la curva para este evento en el instante at.
func (d DoseEvent) Contribution(at time.Time) float64 {
	minutes := at.Sub(d.Time).Minutes()
	return Contribution(d.Units, minutes, d.DIAHours, d.PeakMinutes)
}

// extractTreatmentDoses convierte tratamientos crudos en eventos de dosis.
//
// Un tratamiento con insulina explícita aporta esas unidades tal cual. Una
// basal temporal sin insulina explícita se convierte en rate * duración/60
// (con absolute como fallback de rate, siguiendo el formato careportal).
// Tratamientos sin timestamp resoluble o con cantidades no finitas o no
// positivas se descartan en silencio.
func extractTreatmentDoses(list []treatments.Treatment, diaHours, peakMinutes float64) []DoseEvent {
	out := make([]DoseEvent, 0, len(list))
	for _, t := range list {
		ts := t.Time()
		if ts.IsZero() {
			continue
		}

		units := 0.0
		switch {
		case t.HasInsulin():
			units = t.Insulin
		case t.IsTempBasal():
			rate := t.Rate
			if rate == 0 {
				rate = t.Absolute
			}
			units = rate * t.Duration / 60
		default:
			continue
		}
		if units <= 0 || math.IsNaN(units) || math.IsInf(units, 0) {
			continue
		}

		out = append(out, DoseEvent{
			Time:        ts,
			Units:       units,
			DIAHours:    diaHours,
			PeakMinutes: peakMinutes,
		})
	}
	return out
}
