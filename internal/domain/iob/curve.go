// Package iob implementa el motor de insulina activa (insulin on board):
// la curva bilineal de actividad escalada por DIA, la resolución de
// parámetros farmacocinéticos por dosis y la agregación entre fuentes.
package iob

import "math"

// Defaults clínicos del modelo. Son valores de carga (legacy careportal):
// no convertirlos en literales sueltos.
const (
	// DefaultDIAHours es el DIA de fallback cuando ni el medicamento ni el
	// perfil definen uno.
	DefaultDIAHours = 3.0

	// DefaultPeakMinutes es el pico de actividad de las insulinas rápidas.
	DefaultPeakMinutes = 75.0

	// La curva canónica está definida sobre una ventana de acción de
	// referencia de 3 horas (180 min) y se reescala a cualquier DIA.
	referenceDIAHours       = 3.0
	referenceWindowMinutes  = 180.0
	curveCoefficient        = 0.001852
	declineOffsetMinutes    = 15.0
	curveSampleStepMinutes  = 5.0
)

// ActivityFraction devuelve la fracción de una dosis que sigue activa
// después de minutesSince minutos reales, para un DIA (horas) y pico
// (minutos) dados.
//
// El tiempo real se reescala a la ventana canónica de 3 horas
// (scaled = 3/dia * minutos) y se evalúa la curva bilineal en coordenadas
// escaladas. Las dos ramas son continuaciones de la misma curva canónica
// validada clínicamente; no simplificar algebraicamente los offsets
// (x = t/5+1 antes del pico, x2 = (t−15)/5 después) ni los coeficientes.
//
// Garantías: resultado >= 0, exactamente 0 con timestamp futuro, y
// exactamente 0 cuando el tiempo escalado supera los 180 min canónicos o
// el tiempo real supera dia*60. La curva termina en cero, no se acerca
// asintóticamente.
func ActivityFraction(minutesSince, diaHours, peakMinutes float64) float64 {
	// Dosis futura: no hay "tiempo transcurrido negativo".
	if minutesSince < 0 || math.IsNaN(minutesSince) {
		return 0
	}
	// DIA inválido no debería llegar aquí (la resolución de parámetros lo
	// filtra), pero nunca dividimos por cero: cae al default duro.
	if diaHours <= 0 || math.IsNaN(diaHours) || math.IsInf(diaHours, 0) {
		diaHours = DefaultDIAHours
	}
	if peakMinutes <= 0 || math.IsNaN(peakMinutes) || math.IsInf(peakMinutes, 0) {
		peakMinutes = DefaultPeakMinutes
	}

	if minutesSince >= diaHours*60 {
		return 0
	}

	scale := referenceDIAHours / diaHours
	scaled := scale * minutesSince
	if scaled >= referenceWindowMinutes {
		return 0
	}

	var frac float64
	if scaled < peakMinutes {
		// Fase de subida / cerca del pico.
		x := scaled/curveSampleStepMinutes + 1
		frac = 1 - curveCoefficient*x*x + curveCoefficient*x
	} else {
		// Fase de bajada, con variable desplazada.
		x2 := (scaled - declineOffsetMinutes) / curveSampleStepMinutes
		frac = curveCoefficient*x2*x2 - curveCoefficient*x2 + 1
	}

	if frac < 0 || math.IsNaN(frac) {
		return 0
	}
	return frac
}

// Contribution aplica la curva a una dosis concreta y devuelve las unidades
// que siguen activas. Dosis con unidades cero, negativas o no finitas
// aportan exactamente 0 (nunca envenenan la suma con NaN o negativos).
func Contribution(units, minutesSince, diaHours, peakMinutes float64) float64 {
	if units <= 0 || math.IsNaN(units) || math.IsInf(units, 0) {
		return 0
	}
	return units * ActivityFraction(minutesSince, diaHours, peakMinutes)
}
