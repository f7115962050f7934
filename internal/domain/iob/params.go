package iob

import (
	"math"

	"glucose-iob/internal/domain/medications"
	"glucose-iob/internal/domain/profile"
)

// ResolveParams decide qué DIA y pico usar para una dosis concreta.
//
// Cadena de resolución, de menor a mayor prioridad: default duro (3h/75min),
// luego DIA del perfil ambiental, luego overrides por medicamento. Cada
// nivel solo pisa al anterior si su valor está presente y es válido
// (finito y positivo); un override corrupto se ignora en vez de propagarse.
// Las dosis sin medicamento asociado (bolos de careportal) llaman con
// med == nil y caen al perfil o al default.
func ResolveParams(med *medications.Medication, amb *profile.AmbientProfile) (diaHours, peakMinutes float64) {
	diaHours = DefaultDIAHours
	peakMinutes = DefaultPeakMinutes

	if amb != nil && validParam(amb.DIAHours) {
		diaHours = amb.DIAHours
	}
	if med != nil {
		if med.DIAHours != nil && validParam(*med.DIAHours) {
			diaHours = *med.DIAHours
		}
		if med.PeakMinutes != nil && validParam(*med.PeakMinutes) {
			peakMinutes = *med.PeakMinutes
		}
	}
	return diaHours, peakMinutes
}

func validParam(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
