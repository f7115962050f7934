package iob

import (
	"math"
	"testing"

	"glucose-iob/internal/domain/medications"
	"glucose-iob/internal/domain/profile"
)

func fptr(v float64) *float64 { return &v }

func TestResolveParams_HardDefaults(t *testing.T) {
	dia, peak := ResolveParams(nil, nil)
	if dia != DefaultDIAHours || peak != DefaultPeakMinutes {
		t.Fatalf("sin med ni perfil esperaba defaults, got dia=%v peak=%v", dia, peak)
	}
}

func TestResolveParams_AmbientOverridesDefault(t *testing.T) {
	dia, peak := ResolveParams(nil, &profile.AmbientProfile{DIAHours: 4.5})
	if dia != 4.5 {
		t.Fatalf("esperaba DIA del perfil 4.5, got %v", dia)
	}
	if peak != DefaultPeakMinutes {
		t.Fatalf("el perfil no define pico, esperaba default, got %v", peak)
	}
}

func TestResolveParams_MedicationWinsOverAmbient(t *testing.T) {
	med := &medications.Medication{
		Category:    medications.CategoryRapidActing,
		DIAHours:    fptr(5),
		PeakMinutes: fptr(55),
	}
	dia, peak := ResolveParams(med, &profile.AmbientProfile{DIAHours: 4})
	if dia != 5 || peak != 55 {
		t.Fatalf("esperaba overrides del medicamento (5, 55), got (%v, %v)", dia, peak)
	}
}

func TestResolveParams_PartialMedicationOverride(t *testing.T) {
	// Solo DIA en el medicamento: el pico sigue siendo el default.
	med := &medications.Medication{
		Category: medications.CategoryShortActing,
		DIAHours: fptr(6),
	}
	dia, peak := ResolveParams(med, nil)
	if dia != 6 || peak != DefaultPeakMinutes {
		t.Fatalf("got (%v, %v), want (6, %v)", dia, peak, DefaultPeakMinutes)
	}
}

func TestResolveParams_InvalidValuesIgnored(t *testing.T) {
	med := &medications.Medication{
		DIAHours:    fptr(math.NaN()),
		PeakMinutes: fptr(-10),
	}
	amb := &profile.AmbientProfile{DIAHours: math.Inf(1)}
	dia, peak := ResolveParams(med, amb)
	if dia != DefaultDIAHours || peak != DefaultPeakMinutes {
		t.Fatalf("valores corruptos deben ignorarse, got dia=%v peak=%v", dia, peak)
	}
}
