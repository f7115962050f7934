package iob

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestActivityFraction_KnownPointsDefaultDIA(t *testing.T) {
	// Valores precomputados de la curva canónica (DIA 3h, pico 75 min).
	cases := []struct {
		minutes float64
		want    float64
	}{
		{0, 1.0},
		{15, 0.977776},
		{30, 0.922216},
		{45, 0.83332},
		{60, 0.711088},
	}
	for _, c := range cases {
		got := ActivityFraction(c.minutes, DefaultDIAHours, DefaultPeakMinutes)
		if !almostEqual(got, c.want) {
			t.Fatalf("ActivityFraction(%v) = %v, want %v", c.minutes, got, c.want)
		}
	}
}

func TestActivityFraction_MonotoneBeforePeak(t *testing.T) {
	prev := math.Inf(1)
	for m := 0.0; m < DefaultPeakMinutes; m += 5 {
		got := ActivityFraction(m, DefaultDIAHours, DefaultPeakMinutes)
		if got > prev {
			t.Fatalf("fraction subió en t=%v: %v > %v", m, got, prev)
		}
		prev = got
	}
}

func TestActivityFraction_ZeroAtWindowEnd(t *testing.T) {
	// Corte exacto en dia*60 minutos reales, para varios DIA.
	for _, dia := range []float64{3, 4, 5, 6} {
		if got := ActivityFraction(dia*60, dia, DefaultPeakMinutes); got != 0 {
			t.Fatalf("DIA %v: esperaba 0 en dia*60, got %v", dia, got)
		}
		if got := ActivityFraction(dia*60+1, dia, DefaultPeakMinutes); got != 0 {
			t.Fatalf("DIA %v: esperaba 0 pasado dia*60, got %v", dia, got)
		}
	}
}

func TestActivityFraction_FutureDoseIsZero(t *testing.T) {
	if got := ActivityFraction(-1, DefaultDIAHours, DefaultPeakMinutes); got != 0 {
		t.Fatalf("dosis futura debe aportar 0, got %v", got)
	}
}

func TestActivityFraction_LongDIAStillActiveAtThreeHours(t *testing.T) {
	// Con DIA 5h, a las 3 horas reales el tiempo escalado es 108 min:
	// dentro de la ventana, actividad positiva.
	got := ActivityFraction(180, 5, DefaultPeakMinutes)
	if got <= 0 {
		t.Fatalf("DIA 5h a los 180 min debe seguir activo, got %v", got)
	}
	if !almostEqual(got, 1.60627072) {
		t.Fatalf("valor literal de la rama de bajada: got %v, want 1.60627072", got)
	}
	// El mismo instante con DIA 3h ya terminó.
	if got := ActivityFraction(180, 3, DefaultPeakMinutes); got != 0 {
		t.Fatalf("DIA 3h a los 180 min debe ser 0, got %v", got)
	}
}

func TestActivityFraction_InvalidParamsFallBack(t *testing.T) {
	want := ActivityFraction(30, DefaultDIAHours, DefaultPeakMinutes)
	for _, dia := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		if got := ActivityFraction(30, dia, DefaultPeakMinutes); !almostEqual(got, want) {
			t.Fatalf("DIA inválido %v debe caer al default: got %v, want %v", dia, got, want)
		}
	}
	for _, peak := range []float64{0, -10, math.NaN(), math.Inf(-1)} {
		if got := ActivityFraction(30, DefaultDIAHours, peak); !almostEqual(got, want) {
			t.Fatalf("pico inválido %v debe caer al default: got %v, want %v", peak, got, want)
		}
	}
}

func TestActivityFraction_NaNMinutesIsZero(t *testing.T) {
	if got := ActivityFraction(math.NaN(), DefaultDIAHours, DefaultPeakMinutes); got != 0 {
		t.Fatalf("minutos NaN debe aportar 0, got %v", got)
	}
}

func TestContribution_GuardsBadUnits(t *testing.T) {
	for _, units := range []float64{0, -3, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := Contribution(units, 10, DefaultDIAHours, DefaultPeakMinutes); got != 0 {
			t.Fatalf("unidades %v deben aportar 0, got %v", units, got)
		}
	}
}

func TestContribution_ScalesWithUnits(t *testing.T) {
	frac := ActivityFraction(30, DefaultDIAHours, DefaultPeakMinutes)
	got := Contribution(4, 30, DefaultDIAHours, DefaultPeakMinutes)
	if !almostEqual(got, 4*frac) {
		t.Fatalf("Contribution = %v, want %v", got, 4*frac)
	}
}
