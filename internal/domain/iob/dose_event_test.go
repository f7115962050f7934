package iob

import (
	"math"
	"testing"
	"time"

	"glucose-iob/internal/domain/treatments"
)

func TestExtractTreatmentDoses_ExplicitInsulin(t *testing.T) {
	ts := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	events := extractTreatmentDoses([]treatments.Treatment{
		{EventType: treatments.EventTypeBolus, Insulin: 2.5, Mills: ts.UnixMilli()},
	}, DefaultDIAHours, DefaultPeakMinutes)

	if len(events) != 1 {
		t.Fatalf("esperaba 1 evento, got %d", len(events))
	}
	if events[0].Units != 2.5 || !events[0].Time.Equal(ts) {
		t.Fatalf("evento mal extraído: %+v", events[0])
	}
}

func TestExtractTreatmentDoses_TempBasalRate(t *testing.T) {
	// 1.2 U/h durante 30 min = 0.6 U equivalentes.
	events := extractTreatmentDoses([]treatments.Treatment{
		{EventType: treatments.EventTypeTempBasal, Rate: 1.2, Duration: 30, Mills: 1000},
	}, DefaultDIAHours, DefaultPeakMinutes)

	if len(events) != 1 {
		t.Fatalf("esperaba 1 evento, got %d", len(events))
	}
	if !almostEqual(events[0].Units, 0.6) {
		t.Fatalf("unidades de basal temporal: got %v, want 0.6", events[0].Units)
	}
}

func TestExtractTreatmentDoses_TempBasalAbsoluteFallback(t *testing.T) {
	events := extractTreatmentDoses([]treatments.Treatment{
		{EventType: treatments.EventTypeTempBasal, Absolute: 2, Duration: 60, Mills: 1000},
	}, DefaultDIAHours, DefaultPeakMinutes)

	if len(events) != 1 || !almostEqual(events[0].Units, 2) {
		t.Fatalf("esperaba fallback a absolute (2 U), got %+v", events)
	}
}

func TestExtractTreatmentDoses_InsulinWinsOverTempBasal(t *testing.T) {
	// Si el tratamiento trae insulina explícita, se usa tal cual aunque
	// también sea una basal temporal.
	events := extractTreatmentDoses([]treatments.Treatment{
		{EventType: treatments.EventTypeTempBasal, Insulin: 1.5, Rate: 3, Duration: 60, Mills: 1000},
	}, DefaultDIAHours, DefaultPeakMinutes)

	if len(events) != 1 || events[0].Units != 1.5 {
		t.Fatalf("esperaba insulina explícita 1.5, got %+v", events)
	}
}

func TestExtractTreatmentDoses_DropsUnusable(t *testing.T) {
	ts := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	events := extractTreatmentDoses([]treatments.Treatment{
		// sin timestamp resoluble
		{EventType: treatments.EventTypeBolus, Insulin: 1},
		// sin insulina ni basal
		{EventType: "BG Check", Mills: ts.UnixMilli()},
		// cantidades no finitas o no positivas
		{EventType: treatments.EventTypeBolus, Insulin: math.NaN(), Mills: ts.UnixMilli()},
		{EventType: treatments.EventTypeBolus, Insulin: math.Inf(1), Mills: ts.UnixMilli()},
		{EventType: treatments.EventTypeTempBasal, Rate: -1, Duration: 30, Mills: ts.UnixMilli()},
		{EventType: treatments.EventTypeTempBasal, Rate: 1, Duration: 0, Mills: ts.UnixMilli()},
	}, DefaultDIAHours, DefaultPeakMinutes)

	if len(events) != 0 {
		t.Fatalf("esperaba 0 eventos, got %d: %+v", len(events), events)
	}
}

func TestDoseEvent_ContributionUsesOwnParams(t *testing.T) {
	at := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	ev := DoseEvent{
		Time:        at.Add(-3 * time.Hour),
		Units:       1,
		DIAHours:    5,
		PeakMinutes: DefaultPeakMinutes,
	}
	got := ev.Contribution(at)
	want := Contribution(1, 180, 5, DefaultPeakMinutes)
	if !almostEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
