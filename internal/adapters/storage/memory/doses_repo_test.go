package memory

import (
	"context"
	"testing"
	"time"

	"glucose-iob/internal/domain/doses"
	"glucose-iob/internal/domain/medications"
)

func seedMedication(t *testing.T, repo medications.Repository, id string, cat medications.Category) {
	t.Helper()
	err := repo.Create(context.Background(), medications.Medication{
		ID:          id,
		OwnerUserID: "user-1",
		Name:        id,
		Category:    cat,
	})
	if err != nil {
		t.Fatalf("seed medication %s: %v", id, err)
	}
}

func TestDoseRepo_ListRecentRapidActing(t *testing.T) {
	meds := NewMedicationRepo()
	repo := NewDoseRepo(meds)
	ctx := context.Background()

	seedMedication(t, meds, "rapida", medications.CategoryRapidActing)
	seedMedication(t, meds, "lenta", medications.CategoryLongActing)

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	seed := []doses.Dose{
		{ID: "d1", UserID: "user-1", MedicationID: "rapida", Units: 2, TakenAt: base.Add(-time.Hour)},
		{ID: "d2", UserID: "user-1", MedicationID: "rapida", Units: 1, TakenAt: base.Add(-10 * time.Minute)},
		{ID: "d3", UserID: "user-1", MedicationID: "lenta", Units: 20, TakenAt: base.Add(-30 * time.Minute)},
		{ID: "d4", UserID: "user-1", MedicationID: "borrado", Units: 3, TakenAt: base.Add(-20 * time.Minute)},
		{ID: "d5", UserID: "user-2", MedicationID: "rapida", Units: 5, TakenAt: base.Add(-5 * time.Minute)},
		{ID: "d6", UserID: "user-1", MedicationID: "rapida", Units: 4, TakenAt: base.Add(time.Hour)}, // futura
	}
	for _, d := range seed {
		if err := repo.Create(ctx, d); err != nil {
			t.Fatalf("seed dose %s: %v", d.ID, err)
		}
	}

	got, err := repo.ListRecentRapidActing(ctx, "user-1", base, 50)
	if err != nil {
		t.Fatalf("ListRecentRapidActing error: %v", err)
	}

	// Solo d1 y d2: la lenta se filtra por categoría, la huérfana se omite,
	// user-2 no entra y la futura queda fuera del corte.
	if len(got) != 2 {
		t.Fatalf("expected 2 doses, got %d: %+v", len(got), got)
	}
	if got[0].ID != "d2" || got[1].ID != "d1" {
		t.Fatalf("expected [d2 d1] (más reciente primero), got [%s %s]", got[0].ID, got[1].ID)
	}
}

func TestDoseRepo_ListRecentRapidActingLimit(t *testing.T) {
	meds := NewMedicationRepo()
	repo := NewDoseRepo(meds)
	ctx := context.Background()

	seedMedication(t, meds, "rapida", medications.CategoryUltraRapid)

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		d := doses.Dose{
			ID:           string(rune('a' + i)),
			UserID:       "user-1",
			MedicationID: "rapida",
			Units:        1,
			TakenAt:      base.Add(-time.Duration(i) * time.Minute),
		}
		if err := repo.Create(ctx, d); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got, err := repo.ListRecentRapidActing(ctx, "user-1", base, 3)
	if err != nil {
		t.Fatalf("ListRecentRapidActing error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected limit 3, got %d", len(got))
	}
}
