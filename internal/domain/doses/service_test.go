package doses

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"glucose-iob/internal/domain/medications"
)

// -------------------------
// Test repos (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Dose
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Dose{}}
}

func (r *testRepo) Create(ctx context.Context, d Dose) error {
	if d.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[d.ID] = d
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Dose, error) {
	d, ok := r.byID[id]
	if !ok {
		return Dose{}, ErrNotFound
	}
	return d, nil
}

func (r *testRepo) ListByUser(ctx context.Context, userID string, filter ListFilter) ([]Dose, error) {
	out := make([]Dose, 0)
	for _, d := range r.byID {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *testRepo) ListRecentRapidActing(ctx context.Context, userID string, before time.Time, limit int) ([]Dose, error) {
	return nil, nil
}

type testMedsRepo struct {
	byID map[string]medications.Medication
}

func (r *testMedsRepo) Create(ctx context.Context, m medications.Medication) error { return nil }
func (r *testMedsRepo) Delete(ctx context.Context, id string) error                { return nil }
func (r *testMedsRepo) ListByOwner(ctx context.Context, owner string) ([]medications.Medication, error) {
	return nil, nil
}

func (r *testMedsRepo) GetByID(ctx context.Context, id string) (medications.Medication, error) {
	m, ok := r.byID[id]
	if !ok {
		return medications.Medication{}, medications.ErrNotFound
	}
	return m, nil
}

// -------------------------
// Tests
// -------------------------

func medsWith(m medications.Medication) *testMedsRepo {
	return &testMedsRepo{byID: map[string]medications.Medication{m.ID: m}}
}

func TestService_Create_LinksExistingMedication(t *testing.T) {
	med := medications.Medication{ID: "m1", OwnerUserID: "user-1", Category: medications.CategoryRapidActing}
	svc := NewService(newTestRepo(), medsWith(med))

	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	d, err := svc.Create(context.Background(), "user-1", CreateInput{
		MedicationID: "m1",
		Units:        4.5,
		TakenAt:      now.Add(-10 * time.Minute),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if d.ID == "" || d.RecordedAt != now {
		t.Fatalf("dosis mal construida: %+v", d)
	}
}

func TestService_Create_UnknownMedication(t *testing.T) {
	svc := NewService(newTestRepo(), &testMedsRepo{byID: map[string]medications.Medication{}})

	_, err := svc.Create(context.Background(), "user-1", CreateInput{
		MedicationID: "no-existe",
		Units:        2,
		TakenAt:      time.Now(),
	})
	if !errors.Is(err, ErrMedicationUnknown) {
		t.Fatalf("expected ErrMedicationUnknown, got %v", err)
	}
}

func TestService_Create_ForeignMedicationLooksUnknown(t *testing.T) {
	// Medicamento de otro usuario: mismo error que inexistente, sin filtrar
	// información de existencia.
	med := medications.Medication{ID: "m1", OwnerUserID: "user-2", Category: medications.CategoryRapidActing}
	svc := NewService(newTestRepo(), medsWith(med))

	_, err := svc.Create(context.Background(), "user-1", CreateInput{
		MedicationID: "m1",
		Units:        2,
		TakenAt:      time.Now(),
	})
	if !errors.Is(err, ErrMedicationUnknown) {
		t.Fatalf("expected ErrMedicationUnknown, got %v", err)
	}
}

func TestService_Create_RejectsBadUnits(t *testing.T) {
	med := medications.Medication{ID: "m1", OwnerUserID: "user-1", Category: medications.CategoryRapidActing}
	svc := NewService(newTestRepo(), medsWith(med))

	for _, units := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := svc.Create(context.Background(), "user-1", CreateInput{
			MedicationID: "m1",
			Units:        units,
			TakenAt:      time.Now(),
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("units %v: expected ErrInvalidInput, got %v", units, err)
		}
	}
}

func TestService_Create_RejectsZeroTakenAt(t *testing.T) {
	med := medications.Medication{ID: "m1", OwnerUserID: "user-1", Category: medications.CategoryRapidActing}
	svc := NewService(newTestRepo(), medsWith(med))

	_, err := svc.Create(context.Background(), "user-1", CreateInput{
		MedicationID: "m1",
		Units:        2,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
