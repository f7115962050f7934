package medications

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Medication
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Medication{}}
}

func (r *testRepo) Create(ctx context.Context, m Medication) error {
	if m.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[m.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[m.ID] = m
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Medication, error) {
	m, ok := r.byID[id]
	if !ok {
		return Medication{}, ErrNotFound
	}
	return m, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]Medication, error) {
	out := make([]Medication, 0)
	for _, m := range r.byID {
		if m.OwnerUserID == ownerUserID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// -------------------------
// Tests
// -------------------------

func fptr(v float64) *float64 { return &v }

func TestService_Create_SetsTimestampsAndID(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	m, err := svc.Create(context.Background(), "user-1", CreateInput{
		Name:     "Fiasp",
		Category: "ultra_rapid",
		DIAHours: fptr(3.5),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if m.ID == "" {
		t.Fatalf("expected generated ID")
	}
	if m.CreatedAt != now || m.UpdatedAt != now {
		t.Fatalf("expected CreatedAt/UpdatedAt to be now")
	}
	if m.Category != CategoryUltraRapid {
		t.Fatalf("expected category ultra_rapid, got %s", m.Category)
	}
	if m.DIAHours == nil || *m.DIAHours != 3.5 {
		t.Fatalf("expected DIA override 3.5, got %v", m.DIAHours)
	}
}

func TestService_Create_RejectsUnknownCategory(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), "user-1", CreateInput{
		Name:     "Misterio",
		Category: "inhalable",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Create_RejectsBadOverrides(t *testing.T) {
	svc := NewService(newTestRepo())

	bad := []*float64{fptr(0), fptr(-1), fptr(math.NaN()), fptr(math.Inf(1))}
	for _, v := range bad {
		_, err := svc.Create(context.Background(), "user-1", CreateInput{
			Name:     "Humalog",
			Category: "rapid_acting",
			DIAHours: v,
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("dia_hours %v: expected ErrInvalidInput, got %v", *v, err)
		}
	}
}

func TestService_Delete_LeavesNoTrace(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	m, err := svc.Create(context.Background(), "user-1", CreateInput{
		Name:     "Humalog",
		Category: "rapid_acting",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), m.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), m.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestCategory_ContributesToIOB(t *testing.T) {
	contributing := map[Category]bool{
		CategoryUltraRapid:  true,
		CategoryRapidActing: true,
		CategoryShortActing: true,
	}
	for _, c := range AllCategories {
		want := contributing[c]
		if got := c.ContributesToIOB(); got != want {
			t.Fatalf("categoría %s: ContributesToIOB=%v, want %v", c, got, want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	if c, ok := ParseCategory("glp1_weekly"); !ok || c != CategoryGLP1Weekly {
		t.Fatalf("ParseCategory(glp1_weekly) = %v, %v", c, ok)
	}
	if _, ok := ParseCategory("nope"); ok {
		t.Fatalf("categoría desconocida no debe parsear")
	}
	if _, ok := ParseCategory(""); ok {
		t.Fatalf("categoría vacía no debe parsear")
	}
}
