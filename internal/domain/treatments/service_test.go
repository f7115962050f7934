package treatments

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
)

type testRepo struct {
	byID map[string]Treatment
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Treatment{}}
}

func (r *testRepo) Create(ctx context.Context, t Treatment) error {
	if t.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[t.ID] = t
	return nil
}

func (r *testRepo) ListByUser(ctx context.Context, userID string, filter ListFilter) ([]Treatment, error) {
	out := make([]Treatment, 0)
	for _, t := range r.byID {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func TestService_Create_NoTimestampDefaultsToNow(t *testing.T) {
	svc := NewService(newTestRepo())

	now := time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	tr, err := svc.Create(context.Background(), "user-1", CreateInput{
		EventType: EventTypeBolus,
		Insulin:   2,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if tr.Mills != now.UnixMilli() {
		t.Fatalf("sin timestamp debe fecharse a now: got %d", tr.Mills)
	}
}

func TestService_Create_CreatedAtFallbackNormalizesMills(t *testing.T) {
	svc := NewService(newTestRepo())

	created := time.Date(2026, 8, 30, 12, 30, 0, 0, time.UTC)
	tr, err := svc.Create(context.Background(), "user-1", CreateInput{
		EventType: EventTypeBolus,
		Insulin:   1,
		CreatedAt: created.Format(time.RFC3339),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if tr.Mills != created.UnixMilli() {
		t.Fatalf("mills debe normalizarse desde created_at: got %d, want %d", tr.Mills, created.UnixMilli())
	}
	if !tr.Time().Equal(created) {
		t.Fatalf("Time() = %v, want %v", tr.Time(), created)
	}
}

func TestService_Create_RejectsBadInput(t *testing.T) {
	svc := NewService(newTestRepo())

	// eventType vacío
	if _, err := svc.Create(context.Background(), "user-1", CreateInput{Insulin: 1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("eventType vacío: expected ErrInvalidInput, got %v", err)
	}
	// created_at no parseable
	if _, err := svc.Create(context.Background(), "user-1", CreateInput{
		EventType: EventTypeBolus,
		CreatedAt: "ayer a la tarde",
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("created_at inválido: expected ErrInvalidInput, got %v", err)
	}
	// cantidades no finitas
	if _, err := svc.Create(context.Background(), "user-1", CreateInput{
		EventType: EventTypeBolus,
		Insulin:   math.NaN(),
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("insulin NaN: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "user-1", CreateInput{
		EventType: EventTypeTempBasal,
		Rate:      math.Inf(1),
		Duration:  30,
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("rate Inf: expected ErrInvalidInput, got %v", err)
	}
}

func TestTreatment_TimeFallbacks(t *testing.T) {
	ts := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)

	withMills := Treatment{Mills: ts.UnixMilli()}
	if !withMills.Time().Equal(ts) {
		t.Fatalf("Time() con mills: got %v", withMills.Time())
	}

	withCreated := Treatment{CreatedAt: ts.Format(time.RFC3339)}
	if !withCreated.Time().Equal(ts) {
		t.Fatalf("Time() con created_at: got %v", withCreated.Time())
	}

	var empty Treatment
	if !empty.Time().IsZero() {
		t.Fatalf("sin timestamps Time() debe ser zero, got %v", empty.Time())
	}

	broken := Treatment{CreatedAt: "no-es-fecha"}
	if !broken.Time().IsZero() {
		t.Fatalf("created_at corrupto debe dar zero, got %v", broken.Time())
	}
}
