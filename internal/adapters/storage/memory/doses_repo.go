package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"glucose-iob/internal/domain/doses"
	"glucose-iob/internal/domain/medications"
)

type doseRepo struct {
	mu   sync.RWMutex
	byID map[string]doses.Dose

	// meds se necesita para el filtro por categoría de ListRecentRapidActing
	// (en postgres es un JOIN).
	meds medications.Repository
}

func NewDoseRepo(meds medications.Repository) doses.Repository {
	return &doseRepo{
		byID: make(map[string]doses.Dose),
		meds: meds,
	}
}

func (r *doseRepo) Create(ctx context.Context, d doses.Dose) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d.ID == "" {
		return errors.New("dose id required")
	}
	if _, exists := r.byID[d.ID]; exists {
		return errors.New("dose already exists")
	}
	r.byID[d.ID] = d
	return nil
}

func (r *doseRepo) GetByID(ctx context.Context, id string) (doses.Dose, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return doses.Dose{}, doses.ErrNotFound
	}
	return d, nil
}

func (r *doseRepo) ListByUser(ctx context.Context, userID string, filter doses.ListFilter) ([]doses.Dose, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	out := make([]doses.Dose, 0)
	for _, d := range r.byID {
		if d.UserID != userID {
			continue
		}
		if filter.From != nil && d.TakenAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && d.TakenAt.After(*filter.To) {
			continue
		}
		out = append(out, d)
	}

	// Orden por taken_at desc (más reciente primero)
	sort.Slice(out, func(i, j int) bool {
		return out[i].TakenAt.After(out[j].TakenAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *doseRepo) ListRecentRapidActing(ctx context.Context, userID string, before time.Time, limit int) ([]doses.Dose, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	out := make([]doses.Dose, 0)
	for _, d := range r.byID {
		if d.UserID != userID {
			continue
		}
		if d.TakenAt.After(before) {
			continue
		}

		m, err := r.meds.GetByID(ctx, d.MedicationID)
		if err != nil {
			// Medicamento borrado: la dosis huérfana no entra; el motor la
			// habría descartado igual.
			continue
		}
		if !m.Category.ContributesToIOB() {
			continue
		}
		out = append(out, d)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].TakenAt.After(out[j].TakenAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
