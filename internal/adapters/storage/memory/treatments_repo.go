package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"glucose-iob/internal/domain/treatments"
)

type treatmentRepo struct {
	mu   sync.RWMutex
	byID map[string]treatments.Treatment
}

func NewTreatmentRepo() treatments.Repository {
	return &treatmentRepo{
		byID: make(map[string]treatments.Treatment),
	}
}

func (r *treatmentRepo) Create(ctx context.Context, t treatments.Treatment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t.ID == "" {
		return errors.New("treatment id required")
	}
	if _, exists := r.byID[t.ID]; exists {
		return errors.New("treatment already exists")
	}
	r.byID[t.ID] = t
	return nil
}

func (r *treatmentRepo) ListByUser(ctx context.Context, userID string, filter treatments.ListFilter) ([]treatments.Treatment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	out := make([]treatments.Treatment, 0)
	for _, t := range r.byID {
		if t.UserID != userID {
			continue
		}
		ts := t.Time()
		if filter.From != nil && ts.Before(*filter.From) {
			continue
		}
		if filter.To != nil && ts.After(*filter.To) {
			continue
		}
		out = append(out, t)
	}

	// Orden por timestamp desc (más reciente primero)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Time().After(out[j].Time())
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
