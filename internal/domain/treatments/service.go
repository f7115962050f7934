package treatments

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	EventType string
	Mills     int64
	CreatedAt string
	Insulin   float64
	Carbs     float64
	Rate      float64
	Absolute  float64
	Duration  float64
	EnteredBy string
	Notes     string
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Treatment, error) {
	if strings.TrimSpace(userID) == "" {
		return Treatment{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.EventType) == "" {
		return Treatment{}, ErrInvalidInput
	}
	// Valores no finitos no entran al store; el cálculo de IOB además los
	// trata como contribución cero por si llegan por otra vía.
	for _, v := range []float64{in.Insulin, in.Carbs, in.Rate, in.Absolute, in.Duration} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Treatment{}, ErrInvalidInput
		}
	}

	t := Treatment{
		ID:        uuid.NewString(),
		UserID:    userID,
		EventType: strings.TrimSpace(in.EventType),
		Mills:     in.Mills,
		CreatedAt: strings.TrimSpace(in.CreatedAt),
		Insulin:   in.Insulin,
		Carbs:     in.Carbs,
		Rate:      in.Rate,
		Absolute:  in.Absolute,
		Duration:  in.Duration,
		EnteredBy: strings.TrimSpace(in.EnteredBy),
		Notes:     strings.TrimSpace(in.Notes),
	}

	if t.Mills == 0 && t.CreatedAt == "" {
		// Sin timestamp explícito, el registro queda fechado al momento
		// de subida (comportamiento careportal).
		t.Mills = s.now().UnixMilli()
	}
	if t.Time().IsZero() {
		return Treatment{}, ErrInvalidInput
	}
	// Normalizar mills para que los filtros por rango del storage no
	// dependan del fallback created_at.
	if t.Mills == 0 {
		t.Mills = t.Time().UnixMilli()
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return Treatment{}, err
	}
	return t, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string, filter ListFilter) ([]Treatment, error) {
	return s.repo.ListByUser(ctx, userID, filter)
}
