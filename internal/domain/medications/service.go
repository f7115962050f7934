package medications

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
	Name        string
	Category    string
	DIAHours    *float64
	PeakMinutes *float64
	Notes       string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Medication, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Medication{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Medication{}, ErrInvalidInput
	}

	cat, ok := ParseCategory(strings.TrimSpace(in.Category))
	if !ok {
		return Medication{}, ErrInvalidInput
	}

	// Overrides: si vienen, tienen que ser finitos y positivos.
	if !validOptional(in.DIAHours) || !validOptional(in.PeakMinutes) {
		return Medication{}, ErrInvalidInput
	}

	now := s.now()
	m := Medication{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Name:        strings.TrimSpace(in.Name),
		Category:    cat,
		DIAHours:    in.DIAHours,
		PeakMinutes: in.PeakMinutes,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return Medication{}, err
	}
	return m, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Medication{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Medication, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

// Delete borra el medicamento. Las dosis históricas que lo referencien no se
// tocan: el motor de IOB las descarta en silencio (política fail-soft).
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

func validOptional(v *float64) bool {
	if v == nil {
		return true
	}
	return !math.IsNaN(*v) && !math.IsInf(*v, 0) && *v > 0
}
