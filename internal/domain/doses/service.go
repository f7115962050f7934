package doses

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"glucose-iob/internal/domain/medications"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrMedicationUnknown = errors.New("medication unknown")
)

type Service struct {
	repo Repository
	meds medications.Repository
	now  func() time.Time
}

func NewService(repo Repository, meds medications.Repository) *Service {
	return &Service{
		repo: repo,
		meds: meds,
		now:  time.Now,
	}
}

type CreateInput struct {
	MedicationID string
	Units        float64
	TakenAt      time.Time
	Notes        string
}

// Create registra una dosis. El medicamento tiene que existir y ser del
// usuario en el momento del registro; si después se borra, la dosis queda
// huérfana a propósito (el cálculo de IOB la descarta en silencio).
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Dose, error) {
	if strings.TrimSpace(userID) == "" {
		return Dose{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.MedicationID) == "" {
		return Dose{}, ErrInvalidInput
	}
	if math.IsNaN(in.Units) || math.IsInf(in.Units, 0) || in.Units <= 0 {
		return Dose{}, ErrInvalidInput
	}
	if in.TakenAt.IsZero() {
		return Dose{}, ErrInvalidInput
	}

	m, err := s.meds.GetByID(ctx, strings.TrimSpace(in.MedicationID))
	if err != nil {
		if errors.Is(err, medications.ErrNotFound) {
			return Dose{}, ErrMedicationUnknown
		}
		return Dose{}, err
	}
	if m.OwnerUserID != userID {
		return Dose{}, ErrMedicationUnknown
	}

	d := Dose{
		ID:           uuid.NewString(),
		UserID:       userID,
		MedicationID: m.ID,
		Units:        in.Units,
		TakenAt:      in.TakenAt,
		RecordedAt:   s.now(),
		Notes:        strings.TrimSpace(in.Notes),
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return Dose{}, err
	}
	return d, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string, filter ListFilter) ([]Dose, error) {
	return s.repo.ListByUser(ctx, userID, filter)
}
