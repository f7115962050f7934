package doses

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("dose not found")

type Repository interface {
	Create(ctx context.Context, d Dose) error
	GetByID(ctx context.Context, id string) (Dose, error)
	ListByUser(ctx context.Context, userID string, filter ListFilter) ([]Dose, error)

	// ListRecentRapidActing devuelve las dosis del usuario cuyo medicamento
	// es de acción rápida (categoría que aporta IOB), anteriores o iguales a
	// before, más recientes primero, hasta limit. Es el contrato que consume
	// el motor de IOB; el filtro por categoría se resuelve en el storage.
	ListRecentRapidActing(ctx context.Context, userID string, before time.Time, limit int) ([]Dose, error)
}

type ListFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}
