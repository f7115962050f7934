package medications

import (
	"context"
	"errors"
)

// ErrNotFound lo devuelven los adapters cuando el medicamento no existe.
// Vive en el dominio (y no en cada adapter) porque el motor de IOB necesita
// distinguir "medicamento borrado" de un fallo real del storage.
var ErrNotFound = errors.New("medication not found")

type Repository interface {
	Create(ctx context.Context, m Medication) error
	GetByID(ctx context.Context, id string) (Medication, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Medication, error)
	Delete(ctx context.Context, id string) error
}
