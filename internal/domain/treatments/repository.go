package treatments

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("treatment not found")

type Repository interface {
	Create(ctx context.Context, t Treatment) error
	ListByUser(ctx context.Context, userID string, filter ListFilter) ([]Treatment, error)
}

type ListFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}
