package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"glucose-iob/internal/domain/treatments"
)

type TreatmentsRepo struct {
	db *sql.DB
}

func NewTreatmentsRepo(db *sql.DB) *TreatmentsRepo {
	return &TreatmentsRepo{db: db}
}

func (r *TreatmentsRepo) Create(ctx context.Context, t treatments.Treatment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO treatments (
			id, user_id, event_type,
			mills, created_at,
			insulin, carbs,
			rate, absolute, duration,
			entered_by, notes
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		t.ID,
		t.UserID,
		t.EventType,
		t.Mills,
		t.CreatedAt,
		t.Insulin,
		t.Carbs,
		t.Rate,
		t.Absolute,
		t.Duration,
		t.EnteredBy,
		t.Notes,
	)
	return err
}

func (r *TreatmentsRepo) ListByUser(ctx context.Context, userID string, filter treatments.ListFilter) ([]treatments.Treatment, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}

	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			id, user_id, event_type,
			mills, created_at,
			insulin, carbs,
			rate, absolute, duration,
			entered_by, notes
		FROM treatments
		WHERE user_id = $1
	`)

	args := []any{userID}
	argN := 2

	// El rango se filtra sobre mills (los registros solo-created_at se
	// normalizan a mills al crearse, ver service.Create).
	if filter.From != nil {
		sb.WriteString(fmt.Sprintf(" AND mills >= $%d", argN))
		args = append(args, filter.From.UnixMilli())
		argN++
	}
	if filter.To != nil {
		sb.WriteString(fmt.Sprintf(" AND mills <= $%d", argN))
		args = append(args, filter.To.UnixMilli())
		argN++
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}

	sb.WriteString(" ORDER BY mills DESC")
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]treatments.Treatment, 0)
	for rows.Next() {
		var t treatments.Treatment
		if err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.EventType,
			&t.Mills,
			&t.CreatedAt,
			&t.Insulin,
			&t.Carbs,
			&t.Rate,
			&t.Absolute,
			&t.Duration,
			&t.EnteredBy,
			&t.Notes,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
