package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"glucose-iob/internal/domain/doses"
)

type DosesRepo struct {
	db *sql.DB
}

func NewDosesRepo(db *sql.DB) *DosesRepo {
	return &DosesRepo{db: db}
}

func (r *DosesRepo) Create(ctx context.Context, d doses.Dose) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO doses (
			id, user_id, medication_id,
			units, taken_at, recorded_at,
			notes
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		d.ID,
		d.UserID,
		d.MedicationID,
		d.Units,
		d.TakenAt,
		d.RecordedAt,
		d.Notes,
	)
	return err
}

func (r *DosesRepo) GetByID(ctx context.Context, id string) (doses.Dose, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return doses.Dose{}, doses.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, user_id, medication_id,
			units, taken_at, recorded_at,
			notes
		FROM doses
		WHERE id = $1
	`, id)

	var d doses.Dose
	if err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.MedicationID,
		&d.Units,
		&d.TakenAt,
		&d.RecordedAt,
		&d.Notes,
	); err != nil {
		if err == sql.ErrNoRows {
			return doses.Dose{}, doses.ErrNotFound
		}
		return doses.Dose{}, err
	}
	return d, nil
}

func (r *DosesRepo) ListByUser(ctx context.Context, userID string, filter doses.ListFilter) ([]doses.Dose, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}

	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			id, user_id, medication_id,
			units, taken_at, recorded_at,
			notes
		FROM doses
		WHERE user_id = $1
	`)

	args := []any{userID}
	argN := 2

	if filter.From != nil {
		sb.WriteString(fmt.Sprintf(" AND taken_at >= $%d", argN))
		args = append(args, *filter.From)
		argN++
	}
	if filter.To != nil {
		sb.WriteString(fmt.Sprintf(" AND taken_at <= $%d", argN))
		args = append(args, *filter.To)
		argN++
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	sb.WriteString(" ORDER BY taken_at DESC")
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDoses(rows)
}

// ListRecentRapidActing resuelve el filtro por categoría con un JOIN, para
// no traer dosis que el motor descartaría de todas formas.
func (r *DosesRepo) ListRecentRapidActing(ctx context.Context, userID string, before time.Time, limit int) ([]doses.Dose, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}

	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			d.id, d.user_id, d.medication_id,
			d.units, d.taken_at, d.recorded_at,
			d.notes
		FROM doses d
		JOIN medications m ON m.id = d.medication_id
		WHERE d.user_id = $1
		  AND d.taken_at <= $2
		  AND m.category IN ('ultra_rapid', 'rapid_acting', 'short_acting')
		ORDER BY d.taken_at DESC
		LIMIT $3
	`, userID, before, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDoses(rows)
}

func scanDoses(rows *sql.Rows) ([]doses.Dose, error) {
	out := make([]doses.Dose, 0)
	for rows.Next() {
		var d doses.Dose
		if err := rows.Scan(
			&d.ID,
			&d.UserID,
			&d.MedicationID,
			&d.Units,
			&d.TakenAt,
			&d.RecordedAt,
			&d.Notes,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
