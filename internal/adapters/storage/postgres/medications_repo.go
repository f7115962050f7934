package postgres

import (
	"context"
	"database/sql"
	"strings"

	"glucose-iob/internal/domain/medications"
)

type MedicationsRepo struct {
	db *sql.DB
}

func NewMedicationsRepo(db *sql.DB) *MedicationsRepo {
	return &MedicationsRepo{db: db}
}

func (r *MedicationsRepo) Create(ctx context.Context, m medications.Medication) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO medications (
			id, owner_user_id,
			name, category,
			dia_hours, peak_minutes, notes,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		m.ID,
		m.OwnerUserID,
		m.Name,
		string(m.Category),
		toNullFloat(m.DIAHours),
		toNullFloat(m.PeakMinutes),
		m.Notes,
		m.CreatedAt,
		m.UpdatedAt,
	)
	return err
}

func (r *MedicationsRepo) GetByID(ctx context.Context, id string) (medications.Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return medications.Medication{}, medications.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, owner_user_id,
			name, category,
			dia_hours, peak_minutes, notes,
			created_at, updated_at
		FROM medications
		WHERE id = $1
	`, id)

	m, err := scanMedication(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return medications.Medication{}, medications.ErrNotFound
		}
		return medications.Medication{}, err
	}
	return m, nil
}

func (r *MedicationsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]medications.Medication, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, owner_user_id,
			name, category,
			dia_hours, peak_minutes, notes,
			created_at, updated_at
		FROM medications
		WHERE owner_user_id = $1
		ORDER BY created_at ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medications.Medication, 0)
	for rows.Next() {
		m, err := scanMedication(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MedicationsRepo) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return medications.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `
		DELETE FROM medications
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return medications.ErrNotFound
	}
	return nil
}

func scanMedication(scan func(dest ...any) error) (medications.Medication, error) {
	var m medications.Medication
	var cat string
	var dia, peak sql.NullFloat64

	if err := scan(
		&m.ID,
		&m.OwnerUserID,
		&m.Name,
		&cat,
		&dia,
		&peak,
		&m.Notes,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return medications.Medication{}, err
	}

	m.Category = medications.Category(cat)
	if dia.Valid {
		v := dia.Float64
		m.DIAHours = &v
	}
	if peak.Valid {
		v := peak.Float64
		m.PeakMinutes = &v
	}
	return m, nil
}

// dia_hours / peak_minutes son NULL cuando el medicamento no trae override
func toNullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{Valid: false}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
