package directoryserver

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hackgods/clinic-booking/internal/directory"
)

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

func scanDoctor(row pgx.Row) (*directory.Doctor, error) {
	var d directory.Doctor
	var image *string

	err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Specialty,
		&image,
	)
	if err != nil {
		return nil, err
	}

	if image != nil {
		d.Image = *image
	}
	return &d, nil
}

func (r *PgRepository) ListSpecialties(ctx context.Context) ([]directory.Specialty, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name
		FROM specialties
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("query specialties: %w", err)
	}
	defer rows.Close()

	var out []directory.Specialty
	for rows.Next() {
		var s directory.Specialty
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan specialty: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PgRepository) ListDoctors(ctx context.Context) ([]directory.Doctor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, specialty, image
		FROM doctors
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("query doctors: %w", err)
	}
	defer rows.Close()

	return collectDoctors(rows)
}

func (r *PgRepository) ListDoctorsBySpecialty(ctx context.Context, specialty string) ([]directory.Doctor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, specialty, image
		FROM doctors
		WHERE specialty = $1
		ORDER BY name
	`, specialty)
	if err != nil {
		return nil, fmt.Errorf("query doctors by specialty: %w", err)
	}
	defer rows.Close()

	return collectDoctors(rows)
}

func collectDoctors(rows pgx.Rows) ([]directory.Doctor, error) {
	var out []directory.Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan doctor: %w", err)
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}
