package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinilab/clinilab/internal/domain"
)

// CatalogRepository implements usecase.CatalogRepository over the lookup
// tables behind the dashboard counts.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) CountPatients(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM patients`)
}

func (r *CatalogRepository) CountServices(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM services`)
}

func (r *CatalogRepository) CountProviders(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM providers`)
}

func (r *CatalogRepository) CountDoctors(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM doctors`)
}

func (r *CatalogRepository) count(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// ListBranches lists branches ordered by name.
func (r *CatalogRepository) ListBranches(ctx context.Context, limit, offset int) ([]*domain.Branch, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, address, created_at FROM branches
		ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var branches []*domain.Branch
	for rows.Next() {
		var b domain.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.Address, &b.CreatedAt); err != nil {
			return nil, err
		}
		branches = append(branches, &b)
	}

	return branches, rows.Err()
}

// ListPatients lists patients ordered by name.
func (r *CatalogRepository) ListPatients(ctx context.Context, limit, offset int) ([]*domain.Patient, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, phone, email, created_at FROM patients
		ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var patients []*domain.Patient
	for rows.Next() {
		var p domain.Patient
		if err := rows.Scan(&p.ID, &p.Name, &p.Phone, &p.Email, &p.CreatedAt); err != nil {
			return nil, err
		}
		patients = append(patients, &p)
	}

	return patients, rows.Err()
}

// ListDoctors lists doctors ordered by name.
func (r *CatalogRepository) ListDoctors(ctx context.Context, limit, offset int) ([]*domain.Doctor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, specialty, created_at FROM doctors
		ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var doctors []*domain.Doctor
	for rows.Next() {
		var d domain.Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.Specialty, &d.CreatedAt); err != nil {
			return nil, err
		}
		doctors = append(doctors, &d)
	}

	return doctors, rows.Err()
}

// ListProviders lists providers ordered by name.
func (r *CatalogRepository) ListProviders(ctx context.Context, limit, offset int) ([]*domain.Provider, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, phone, created_at FROM providers
		ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var providers []*domain.Provider
	for rows.Next() {
		var p domain.Provider
		if err := rows.Scan(&p.ID, &p.Name, &p.Phone, &p.CreatedAt); err != nil {
			return nil, err
		}
		providers = append(providers, &p)
	}

	return providers, rows.Err()
}

// ListServices lists services ordered by name.
func (r *CatalogRepository) ListServices(ctx context.Context, limit, offset int) ([]*domain.Service, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, price, created_at FROM services
		ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*domain.Service
	for rows.Next() {
		var (
			s     domain.Service
			price pgtype.Numeric
		)
		if err := rows.Scan(&s.ID, &s.Name, &price, &s.CreatedAt); err != nil {
			return nil, err
		}
		s.Price = numericToDecimal(price)
		services = append(services, &s)
	}

	return services, rows.Err()
}
