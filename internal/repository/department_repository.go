package repository

import (
	"context"

	"github.com/classpoint/sis-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DepartmentRepository handles department data access.
type DepartmentRepository struct {
	pool *pgxpool.Pool
}

// NewDepartmentRepository creates a new DepartmentRepository.
func NewDepartmentRepository(pool *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{pool: pool}
}

// GetByID retrieves a department by its ID.
func (r *DepartmentRepository) GetByID(ctx context.Context, id int) (*model.Department, error) {
	d := &model.Department{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, code, name, created_at, updated_at
		 FROM departments WHERE id = $1`, id,
	).Scan(&d.ID, &d.Code, &d.Name, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// List retrieves all departments.
func (r *DepartmentRepository) List(ctx context.Context) ([]model.Department, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, code, name, created_at, updated_at
		 FROM departments ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []model.Department
	for rows.Next() {
		var d model.Department
		if err := rows.Scan(&d.ID, &d.Code, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

// Create inserts a new department.
func (r *DepartmentRepository) Create(ctx context.Context, d *model.Department) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO departments (code, name)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		d.Code, d.Name,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

// Update modifies an existing department.
func (r *DepartmentRepository) Update(ctx context.Context, d *model.Department) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE departments SET code = $1, name = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3`,
		d.Code, d.Name, d.ID,
	)
	return err
}

// Delete removes a department by its ID.
func (r *DepartmentRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	return err
}
