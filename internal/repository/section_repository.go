package repository

import (
	"context"

	"github.com/classpoint/sis-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SectionRepository handles section data access.
type SectionRepository struct {
	pool *pgxpool.Pool
}

// NewSectionRepository creates a new SectionRepository.
func NewSectionRepository(pool *pgxpool.Pool) *SectionRepository {
	return &SectionRepository{pool: pool}
}

// GetByID retrieves a section by its ID.
func (r *SectionRepository) GetByID(ctx context.Context, id int) (*model.Section, error) {
	s := &model.Section{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, department_id, name, capacity, created_at, updated_at
		 FROM sections WHERE id = $1`, id,
	).Scan(&s.ID, &s.DepartmentID, &s.Name, &s.Capacity, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// List retrieves all sections, optionally filtered by department.
func (r *SectionRepository) List(ctx context.Context, departmentID *int) ([]model.Section, error) {
	query := `SELECT id, department_id, name, capacity, created_at, updated_at FROM sections`
	var args []interface{}
	if departmentID != nil {
		query += ` WHERE department_id = $1`
		args = append(args, *departmentID)
	}
	query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []model.Section
	for rows.Next() {
		var s model.Section
		if err := rows.Scan(&s.ID, &s.DepartmentID, &s.Name, &s.Capacity, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

// Create inserts a new section.
func (r *SectionRepository) Create(ctx context.Context, s *model.Section) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO sections (department_id, name, capacity)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		s.DepartmentID, s.Name, s.Capacity,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// Update modifies an existing section.
func (r *SectionRepository) Update(ctx context.Context, s *model.Section) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE sections SET department_id = $1, name = $2, capacity = $3, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $4`,
		s.DepartmentID, s.Name, s.Capacity, s.ID,
	)
	return err
}

// Delete removes a section by its ID.
func (r *SectionRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM sections WHERE id = $1`, id)
	return err
}
