package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/classpoint/sis-backend/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrDuplicateAdminEmail = errors.New("admin with this email already exists")

// AdminRepository handles console user data access.
type AdminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository creates a new AdminRepository.
func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

// GetByID retrieves an admin by ID.
func (r *AdminRepository) GetByID(ctx context.Context, id int) (*model.Admin, error) {
	a := &model.Admin{}
	err := r.pool.QueryRow(ctx,
		`SELECT a.id, a.email, a.name, a.password_hash, a.role_id, r.name, a.created_at, a.updated_at
		 FROM admins a JOIN roles r ON a.role_id = r.id
		 WHERE a.id = $1`, id,
	).Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.RoleID, &a.RoleName, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// GetByEmail retrieves an admin by their unique email.
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	a := &model.Admin{}
	err := r.pool.QueryRow(ctx,
		`SELECT a.id, a.email, a.name, a.password_hash, a.role_id, r.name, a.created_at, a.updated_at
		 FROM admins a JOIN roles r ON a.role_id = r.id
		 WHERE a.email = $1`, email,
	).Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.RoleID, &a.RoleName, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListPaginated retrieves admins with pagination and optional name/email search.
func (r *AdminRepository) ListPaginated(ctx context.Context, search string, limit, offset int) ([]model.Admin, int, error) {
	countQuery := `SELECT COUNT(*) FROM admins`
	var countArgs []interface{}
	if search != "" {
		countQuery += ` WHERE name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'`
		countArgs = append(countArgs, search)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT a.id, a.email, a.name, a.password_hash, a.role_id, r.name, a.created_at, a.updated_at
	          FROM admins a JOIN roles r ON a.role_id = r.id`
	var args []interface{}
	argIdx := 1

	if search != "" {
		query += ` WHERE a.name ILIKE '%' || $1 || '%' OR a.email ILIKE '%' || $1 || '%'`
		args = append(args, search)
		argIdx++
	}

	query += ` ORDER BY a.name LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var admins []model.Admin
	for rows.Next() {
		var a model.Admin
		if err := rows.Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.RoleID, &a.RoleName, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, err
		}
		admins = append(admins, a)
	}
	return admins, total, rows.Err()
}

// Create inserts a new admin.
func (r *AdminRepository) Create(ctx context.Context, a *model.Admin) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO admins (email, name, password_hash, role_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		a.Email, a.Name, a.PasswordHash, a.RoleID,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateAdminEmail
		}
		return err
	}
	return nil
}

// Update modifies an admin's profile and role. The password hash is only
// changed when non-empty.
func (r *AdminRepository) Update(ctx context.Context, a *model.Admin) error {
	var err error
	if a.PasswordHash != "" {
		_, err = r.pool.Exec(ctx,
			`UPDATE admins SET email = $1, name = $2, role_id = $3, password_hash = $4, updated_at = CURRENT_TIMESTAMP
			 WHERE id = $5`,
			a.Email, a.Name, a.RoleID, a.PasswordHash, a.ID,
		)
	} else {
		_, err = r.pool.Exec(ctx,
			`UPDATE admins SET email = $1, name = $2, role_id = $3, updated_at = CURRENT_TIMESTAMP
			 WHERE id = $4`,
			a.Email, a.Name, a.RoleID, a.ID,
		)
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateAdminEmail
		}
		return err
	}
	return nil
}

// Delete removes an admin by ID.
func (r *AdminRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM admins WHERE id = $1`, id)
	return err
}
