package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DashboardRepository handles admin dashboard data access.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// GetSummaryCounts retrieves the high-level metrics for the dashboard.
func (r *DashboardRepository) GetSummaryCounts(ctx context.Context) (departments, subjects, teachers, students, classes int, err error) {
	err = r.pool.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM departments),
			(SELECT COUNT(*) FROM subjects),
			(SELECT COUNT(*) FROM teachers),
			(SELECT COUNT(*) FROM students),
			(SELECT COUNT(*) FROM classes)`,
	).Scan(&departments, &subjects, &teachers, &students, &classes)
	return
}

// GetClassCountsByDepartment retrieves the distribution of classes across departments.
func (r *DashboardRepository) GetClassCountsByDepartment(ctx context.Context) (map[string]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT d.code, COUNT(c.id)
		 FROM departments d
		 LEFT JOIN classes c ON c.department_id = d.id
		 GROUP BY d.code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var code string
		var count int
		if err := rows.Scan(&code, &count); err != nil {
			return nil, err
		}
		counts[code] = count
	}
	return counts, rows.Err()
}

// DashboardRecentClass represents minimal data for recently updated classes.
type DashboardRecentClass struct {
	ID           int       `json:"id"`
	SubjectName  string    `json:"subject_name"`
	SectionName  string    `json:"section_name"`
	TeacherName  string    `json:"teacher_name"`
	StudentCount int       `json:"student_count"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GetRecentClasses retrieves the last N created or edited class offerings.
func (r *DashboardRepository) GetRecentClasses(ctx context.Context, limit int) ([]DashboardRecentClass, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.id, s.name, sec.name, t.name,
		        (SELECT COUNT(*) FROM class_students cs WHERE cs.class_id = c.id),
		        c.updated_at
		 FROM classes c
		 JOIN subjects s ON c.subject_id = s.id
		 JOIN sections sec ON c.section_id = sec.id
		 JOIN teachers t ON c.teacher_id = t.id
		 ORDER BY c.updated_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := []DashboardRecentClass{}
	for rows.Next() {
		var c DashboardRecentClass
		if err := rows.Scan(&c.ID, &c.SubjectName, &c.SectionName, &c.TeacherName, &c.StudentCount, &c.UpdatedAt); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}
