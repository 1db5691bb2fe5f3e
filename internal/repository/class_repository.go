package repository

import (
	"context"
	"strconv"

	"github.com/classpoint/sis-backend/internal/enrollment"
	"github.com/classpoint/sis-backend/internal/model"
	"github.com/classpoint/sis-backend/internal/schedule"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ClassRepository handles class aggregate data access: the class row, its
// weekly schedule entries, and its enrolled roster. Writes touch all three
// in one transaction so a failed save leaves nothing half-applied.
type ClassRepository struct {
	pool *pgxpool.Pool
}

// NewClassRepository creates a new ClassRepository.
func NewClassRepository(pool *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{pool: pool}
}

// GetByID retrieves a class with its schedules and roster.
func (r *ClassRepository) GetByID(ctx context.Context, id int) (*model.Class, error) {
	c := &model.Class{}
	err := r.pool.QueryRow(ctx,
		`SELECT c.id, c.department_id, c.subject_id, c.section_id, c.teacher_id,
		        d.name, s.name, sec.name, t.name, c.created_at, c.updated_at
		 FROM classes c
		 JOIN departments d ON c.department_id = d.id
		 JOIN subjects s ON c.subject_id = s.id
		 JOIN sections sec ON c.section_id = sec.id
		 JOIN teachers t ON c.teacher_id = t.id
		 WHERE c.id = $1`, id,
	).Scan(&c.ID, &c.DepartmentID, &c.SubjectID, &c.SectionID, &c.TeacherID,
		&c.DepartmentName, &c.SubjectName, &c.SectionName, &c.TeacherName,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if c.Schedules, err = r.schedulesOf(ctx, id); err != nil {
		return nil, err
	}
	if c.StudentIDs, err = r.CommittedRoster(ctx, id); err != nil {
		return nil, err
	}
	return c, nil
}

// ListPaginated retrieves class summary rows with pagination and an optional
// search across subject, section, and teacher names.
func (r *ClassRepository) ListPaginated(ctx context.Context, search string, limit, offset int) ([]model.ClassSummary, int, error) {
	where := ""
	var countArgs []interface{}
	if search != "" {
		where = ` WHERE s.name ILIKE '%' || $1 || '%' OR sec.name ILIKE '%' || $1 || '%' OR t.name ILIKE '%' || $1 || '%'`
		countArgs = append(countArgs, search)
	}

	var total int
	countQuery := `SELECT COUNT(*)
		 FROM classes c
		 JOIN subjects s ON c.subject_id = s.id
		 JOIN sections sec ON c.section_id = sec.id
		 JOIN teachers t ON c.teacher_id = t.id` + where
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args := append([]interface{}{}, countArgs...)
	argIdx := len(args) + 1
	query := `SELECT c.id, d.name, s.name, sec.name, t.name,
		        (SELECT COUNT(*) FROM class_schedules cs WHERE cs.class_id = c.id),
		        (SELECT COUNT(*) FROM class_students ce WHERE ce.class_id = c.id),
		        c.updated_at
		 FROM classes c
		 JOIN departments d ON c.department_id = d.id
		 JOIN subjects s ON c.subject_id = s.id
		 JOIN sections sec ON c.section_id = sec.id
		 JOIN teachers t ON c.teacher_id = t.id` + where +
		` ORDER BY c.updated_at DESC LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	summaries := []model.ClassSummary{}
	for rows.Next() {
		var s model.ClassSummary
		if err := rows.Scan(&s.ID, &s.DepartmentName, &s.SubjectName, &s.SectionName, &s.TeacherName,
			&s.ScheduleCount, &s.StudentCount, &s.UpdatedAt); err != nil {
			return nil, 0, err
		}
		summaries = append(summaries, s)
	}
	return summaries, total, rows.Err()
}

// Create inserts a class with its schedules and initial roster atomically.
func (r *ClassRepository) Create(ctx context.Context, c *model.Class) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO classes (department_id, subject_id, section_id, teacher_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		c.DepartmentID, c.SubjectID, c.SectionID, c.TeacherID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return err
	}

	if err := insertSchedules(ctx, tx, c.ID, c.Schedules); err != nil {
		return err
	}
	for _, studentID := range c.StudentIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO class_students (class_id, student_id) VALUES ($1, $2)`,
			c.ID, studentID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Update replaces the class row and its entire schedule list, and applies
// the roster patch, in one transaction. Schedules are never patched entry
// by entry; the validated list always replaces the stored one. No version
// check is performed: concurrent edits resolve last-write-wins.
func (r *ClassRepository) Update(ctx context.Context, c *model.Class, addStudents, removeStudents []int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`UPDATE classes SET department_id = $1, subject_id = $2, section_id = $3, teacher_id = $4, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $5`,
		c.DepartmentID, c.SubjectID, c.SectionID, c.TeacherID, c.ID,
	)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM class_schedules WHERE class_id = $1`, c.ID); err != nil {
		return err
	}
	if err := insertSchedules(ctx, tx, c.ID, c.Schedules); err != nil {
		return err
	}

	for _, studentID := range removeStudents {
		if _, err := tx.Exec(ctx,
			`DELETE FROM class_students WHERE class_id = $1 AND student_id = $2`,
			c.ID, studentID); err != nil {
			return err
		}
	}
	for _, studentID := range addStudents {
		if _, err := tx.Exec(ctx,
			`INSERT INTO class_students (class_id, student_id) VALUES ($1, $2)
			 ON CONFLICT DO NOTHING`,
			c.ID, studentID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Delete removes a class; schedules and roster rows cascade.
func (r *ClassRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM classes WHERE id = $1`, id)
	return err
}

// CommittedRoster returns the persisted student ids of a class.
func (r *ClassRepository) CommittedRoster(ctx context.Context, classID int) ([]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT student_id FROM class_students WHERE class_id = $1 ORDER BY student_id`, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// MembershipsExcluding loads the rosters of every class except the one being
// edited, with the subject data the conflict checker needs to name a
// blocking enrollment. Pass 0 to include all classes (creating a new class).
func (r *ClassRepository) MembershipsExcluding(ctx context.Context, classID int) ([]enrollment.ClassMembership, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.id, c.subject_id, s.name, cs.student_id
		 FROM classes c
		 JOIN subjects s ON c.subject_id = s.id
		 JOIN class_students cs ON cs.class_id = c.id
		 WHERE c.id <> $1
		 ORDER BY c.id`, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var memberships []enrollment.ClassMembership
	index := map[int]int{}
	for rows.Next() {
		var cid, subjectID, studentID int
		var subjectName string
		if err := rows.Scan(&cid, &subjectID, &subjectName, &studentID); err != nil {
			return nil, err
		}
		i, ok := index[cid]
		if !ok {
			memberships = append(memberships, enrollment.ClassMembership{
				ClassID:     cid,
				SubjectID:   subjectID,
				SubjectName: subjectName,
			})
			i = len(memberships) - 1
			index[cid] = i
		}
		memberships[i].StudentIDs = append(memberships[i].StudentIDs, studentID)
	}
	return memberships, rows.Err()
}

func (r *ClassRepository) schedulesOf(ctx context.Context, classID int) ([]schedule.Entry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT day_of_week, start_time, end_time, room, start_minute, end_minute
		 FROM class_schedules WHERE class_id = $1
		 ORDER BY day_of_week, start_minute`, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []schedule.Entry{}
	for rows.Next() {
		var e schedule.Entry
		if err := rows.Scan(&e.DayOfWeek, &e.StartTime, &e.EndTime, &e.Room, &e.StartMin, &e.EndMin); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func insertSchedules(ctx context.Context, tx pgx.Tx, classID int, entries []schedule.Entry) error {
	for _, e := range entries {
		if _, err := tx.Exec(ctx,
			`INSERT INTO class_schedules (class_id, day_of_week, start_time, end_time, room, start_minute, end_minute)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			classID, e.DayOfWeek, e.StartTime, e.EndTime, e.Room, e.StartMin, e.EndMin); err != nil {
			return err
		}
	}
	return nil
}
