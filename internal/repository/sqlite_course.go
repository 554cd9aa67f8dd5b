package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/coursepilot/internal/db"
	"github.com/alexanderramin/coursepilot/internal/domain"
)

// SQLiteCourseRepo implements CourseRepo using a SQLite database.
type SQLiteCourseRepo struct {
	db db.DBTX
}

// NewSQLiteCourseRepo creates a new SQLiteCourseRepo.
func NewSQLiteCourseRepo(conn db.DBTX) *SQLiteCourseRepo {
	return &SQLiteCourseRepo{db: conn}
}

const courseColumns = `code, name, credit_hours, level, department, type, term_offered,
	max_enrollment, current_enrollment, difficulty, workload_hours, pass_rate,
	average_grade, active, created_at, updated_at`

func (r *SQLiteCourseRepo) Upsert(ctx context.Context, c *domain.Course) error {
	query := `INSERT INTO courses (` + courseColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(code) DO UPDATE SET
			name = excluded.name,
			credit_hours = excluded.credit_hours,
			level = excluded.level,
			department = excluded.department,
			type = excluded.type,
			term_offered = excluded.term_offered,
			max_enrollment = excluded.max_enrollment,
			current_enrollment = excluded.current_enrollment,
			difficulty = excluded.difficulty,
			workload_hours = excluded.workload_hours,
			pass_rate = excluded.pass_rate,
			average_grade = excluded.average_grade,
			active = excluded.active,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		c.Code,
		c.Name,
		c.CreditHours,
		c.Level,
		c.Department,
		string(c.Type),
		string(c.TermOffered),
		c.MaxEnrollment,
		c.CurrentEnrollment,
		string(c.Difficulty),
		c.WorkloadHours,
		c.PassRate,
		c.AverageGrade,
		boolToInt(c.Active),
		timestampOrNow(c.CreatedAt),
		timestampOrNow(c.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting course %s: %w", c.Code, err)
	}
	return nil
}

func (r *SQLiteCourseRepo) GetByCode(ctx context.Context, code string) (*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE UPPER(code) = UPPER(?)`
	c, err := scanCourse(r.db.QueryRowContext(ctx, query, code))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("course %s: %w", code, ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}

func (r *SQLiteCourseRepo) List(ctx context.Context, filter CourseFilter) ([]*domain.Course, error) {
	var where []string
	var args []any
	if filter.Department != "" {
		where = append(where, "UPPER(department) = UPPER(?)")
		args = append(args, filter.Department)
	}
	if filter.Type != "" {
		where = append(where, "type = ?")
		args = append(args, string(filter.Type))
	}
	if filter.ActiveOnly {
		where = append(where, "active = 1")
	}

	query := `SELECT ` + courseColumns + ` FROM courses`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY code"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*domain.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}
	return courses, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanCourse returns sql.ErrNoRows unwrapped so callers can map it.
func scanCourse(row rowScanner) (*domain.Course, error) {
	var c domain.Course
	var typ, term, difficulty, createdAt, updatedAt string
	var active int

	err := row.Scan(
		&c.Code, &c.Name, &c.CreditHours, &c.Level, &c.Department,
		&typ, &term,
		&c.MaxEnrollment, &c.CurrentEnrollment,
		&difficulty, &c.WorkloadHours, &c.PassRate, &c.AverageGrade,
		&active, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning course: %w", err)
	}

	c.Type = domain.CourseType(typ)
	c.TermOffered = domain.Term(term)
	c.Difficulty = domain.Difficulty(difficulty)
	c.Active = intToBool(active)
	c.CreatedAt, c.UpdatedAt, err = parseTimestamps(createdAt, updatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
