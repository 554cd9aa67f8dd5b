package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/coursepilot/internal/db"
	"github.com/alexanderramin/coursepilot/internal/domain"
)

// SQLiteCompletedCourseRepo implements CompletedCourseRepo using a SQLite database.
type SQLiteCompletedCourseRepo struct {
	db db.DBTX
}

// NewSQLiteCompletedCourseRepo creates a new SQLiteCompletedCourseRepo.
func NewSQLiteCompletedCourseRepo(conn db.DBTX) *SQLiteCompletedCourseRepo {
	return &SQLiteCompletedCourseRepo{db: conn}
}

// Create appends a ledger record. Returns domain.ErrAlreadyCompleted when the
// student already has a record for the course.
func (r *SQLiteCompletedCourseRepo) Create(ctx context.Context, c *domain.CompletedCourse) error {
	query := `INSERT INTO completed_courses (id, student_id, course_code, grade, term, credit_hours, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.StudentID,
		c.CourseCode,
		c.Grade,
		c.Term,
		c.CreditHours,
		timestampOrNow(c.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("recording %s for %s: %w", c.CourseCode, c.StudentID, domain.ErrAlreadyCompleted)
		}
		return fmt.Errorf("inserting completed course: %w", err)
	}
	return nil
}

func (r *SQLiteCompletedCourseRepo) ListByStudent(ctx context.Context, studentID string) ([]domain.CompletedCourse, error) {
	query := `SELECT id, student_id, course_code, grade, term, credit_hours, created_at
		FROM completed_courses WHERE student_id = ? ORDER BY created_at, course_code`
	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("listing completed courses: %w", err)
	}
	defer rows.Close()

	var out []domain.CompletedCourse
	for rows.Next() {
		var c domain.CompletedCourse
		var createdAt string
		if err := rows.Scan(&c.ID, &c.StudentID, &c.CourseCode, &c.Grade, &c.Term, &c.CreditHours, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning completed course: %w", err)
		}
		c.CreatedAt, _, err = parseTimestamps(createdAt, "")
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating completed courses: %w", err)
	}
	return out, nil
}
