package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/coursepilot/internal/db"
	"github.com/alexanderramin/coursepilot/internal/domain"
)

// SQLiteStudentRepo implements StudentRepo using a SQLite database.
type SQLiteStudentRepo struct {
	db db.DBTX
}

// NewSQLiteStudentRepo creates a new SQLiteStudentRepo.
func NewSQLiteStudentRepo(conn db.DBTX) *SQLiteStudentRepo {
	return &SQLiteStudentRepo{db: conn}
}

const studentColumns = `id, name, gpa, level, attendance_pct, department, created_at, updated_at`

func (r *SQLiteStudentRepo) Upsert(ctx context.Context, s *domain.Student) error {
	query := `INSERT INTO students (` + studentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			gpa = excluded.gpa,
			level = excluded.level,
			attendance_pct = excluded.attendance_pct,
			department = excluded.department,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		s.GPA,
		s.Level,
		nullableFloatToValue(s.AttendancePct),
		s.Department,
		timestampOrNow(s.CreatedAt),
		timestampOrNow(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting student %s: %w", s.ID, err)
	}
	return nil
}

func (r *SQLiteStudentRepo) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = ?`
	s, err := scanStudent(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("student %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

func (r *SQLiteStudentRepo) List(ctx context.Context) ([]*domain.Student, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+studentColumns+` FROM students ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("listing students: %w", err)
	}
	defer rows.Close()

	var students []*domain.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating students: %w", err)
	}
	return students, nil
}

func scanStudent(row rowScanner) (*domain.Student, error) {
	var s domain.Student
	var attendance sql.NullFloat64
	var createdAt, updatedAt string

	err := row.Scan(&s.ID, &s.Name, &s.GPA, &s.Level, &attendance, &s.Department, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning student: %w", err)
	}
	s.AttendancePct = parseNullableFloat(attendance)
	s.CreatedAt, s.UpdatedAt, err = parseTimestamps(createdAt, updatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
