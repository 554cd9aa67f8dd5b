package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/coursepilot/internal/db"
	"github.com/alexanderramin/coursepilot/internal/domain"
)

// SQLitePrerequisiteRepo implements PrerequisiteRepo using a SQLite database.
type SQLitePrerequisiteRepo struct {
	db db.DBTX
}

// NewSQLitePrerequisiteRepo creates a new SQLitePrerequisiteRepo.
func NewSQLitePrerequisiteRepo(conn db.DBTX) *SQLitePrerequisiteRepo {
	return &SQLitePrerequisiteRepo{db: conn}
}

func (r *SQLitePrerequisiteRepo) ReplaceForCourse(ctx context.Context, courseCode string, edges []domain.PrerequisiteEdge) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM prerequisites WHERE course_code = ?`, courseCode); err != nil {
		return fmt.Errorf("clearing prerequisites for %s: %w", courseCode, err)
	}

	query := `INSERT INTO prerequisites (course_code, prerequisite_code, minimum_grade, is_strict, group_id, order_index)
		VALUES (?, ?, ?, ?, ?, ?)`
	for i, e := range edges {
		if e.CourseCode != courseCode {
			return fmt.Errorf("edge %s -> %s does not belong to %s", e.CourseCode, e.PrerequisiteCode, courseCode)
		}
		_, err := r.db.ExecContext(ctx, query,
			e.CourseCode,
			e.PrerequisiteCode,
			e.MinimumGrade,
			boolToInt(e.IsStrict),
			e.GroupID,
			i,
		)
		if err != nil {
			return fmt.Errorf("inserting prerequisite %s -> %s: %w", e.CourseCode, e.PrerequisiteCode, err)
		}
	}
	return nil
}

func (r *SQLitePrerequisiteRepo) ListForCourse(ctx context.Context, courseCode string) ([]domain.PrerequisiteEdge, error) {
	query := `SELECT course_code, prerequisite_code, minimum_grade, is_strict, group_id
		FROM prerequisites WHERE course_code = ? ORDER BY group_id, order_index`
	rows, err := r.db.QueryContext(ctx, query, courseCode)
	if err != nil {
		return nil, fmt.Errorf("listing prerequisites for %s: %w", courseCode, err)
	}
	defer rows.Close()
	return scanEdges(rows)
}

// ListAll returns every edge in catalog order: by course, group, then the
// order edges were written in.
func (r *SQLitePrerequisiteRepo) ListAll(ctx context.Context) ([]domain.PrerequisiteEdge, error) {
	query := `SELECT course_code, prerequisite_code, minimum_grade, is_strict, group_id
		FROM prerequisites ORDER BY course_code, group_id, order_index`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing prerequisites: %w", err)
	}
	defer rows.Close()
	return scanEdges(rows)
}

func scanEdges(rows *sql.Rows) ([]domain.PrerequisiteEdge, error) {
	var edges []domain.PrerequisiteEdge
	for rows.Next() {
		var e domain.PrerequisiteEdge
		var strict int
		if err := rows.Scan(&e.CourseCode, &e.PrerequisiteCode, &e.MinimumGrade, &strict, &e.GroupID); err != nil {
			return nil, fmt.Errorf("scanning prerequisite: %w", err)
		}
		e.IsStrict = intToBool(strict)
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating prerequisites: %w", err)
	}
	return edges, nil
}
