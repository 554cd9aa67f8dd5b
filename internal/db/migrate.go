package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillCompletedCredits(db); err != nil {
		return fmt.Errorf("backfilling completed credit hours: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS courses (
		code               TEXT PRIMARY KEY,
		name               TEXT NOT NULL,
		credit_hours       INTEGER NOT NULL CHECK(credit_hours > 0),
		level              INTEGER NOT NULL CHECK(level >= 1),
		department         TEXT NOT NULL DEFAULT '',
		type               TEXT NOT NULL
		                   CHECK(type IN ('required','elective','general_education')),
		term_offered       TEXT NOT NULL DEFAULT 'Both'
		                   CHECK(term_offered IN ('Fall','Spring','Summer','Both')),
		max_enrollment     INTEGER NOT NULL DEFAULT 0,
		current_enrollment INTEGER NOT NULL DEFAULT 0,
		difficulty         TEXT NOT NULL DEFAULT 'Medium'
		                   CHECK(difficulty IN ('Easy','Medium','Hard')),
		workload_hours     REAL NOT NULL DEFAULT 0,
		pass_rate          REAL NOT NULL DEFAULT 0 CHECK(pass_rate >= 0 AND pass_rate <= 100),
		average_grade      REAL NOT NULL DEFAULT 0 CHECK(average_grade >= 0 AND average_grade <= 4),
		active             INTEGER NOT NULL DEFAULT 1,
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_courses_department ON courses(department)`,

	`CREATE TABLE IF NOT EXISTS prerequisites (
		course_code       TEXT NOT NULL REFERENCES courses(code) ON DELETE CASCADE,
		prerequisite_code TEXT NOT NULL REFERENCES courses(code) ON DELETE CASCADE,
		minimum_grade     TEXT NOT NULL DEFAULT 'D',
		is_strict         INTEGER NOT NULL DEFAULT 1,
		group_id          INTEGER NOT NULL DEFAULT 1,
		order_index       INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (course_code, prerequisite_code, group_id),
		CHECK(course_code != prerequisite_code)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_prerequisites_course ON prerequisites(course_code)`,

	`CREATE TABLE IF NOT EXISTS students (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		gpa        REAL NOT NULL DEFAULT 0 CHECK(gpa >= 0 AND gpa <= 4),
		level      INTEGER NOT NULL DEFAULT 1 CHECK(level >= 1),
		department TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS completed_courses (
		id           TEXT PRIMARY KEY,
		student_id   TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		course_code  TEXT NOT NULL REFERENCES courses(code),
		grade        TEXT NOT NULL,
		term         TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		UNIQUE(student_id, course_code)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_completed_student ON completed_courses(student_id)`,

	// Attendance tracking
	`ALTER TABLE students ADD COLUMN attendance_pct REAL`,

	// Credit hours are recorded on the ledger so later catalog edits do not
	// change historical totals.
	`ALTER TABLE completed_courses ADD COLUMN credit_hours INTEGER NOT NULL DEFAULT 0`,
}

// migrateBackfillCompletedCredits copies credit hours from the catalog onto
// ledger rows created before the column existed. Idempotent: only rows with
// credit_hours = 0 are touched.
func migrateBackfillCompletedCredits(db *sql.DB) error {
	ctx := context.Background()

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM completed_courses WHERE credit_hours = 0`).Scan(&count); err != nil {
		return fmt.Errorf("checking completed_courses credit_hours: %w", err)
	}
	if count == 0 {
		return nil
	}

	if _, err := db.ExecContext(ctx, `UPDATE completed_courses
		SET credit_hours = (SELECT c.credit_hours FROM courses c WHERE c.code = completed_courses.course_code)
		WHERE credit_hours = 0
		  AND EXISTS (SELECT 1 FROM courses c WHERE c.code = completed_courses.course_code)`); err != nil {
		return fmt.Errorf("updating credit hours: %w", err)
	}
	return nil
}
