package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

const insertCourse = `INSERT INTO courses (code, name, credit_hours, level, type, created_at, updated_at)
	VALUES (?, ?, 3, 1, 'required', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"courses", "prerequisites", "students", "completed_courses"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"idx_courses_department", "idx_prerequisites_course", "idx_completed_student"}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk, "foreign keys should be enabled")
}

func TestMigrate_CourseCheckConstraints(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO courses (code, name, credit_hours, level, type, created_at, updated_at)
		VALUES ('X1', 'Bad', 3, 1, 'optional', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err, "unknown course type should be rejected")

	_, err = db.Exec(`INSERT INTO courses (code, name, credit_hours, level, type, term_offered, created_at, updated_at)
		VALUES ('X2', 'Bad', 3, 1, 'required', 'Winter', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err, "unknown term should be rejected")

	_, err = db.Exec(insertCourse, "X3", "Good")
	assert.NoError(t, err)
}

func TestMigrate_PrerequisiteRejectsSelfReference(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(insertCourse, "CS101", "Intro")
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO prerequisites (course_code, prerequisite_code) VALUES ('CS101', 'CS101')`)
	assert.Error(t, err)
}

func TestMigrate_PrerequisiteRequiresKnownCourses(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(insertCourse, "CS201", "Data Structures")
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO prerequisites (course_code, prerequisite_code) VALUES ('CS201', 'NOPE')`)
	assert.Error(t, err, "edge to unknown course should violate foreign key")
}

func TestMigrate_CompletedCourseUniquePerStudent(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(insertCourse, "CS101", "Intro")
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO students (id, name, gpa, created_at, updated_at)
		VALUES ('s1', 'Ada', 3.5, '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO completed_courses (id, student_id, course_code, grade, credit_hours, created_at)
		VALUES ('c1', 's1', 'CS101', 'A', 3, '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO completed_courses (id, student_id, course_code, grade, credit_hours, created_at)
		VALUES ('c2', 's1', 'CS101', 'B', 3, '2026-01-01T00:00:00Z')`)
	assert.Error(t, err, "second record for the same course should violate UNIQUE")
}

func TestMigrate_StudentGPABounds(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO students (id, name, gpa, created_at, updated_at)
		VALUES ('s1', 'Ada', 4.5, '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err)
}

func TestMigrate_DeletingStudentCascadesLedger(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(insertCourse, "CS101", "Intro")
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO students (id, name, gpa, created_at, updated_at)
		VALUES ('s1', 'Ada', 3.5, '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO completed_courses (id, student_id, course_code, grade, credit_hours, created_at)
		VALUES ('c1', 's1', 'CS101', 'A', 3, '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM students WHERE id = 's1'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM completed_courses`).Scan(&n))
	assert.Equal(t, 0, n)
}
