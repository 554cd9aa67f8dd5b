package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/coursepilot/internal/db"
	"github.com/alexanderramin/coursepilot/internal/domain"
	"github.com/alexanderramin/coursepilot/internal/repository"
	"github.com/alexanderramin/coursepilot/internal/testutil"
	"github.com/stretchr/testify/require"
)

var fall2026 = time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC)

type testEnv struct {
	db        *sql.DB
	courses   *repository.SQLiteCourseRepo
	prereqs   *repository.SQLitePrerequisiteRepo
	students  *repository.SQLiteStudentRepo
	completed *repository.SQLiteCompletedCourseRepo
	uow       db.UnitOfWork
	loader    *SnapshotLoader
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvOn(testutil.NewTestDB(t))
}

func newTestEnvOn(database *sql.DB) *testEnv {
	env := &testEnv{
		db:        database,
		courses:   repository.NewSQLiteCourseRepo(database),
		prereqs:   repository.NewSQLitePrerequisiteRepo(database),
		students:  repository.NewSQLiteStudentRepo(database),
		completed: repository.NewSQLiteCompletedCourseRepo(database),
		uow:       testutil.NewTestUoW(database),
	}
	env.loader = NewSnapshotLoader(env.courses, env.prereqs, env.students, env.completed)
	return env
}

func (e *testEnv) addCourses(t *testing.T, courses ...*domain.Course) {
	t.Helper()
	for _, c := range courses {
		require.NoError(t, e.courses.Upsert(context.Background(), c))
	}
}

func (e *testEnv) addEdges(t *testing.T, courseCode string, edges ...domain.PrerequisiteEdge) {
	t.Helper()
	require.NoError(t, e.prereqs.ReplaceForCourse(context.Background(), courseCode, edges))
}

func (e *testEnv) addStudent(t *testing.T, s *domain.Student) *domain.Student {
	t.Helper()
	require.NoError(t, e.students.Upsert(context.Background(), s))
	return s
}

func (e *testEnv) addCompleted(t *testing.T, studentID, courseCode, grade string) {
	t.Helper()
	require.NoError(t, e.completed.Create(context.Background(), testutil.NewTestCompleted(studentID, courseCode, grade)))
}

func edgeInGroup(courseCode, prereqCode string, group int) domain.PrerequisiteEdge {
	e := testutil.NewTestEdge(courseCode, prereqCode)
	e.GroupID = group
	return e
}

func testEngineConfig() EngineConfig {
	cfg := DefaultEngineConfig()
	cfg.Now = func() time.Time { return fall2026 }
	return cfg
}

// recordingObserver keeps every event for assertions.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) all() []UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]UseCaseEvent(nil), o.events...)
}

func (o *recordingObserver) last(t *testing.T) UseCaseEvent {
	t.Helper()
	events := o.all()
	require.NotEmpty(t, events)
	return events[len(events)-1]
}
