package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/coursepilot/internal/domain"
	"github.com/alexanderramin/coursepilot/internal/repository"
	"github.com/alexanderramin/coursepilot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStudentService(env *testEnv, observers ...UseCaseObserver) StudentService {
	return NewStudentService(env.students, env.completed, env.uow, observers...)
}

func TestRecordCompletion_CopiesCatalogCredits(t *testing.T) {
	env := newTestEnv(t)
	env.addCourses(t, testutil.NewTestCourse("CS210", testutil.WithCredits(4)))
	st := env.addStudent(t, testutil.NewTestStudent("Ada"))
	ctx := context.Background()

	obs := &recordingObserver{}
	svc := newStudentService(env, obs)

	rec, err := svc.RecordCompletion(ctx, st.ID, " cs210 ", "b+", "Fall 2025")
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "CS210", rec.CourseCode)
	assert.Equal(t, "B+", rec.Grade)
	assert.Equal(t, 4, rec.CreditHours)

	ledger, err := env.completed.ListByStudent(ctx, st.ID)
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.Equal(t, rec.ID, ledger[0].ID)

	event := obs.last(t)
	assert.Equal(t, "record-completion", event.Name)
	assert.True(t, event.Success)
}

func TestRecordCompletion_RejectsSecondRecord(t *testing.T) {
	env := newTestEnv(t)
	env.addCourses(t, testutil.NewTestCourse("CS101"))
	st := env.addStudent(t, testutil.NewTestStudent("Ada"))
	ctx := context.Background()
	svc := newStudentService(env)

	_, err := svc.RecordCompletion(ctx, st.ID, "CS101", "C", "Spring 2026")
	require.NoError(t, err)

	_, err = svc.RecordCompletion(ctx, st.ID, "CS101", "A", "Fall 2026")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyCompleted)

	ledger, err := env.completed.ListByStudent(ctx, st.ID)
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.Equal(t, "C", ledger[0].Grade, "original record is unchanged")
}

func TestRecordCompletion_InvalidGrade(t *testing.T) {
	env := newTestEnv(t)
	env.addCourses(t, testutil.NewTestCourse("CS101"))
	st := env.addStudent(t, testutil.NewTestStudent("Ada"))

	_, err := newStudentService(env).RecordCompletion(context.Background(), st.ID, "CS101", "E", "")
	assert.ErrorIs(t, err, ErrInvalidGrade)
}

func TestRecordCompletion_UnknownCourseOrStudent(t *testing.T) {
	env := newTestEnv(t)
	env.addCourses(t, testutil.NewTestCourse("CS101"))
	st := env.addStudent(t, testutil.NewTestStudent("Ada"))
	svc := newStudentService(env)

	_, err := svc.RecordCompletion(context.Background(), st.ID, "CS404", "A", "")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.RecordCompletion(context.Background(), "nobody", "CS101", "A", "")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStudentShow_Totals(t *testing.T) {
	env := newTestEnv(t)
	env.addCourses(t, testutil.NewTestCourse("CS101"), testutil.NewTestCourse("CS102"))
	st := env.addStudent(t, testutil.NewTestStudent("Ada", testutil.WithGPA(3.2)))
	env.addCompleted(t, st.ID, "CS101", "A")
	env.addCompleted(t, st.ID, "CS102", "C")

	detail, err := newStudentService(env).Show(context.Background(), st.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", detail.Student.Name)
	assert.Len(t, detail.Completed, 2)
	assert.Equal(t, 6, detail.CompletedCredits)
	require.NotNil(t, detail.LedgerGPA)
	assert.InDelta(t, 3.0, *detail.LedgerGPA, 1e-9)
}

func TestStudentShow_EmptyLedger(t *testing.T) {
	env := newTestEnv(t)
	st := env.addStudent(t, testutil.NewTestStudent("Ada"))

	detail, err := newStudentService(env).Show(context.Background(), st.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.Completed)
	assert.Nil(t, detail.LedgerGPA)
}

func TestStudentList(t *testing.T) {
	env := newTestEnv(t)
	env.addStudent(t, testutil.NewTestStudent("Grace"))
	env.addStudent(t, testutil.NewTestStudent("Ada"))

	students, err := newStudentService(env).List(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "Ada", students[0].Name)
}
