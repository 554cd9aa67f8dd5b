package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/coursepilot/internal/app"
	"github.com/alexanderramin/coursepilot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEligibility_GroupFailsOnLowGrade(t *testing.T) {
	env := newTestEnv(t)
	env.addCourses(t,
		testutil.NewTestCourse("MATH201", testutil.WithDepartment("MATH"), testutil.WithLevel(2)),
		testutil.NewTestCourse("MATH202", testutil.WithDepartment("MATH"), testutil.WithLevel(2)),
		testutil.NewTestCourse("MATH302", testutil.WithDepartment("MATH"), testutil.WithLevel(3)),
	)
	env.addEdges(t, "MATH302", edgeInGroup("MATH302", "MATH201", 1), edgeInGroup("MATH302", "MATH202", 2))
	st := env.addStudent(t, testutil.NewTestStudent("Ada", testutil.WithStudentLevel(2)))
	env.addCompleted(t, st.ID, "MATH201", "B")
	env.addCompleted(t, st.ID, "MATH202", "D")

	obs := &recordingObserver{}
	svc := NewEligibilityService(env.loader, testEngineConfig(), obs)

	res, err := svc.CheckEligibility(context.Background(), app.NewEligibilityRequest(st.ID, "math302"))
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.False(t, res.Eligible)
	require.Len(t, res.BlockingReasons, 1)
	assert.Equal(t, app.ReasonPrerequisiteMissing, res.BlockingReasons[0].Code)
	assert.Equal(t, []string{"MATH202"}, res.BlockingReasons[0].Courses)

	require.Len(t, res.Prerequisites.Groups, 2)
	assert.True(t, res.Prerequisites.Groups[0].Satisfied)
	assert.False(t, res.Prerequisites.Groups[1].Satisfied)

	event := obs.last(t)
	assert.Equal(t, "check-eligibility", event.Name)
	assert.True(t, event.Success)
	assert.Len(t, event.InvocationID, 26)
	assert.Equal(t, false, event.Fields["eligible"])
}

func TestCheckEligibility_UnknownStudent(t *testing.T) {
	env := newTestEnv(t)
	env.addCourses(t, testutil.NewTestCourse("CS101"))

	obs := &recordingObserver{}
	svc := NewEligibilityService(env.loader, testEngineConfig(), obs)

	res, err := svc.CheckEligibility(context.Background(), app.NewEligibilityRequest("ghost", "CS101"))
	require.NoError(t, err)
	assert.False(t, res.Success)
	require.NotNil(t, res.Failure)
	assert.Equal(t, app.FailNotFound, res.Failure.Code)
	assert.Contains(t, res.Failure.Message, "ghost")

	event := obs.last(t)
	assert.False(t, event.Success)
	assert.NoError(t, event.Err)
	assert.Equal(t, string(app.FailNotFound), event.ReasonCode)
}

func TestCheckEligibility_UnknownCourse(t *testing.T) {
	env := newTestEnv(t)
	st := env.addStudent(t, testutil.NewTestStudent("Ada"))

	svc := NewEligibilityService(env.loader, testEngineConfig())
	res, err := svc.CheckEligibility(context.Background(), app.NewEligibilityRequest(st.ID, "NOPE999"))
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, app.FailNotFound, res.Failure.Code)
	assert.Contains(t, res.Failure.Message, "NOPE999")
}

func TestCheckEligibility_MissingIdentifiers(t *testing.T) {
	env := newTestEnv(t)
	svc := NewEligibilityService(env.loader, testEngineConfig())

	for _, req := range []app.EligibilityRequest{
		app.NewEligibilityRequest("", "CS101"),
		app.NewEligibilityRequest("s-1", "   "),
	} {
		res, err := svc.CheckEligibility(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, app.FailValidation, res.Failure.Code)
	}
}

func TestCheckEligibility_EligibleWithExpectedRate(t *testing.T) {
	env := newTestEnv(t)
	env.addCourses(t, testutil.NewTestCourse("CS101", testutil.WithOutcomes(82, 2.8)))
	st := env.addStudent(t, testutil.NewTestStudent("Grace", testutil.WithGPA(3.6)))

	svc := NewEligibilityService(env.loader, testEngineConfig())
	res, err := svc.CheckEligibility(context.Background(), app.NewEligibilityRequest(st.ID, "CS101"))
	require.NoError(t, err)
	assert.True(t, res.Eligible)
	assert.Empty(t, res.BlockingReasons)
	assert.InDelta(t, 92.0, res.ExpectedSuccessRate, 1e-9)
	assert.Equal(t, app.ConfidenceHigh, res.Confidence)
	assert.Equal(t, "Grace", res.StudentName)
}
