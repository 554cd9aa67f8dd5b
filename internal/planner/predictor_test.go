package planner

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/coursepilot/internal/app"
	"github.com/alexanderramin/coursepilot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictSuccess_ClampsAtZero(t *testing.T) {
	st := student(0.5, 1)
	st.AttendancePct = pct(40)
	s := NewSnapshot(st, nil, []domain.Course{course("PHYS301", withPassRate(20), withAvg(2.5))}, nil)

	res, err := PredictSuccess(s, "PHYS301")
	require.NoError(t, err)
	// 20 - 25 (GPA) - 10 (attendance)
	assert.InDelta(t, -15.0, res.RawProbability, 1e-9)
	assert.Equal(t, 0.0, res.Probability)
	assert.Equal(t, "D/F", res.ExpectedGrade)
	assert.Equal(t, app.DifficultyLabelVeryDifficult, res.Difficulty)
}

func TestPredictSuccess_ClampsAtHundred(t *testing.T) {
	st := student(4.0, 2)
	st.AttendancePct = pct(99)
	s := NewSnapshot(st, nil, []domain.Course{course("ART101", withPassRate(95), withAvg(3.0))}, nil)

	res, err := PredictSuccess(s, "ART101")
	require.NoError(t, err)
	assert.Equal(t, 100.0, res.Probability)
	assert.Equal(t, "A", res.ExpectedGrade)
	assert.Equal(t, app.DifficultyLabelEasy, res.Difficulty)
}

func TestPredictSuccess_MissingSignalsMarkedUnavailable(t *testing.T) {
	s := NewSnapshot(student(3.0, 1), nil, []domain.Course{course("CS101")}, nil)
	res, err := PredictSuccess(s, "CS101")
	require.NoError(t, err)
	assert.ElementsMatch(t, []app.DataSignal{
		app.SignalCompletedHistory,
		app.SignalDepartmentHistory,
		app.SignalPrerequisiteHistory,
		app.SignalAttendance,
	}, res.Unavailable)
	assert.True(t, res.InsufficientData())
	assert.Equal(t, app.ConfidenceLow, res.Confidence)
	require.Len(t, res.Adjustments, 1)
	assert.Equal(t, app.ReasonGPAAdvantage, res.Adjustments[0].Code)
}

func TestPredictSuccess_DepartmentAndPrerequisiteHistory(t *testing.T) {
	courses := []domain.Course{
		course("MATH101", withAvg(2.8)),
		course("MATH102", withAvg(2.8)),
		course("MATH201", withAvg(2.8)),
		course("MATH301", withAvg(2.8), withPassRate(70)),
	}
	edges := []domain.PrerequisiteEdge{edge("MATH301", "MATH201", "C", 1, true)}
	completed := []domain.CompletedCourse{done("MATH101", "A"), done("MATH102", "A"), done("MATH201", "A")}
	st := student(3.4, 3)
	st.AttendancePct = pct(82)
	s := NewSnapshot(st, completed, courses, edges)

	res, err := PredictSuccess(s, "MATH301")
	require.NoError(t, err)
	assert.Empty(t, res.Unavailable)

	byCode := make(map[app.ReasonCode]float64)
	for _, r := range res.Adjustments {
		byCode[r.Code] = *r.WeightDelta
	}
	assert.Equal(t, 15.0, byCode[app.ReasonGPAAdvantage])        // +0.6
	assert.Equal(t, 15.0, byCode[app.ReasonDepartmentAdvantage]) // 4.0 vs 2.8
	assert.Equal(t, 10.0, byCode[app.ReasonPrerequisiteGPA])
	_, hasAttendance := byCode[app.ReasonAttendance]
	assert.False(t, hasAttendance, "82% attendance is neutral")

	assert.Equal(t, 100.0, res.Probability)
	assert.Equal(t, 7, res.DataPoints)
	assert.Equal(t, app.ConfidenceMedium, res.Confidence)
}

func TestPredictSuccess_UnknownCourse(t *testing.T) {
	s := NewSnapshot(student(3.0, 1), nil, nil, nil)
	_, err := PredictSuccess(s, "NOPE")
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestExpectedGradeBands(t *testing.T) {
	cases := map[float64]string{
		95: "A", 90: "A", 85: "A-/B+", 75: "B/B-", 65: "C+/C", 55: "C/C-", 49.9: "D/F", 0: "D/F",
	}
	for p, want := range cases {
		assert.Equal(t, want, expectedGradeBand(p), "p=%v", p)
	}
}

func TestAttendanceAdjustmentBands(t *testing.T) {
	cases := []struct {
		pct  float64
		want float64
		none bool
	}{
		{96, 10, false},
		{90, 5, false},
		{82, 0, true},
		{75, -5, false},
		{60, -10, false},
	}
	for _, tc := range cases {
		r := attendanceAdjustment(tc.pct)
		if tc.none {
			assert.Nil(t, r)
			continue
		}
		require.NotNil(t, r)
		assert.Equal(t, tc.want, *r.WeightDelta, "pct=%v", tc.pct)
	}
}

func TestPredictSuccess_PropertyProbabilityBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	grades := []string{"A", "B", "C", "D", "F"}

	for i := 0; i < 300; i++ {
		var courses []domain.Course
		var completed []domain.CompletedCourse
		for j := 0; j < 6; j++ {
			code := string(rune('A'+j)) + "100"
			courses = append(courses, course(code, withAvg(rng.Float64()*4)))
			if rng.Intn(2) == 0 {
				completed = append(completed, done(code, grades[rng.Intn(len(grades))]))
			}
		}
		target := course("T400", withPassRate(rng.Float64()*100), withAvg(rng.Float64()*4))
		courses = append(courses, target)
		edges := []domain.PrerequisiteEdge{edge("T400", "A100", "C", 1, true)}

		st := student(rng.Float64()*4, 1+rng.Intn(4))
		if rng.Intn(2) == 0 {
			st.AttendancePct = pct(rng.Float64() * 100)
		}
		res, err := PredictSuccess(NewSnapshot(st, completed, courses, edges), "T400")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Probability, 0.0)
		assert.LessOrEqual(t, res.Probability, 100.0)
	}
}
