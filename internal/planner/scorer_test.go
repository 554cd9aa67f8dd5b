package planner

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/coursepilot/internal/app"
	"github.com/alexanderramin/coursepilot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findReason(t *testing.T, reasons []app.Reason, code app.ReasonCode) app.Reason {
	t.Helper()
	for _, r := range reasons {
		if r.Code == code {
			return r
		}
	}
	require.Failf(t, "reason not found", "code=%s", code)
	return app.Reason{}
}

func TestScoreCourse_StrongStudentHardCourse(t *testing.T) {
	sc := ScoreCourse(ScoringInput{
		Course:        course("MATH401", withDifficulty(domain.DifficultyHard), withAvg(2.5), withLevel(3)),
		StudentGPA:    3.8,
		StudentLevel:  3,
		Prerequisites: app.PrerequisiteCheck{AllSatisfied: true},
	})

	gpa := findReason(t, sc.Reasons, app.ReasonGPAFit)
	require.NotNil(t, gpa.WeightDelta)
	assert.Equal(t, 30.0, *gpa.WeightDelta)

	diff := findReason(t, sc.Reasons, app.ReasonDifficultyFit)
	require.NotNil(t, diff.WeightDelta)
	assert.Equal(t, 20.0, *diff.WeightDelta)

	// required 40 + gpa 30 + difficulty 20 + seats 10
	assert.Equal(t, 100.0, sc.BaseScore)
	assert.Equal(t, sc.BaseScore, sc.Score)
}

func TestScoreCourse_PenaltiesMultiply(t *testing.T) {
	missing := app.PrerequisiteCheck{Groups: []app.PrerequisiteGroup{
		{GroupID: 1, IsStrict: true, CandidateCodes: []string{"CS101"}},
	}}
	sc := ScoreCourse(ScoringInput{
		Course:        course("CS401", withLevel(4)),
		StudentGPA:    3.0,
		StudentLevel:  1,
		Prerequisites: missing,
	})
	assert.InDelta(t, sc.BaseScore*0.5*0.7, sc.Score, 1e-9)

	penalty := findReason(t, sc.Reasons, app.ReasonPrerequisitePenalty)
	require.NotNil(t, penalty.Multiplier)
	assert.Equal(t, 0.5, *penalty.Multiplier)
	assert.Equal(t, []string{"CS101"}, penalty.Courses)

	level := findReason(t, sc.Reasons, app.ReasonLevelPenalty)
	require.NotNil(t, level.Multiplier)
	assert.Equal(t, 0.7, *level.Multiplier)
}

func TestScoreCourse_AdvisoryGroupNotPenalized(t *testing.T) {
	advisory := app.PrerequisiteCheck{Groups: []app.PrerequisiteGroup{
		{GroupID: 1, IsStrict: false, CandidateCodes: []string{"CS101"}},
	}}
	sc := ScoreCourse(ScoringInput{Course: course("CS201"), StudentGPA: 3.0, StudentLevel: 1, Prerequisites: advisory})
	assert.Equal(t, sc.BaseScore, sc.Score)
}

func TestScoreCourse_EasyCourseNoteForStrongStudent(t *testing.T) {
	sc := ScoreCourse(ScoringInput{
		Course:        course("ART101", withDifficulty(domain.DifficultyEasy)),
		StudentGPA:    3.7,
		StudentLevel:  1,
		Prerequisites: app.PrerequisiteCheck{AllSatisfied: true},
	})
	note := findReason(t, sc.Reasons, app.ReasonEasyForStrongStudent)
	require.NotNil(t, note.WeightDelta)
	assert.Equal(t, 0.0, *note.WeightDelta)
}

func TestScoreCourse_CourseTypeWeights(t *testing.T) {
	weights := map[domain.CourseType]float64{
		domain.CourseRequired:         40,
		domain.CourseGeneralEducation: 30,
		domain.CourseElective:         15,
	}
	for ct, want := range weights {
		sc := ScoreCourse(ScoringInput{Course: course("X", withType(ct)), StudentGPA: 3.0, StudentLevel: 1})
		r := findReason(t, sc.Reasons, app.ReasonCourseType)
		assert.Equal(t, want, *r.WeightDelta, "type=%s", ct)
	}
}

func TestScoreCourse_SeatBands(t *testing.T) {
	cases := []struct {
		max, cur int
		want     float64
	}{
		{30, 0, 10},
		{30, 20, 7},
		{30, 27, 3},
		{0, 0, 3},
	}
	for _, tc := range cases {
		sc := ScoreCourse(ScoringInput{Course: course("X", withSeats(tc.max, tc.cur)), StudentGPA: 3.0})
		r := findReason(t, sc.Reasons, app.ReasonSeatAvailability)
		assert.Equal(t, tc.want, *r.WeightDelta, "max=%d cur=%d", tc.max, tc.cur)
	}
}

func TestScoreCourse_PropertyScoreNeverExceedsBase(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	types := []domain.CourseType{domain.CourseRequired, domain.CourseElective, domain.CourseGeneralEducation}
	diffs := []domain.Difficulty{domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard}

	for i := 0; i < 500; i++ {
		c := course("X",
			withType(types[rng.Intn(len(types))]),
			withDifficulty(diffs[rng.Intn(len(diffs))]),
			withLevel(1+rng.Intn(4)),
			withAvg(rng.Float64()*4),
			withSeats(1+rng.Intn(50), 0),
		)
		check := app.PrerequisiteCheck{AllSatisfied: true}
		if rng.Intn(2) == 0 {
			check = app.PrerequisiteCheck{Groups: []app.PrerequisiteGroup{{GroupID: 1, IsStrict: true}}}
		}
		sc := ScoreCourse(ScoringInput{
			Course:        c,
			StudentGPA:    rng.Float64() * 4,
			StudentLevel:  1 + rng.Intn(4),
			Prerequisites: check,
		})
		assert.Greater(t, sc.BaseScore, 0.0)
		assert.LessOrEqual(t, sc.Score, sc.BaseScore)
		assert.Greater(t, sc.Score, 0.0)
	}
}
