package planner

import (
	"fmt"

	"github.com/alexanderramin/coursepilot/internal/app"
	"github.com/alexanderramin/coursepilot/internal/domain"
)

const (
	prerequisitePenalty = 0.5
	levelPenalty        = 0.7
)

type ScoringInput struct {
	Course        domain.Course
	StudentGPA    float64
	StudentLevel  int
	Prerequisites app.PrerequisiteCheck
}

type ScoredCourse struct {
	Input     ScoringInput
	BaseScore float64
	Score     float64
	Reasons   []app.Reason
}

// ScoreCourse sums the fit factors and then applies multiplicative penalties.
func ScoreCourse(input ScoringInput) ScoredCourse {
	result := ScoredCourse{Input: input}

	var score float64
	factors := []func(ScoringInput) (float64, []app.Reason){
		scoreCourseType,
		scoreGPAFit,
		scoreDifficultyFit,
		scoreSeatAvailability,
	}
	for _, f := range factors {
		delta, reasons := f(input)
		score += delta
		result.Reasons = append(result.Reasons, reasons...)
	}
	result.BaseScore = score

	if missing := input.Prerequisites.MissingStrict(); len(missing) > 0 {
		score *= prerequisitePenalty
		result.Reasons = append(result.Reasons, multiplierReason(
			app.ReasonPrerequisitePenalty,
			fmt.Sprintf("%d required prerequisite group(s) not met", len(missing)),
			prerequisitePenalty,
			missingCodes(missing),
		))
	}
	if input.Course.Level > input.StudentLevel+1 {
		score *= levelPenalty
		result.Reasons = append(result.Reasons, multiplierReason(
			app.ReasonLevelPenalty,
			fmt.Sprintf("Level %d is more than one above student level %d", input.Course.Level, input.StudentLevel),
			levelPenalty,
			nil,
		))
	}

	result.Score = score
	return result
}

func scoreCourseType(input ScoringInput) (float64, []app.Reason) {
	var delta float64
	var msg string
	switch input.Course.Type {
	case domain.CourseRequired:
		delta, msg = 40, "Required for the degree"
	case domain.CourseGeneralEducation:
		delta, msg = 30, "Counts toward general education"
	case domain.CourseElective:
		delta, msg = 15, "Elective"
	default:
		return 0, nil
	}
	return delta, []app.Reason{deltaReason(app.ReasonCourseType, msg, delta)}
}

func scoreGPAFit(input ScoringInput) (float64, []app.Reason) {
	gap := input.StudentGPA - input.Course.AverageGrade
	var delta float64
	var msg string
	switch {
	case gap >= 0.5:
		delta, msg = 30, "GPA well above the course average"
	case gap >= 0:
		delta, msg = 25, "GPA at or above the course average"
	case gap >= -0.5:
		delta, msg = 15, "GPA slightly below the course average"
	default:
		delta, msg = 5, "GPA well below the course average"
	}
	return delta, []app.Reason{deltaReason(app.ReasonGPAFit, msg, delta)}
}

func scoreDifficultyFit(input ScoringInput) (float64, []app.Reason) {
	gpa := input.StudentGPA
	var delta float64
	var msg string
	var reasons []app.Reason
	switch input.Course.Difficulty {
	case domain.DifficultyEasy:
		delta, msg = 15, "Easy course"
		if gpa < 3.0 {
			delta, msg = 20, "Easy course suits current GPA"
		}
		if gpa >= 3.5 {
			reasons = append(reasons, deltaReason(app.ReasonEasyForStrongStudent, "May be below the student's level", 0))
		}
	case domain.DifficultyMedium:
		delta, msg = 20, "Moderate difficulty"
	case domain.DifficultyHard:
		switch {
		case gpa >= 3.5:
			delta, msg = 20, "Hard course matched by strong GPA"
		case gpa >= 3.0:
			delta, msg = 15, "Hard course, GPA is adequate"
		default:
			delta, msg = 5, "Hard course relative to GPA"
		}
	default:
		return 0, nil
	}
	return delta, append([]app.Reason{deltaReason(app.ReasonDifficultyFit, msg, delta)}, reasons...)
}

func scoreSeatAvailability(input ScoringInput) (float64, []app.Reason) {
	ratio := input.Course.SeatRatio()
	var delta float64
	var msg string
	switch {
	case ratio > 0.5:
		delta, msg = 10, "Plenty of seats available"
	case ratio > 0.2:
		delta, msg = 7, "Seats available"
	default:
		delta, msg = 3, "Few seats left"
	}
	return delta, []app.Reason{deltaReason(app.ReasonSeatAvailability, msg, delta)}
}

func deltaReason(code app.ReasonCode, msg string, delta float64) app.Reason {
	return app.Reason{Code: code, Message: msg, WeightDelta: &delta}
}

func multiplierReason(code app.ReasonCode, msg string, m float64, courses []string) app.Reason {
	return app.Reason{Code: code, Message: msg, Multiplier: &m, Courses: courses}
}

func missingCodes(groups []app.PrerequisiteGroup) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g.CandidateCodes...)
	}
	return out
}
