package planner

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/coursepilot/internal/app"
	"github.com/alexanderramin/coursepilot/internal/domain"
)

// CheckEligibility decides whether the snapshot's student may register for
// courseCode. Returns ErrCourseNotFound if the course is not in the catalog.
func CheckEligibility(s *Snapshot, courseCode string, policy StrictnessPolicy) (*app.EligibilityResult, error) {
	course, ok := s.Course(courseCode)
	if !ok {
		return nil, ErrCourseNotFound
	}

	result := &app.EligibilityResult{
		Success:             true,
		StudentID:           s.Student.ID,
		StudentName:         s.Student.Name,
		CourseCode:          course.Code,
		CourseName:          course.Name,
		ExpectedSuccessRate: ExpectedSuccessRate(s.Student.GPA, course),
		Confidence:          gpaConfidence(s.Student.GPA),
	}

	if s.HasCompleted(course.Code) {
		result.BlockingReasons = append(result.BlockingReasons, app.Reason{
			Code:    app.ReasonAlreadyCompleted,
			Message: fmt.Sprintf("%s already completed with grade %s", course.Code, s.CompletedGrades()[course.Code]),
			Courses: []string{course.Code},
		})
		return result, nil
	}

	if !course.Active {
		result.BlockingReasons = append(result.BlockingReasons, app.Reason{
			Code:    app.ReasonNotOffered,
			Message: fmt.Sprintf("%s is not currently offered", course.Code),
		})
		return result, nil
	}

	edges := s.Prerequisites[course.Code]
	result.Prerequisites = ResolvePrerequisites(edges, s.CompletedGrades(), nil, policy)
	for _, g := range result.Prerequisites.MissingStrict() {
		result.BlockingReasons = append(result.BlockingReasons, app.Reason{
			Code:    app.ReasonPrerequisiteMissing,
			Message: "Missing prerequisite: " + describeGroup(edges, g),
			Courses: g.CandidateCodes,
		})
	}
	for _, g := range result.Prerequisites.MissingAdvisory() {
		result.Warnings = append(result.Warnings, app.Reason{
			Code:    app.ReasonPrerequisiteRecommended,
			Message: "Recommended prerequisite not met: " + describeGroup(edges, g),
			Courses: g.CandidateCodes,
		})
	}

	if course.SeatsAvailable() <= 0 {
		result.BlockingReasons = append(result.BlockingReasons, app.Reason{
			Code:    app.ReasonCourseFull,
			Message: fmt.Sprintf("%s is full (%d/%d enrolled)", course.Code, course.CurrentEnrollment, course.MaxEnrollment),
		})
	}

	if course.Level > s.Student.Level+1 {
		result.Warnings = append(result.Warnings, app.Reason{
			Code:    app.ReasonLevelMismatch,
			Message: fmt.Sprintf("Course level %d is above student level %d", course.Level, s.Student.Level),
		})
	}

	result.Eligible = len(result.BlockingReasons) == 0
	return result, nil
}

// ExpectedSuccessRate adjusts the course pass rate by the student's GPA
// advantage over the course average.
func ExpectedSuccessRate(gpa float64, course domain.Course) float64 {
	rate := course.PassRate
	gap := gpa - course.AverageGrade
	switch {
	case gap > 0.5:
		rate += 10
	case gap < -0.5:
		rate -= 15
	}
	return clampPct(rate)
}

func gpaConfidence(gpa float64) app.Confidence {
	switch {
	case gpa >= 3.0:
		return app.ConfidenceHigh
	case gpa >= 2.0:
		return app.ConfidenceMedium
	default:
		return app.ConfidenceLow
	}
}

// describeGroup renders "MATH201 (min C) or STAT101 (min C-)".
func describeGroup(edges []domain.PrerequisiteEdge, g app.PrerequisiteGroup) string {
	var parts []string
	for _, e := range edges {
		if e.GroupID != g.GroupID {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s (min %s)", e.PrerequisiteCode, e.MinimumGrade))
	}
	return strings.Join(parts, " or ")
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
