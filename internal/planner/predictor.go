package planner

import (
	"fmt"

	"github.com/alexanderramin/coursepilot/internal/app"
	"github.com/alexanderramin/coursepilot/internal/domain"
)

// minDepartmentHistory is the number of same-department completions needed
// before departmental performance influences a prediction.
const minDepartmentHistory = 3

// PredictSuccess estimates the probability (0-100) that the snapshot's student
// passes courseCode. Adjustments are additive onto the course pass rate and
// the sum is clamped once at the end.
func PredictSuccess(s *Snapshot, courseCode string) (*app.PredictionResult, error) {
	course, ok := s.Course(courseCode)
	if !ok {
		return nil, ErrCourseNotFound
	}

	result := &app.PredictionResult{
		Success:      true,
		StudentID:    s.Student.ID,
		CourseCode:   course.Code,
		CourseName:   course.Name,
		Baseline:     course.PassRate,
		GPAAdvantage: s.Student.GPA - course.AverageGrade,
	}

	if len(s.Completed) == 0 {
		result.Unavailable = append(result.Unavailable, app.SignalCompletedHistory)
	}

	probability := course.PassRate
	apply := func(r *app.Reason) {
		if r == nil {
			return
		}
		probability += *r.WeightDelta
		result.Adjustments = append(result.Adjustments, *r)
	}

	apply(gpaAdvantageAdjustment(result.GPAAdvantage))

	dept := s.CompletedIn(course.Department)
	if len(dept) >= minDepartmentHistory {
		mean, _ := domain.MeanGradePoints(dept)
		apply(departmentAdjustment(mean-course.AverageGrade, course.Department, len(dept)))
	} else {
		result.Unavailable = append(result.Unavailable, app.SignalDepartmentHistory)
	}

	prereqs := completedPrerequisites(s, course.Code)
	if len(prereqs) > 0 {
		mean, _ := domain.MeanGradePoints(prereqs)
		apply(prerequisiteAdjustment(mean, len(prereqs)))
	} else {
		result.Unavailable = append(result.Unavailable, app.SignalPrerequisiteHistory)
	}

	if s.Student.AttendancePct != nil {
		apply(attendanceAdjustment(*s.Student.AttendancePct))
	} else {
		result.Unavailable = append(result.Unavailable, app.SignalAttendance)
	}

	result.RawProbability = probability
	result.Probability = clampPct(probability)
	result.ExpectedGrade = expectedGradeBand(result.Probability)
	result.Difficulty = difficultyLabel(result.GPAAdvantage)
	result.DataPoints = len(s.Completed) + len(dept) + len(prereqs)
	result.Confidence = dataConfidence(result.DataPoints)
	return result, nil
}

func gpaAdvantageAdjustment(adv float64) *app.Reason {
	var delta float64
	switch {
	case adv > 0.8:
		delta = 20
	case adv > 0.4:
		delta = 15
	case adv > 0:
		delta = 10
	case adv > -0.4:
		delta = -5
	case adv > -0.8:
		delta = -15
	default:
		delta = -25
	}
	r := deltaReason(app.ReasonGPAAdvantage, fmt.Sprintf("GPA advantage %+.2f over course average", adv), delta)
	return &r
}

func departmentAdjustment(adv float64, department string, n int) *app.Reason {
	var delta float64
	switch {
	case adv > 0.5:
		delta = 15
	case adv > 0:
		delta = 10
	case adv < -0.5:
		delta = -15
	default:
		delta = -5
	}
	r := deltaReason(app.ReasonDepartmentAdvantage,
		fmt.Sprintf("%+.2f vs course average across %d %s courses", adv, n, department), delta)
	return &r
}

func prerequisiteAdjustment(mean float64, n int) *app.Reason {
	var delta float64
	switch {
	case mean >= 3.5:
		delta = 10
	case mean >= 3.0:
		delta = 5
	case mean < 2.5:
		delta = -10
	default:
		return nil
	}
	r := deltaReason(app.ReasonPrerequisiteGPA, fmt.Sprintf("Prerequisite GPA %.2f over %d course(s)", mean, n), delta)
	return &r
}

func attendanceAdjustment(pct float64) *app.Reason {
	var delta float64
	switch {
	case pct >= 95:
		delta = 10
	case pct >= 85:
		delta = 5
	case pct < 70:
		delta = -10
	case pct < 80:
		delta = -5
	default:
		return nil
	}
	r := deltaReason(app.ReasonAttendance, fmt.Sprintf("Attendance %.0f%%", pct), delta)
	return &r
}

// completedPrerequisites returns ledger records for any course named on the
// target's prerequisite edges, regardless of group.
func completedPrerequisites(s *Snapshot, courseCode string) []domain.CompletedCourse {
	codes := make(map[string]bool)
	for _, e := range s.Prerequisites[courseCode] {
		codes[e.PrerequisiteCode] = true
	}
	var out []domain.CompletedCourse
	for _, r := range s.Completed {
		if codes[r.CourseCode] {
			out = append(out, r)
		}
	}
	return out
}

func expectedGradeBand(p float64) string {
	switch {
	case p >= 90:
		return "A"
	case p >= 80:
		return "A-/B+"
	case p >= 70:
		return "B/B-"
	case p >= 60:
		return "C+/C"
	case p >= 50:
		return "C/C-"
	default:
		return "D/F"
	}
}

func difficultyLabel(adv float64) app.DifficultyLabel {
	switch {
	case adv > 0.5:
		return app.DifficultyLabelEasy
	case adv > 0:
		return app.DifficultyLabelManageable
	case adv > -0.5:
		return app.DifficultyLabelChallenging
	default:
		return app.DifficultyLabelVeryDifficult
	}
}

func dataConfidence(points int) app.Confidence {
	switch {
	case points >= 12:
		return app.ConfidenceHigh
	case points >= 5:
		return app.ConfidenceMedium
	default:
		return app.ConfidenceLow
	}
}
