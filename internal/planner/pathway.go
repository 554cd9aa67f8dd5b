package planner

import (
	"time"

	"github.com/alexanderramin/coursepilot/internal/app"
	"github.com/alexanderramin/coursepilot/internal/domain"
)

const (
	// MaxPlannedTerms bounds the number of emitted terms.
	MaxPlannedTerms = 12
	// MaxConsecutiveStalls ends planning once a full term rotation places nothing.
	MaxConsecutiveStalls = 3
)

type PathwayOptions struct {
	CreditsPerTerm int
	Now            time.Time
	Policy         StrictnessPolicy
}

// PlanPathway greedily fills terms with remaining required and
// general-education courses. It does not backtrack: a course placed early is
// never moved to make room for a better combination later.
func PlanPathway(s *Snapshot, opts PathwayOptions) *app.PathwayResult {
	creditCap := opts.CreditsPerTerm
	if creditCap <= 0 {
		creditCap = app.DefaultCreditsPerTerm
	}

	remaining := remainingDegreeCourses(s)
	planned := make(map[string]bool)
	slot := TermAt(opts.Now)

	result := &app.PathwayResult{
		Success:          true,
		StudentID:        s.Student.ID,
		CreditsPerTerm:   creditCap,
		CompletedCredits: domain.CompletedCredits(s.Completed),
		RequiredCredits:  app.DegreeCreditsRequired,
		StopReason:       app.StopComplete,
	}

	stalls := 0
	for len(remaining) > 0 {
		if len(result.Terms) >= MaxPlannedTerms {
			result.StopReason = app.StopSafetyBound
			break
		}
		if stalls >= MaxConsecutiveStalls {
			result.StopReason = app.StopDeadlock
			break
		}

		candidates := placeableIn(s, remaining, planned, slot.Term, opts.Policy)
		PlacementSort(candidates)

		term := app.TermPlan{
			Index: len(result.Terms) + 1,
			Term:  slot.Term,
			Year:  slot.Year,
			Label: slot.Label(),
		}
		for _, c := range candidates {
			if term.Credits+c.CreditHours > creditCap {
				continue
			}
			term.Courses = append(term.Courses, plannedCourse(c))
			term.Credits += c.CreditHours
		}

		if len(term.Courses) == 0 {
			stalls++
			slot = slot.Next()
			continue
		}

		stalls = 0
		// Courses placed this term only satisfy prerequisites from the next term on.
		for _, pc := range term.Courses {
			planned[pc.CourseCode] = true
			delete(remaining, pc.CourseCode)
		}
		result.PlannedCredits += term.Credits
		result.Terms = append(result.Terms, term)
		slot = slot.Next()
	}

	result.ProgressPct = float64(result.CompletedCredits) / float64(app.DegreeCreditsRequired) * 100
	if result.ProgressPct > 100 {
		result.ProgressPct = 100
	}
	result.EstimatedTerms = len(result.Terms)
	if n := len(result.Terms); n > 0 {
		result.GraduationLabel = result.Terms[n-1].Label
	}
	result.Unscheduled = unscheduled(remaining)
	return result
}

func remainingDegreeCourses(s *Snapshot) map[string]domain.Course {
	out := make(map[string]domain.Course)
	for _, c := range s.Courses {
		if c.Active && c.CountsTowardDegree() && !s.HasCompleted(c.Code) {
			out[c.Code] = c
		}
	}
	return out
}

func placeableIn(
	s *Snapshot,
	remaining map[string]domain.Course,
	planned map[string]bool,
	season domain.Term,
	policy StrictnessPolicy,
) []domain.Course {
	var out []domain.Course
	for _, c := range remaining {
		if !c.TermOffered.OfferedIn(season) {
			continue
		}
		if !s.ResolveFor(c.Code, planned, policy).AllSatisfied {
			continue
		}
		out = append(out, c)
	}
	return out
}

func plannedCourse(c domain.Course) app.PlannedCourse {
	return app.PlannedCourse{
		CourseCode:  c.Code,
		CourseName:  c.Name,
		CreditHours: c.CreditHours,
		Level:       c.Level,
		Type:        c.Type,
		Difficulty:  c.Difficulty,
	}
}

func unscheduled(remaining map[string]domain.Course) []app.UnscheduledCourse {
	if len(remaining) == 0 {
		return nil
	}
	left := make([]domain.Course, 0, len(remaining))
	for _, c := range remaining {
		left = append(left, c)
	}
	PlacementSort(left)

	out := make([]app.UnscheduledCourse, 0, len(left))
	for _, c := range left {
		out = append(out, app.UnscheduledCourse{
			CourseCode:  c.Code,
			CourseName:  c.Name,
			CreditHours: c.CreditHours,
			Reason:      app.ReasonUnscheduled,
			Message:     "prerequisites unmet or no matching term offering",
		})
	}
	return out
}
