package tool

import (
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/coursepilot/internal/app"
	"github.com/alexanderramin/coursepilot/internal/domain"
)

var (
	argStudentID = ArgSpec{Name: "student_id", Type: "string", Required: true, Description: "student identifier"}
	argCourse    = ArgSpec{Name: "course_code", Type: "string", Required: true, Description: "catalog course code, e.g. MATH302"}
)

var toolSpecs = map[Name]Spec{
	ToolCheckEligibility: {
		Name:        ToolCheckEligibility,
		Description: "Decide whether a student may register for a course, with blocking reasons and warnings.",
		Arguments:   []ArgSpec{argStudentID, argCourse},
	},
	ToolRecommendCourses: {
		Name:        ToolRecommendCourses,
		Description: "Rank courses the student could take next by fit, with structured reasons.",
		Arguments: []ArgSpec{
			argStudentID,
			{Name: "limit", Type: "integer", Description: "number of recommendations, 1-50"},
			{Name: "term", Type: "string", Description: "only courses offered in Fall, Spring or Summer"},
		},
	},
	ToolPredictSuccess: {
		Name:        ToolPredictSuccess,
		Description: "Estimate the probability that the student passes a course.",
		Arguments:   []ArgSpec{argStudentID, argCourse},
	},
	ToolPlanPathway: {
		Name:        ToolPlanPathway,
		Description: "Build a term-by-term plan of remaining required and general-education courses.",
		Arguments: []ArgSpec{
			argStudentID,
			{Name: "credits_per_term", Type: "integer", Description: "credit cap per term, 1-24"},
			{Name: "as_of", Type: "string", Description: "plan from the term in session on this date, YYYY-MM-DD"},
		},
	},
}

func requireString(args map[string]any, key string) (string, *app.Failure) {
	v, ok := args[key]
	if !ok {
		return "", app.Invalid("%s is required", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", app.Invalid("%s must be a string", key)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", app.Invalid("%s must not be empty", key)
	}
	return s, nil
}

func studentAndCourse(args map[string]any) (string, string, *app.Failure) {
	studentID, f := requireString(args, "student_id")
	if f != nil {
		return "", "", f
	}
	courseCode, f := requireString(args, "course_code")
	if f != nil {
		return "", "", f
	}
	return studentID, courseCode, nil
}

// optionalInt returns 0 when key is absent or null.
func optionalInt(args map[string]any, key string, lo, hi int) (int, *app.Failure) {
	v, ok := args[key]
	if !ok || v == nil {
		return 0, nil
	}
	n, ok := v.(float64)
	if !ok || n != math.Trunc(n) {
		return 0, app.Invalid("%s must be an integer", key)
	}
	if n < float64(lo) || n > float64(hi) {
		return 0, app.Invalid("%s must be between %d and %d", key, lo, hi)
	}
	return int(n), nil
}

func optionalTerm(args map[string]any, key string) (*domain.Term, *app.Failure) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, app.Invalid("%s must be a string", key)
	}
	term, ok := domain.ParseTerm(s)
	if !ok || term == domain.TermBoth {
		return nil, app.Invalid("%s must be Fall, Spring or Summer", key)
	}
	return &term, nil
}

func optionalDate(args map[string]any, key string) (*time.Time, *app.Failure) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, app.Invalid("%s must be a date string", key)
	}
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return nil, app.Invalid("%s must be formatted YYYY-MM-DD", key)
	}
	return &t, nil
}
