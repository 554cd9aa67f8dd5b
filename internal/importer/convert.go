package importer

import (
	"time"

	"github.com/alexanderramin/coursepilot/internal/domain"
	"github.com/google/uuid"
)

const (
	defaultMinimumGrade = "D"
	defaultPassRate     = 75.0
	defaultAverageGrade = 2.7
)

// Catalog is a converted import ready for persistence.
type Catalog struct {
	Courses []*domain.Course
	// EdgeCourses lists, in file order, every course whose prerequisite set
	// the import replaces.
	EdgeCourses []string
	Edges       map[string][]domain.PrerequisiteEdge
	Students    []*domain.Student
	Completed   []*domain.CompletedCourse
}

// Convert transforms a validated ImportSchema into domain objects ready for
// persistence. existingCredits supplies credit hours for ledger entries that
// refer to courses already in the catalog. Call ValidateImportSchema first;
// Convert assumes the schema is valid.
func Convert(schema *ImportSchema, existingCredits map[string]int) *Catalog {
	now := time.Now().UTC().Truncate(time.Second)
	cat := &Catalog{Edges: make(map[string][]domain.PrerequisiteEdge)}

	credits := make(map[string]int, len(existingCredits)+len(schema.Courses))
	for code, n := range existingCredits {
		credits[code] = n
	}

	for _, ci := range schema.Courses {
		c := convertCourse(ci, now)
		credits[c.Code] = c.CreditHours
		cat.Courses = append(cat.Courses, c)
	}

	for _, pi := range schema.Prerequisites {
		course := normalizeCode(pi.Course)
		if _, ok := cat.Edges[course]; !ok {
			cat.EdgeCourses = append(cat.EdgeCourses, course)
		}
		cat.Edges[course] = append(cat.Edges[course], convertEdge(pi))
	}

	for _, si := range schema.Students {
		s := convertStudent(si, now)
		cat.Students = append(cat.Students, s)
		for _, ci := range si.Completed {
			code := normalizeCode(ci.Course)
			cat.Completed = append(cat.Completed, &domain.CompletedCourse{
				ID:          uuid.New().String(),
				StudentID:   s.ID,
				CourseCode:  code,
				Grade:       domain.NormalizeGrade(ci.Grade),
				Term:        ci.Term,
				CreditHours: credits[code],
				CreatedAt:   now,
			})
		}
	}

	return cat
}

func convertCourse(ci CourseImport, now time.Time) *domain.Course {
	c := &domain.Course{
		Code:              normalizeCode(ci.Code),
		Name:              ci.Name,
		CreditHours:       ci.CreditHours,
		Level:             ci.Level,
		Department:        ci.Department,
		Type:              domain.CourseType(ci.Type),
		TermOffered:       domain.TermBoth,
		MaxEnrollment:     ci.MaxEnrollment,
		CurrentEnrollment: ci.CurrentEnrollment,
		Difficulty:        domain.DifficultyMedium,
		WorkloadHours:     ci.WorkloadHours,
		PassRate:          defaultPassRate,
		AverageGrade:      defaultAverageGrade,
		Active:            true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if term, ok := domain.ParseTerm(ci.TermOffered); ok {
		c.TermOffered = term
	}
	if ci.Difficulty != "" {
		c.Difficulty = domain.Difficulty(ci.Difficulty)
	}
	if ci.PassRate != nil {
		c.PassRate = *ci.PassRate
	}
	if ci.AverageGrade != nil {
		c.AverageGrade = *ci.AverageGrade
	}
	if ci.Active != nil {
		c.Active = *ci.Active
	}
	return c
}

func convertEdge(pi PrerequisiteImport) domain.PrerequisiteEdge {
	e := domain.PrerequisiteEdge{
		CourseCode:       normalizeCode(pi.Course),
		PrerequisiteCode: normalizeCode(pi.Prerequisite),
		MinimumGrade:     defaultMinimumGrade,
		IsStrict:         true,
		GroupID:          groupOf(pi),
	}
	if pi.MinimumGrade != "" {
		e.MinimumGrade = domain.NormalizeGrade(pi.MinimumGrade)
	}
	if pi.Strict != nil {
		e.IsStrict = *pi.Strict
	}
	return e
}

func convertStudent(si StudentImport, now time.Time) *domain.Student {
	s := &domain.Student{
		ID:            si.ID,
		Name:          si.Name,
		GPA:           si.GPA,
		Level:         si.Level,
		AttendancePct: si.AttendancePct,
		Department:    si.Department,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return s
}
