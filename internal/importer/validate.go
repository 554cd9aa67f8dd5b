package importer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/coursepilot/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// existing holds course codes already in the catalog; edges and ledger
// entries may refer to them. Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema, existing map[string]bool) []error {
	var errs []error

	codes := make(map[string]bool, len(existing))
	for code := range existing {
		codes[code] = true
	}

	fileCodes := make(map[string]bool)
	errs = append(errs, validateCourses(schema.Courses, fileCodes)...)
	for code := range fileCodes {
		codes[code] = true
	}

	errs = append(errs, validatePrerequisites(schema.Prerequisites, codes)...)
	errs = append(errs, validateStudents(schema.Students, codes)...)

	return errs
}

func validateCourses(courses []CourseImport, seen map[string]bool) []error {
	var errs []error

	for i, c := range courses {
		prefix := fmt.Sprintf("courses[%d]", i)
		code := normalizeCode(c.Code)

		if code == "" {
			errs = append(errs, fmt.Errorf("%s.code is required", prefix))
		} else if seen[code] {
			errs = append(errs, fmt.Errorf("%s.code: duplicate code %q", prefix, code))
		} else {
			seen[code] = true
		}

		if c.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if c.CreditHours <= 0 {
			errs = append(errs, fmt.Errorf("%s.credit_hours must be positive", prefix))
		}
		if c.Level < 1 {
			errs = append(errs, fmt.Errorf("%s.level must be at least 1", prefix))
		}
		if c.Type == "" {
			errs = append(errs, fmt.Errorf("%s.type is required", prefix))
		} else if !domain.ValidCourseTypes[c.Type] {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, c.Type))
		}
		if c.TermOffered != "" {
			if _, ok := domain.ParseTerm(c.TermOffered); !ok {
				errs = append(errs, fmt.Errorf("%s.term_offered: invalid value %q", prefix, c.TermOffered))
			}
		}
		if c.Difficulty != "" && !domain.ValidDifficulties[c.Difficulty] {
			errs = append(errs, fmt.Errorf("%s.difficulty: invalid value %q", prefix, c.Difficulty))
		}
		if c.MaxEnrollment < 0 || c.CurrentEnrollment < 0 {
			errs = append(errs, fmt.Errorf("%s: enrollment counts must not be negative", prefix))
		} else if c.CurrentEnrollment > c.MaxEnrollment {
			errs = append(errs, fmt.Errorf("%s: current_enrollment (%d) exceeds max_enrollment (%d)", prefix, c.CurrentEnrollment, c.MaxEnrollment))
		}
		if c.PassRate != nil && (*c.PassRate < 0 || *c.PassRate > 100) {
			errs = append(errs, fmt.Errorf("%s.pass_rate must be between 0 and 100", prefix))
		}
		if c.AverageGrade != nil && (*c.AverageGrade < 0 || *c.AverageGrade > 4) {
			errs = append(errs, fmt.Errorf("%s.average_grade must be between 0.0 and 4.0", prefix))
		}
	}

	return errs
}

func validatePrerequisites(edges []PrerequisiteImport, codes map[string]bool) []error {
	var errs []error
	type edgeKey struct {
		course, prereq string
		group          int
	}
	seen := make(map[edgeKey]bool)

	for i, e := range edges {
		prefix := fmt.Sprintf("prerequisites[%d]", i)
		course := normalizeCode(e.Course)
		prereq := normalizeCode(e.Prerequisite)

		if course == "" {
			errs = append(errs, fmt.Errorf("%s.course is required", prefix))
		} else if !codes[course] {
			errs = append(errs, fmt.Errorf("%s.course: unknown course %q", prefix, course))
		}
		if prereq == "" {
			errs = append(errs, fmt.Errorf("%s.prerequisite is required", prefix))
		} else if !codes[prereq] {
			errs = append(errs, fmt.Errorf("%s.prerequisite: unknown course %q", prefix, prereq))
		}
		if course != "" && course == prereq {
			errs = append(errs, fmt.Errorf("%s: course %q cannot be its own prerequisite", prefix, course))
		}
		if e.MinimumGrade != "" && !domain.IsValidGrade(e.MinimumGrade) {
			errs = append(errs, fmt.Errorf("%s.minimum_grade: invalid grade %q", prefix, e.MinimumGrade))
		}
		if e.Group != nil && *e.Group < 1 {
			errs = append(errs, fmt.Errorf("%s.group must be at least 1", prefix))
		}

		key := edgeKey{course, prereq, groupOf(e)}
		if seen[key] {
			errs = append(errs, fmt.Errorf("%s: duplicate edge %s -> %s in group %d", prefix, course, prereq, key.group))
		}
		seen[key] = true
	}

	return errs
}

func validateStudents(students []StudentImport, codes map[string]bool) []error {
	var errs []error
	ids := make(map[string]bool)

	for i, s := range students {
		prefix := fmt.Sprintf("students[%d]", i)

		if s.ID != "" {
			if ids[s.ID] {
				errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, s.ID))
			}
			ids[s.ID] = true
		}
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if s.GPA < 0 || s.GPA > 4 {
			errs = append(errs, fmt.Errorf("%s.gpa must be between 0.0 and 4.0", prefix))
		}
		if s.Level < 1 {
			errs = append(errs, fmt.Errorf("%s.level must be at least 1", prefix))
		}
		if s.AttendancePct != nil && (*s.AttendancePct < 0 || *s.AttendancePct > 100) {
			errs = append(errs, fmt.Errorf("%s.attendance_pct must be between 0 and 100", prefix))
		}

		taken := make(map[string]bool)
		for j, c := range s.Completed {
			cp := fmt.Sprintf("%s.completed[%d]", prefix, j)
			code := normalizeCode(c.Course)
			if code == "" {
				errs = append(errs, fmt.Errorf("%s.course is required", cp))
			} else if !codes[code] {
				errs = append(errs, fmt.Errorf("%s.course: unknown course %q", cp, code))
			} else if taken[code] {
				errs = append(errs, fmt.Errorf("%s.course: %q recorded more than once", cp, code))
			}
			taken[code] = true
			if !domain.IsValidGrade(c.Grade) {
				errs = append(errs, fmt.Errorf("%s.grade: invalid grade %q", cp, c.Grade))
			}
		}
	}

	return errs
}

// DetectPrerequisiteCycles reports cycles in the prerequisite graph. Cycles
// are not import errors: the pathway planner leaves courses on a cycle
// unscheduled. Each returned string names one cycle in path order.
func DetectPrerequisiteCycles(edges []PrerequisiteImport) []string {
	graph := make(map[string][]string)
	for _, e := range edges {
		course, prereq := normalizeCode(e.Course), normalizeCode(e.Prerequisite)
		if course == "" || prereq == "" || course == prereq {
			continue
		}
		graph[prereq] = append(graph[prereq], course)
	}

	nodes := make([]string, 0, len(graph))
	for n := range graph {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)

	const (
		white = 0 // unvisited
		gray  = 1 // in current path
		black = 2 // fully processed
	)
	color := make(map[string]int)
	var path []string
	var cycles []string

	var visit func(node string)
	visit = func(node string) {
		color[node] = gray
		path = append(path, node)
		for _, next := range graph[node] {
			switch color[next] {
			case gray:
				start := 0
				for i, p := range path {
					if p == next {
						start = i
						break
					}
				}
				cycle := append(append([]string{}, path[start:]...), next)
				cycles = append(cycles, strings.Join(cycle, " -> "))
			case white:
				visit(next)
			}
		}
		path = path[:len(path)-1]
		color[node] = black
	}

	for _, n := range nodes {
		if color[n] == white {
			visit(n)
		}
	}
	return cycles
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func groupOf(e PrerequisiteImport) int {
	if e.Group == nil {
		return 1
	}
	return *e.Group
}
