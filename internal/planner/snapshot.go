package planner

import (
	"errors"
	"sort"

	"github.com/alexanderramin/coursepilot/internal/domain"
)

var ErrCourseNotFound = errors.New("course not found")

// Snapshot is the read-only view of catalog, prerequisites and one student's
// ledger that every engine call evaluates against. Build one per call with
// NewSnapshot; the engine never mutates it.
type Snapshot struct {
	Student       domain.Student
	Completed     []domain.CompletedCourse
	Courses       map[string]domain.Course
	Prerequisites map[string][]domain.PrerequisiteEdge

	grades map[string]string
}

// NewSnapshot copies its inputs so callers may reuse their slices.
func NewSnapshot(
	student domain.Student,
	completed []domain.CompletedCourse,
	courses []domain.Course,
	edges []domain.PrerequisiteEdge,
) *Snapshot {
	s := &Snapshot{
		Student:       student,
		Completed:     append([]domain.CompletedCourse(nil), completed...),
		Courses:       make(map[string]domain.Course, len(courses)),
		Prerequisites: make(map[string][]domain.PrerequisiteEdge),
		grades:        make(map[string]string, len(completed)),
	}
	if student.AttendancePct != nil {
		pct := *student.AttendancePct
		s.Student.AttendancePct = &pct
	}
	for _, c := range courses {
		s.Courses[c.Code] = c
	}
	for _, e := range edges {
		s.Prerequisites[e.CourseCode] = append(s.Prerequisites[e.CourseCode], e)
	}
	// A retaken course keeps its best grade.
	for _, r := range s.Completed {
		if prev, ok := s.grades[r.CourseCode]; !ok || domain.GradePoints(r.Grade) > domain.GradePoints(prev) {
			s.grades[r.CourseCode] = r.Grade
		}
	}
	return s
}

func (s *Snapshot) Course(code string) (domain.Course, bool) {
	c, ok := s.Courses[code]
	return c, ok
}

func (s *Snapshot) HasCompleted(code string) bool {
	_, ok := s.grades[code]
	return ok
}

// CompletedGrades maps course code to the best grade achieved.
func (s *Snapshot) CompletedGrades() map[string]string {
	return s.grades
}

// SortedCourses returns the catalog ordered by course code.
func (s *Snapshot) SortedCourses() []domain.Course {
	out := make([]domain.Course, 0, len(s.Courses))
	for _, c := range s.Courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// CompletedIn returns the ledger records whose course belongs to department.
// Records for courses missing from the catalog are skipped.
func (s *Snapshot) CompletedIn(department string) []domain.CompletedCourse {
	var out []domain.CompletedCourse
	for _, r := range s.Completed {
		c, ok := s.Courses[r.CourseCode]
		if ok && c.Department == department {
			out = append(out, r)
		}
	}
	return out
}
