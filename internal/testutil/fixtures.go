package testutil

import (
	"time"

	"github.com/alexanderramin/coursepilot/internal/domain"
	"github.com/google/uuid"
)

// Course options
type CourseOption func(*domain.Course)

func WithCredits(n int) CourseOption {
	return func(c *domain.Course) {
		c.CreditHours = n
	}
}

func WithLevel(l int) CourseOption {
	return func(c *domain.Course) {
		c.Level = l
	}
}

func WithDepartment(d string) CourseOption {
	return func(c *domain.Course) {
		c.Department = d
	}
}

func WithCourseType(t domain.CourseType) CourseOption {
	return func(c *domain.Course) {
		c.Type = t
	}
}

func WithTermOffered(t domain.Term) CourseOption {
	return func(c *domain.Course) {
		c.TermOffered = t
	}
}

func WithDifficulty(d domain.Difficulty) CourseOption {
	return func(c *domain.Course) {
		c.Difficulty = d
	}
}

func WithEnrollment(max, current int) CourseOption {
	return func(c *domain.Course) {
		c.MaxEnrollment = max
		c.CurrentEnrollment = current
	}
}

func WithOutcomes(passRate, averageGrade float64) CourseOption {
	return func(c *domain.Course) {
		c.PassRate = passRate
		c.AverageGrade = averageGrade
	}
}

func WithInactive() CourseOption {
	return func(c *domain.Course) {
		c.Active = false
	}
}

func NewTestCourse(code string, opts ...CourseOption) *domain.Course {
	now := time.Now().UTC().Truncate(time.Second)
	c := &domain.Course{
		Code:          code,
		Name:          code + " Test Course",
		CreditHours:   3,
		Level:         1,
		Department:    "CS",
		Type:          domain.CourseRequired,
		TermOffered:   domain.TermBoth,
		MaxEnrollment: 40,
		Difficulty:    domain.DifficultyMedium,
		WorkloadHours: 8,
		PassRate:      80,
		AverageGrade:  3.0,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewTestEdge builds a strict prerequisite edge in group 1 with minimum grade C.
func NewTestEdge(courseCode, prerequisiteCode string) domain.PrerequisiteEdge {
	return domain.PrerequisiteEdge{
		CourseCode:       courseCode,
		PrerequisiteCode: prerequisiteCode,
		MinimumGrade:     "C",
		IsStrict:         true,
		GroupID:          1,
	}
}

// Student options
type StudentOption func(*domain.Student)

func WithGPA(gpa float64) StudentOption {
	return func(s *domain.Student) {
		s.GPA = gpa
	}
}

func WithStudentLevel(l int) StudentOption {
	return func(s *domain.Student) {
		s.Level = l
	}
}

func WithAttendance(pct float64) StudentOption {
	return func(s *domain.Student) {
		s.AttendancePct = &pct
	}
}

func WithStudentID(id string) StudentOption {
	return func(s *domain.Student) {
		s.ID = id
	}
}

func NewTestStudent(name string, opts ...StudentOption) *domain.Student {
	now := time.Now().UTC().Truncate(time.Second)
	s := &domain.Student{
		ID:         uuid.New().String(),
		Name:       name,
		GPA:        3.0,
		Level:      1,
		Department: "CS",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func NewTestCompleted(studentID, courseCode, grade string) *domain.CompletedCourse {
	return &domain.CompletedCourse{
		ID:          uuid.New().String(),
		StudentID:   studentID,
		CourseCode:  courseCode,
		Grade:       grade,
		Term:        "Spring 2026",
		CreditHours: 3,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
}
