package planner

import (
	"time"

	"github.com/alexanderramin/coursepilot/internal/domain"
)

var testNow = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC) // Fall 2026

type courseOpt func(*domain.Course)

func withLevel(l int) courseOpt             { return func(c *domain.Course) { c.Level = l } }
func withCredits(n int) courseOpt           { return func(c *domain.Course) { c.CreditHours = n } }
func withType(t domain.CourseType) courseOpt { return func(c *domain.Course) { c.Type = t } }
func withTerm(t domain.Term) courseOpt      { return func(c *domain.Course) { c.TermOffered = t } }
func withDept(d string) courseOpt           { return func(c *domain.Course) { c.Department = d } }
func withAvg(g float64) courseOpt           { return func(c *domain.Course) { c.AverageGrade = g } }
func withPassRate(p float64) courseOpt      { return func(c *domain.Course) { c.PassRate = p } }
func inactive() courseOpt                   { return func(c *domain.Course) { c.Active = false } }

func withDifficulty(d domain.Difficulty) courseOpt {
	return func(c *domain.Course) { c.Difficulty = d }
}

func withSeats(max, current int) courseOpt {
	return func(c *domain.Course) {
		c.MaxEnrollment = max
		c.CurrentEnrollment = current
	}
}

func course(code string, opts ...courseOpt) domain.Course {
	c := domain.Course{
		Code:          code,
		Name:          code + " course",
		CreditHours:   3,
		Level:         1,
		Department:    "MATH",
		Type:          domain.CourseRequired,
		TermOffered:   domain.TermBoth,
		MaxEnrollment: 30,
		Difficulty:    domain.DifficultyMedium,
		PassRate:      80,
		AverageGrade:  3.0,
		Active:        true,
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}

func edge(courseCode, prereq, minGrade string, group int, strict bool) domain.PrerequisiteEdge {
	return domain.PrerequisiteEdge{
		CourseCode:       courseCode,
		PrerequisiteCode: prereq,
		MinimumGrade:     minGrade,
		GroupID:          group,
		IsStrict:         strict,
	}
}

func done(code, grade string) domain.CompletedCourse {
	return domain.CompletedCourse{CourseCode: code, Grade: grade, Term: "Spring 2026", CreditHours: 3}
}

func student(gpa float64, level int) domain.Student {
	return domain.Student{ID: "s-1", Name: "Test Student", GPA: gpa, Level: level, Department: "MATH"}
}

func pct(v float64) *float64 { return &v }
