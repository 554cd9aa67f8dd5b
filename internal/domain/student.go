package domain

import (
	"errors"
	"time"
)

var ErrAlreadyCompleted = errors.New("course already completed")

type Student struct {
	ID            string
	Name          string
	GPA           float64
	Level         int
	AttendancePct *float64 // nil when no attendance data is recorded
	Department    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CompletedCourse is an immutable historical record of a finished course.
type CompletedCourse struct {
	ID          string
	StudentID   string
	CourseCode  string
	Grade       string
	Term        string
	CreditHours int
	CreatedAt   time.Time
}

// GradePoints returns the numeric value of the achieved grade.
func (c CompletedCourse) GradePoints() float64 {
	return GradePoints(c.Grade)
}

// CompletedCredits sums credit hours over a ledger.
func CompletedCredits(records []CompletedCourse) int {
	total := 0
	for _, r := range records {
		total += r.CreditHours
	}
	return total
}

// MeanGradePoints returns the unweighted mean grade points of records, or
// false when records is empty.
func MeanGradePoints(records []CompletedCourse) (float64, bool) {
	if len(records) == 0 {
		return 0, false
	}
	var sum float64
	for _, r := range records {
		sum += r.GradePoints()
	}
	return sum / float64(len(records)), true
}
