package domain

import "time"

type Course struct {
	Code              string
	Name              string
	CreditHours       int
	Level             int
	Department        string
	Type              CourseType
	TermOffered       Term
	MaxEnrollment     int
	CurrentEnrollment int
	Difficulty        Difficulty
	WorkloadHours     float64
	PassRate          float64 // 0-100
	AverageGrade      float64 // 0.0-4.0
	Active            bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SeatsAvailable returns max enrollment minus current enrollment.
func (c *Course) SeatsAvailable() int {
	return c.MaxEnrollment - c.CurrentEnrollment
}

// SeatRatio returns the fraction of seats still open, or 0 when the course
// has no enrollment cap recorded.
func (c *Course) SeatRatio() float64 {
	if c.MaxEnrollment <= 0 {
		return 0
	}
	return float64(c.SeatsAvailable()) / float64(c.MaxEnrollment)
}

// CountsTowardDegree reports whether the course belongs to the required or
// general-education pool the pathway planner schedules.
func (c *Course) CountsTowardDegree() bool {
	return c.Type == CourseRequired || c.Type == CourseGeneralEducation
}

// PrerequisiteEdge is one alternative inside a prerequisite group. Edges with
// the same GroupID are OR-ed; distinct groups are AND-ed.
type PrerequisiteEdge struct {
	CourseCode       string
	PrerequisiteCode string
	MinimumGrade     string
	IsStrict         bool
	GroupID          int
}
