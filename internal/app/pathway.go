package app

import (
	"time"

	"github.com/alexanderramin/coursepilot/internal/domain"
)

const (
	DefaultCreditsPerTerm = 15
	MaxCreditsPerTerm     = 24
	DegreeCreditsRequired = 120
)

type PathwayRequest struct {
	StudentID      string
	CreditsPerTerm int
	Now            *time.Time
}

func NewPathwayRequest(studentID string) PathwayRequest {
	return PathwayRequest{
		StudentID:      studentID,
		CreditsPerTerm: DefaultCreditsPerTerm,
	}
}

type StopReason string

const (
	StopComplete    StopReason = "COMPLETE"
	StopSafetyBound StopReason = "SAFETY_BOUND"
	StopDeadlock    StopReason = "DEADLOCK"
)

type PlannedCourse struct {
	CourseCode  string
	CourseName  string
	CreditHours int
	Level       int
	Type        domain.CourseType
	Difficulty  domain.Difficulty
}

type TermPlan struct {
	Index   int
	Term    domain.Term
	Year    int
	Label   string
	Courses []PlannedCourse
	Credits int
}

type UnscheduledCourse struct {
	CourseCode  string
	CourseName  string
	CreditHours int
	Reason      ReasonCode
	Message     string
}

type PathwayResult struct {
	Success bool
	Failure *Failure

	StudentID        string
	CreditsPerTerm   int
	Terms            []TermPlan
	CompletedCredits int
	PlannedCredits   int
	RequiredCredits  int
	ProgressPct      float64
	EstimatedTerms   int
	GraduationLabel  string
	StopReason       StopReason
	Unscheduled      []UnscheduledCourse
}
