package app

import "fmt"

type ReasonCode string

const (
	// Eligibility
	ReasonAlreadyCompleted        ReasonCode = "ALREADY_COMPLETED"
	ReasonNotOffered              ReasonCode = "NOT_OFFERED"
	ReasonPrerequisiteMissing     ReasonCode = "PREREQUISITE_MISSING"
	ReasonPrerequisiteRecommended ReasonCode = "PREREQUISITE_RECOMMENDED"
	ReasonCourseFull              ReasonCode = "COURSE_FULL"
	ReasonLevelMismatch           ReasonCode = "LEVEL_MISMATCH"

	// Recommendation scoring
	ReasonCourseType           ReasonCode = "COURSE_TYPE"
	ReasonGPAFit               ReasonCode = "GPA_FIT"
	ReasonDifficultyFit        ReasonCode = "DIFFICULTY_FIT"
	ReasonSeatAvailability     ReasonCode = "SEAT_AVAILABILITY"
	ReasonEasyForStrongStudent ReasonCode = "EASY_FOR_STRONG_STUDENT"
	ReasonPrerequisitePenalty  ReasonCode = "PREREQUISITE_PENALTY"
	ReasonLevelPenalty         ReasonCode = "LEVEL_PENALTY"

	// Success prediction
	ReasonGPAAdvantage        ReasonCode = "GPA_ADVANTAGE"
	ReasonDepartmentAdvantage ReasonCode = "DEPARTMENT_ADVANTAGE"
	ReasonPrerequisiteGPA     ReasonCode = "PREREQUISITE_GPA"
	ReasonAttendance          ReasonCode = "ATTENDANCE"

	// Pathway planning
	ReasonUnscheduled ReasonCode = "PREREQUISITES_OR_OFFERING"
)

// Reason is one structured contributing factor. Additive factors set
// WeightDelta, multiplicative penalties set Multiplier.
type Reason struct {
	Code        ReasonCode
	Message     string
	WeightDelta *float64
	Multiplier  *float64
	Courses     []string
}

type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

type FailureCode string

const (
	FailNotFound          FailureCode = "NOT_FOUND"
	FailValidation        FailureCode = "VALIDATION_ERROR"
	FailNoEligibleCourses FailureCode = "NO_ELIGIBLE_COURSES"
	FailInternal          FailureCode = "INTERNAL_ERROR"
)

// Failure is the machine-readable reason a result carries when Success is false.
type Failure struct {
	Code    FailureCode
	Message string
}

func NotFound(format string, args ...any) *Failure {
	return &Failure{Code: FailNotFound, Message: fmt.Sprintf(format, args...)}
}

func Invalid(format string, args ...any) *Failure {
	return &Failure{Code: FailValidation, Message: fmt.Sprintf(format, args...)}
}

func NoEligibleCourses(format string, args ...any) *Failure {
	return &Failure{Code: FailNoEligibleCourses, Message: fmt.Sprintf(format, args...)}
}

// EngineError is returned by services when a collaborator fails. No partial
// result accompanies it.
type EngineError struct {
	Code    FailureCode
	Message string
	Err     error
}

func (e *EngineError) Error() string {
	if e.Err != nil {
		return string(e.Code) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Code) + ": " + e.Message
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

func Internal(message string, err error) *EngineError {
	return &EngineError{Code: FailInternal, Message: message, Err: err}
}

// PrerequisiteGroup is the resolution of one OR-group of prerequisite edges.
type PrerequisiteGroup struct {
	GroupID        int
	Satisfied      bool
	IsStrict       bool
	CandidateCodes []string
	SatisfiedBy    *string
}

// PrerequisiteCheck is the resolver's verdict for one course.
type PrerequisiteCheck struct {
	AllSatisfied bool
	Groups       []PrerequisiteGroup
}

// MissingStrict returns unsatisfied groups that block registration.
func (p PrerequisiteCheck) MissingStrict() []PrerequisiteGroup {
	var out []PrerequisiteGroup
	for _, g := range p.Groups {
		if !g.Satisfied && g.IsStrict {
			out = append(out, g)
		}
	}
	return out
}

// MissingAdvisory returns unsatisfied groups that only warrant a warning.
func (p PrerequisiteCheck) MissingAdvisory() []PrerequisiteGroup {
	var out []PrerequisiteGroup
	for _, g := range p.Groups {
		if !g.Satisfied && !g.IsStrict {
			out = append(out, g)
		}
	}
	return out
}
