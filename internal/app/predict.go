package app

type PredictRequest struct {
	StudentID  string
	CourseCode string
}

func NewPredictRequest(studentID, courseCode string) PredictRequest {
	return PredictRequest{StudentID: studentID, CourseCode: courseCode}
}

// DataSignal names a historical input the predictor may lack.
type DataSignal string

const (
	SignalCompletedHistory    DataSignal = "completed_history"
	SignalDepartmentHistory   DataSignal = "department_history"
	SignalPrerequisiteHistory DataSignal = "prerequisite_history"
	SignalAttendance          DataSignal = "attendance"
)

type DifficultyLabel string

const (
	DifficultyLabelEasy          DifficultyLabel = "Easy"
	DifficultyLabelManageable    DifficultyLabel = "Manageable"
	DifficultyLabelChallenging   DifficultyLabel = "Challenging"
	DifficultyLabelVeryDifficult DifficultyLabel = "Very Difficult"
)

type PredictionResult struct {
	Success bool
	Failure *Failure

	StudentID      string
	CourseCode     string
	CourseName     string
	Baseline       float64
	RawProbability float64
	Probability    float64 // clamped to [0,100]
	ExpectedGrade  string
	Difficulty     DifficultyLabel
	GPAAdvantage   float64
	Confidence     Confidence
	DataPoints     int
	Adjustments    []Reason
	Unavailable    []DataSignal
}

// InsufficientData reports whether any historical signal was missing.
func (r *PredictionResult) InsufficientData() bool {
	return len(r.Unavailable) > 0
}
