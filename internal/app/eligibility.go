package app

type EligibilityRequest struct {
	StudentID  string
	CourseCode string
}

func NewEligibilityRequest(studentID, courseCode string) EligibilityRequest {
	return EligibilityRequest{StudentID: studentID, CourseCode: courseCode}
}

type EligibilityResult struct {
	Success bool
	Failure *Failure

	StudentID           string
	StudentName         string
	CourseCode          string
	CourseName          string
	Eligible            bool
	BlockingReasons     []Reason
	Warnings            []Reason
	ExpectedSuccessRate float64
	Confidence          Confidence
	Prerequisites       PrerequisiteCheck
}
