package app

import "github.com/alexanderramin/coursepilot/internal/domain"

const (
	DefaultRecommendLimit = 5
	MaxRecommendLimit     = 50
)

type RecommendRequest struct {
	StudentID string
	Limit     int
	Term      *domain.Term
}

func NewRecommendRequest(studentID string) RecommendRequest {
	return RecommendRequest{
		StudentID: studentID,
		Limit:     DefaultRecommendLimit,
	}
}

type CourseRecommendation struct {
	CourseCode       string
	CourseName       string
	CreditHours      int
	Level            int
	Type             domain.CourseType
	Difficulty       domain.Difficulty
	TermOffered      domain.Term
	BaseScore        float64
	Score            float64
	PrerequisitesMet bool
	Reasons          []Reason
}

type RecommendationResult struct {
	Success bool
	Failure *Failure

	StudentID       string
	Term            *domain.Term
	CandidateCount  int
	Recommendations []CourseRecommendation
}
