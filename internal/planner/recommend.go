package planner

import (
	"github.com/alexanderramin/coursepilot/internal/app"
	"github.com/alexanderramin/coursepilot/internal/domain"
)

type RecommendOptions struct {
	Limit  int
	Term   *domain.Term
	Policy StrictnessPolicy
}

// RecommendCourses scores every course the student could still take and
// returns the top Limit along with the number of candidates considered.
// Completed, inactive and full courses are never candidates.
func RecommendCourses(s *Snapshot, opts RecommendOptions) ([]app.CourseRecommendation, int) {
	limit := opts.Limit
	if limit <= 0 {
		limit = app.DefaultRecommendLimit
	}

	var scored []ScoredCourse
	for _, c := range s.SortedCourses() {
		if !isRecommendable(s, c, opts.Term) {
			continue
		}
		scored = append(scored, ScoreCourse(ScoringInput{
			Course:        c,
			StudentGPA:    s.Student.GPA,
			StudentLevel:  s.Student.Level,
			Prerequisites: s.ResolveFor(c.Code, nil, opts.Policy),
		}))
	}
	candidates := len(scored)

	RankSort(scored)
	if len(scored) > limit {
		scored = scored[:limit]
	}

	recs := make([]app.CourseRecommendation, 0, len(scored))
	for _, sc := range scored {
		c := sc.Input.Course
		recs = append(recs, app.CourseRecommendation{
			CourseCode:       c.Code,
			CourseName:       c.Name,
			CreditHours:      c.CreditHours,
			Level:            c.Level,
			Type:             c.Type,
			Difficulty:       c.Difficulty,
			TermOffered:      c.TermOffered,
			BaseScore:        sc.BaseScore,
			Score:            sc.Score,
			PrerequisitesMet: len(sc.Input.Prerequisites.MissingStrict()) == 0,
			Reasons:          sc.Reasons,
		})
	}
	return recs, candidates
}

func isRecommendable(s *Snapshot, c domain.Course, term *domain.Term) bool {
	if s.HasCompleted(c.Code) || !c.Active || c.SeatsAvailable() <= 0 {
		return false
	}
	if term != nil && !c.TermOffered.OfferedIn(*term) {
		return false
	}
	return true
}
