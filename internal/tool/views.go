package tool

import "github.com/alexanderramin/coursepilot/internal/app"

type reasonView struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	WeightDelta *float64 `json:"weight_delta,omitempty"`
	Multiplier  *float64 `json:"multiplier,omitempty"`
	Courses     []string `json:"courses,omitempty"`
}

type groupView struct {
	GroupID        int      `json:"group_id"`
	Satisfied      bool     `json:"satisfied"`
	IsStrict       bool     `json:"is_strict"`
	CandidateCodes []string `json:"candidate_codes"`
	SatisfiedBy    *string  `json:"satisfied_by"`
}

type eligibilityData struct {
	StudentID           string       `json:"student_id"`
	CourseCode          string       `json:"course_code"`
	CourseName          string       `json:"course_name"`
	Eligible            bool         `json:"eligible"`
	BlockingReasons     []reasonView `json:"blocking_reasons"`
	Warnings            []reasonView `json:"warnings"`
	ExpectedSuccessRate float64      `json:"expected_success_rate"`
	Confidence          string       `json:"confidence"`
	PrerequisitesMet    bool         `json:"prerequisites_met"`
	PrerequisiteGroups  []groupView  `json:"prerequisite_groups"`
}

type recommendationItem struct {
	CourseCode       string       `json:"course_code"`
	CourseName       string       `json:"course_name"`
	CreditHours      int          `json:"credit_hours"`
	Level            int          `json:"level"`
	Type             string       `json:"type"`
	Difficulty       string       `json:"difficulty"`
	TermOffered      string       `json:"term_offered"`
	BaseScore        float64      `json:"base_score"`
	Score            float64      `json:"score"`
	PrerequisitesMet bool         `json:"prerequisites_met"`
	Reasons          []reasonView `json:"reasons"`
}

type recommendationData struct {
	StudentID       string               `json:"student_id"`
	Term            *string              `json:"term"`
	CandidateCount  int                  `json:"candidate_count"`
	Recommendations []recommendationItem `json:"recommendations"`
}

type predictionData struct {
	StudentID        string       `json:"student_id"`
	CourseCode       string       `json:"course_code"`
	CourseName       string       `json:"course_name"`
	Baseline         float64      `json:"baseline"`
	Probability      float64      `json:"probability"`
	ExpectedGrade    string       `json:"expected_grade"`
	Difficulty       string       `json:"difficulty"`
	GPAAdvantage     float64      `json:"gpa_advantage"`
	Confidence       string       `json:"confidence"`
	DataPoints       int          `json:"data_points"`
	InsufficientData bool         `json:"insufficient_data"`
	Unavailable      []string     `json:"unavailable_signals"`
	Adjustments      []reasonView `json:"adjustments"`
}

type plannedCourseView struct {
	CourseCode  string `json:"course_code"`
	CourseName  string `json:"course_name"`
	CreditHours int    `json:"credit_hours"`
	Level       int    `json:"level"`
}

type termView struct {
	Index   int                 `json:"index"`
	Label   string              `json:"label"`
	Term    string              `json:"term"`
	Year    int                 `json:"year"`
	Credits int                 `json:"credits"`
	Courses []plannedCourseView `json:"courses"`
}

type unscheduledView struct {
	CourseCode  string `json:"course_code"`
	CourseName  string `json:"course_name"`
	CreditHours int    `json:"credit_hours"`
	Reason      string `json:"reason"`
	Message     string `json:"message"`
}

type pathwayData struct {
	StudentID        string            `json:"student_id"`
	CreditsPerTerm   int               `json:"credits_per_term"`
	Terms            []termView        `json:"terms"`
	CompletedCredits int               `json:"completed_credits"`
	PlannedCredits   int               `json:"planned_credits"`
	RequiredCredits  int               `json:"required_credits"`
	ProgressPct      float64           `json:"progress_pct"`
	EstimatedTerms   int               `json:"estimated_terms"`
	GraduationLabel  string            `json:"graduation_term"`
	StopReason       string            `json:"stop_reason"`
	Unscheduled      []unscheduledView `json:"unscheduled"`
}

func reasonViews(reasons []app.Reason) []reasonView {
	out := make([]reasonView, 0, len(reasons))
	for _, r := range reasons {
		out = append(out, reasonView{
			Code:        string(r.Code),
			Message:     r.Message,
			WeightDelta: r.WeightDelta,
			Multiplier:  r.Multiplier,
			Courses:     r.Courses,
		})
	}
	return out
}

func eligibilityView(res *app.EligibilityResult) eligibilityData {
	groups := make([]groupView, 0, len(res.Prerequisites.Groups))
	for _, g := range res.Prerequisites.Groups {
		groups = append(groups, groupView{
			GroupID:        g.GroupID,
			Satisfied:      g.Satisfied,
			IsStrict:       g.IsStrict,
			CandidateCodes: g.CandidateCodes,
			SatisfiedBy:    g.SatisfiedBy,
		})
	}
	return eligibilityData{
		StudentID:           res.StudentID,
		CourseCode:          res.CourseCode,
		CourseName:          res.CourseName,
		Eligible:            res.Eligible,
		BlockingReasons:     reasonViews(res.BlockingReasons),
		Warnings:            reasonViews(res.Warnings),
		ExpectedSuccessRate: res.ExpectedSuccessRate,
		Confidence:          string(res.Confidence),
		PrerequisitesMet:    res.Prerequisites.AllSatisfied,
		PrerequisiteGroups:  groups,
	}
}

func recommendationView(res *app.RecommendationResult) recommendationData {
	data := recommendationData{
		StudentID:       res.StudentID,
		CandidateCount:  res.CandidateCount,
		Recommendations: make([]recommendationItem, 0, len(res.Recommendations)),
	}
	if res.Term != nil {
		term := string(*res.Term)
		data.Term = &term
	}
	for _, r := range res.Recommendations {
		data.Recommendations = append(data.Recommendations, recommendationItem{
			CourseCode:       r.CourseCode,
			CourseName:       r.CourseName,
			CreditHours:      r.CreditHours,
			Level:            r.Level,
			Type:             string(r.Type),
			Difficulty:       string(r.Difficulty),
			TermOffered:      string(r.TermOffered),
			BaseScore:        r.BaseScore,
			Score:            r.Score,
			PrerequisitesMet: r.PrerequisitesMet,
			Reasons:          reasonViews(r.Reasons),
		})
	}
	return data
}

func predictionView(res *app.PredictionResult) predictionData {
	unavailable := make([]string, 0, len(res.Unavailable))
	for _, s := range res.Unavailable {
		unavailable = append(unavailable, string(s))
	}
	return predictionData{
		StudentID:        res.StudentID,
		CourseCode:       res.CourseCode,
		CourseName:       res.CourseName,
		Baseline:         res.Baseline,
		Probability:      res.Probability,
		ExpectedGrade:    res.ExpectedGrade,
		Difficulty:       string(res.Difficulty),
		GPAAdvantage:     res.GPAAdvantage,
		Confidence:       string(res.Confidence),
		DataPoints:       res.DataPoints,
		InsufficientData: res.InsufficientData(),
		Unavailable:      unavailable,
		Adjustments:      reasonViews(res.Adjustments),
	}
}

func pathwayView(res *app.PathwayResult) pathwayData {
	data := pathwayData{
		StudentID:        res.StudentID,
		CreditsPerTerm:   res.CreditsPerTerm,
		Terms:            make([]termView, 0, len(res.Terms)),
		CompletedCredits: res.CompletedCredits,
		PlannedCredits:   res.PlannedCredits,
		RequiredCredits:  res.RequiredCredits,
		ProgressPct:      res.ProgressPct,
		EstimatedTerms:   res.EstimatedTerms,
		GraduationLabel:  res.GraduationLabel,
		StopReason:       string(res.StopReason),
		Unscheduled:      make([]unscheduledView, 0, len(res.Unscheduled)),
	}
	for _, t := range res.Terms {
		tv := termView{Index: t.Index, Label: t.Label, Term: string(t.Term), Year: t.Year, Credits: t.Credits}
		for _, c := range t.Courses {
			tv.Courses = append(tv.Courses, plannedCourseView{
				CourseCode:  c.CourseCode,
				CourseName:  c.CourseName,
				CreditHours: c.CreditHours,
				Level:       c.Level,
			})
		}
		data.Terms = append(data.Terms, tv)
	}
	for _, u := range res.Unscheduled {
		data.Unscheduled = append(data.Unscheduled, unscheduledView{
			CourseCode:  u.CourseCode,
			CourseName:  u.CourseName,
			CreditHours: u.CreditHours,
			Reason:      string(u.Reason),
			Message:     u.Message,
		})
	}
	return data
}
