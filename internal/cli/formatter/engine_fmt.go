package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/coursepilot/internal/app"
)

// FormatEligibility renders an eligibility verdict with prerequisite groups,
// blocking reasons and warnings.
func FormatEligibility(res *app.EligibilityResult) string {
	var b strings.Builder

	student := res.StudentID
	if res.StudentName != "" {
		student = fmt.Sprintf("%s (%s)", res.StudentName, res.StudentID)
	}
	fmt.Fprintf(&b, "%s %s\n", Dim("Student:"), student)
	fmt.Fprintf(&b, "%s %s %s\n\n", Dim("Course: "), Bold(res.CourseCode), res.CourseName)
	fmt.Fprintf(&b, "%s\n", EligibilityBadge(res.Eligible))
	fmt.Fprintf(&b, "%s %s  %s\n",
		Dim("Expected success:"),
		ProbabilityStyle(res.ExpectedSuccessRate).Render(FormatPercent(res.ExpectedSuccessRate)),
		ConfidenceBadge(res.Confidence),
	)

	if len(res.Prerequisites.Groups) > 0 {
		b.WriteString("\n" + Header("Prerequisites") + "\n")
		for _, g := range res.Prerequisites.Groups {
			b.WriteString(formatGroup(g) + "\n")
		}
	}

	if len(res.BlockingReasons) > 0 {
		b.WriteString("\n")
		for _, r := range res.BlockingReasons {
			fmt.Fprintf(&b, "%s %s\n", StyleRed.Render("BLOCKED:"), r.Message)
		}
	}
	if len(res.Warnings) > 0 {
		b.WriteString("\n")
		for _, r := range res.Warnings {
			fmt.Fprintf(&b, "%s %s\n", StyleYellow.Render("WARNING:"), r.Message)
		}
	}

	return RenderBox("Eligibility", strings.TrimRight(b.String(), "\n"))
}

func formatGroup(g app.PrerequisiteGroup) string {
	kind := Dim("advisory")
	if g.IsStrict {
		kind = Dim("strict")
	}
	alternatives := strings.Join(g.CandidateCodes, " or ")
	switch {
	case g.Satisfied && g.SatisfiedBy != nil:
		return fmt.Sprintf("  %s %s %s %s", StyleGreen.Render("✔"), alternatives, kind, Dim("via "+*g.SatisfiedBy))
	case g.Satisfied:
		return fmt.Sprintf("  %s %s %s", StyleGreen.Render("✔"), alternatives, kind)
	case g.IsStrict:
		return fmt.Sprintf("  %s %s %s", StyleRed.Render("✖"), alternatives, kind)
	default:
		return fmt.Sprintf("  %s %s %s", StyleYellow.Render("○"), alternatives, kind)
	}
}

// FormatRecommendations renders ranked recommendations with score reasons.
func FormatRecommendations(res *app.RecommendationResult) string {
	var b strings.Builder

	scope := "all terms"
	if res.Term != nil {
		scope = string(*res.Term)
	}
	fmt.Fprintf(&b, "%s %s  %s %s\n\n", Dim("Student:"), res.StudentID, Dim("Term:"), scope)

	if len(res.Recommendations) == 0 {
		b.WriteString(Dim("No recommendations available.") + "\n")
	}
	for i, rec := range res.Recommendations {
		fmt.Fprintf(&b, "%s %s %s  %s  %s\n",
			Bold(fmt.Sprintf("%d.", i+1)),
			Bold(rec.CourseCode),
			StyleFg.Render(rec.CourseName),
			StyleBlue.Render(fmt.Sprintf("score %.1f", rec.Score)),
			CourseTypeBadge(rec.Type),
		)
		fmt.Fprintf(&b, "   %s\n", Dim(fmt.Sprintf("%d credits · level %d · %s · offered %s",
			rec.CreditHours, rec.Level, rec.Difficulty, rec.TermOffered)))
		for _, r := range rec.Reasons {
			fmt.Fprintf(&b, "   %s\n", ReasonLine(r))
		}
		if i < len(res.Recommendations)-1 {
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "\n%s\n", Dim(fmt.Sprintf("%d of %d candidate courses shown", len(res.Recommendations), res.CandidateCount)))
	return RenderBox("Recommendations", strings.TrimRight(b.String(), "\n"))
}

// FormatPrediction renders a success prediction with its adjustments.
func FormatPrediction(res *app.PredictionResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s  %s %s %s\n\n", Dim("Student:"), res.StudentID, Dim("Course:"), Bold(res.CourseCode), res.CourseName)
	fmt.Fprintf(&b, "%s %s  %s\n",
		Dim("Success probability:"),
		ProbabilityStyle(res.Probability).Render(FormatPercent(res.Probability)),
		ConfidenceBadge(res.Confidence),
	)
	fmt.Fprintf(&b, "%s %s  %s %s  %s %s\n",
		Dim("Expected grade:"), Bold(res.ExpectedGrade),
		Dim("Difficulty:"), string(res.Difficulty),
		Dim("Baseline:"), FormatPercent(res.Baseline),
	)

	if len(res.Adjustments) > 0 {
		b.WriteString("\n" + Header("Adjustments") + "\n")
		for _, r := range res.Adjustments {
			fmt.Fprintf(&b, "  %s\n", ReasonLine(r))
		}
	}

	if res.InsufficientData() {
		signals := make([]string, 0, len(res.Unavailable))
		for _, s := range res.Unavailable {
			signals = append(signals, string(s))
		}
		fmt.Fprintf(&b, "\n%s\n", StyleYellow.Render("Insufficient data: "+strings.Join(signals, ", ")))
	}

	return RenderBox("Success Prediction", strings.TrimRight(b.String(), "\n"))
}
