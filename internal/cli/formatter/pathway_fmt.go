package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/coursepilot/internal/app"
)

// FormatPathway renders the term-by-term graduation plan.
func FormatPathway(res *app.PathwayResult) string {
	var b strings.Builder

	b.WriteString(PathwaySummary(res) + "\n")

	if len(res.Terms) == 0 {
		b.WriteString("\n" + Dim("No remaining degree courses could be planned.") + "\n")
	}
	for _, t := range res.Terms {
		b.WriteString("\n" + FormatTermPlan(t, res.CreditsPerTerm))
	}

	if len(res.Unscheduled) > 0 {
		b.WriteString("\n" + FormatUnscheduled(res.Unscheduled))
	}

	return RenderBox("Pathway", strings.TrimRight(b.String(), "\n"))
}

// PathwaySummary renders progress toward the degree and the graduation estimate.
func PathwaySummary(res *app.PathwayResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Dim("Student:"), res.StudentID)
	fmt.Fprintf(&b, "%s %s  %s\n",
		Dim("Progress:"),
		RenderProgress(res.ProgressPct/100, 20),
		Dim(fmt.Sprintf("%d completed + %d planned of %d credits", res.CompletedCredits, res.PlannedCredits, res.RequiredCredits)),
	)
	graduation := res.GraduationLabel
	if graduation == "" {
		graduation = "--"
	}
	fmt.Fprintf(&b, "%s %s  %s",
		Dim("Graduation:"), Bold(graduation),
		Dim(fmt.Sprintf("(%d terms, %d credits per term)", res.EstimatedTerms, res.CreditsPerTerm)),
	)
	switch res.StopReason {
	case app.StopSafetyBound:
		b.WriteString("\n" + StyleYellow.Render("Planning stopped at the term limit."))
	case app.StopDeadlock:
		b.WriteString("\n" + StyleYellow.Render("Planning stopped: remaining courses cannot be scheduled."))
	}
	return b.String()
}

// TermSummaryLine renders one compact line per planned term.
func TermSummaryLine(t app.TermPlan, creditCap int) string {
	load := 0.0
	if creditCap > 0 {
		load = float64(t.Credits) / float64(creditCap)
	}
	return fmt.Sprintf("%-12s %s %2d cr  %d courses", t.Label, RenderCompactBar(load, 10, false), t.Credits, len(t.Courses))
}

// FormatTermPlan renders one term and its courses.
func FormatTermPlan(t app.TermPlan, creditCap int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", StyleHeader.Render(t.Label), Dim(fmt.Sprintf("%d/%d credits", t.Credits, creditCap)))
	for _, c := range t.Courses {
		fmt.Fprintf(&b, "  %-8s %s  %s  %s\n",
			c.CourseCode,
			StyleFg.Render(c.CourseName),
			Dim(fmt.Sprintf("%d cr", c.CreditHours)),
			CourseTypeBadge(c.Type),
		)
	}
	return b.String()
}

// FormatUnscheduled lists degree courses the planner could not place.
func FormatUnscheduled(courses []app.UnscheduledCourse) string {
	var b strings.Builder
	b.WriteString(StyleYellow.Render("UNSCHEDULED") + "\n")
	for _, u := range courses {
		fmt.Fprintf(&b, "  %-8s %s  %s\n", u.CourseCode, u.CourseName, Dim(u.Message))
	}
	return b.String()
}
