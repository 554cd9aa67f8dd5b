package formatter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/coursepilot/internal/domain"
	"github.com/alexanderramin/coursepilot/internal/service"
)

// FormatCourseList renders catalog courses as a table.
func FormatCourseList(courses []*domain.Course) string {
	headers := []string{"CODE", "NAME", "CR", "LVL", "TYPE", "TERM", "DIFFICULTY", "SEATS"}
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		seats := fmt.Sprintf("%d/%d", c.SeatsAvailable(), c.MaxEnrollment)
		if c.MaxEnrollment > 0 && c.SeatsAvailable() <= 0 {
			seats = StyleRed.Render(seats)
		}
		name := c.Name
		if !c.Active {
			name = Dim(name + " (inactive)")
		}
		rows = append(rows, []string{
			Bold(c.Code),
			name,
			strconv.Itoa(c.CreditHours),
			strconv.Itoa(c.Level),
			CourseTypeBadge(c.Type),
			string(c.TermOffered),
			DifficultyBadge(c.Difficulty),
			seats,
		})
	}
	return RenderTable(headers, rows)
}

// FormatCourseDetail renders one course with its prerequisite groups.
func FormatCourseDetail(d *service.CourseDetail) string {
	c := d.Course
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n\n", Bold(c.Code), StyleFg.Render(c.Name))
	fmt.Fprintf(&b, "%s %s  %s %d  %s %d\n", Dim("Department:"), Placeholder(c.Department), Dim("Level:"), c.Level, Dim("Credits:"), c.CreditHours)
	fmt.Fprintf(&b, "%s %s  %s %s  %s %s\n", Dim("Type:"), CourseTypeBadge(c.Type), Dim("Offered:"), string(c.TermOffered), Dim("Difficulty:"), DifficultyBadge(c.Difficulty))
	fmt.Fprintf(&b, "%s %d/%d  %s %s  %s %s  %s %.1f h/wk\n",
		Dim("Seats:"), c.SeatsAvailable(), c.MaxEnrollment,
		Dim("Pass rate:"), FormatPercent(c.PassRate),
		Dim("Avg grade:"), FormatGPA(c.AverageGrade),
		Dim("Workload:"), c.WorkloadHours,
	)

	b.WriteString("\n" + Header("Prerequisites") + "\n")
	if len(d.Prerequisites) == 0 {
		b.WriteString(Dim("  none") + "\n")
	}
	for _, line := range prerequisiteLines(d.Prerequisites) {
		b.WriteString("  " + line + "\n")
	}

	return RenderBox("Course", strings.TrimRight(b.String(), "\n"))
}

// prerequisiteLines groups edges by GroupID in ascending order; alternatives
// keep catalog order.
func prerequisiteLines(edges []domain.PrerequisiteEdge) []string {
	groups := map[int][]domain.PrerequisiteEdge{}
	var ids []int
	for _, e := range edges {
		if _, ok := groups[e.GroupID]; !ok {
			ids = append(ids, e.GroupID)
		}
		groups[e.GroupID] = append(groups[e.GroupID], e)
	}
	sort.Ints(ids)

	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		alts := make([]string, 0, len(groups[id]))
		for _, e := range groups[id] {
			kind := "advisory"
			if e.IsStrict {
				kind = "strict"
			}
			alts = append(alts, fmt.Sprintf("%s %s", e.PrerequisiteCode, Dim(fmt.Sprintf("(min %s, %s)", e.MinimumGrade, kind))))
		}
		lines = append(lines, fmt.Sprintf("%s %s", Dim(fmt.Sprintf("group %d:", id)), strings.Join(alts, " or ")))
	}
	return lines
}

// FormatImportResult renders the counts and cycle warnings of an import.
func FormatImportResult(res *service.ImportResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Imported %d courses, %d prerequisite edges, %d students, %d completed records",
		res.CourseCount, res.PrerequisiteCount, res.StudentCount, res.CompletedCount)
	if res.SkippedCompleted > 0 {
		b.WriteString(Dim(fmt.Sprintf(" (%d already recorded)", res.SkippedCompleted)))
	}
	b.WriteString("\n")
	for _, w := range res.Warnings {
		fmt.Fprintf(&b, "%s %s\n", StyleYellow.Render("WARNING:"), w)
	}
	return b.String()
}
