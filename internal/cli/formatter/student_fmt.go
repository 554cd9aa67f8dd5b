package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/coursepilot/internal/domain"
	"github.com/alexanderramin/coursepilot/internal/service"
)

func attendance(s *domain.Student) string {
	if s.AttendancePct == nil {
		return Dim("--")
	}
	return FormatPercent(*s.AttendancePct)
}

// FormatStudentList renders students as a table.
func FormatStudentList(students []*domain.Student) string {
	headers := []string{"ID", "NAME", "DEPT", "LEVEL", "GPA", "ATTENDANCE"}
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		rows = append(rows, []string{
			Bold(s.ID),
			s.Name,
			Placeholder(s.Department),
			strconv.Itoa(s.Level),
			FormatGPA(s.GPA),
			attendance(s),
		})
	}
	return RenderTable(headers, rows)
}

// FormatStudentDetail renders a student profile and their completed ledger.
func FormatStudentDetail(d *service.StudentDetail) string {
	s := d.Student
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n\n", Bold(s.Name), Dim("("+s.ID+")"))
	fmt.Fprintf(&b, "%s %s  %s %d  %s %s  %s %s\n",
		Dim("Department:"), Placeholder(s.Department),
		Dim("Level:"), s.Level,
		Dim("GPA:"), FormatGPA(s.GPA),
		Dim("Attendance:"), attendance(s),
	)
	ledgerGPA := Dim("--")
	if d.LedgerGPA != nil {
		ledgerGPA = FormatGPA(*d.LedgerGPA)
	}
	fmt.Fprintf(&b, "%s %d  %s %s\n", Dim("Completed credits:"), d.CompletedCredits, Dim("Ledger GPA:"), ledgerGPA)

	b.WriteString("\n" + Header("Completed Courses") + "\n")
	if len(d.Completed) == 0 {
		b.WriteString(Dim("No completed courses recorded."))
	} else {
		rows := make([][]string, 0, len(d.Completed))
		for _, c := range d.Completed {
			rows = append(rows, []string{c.CourseCode, gradeStyle(c.Grade), strconv.Itoa(c.CreditHours), Placeholder(c.Term)})
		}
		b.WriteString(RenderTable([]string{"COURSE", "GRADE", "CR", "TERM"}, rows))
	}

	return RenderBox("Student", strings.TrimRight(b.String(), "\n"))
}

func gradeStyle(grade string) string {
	switch pts := domain.GradePoints(grade); {
	case pts >= 3.0:
		return StyleGreen.Render(grade)
	case pts >= 2.0:
		return StyleYellow.Render(grade)
	default:
		return StyleRed.Render(grade)
	}
}
