package cli

import (
	"testing"

	"github.com/alexanderramin/coursepilot/internal/app"
	"github.com/alexanderramin/coursepilot/internal/domain"
	"github.com/alexanderramin/coursepilot/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func browserPathway() *app.PathwayResult {
	return &app.PathwayResult{
		Success:         true,
		StudentID:       "s-1",
		CreditsPerTerm:  15,
		RequiredCredits: 120,
		GraduationLabel: "Spring 2027",
		EstimatedTerms:  2,
		Terms: []app.TermPlan{
			{Index: 0, Term: domain.TermFall, Year: 2026, Label: "Fall 2026", Credits: 3, Courses: []app.PlannedCourse{
				{CourseCode: "CS301", CourseName: "Algorithms", CreditHours: 3, Type: domain.CourseRequired},
			}},
			{Index: 1, Term: domain.TermSpring, Year: 2027, Label: "Spring 2027", Credits: 3, Courses: []app.PlannedCourse{
				{CourseCode: "HIS101", CourseName: "World History", CreditHours: 3, Type: domain.CourseGeneralEducation},
			}},
		},
		Unscheduled: []app.UnscheduledCourse{
			{CourseCode: "CS490", CourseName: "Capstone", Message: "never offered after its prerequisites"},
		},
	}
}

func browser(t *testing.T, d *teatest.Driver) planBrowser {
	t.Helper()
	m, ok := d.Model.(planBrowser)
	require.True(t, ok)
	return m
}

func detailOf(t *testing.T, d *teatest.Driver) string {
	t.Helper()
	m := browser(t, d)
	return stripANSI(m.viewport.View())
}

func TestPlanBrowser_NavigatesTerms(t *testing.T) {
	d := teatest.New(t, newPlanBrowser(browserPathway()), teatest.WithSize(100, 40))

	view := d.PlainView()
	assert.Contains(t, view, "▸ Fall 2026")
	assert.Contains(t, view, "Graduation: Spring 2027")
	assert.Contains(t, detailOf(t, d), "CS301")
	assert.NotContains(t, detailOf(t, d), "HIS101")

	d.Press("down")
	assert.Equal(t, 1, browser(t, d).cursor)
	assert.Contains(t, d.PlainView(), "▸ Spring 2027")
	assert.Contains(t, detailOf(t, d), "HIS101")

	d.Press("j")
	assert.Equal(t, 1, browser(t, d).cursor, "cursor stays on the last term")

	d.Press("k", "up")
	assert.Equal(t, 0, browser(t, d).cursor, "cursor stays on the first term")
}

func TestPlanBrowser_TogglesUnscheduled(t *testing.T) {
	d := teatest.New(t, newPlanBrowser(browserPathway()), teatest.WithSize(100, 40))

	d.Press("u")
	assert.True(t, browser(t, d).showUnscheduled)
	assert.Contains(t, detailOf(t, d), "CS490")

	d.Press("down")
	assert.False(t, browser(t, d).showUnscheduled, "moving terms returns to the term detail")
}

func TestPlanBrowser_HelpAndQuit(t *testing.T) {
	d := teatest.New(t, newPlanBrowser(browserPathway()), teatest.WithSize(100, 40))

	d.Press("?")
	assert.True(t, browser(t, d).help.ShowAll)
	assert.Contains(t, d.PlainView(), "scroll down")

	d.Press("q")
	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}

func TestPlanBrowser_EscQuits(t *testing.T) {
	d := teatest.New(t, newPlanBrowser(browserPathway()), teatest.WithSize(80, 24))
	d.Press("esc")
	assert.True(t, d.Quitting)
}

func TestPlanBrowser_EmptyPlan(t *testing.T) {
	res := &app.PathwayResult{Success: true, StudentID: "s-9", CreditsPerTerm: 15, StopReason: app.StopComplete}
	d := teatest.New(t, newPlanBrowser(res), teatest.WithSize(80, 24))

	assert.Contains(t, d.PlainView(), "No remaining degree courses could be planned.")
	d.Press("down")
	assert.Equal(t, 0, browser(t, d).cursor)
}
