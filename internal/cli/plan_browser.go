package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/coursepilot/internal/app"
	"github.com/alexanderramin/coursepilot/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type planBrowserKeyMap struct {
	Prev        key.Binding
	Next        key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
	Unscheduled key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultPlanBrowserKeys() planBrowserKeyMap {
	return planBrowserKeyMap{
		Prev:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous term")),
		Next:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next term")),
		ScrollUp:    key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "scroll up")),
		ScrollDown:  key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "scroll down")),
		Unscheduled: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "unscheduled")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k planBrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Unscheduled, k.Help, k.Quit}
}

func (k planBrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.ScrollUp, k.ScrollDown},
		{k.Unscheduled, k.Help, k.Quit},
	}
}

// planBrowser lists planned terms and shows the selected term's courses in
// a scrollable viewport.
type planBrowser struct {
	res             *app.PathwayResult
	cursor          int
	showUnscheduled bool

	keys     planBrowserKeyMap
	help     help.Model
	viewport viewport.Model
	width    int
	height   int
	quitting bool
}

func newPlanBrowser(res *app.PathwayResult) planBrowser {
	vp := viewport.New(0, 0)
	vp.KeyMap = viewport.KeyMap{
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
	}
	vp.MouseWheelEnabled = true

	m := planBrowser{
		res:      res,
		keys:     defaultPlanBrowserKeys(),
		help:     help.New(),
		viewport: vp,
	}
	m.viewport.SetContent(m.detail())
	return m
}

func runPlanBrowser(res *app.PathwayResult) error {
	_, err := tea.NewProgram(newPlanBrowser(res), tea.WithAltScreen()).Run()
	return err
}

func (m planBrowser) Init() tea.Cmd { return nil }

func (m planBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			if m.cursor > 0 {
				m.cursor--
				m.showUnscheduled = false
				m.refresh()
			}
			return m, nil
		case key.Matches(msg, m.keys.Next):
			if m.cursor < len(m.res.Terms)-1 {
				m.cursor++
				m.showUnscheduled = false
				m.refresh()
			}
			return m, nil
		case key.Matches(msg, m.keys.Unscheduled):
			m.showUnscheduled = !m.showUnscheduled
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *planBrowser) refresh() {
	m.viewport.SetContent(m.detail())
	m.viewport.GotoTop()
}

func (m *planBrowser) resize() {
	fixed := lipgloss.Height(m.header()) + lipgloss.Height(m.termList()) + lipgloss.Height(m.help.View(m.keys)) + 2
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-fixed, 3)
}

func (m planBrowser) detail() string {
	if m.showUnscheduled {
		if len(m.res.Unscheduled) == 0 {
			return formatter.Dim("Every remaining degree course was scheduled.")
		}
		return formatter.FormatUnscheduled(m.res.Unscheduled)
	}
	if len(m.res.Terms) == 0 {
		return formatter.Dim("No remaining degree courses could be planned.")
	}
	return formatter.FormatTermPlan(m.res.Terms[m.cursor], m.res.CreditsPerTerm)
}

func (m planBrowser) header() string {
	return formatter.PathwaySummary(m.res)
}

func (m planBrowser) termList() string {
	var b strings.Builder
	for i, t := range m.res.Terms {
		line := formatter.TermSummaryLine(t, m.res.CreditsPerTerm)
		if i == m.cursor {
			b.WriteString(formatter.StyleHeader.Render("▸ ") + line)
		} else {
			b.WriteString("  " + line)
		}
		if i < len(m.res.Terms)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m planBrowser) View() string {
	if m.quitting {
		return ""
	}
	scroll := ""
	if !m.viewport.AtTop() || !m.viewport.AtBottom() {
		scroll = formatter.Dim(fmt.Sprintf(" [%d%%]", int(m.viewport.ScrollPercent()*100)))
	}
	return strings.Join([]string{
		m.header(),
		"",
		m.termList(),
		formatter.Dim(strings.Repeat("─", max(m.width, 20))) + scroll,
		m.viewport.View(),
		m.help.View(m.keys),
	}, "\n")
}
