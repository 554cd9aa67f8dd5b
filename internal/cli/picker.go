package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/coursepilot/internal/cli/formatter"
	"github.com/alexanderramin/coursepilot/internal/repository"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func coursepilotHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// studentPickerForm builds a select over every student. Nil when there are
// none to pick from.
func studentPickerForm(ctx context.Context, a *App, result *string) (*huh.Form, error) {
	students, err := a.Students.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, nil
	}

	options := make([]huh.Option[string], 0, len(students))
	for _, s := range students {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", s.Name, s.ID), s.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which Student?").
				Options(options...).
				Filtering(true).
				Value(result),
		),
	).WithTheme(coursepilotHuhTheme()).WithShowHelp(false), nil
}

// coursePickerForm builds a select over active catalog courses.
func coursePickerForm(ctx context.Context, a *App, result *string) (*huh.Form, error) {
	courses, err := a.Catalog.List(ctx, repository.CourseFilter{ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, nil
	}

	options := make([]huh.Option[string], 0, len(courses))
	for _, c := range courses {
		options = append(options, huh.NewOption(fmt.Sprintf("%s %s", c.Code, c.Name), c.Code))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which Course?").
				Options(options...).
				Filtering(true).
				Value(result),
		),
	).WithTheme(coursepilotHuhTheme()).WithShowHelp(false), nil
}

type pickerFunc func(ctx context.Context, a *App, result *string) (*huh.Form, error)

// argOrPick returns args[i] when present. Otherwise it runs the picker on an
// interactive terminal, or fails naming the missing argument.
func argOrPick(ctx context.Context, a *App, args []string, i int, name string, pick pickerFunc) (string, error) {
	if i < len(args) {
		return args[i], nil
	}
	if !a.interactive() {
		return "", fmt.Errorf("%s is required", name)
	}

	var value string
	form, err := pick(ctx, a, &value)
	if err != nil {
		return "", err
	}
	if form == nil {
		return "", fmt.Errorf("%s is required and none are available to pick from", name)
	}
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", fmt.Errorf("cancelled")
		}
		return "", err
	}
	return value, nil
}

func studentArg(ctx context.Context, a *App, args []string, i int) (string, error) {
	return argOrPick(ctx, a, args, i, "student ID", studentPickerForm)
}

func courseArg(ctx context.Context, a *App, args []string, i int) (string, error) {
	return argOrPick(ctx, a, args, i, "course code", coursePickerForm)
}
