package cli

import (
	"fmt"

	"github.com/alexanderramin/coursepilot/internal/cli/formatter"
	"github.com/alexanderramin/coursepilot/internal/domain"
	"github.com/alexanderramin/coursepilot/internal/repository"
	"github.com/spf13/cobra"
)

func newCourseCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Browse the course catalog",
	}

	cmd.AddCommand(
		newCourseListCmd(a),
		newCourseShowCmd(a),
	)

	return cmd
}

func newCourseListCmd(a *App) *cobra.Command {
	var department, courseType string
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := repository.CourseFilter{Department: department, ActiveOnly: activeOnly}
			if courseType != "" {
				if !domain.ValidCourseTypes[courseType] {
					return fmt.Errorf("invalid --type %q (required, elective, general_education)", courseType)
				}
				filter.Type = domain.CourseType(courseType)
			}

			courses, err := a.Catalog.List(cmd.Context(), filter)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(courses) == 0 {
				fmt.Fprintln(out, "No courses found.")
				return nil
			}
			fmt.Fprint(out, formatter.FormatCourseList(courses))
			return nil
		},
	}

	cmd.Flags().StringVar(&department, "department", "", "Only courses in this department")
	cmd.Flags().StringVar(&courseType, "type", "", "Only courses of this type (required, elective, general_education)")
	cmd.Flags().BoolVar(&activeOnly, "active", false, "Hide inactive courses")

	return cmd
}

func newCourseShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [CODE]",
		Short: "Show a course and its prerequisite groups",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := courseArg(cmd.Context(), a, args, 0)
			if err != nil {
				return err
			}
			detail, err := a.Catalog.Show(cmd.Context(), code)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCourseDetail(detail))
			return nil
		},
	}
}

func newImportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import courses, prerequisites, students and completed records from JSON or YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.Import.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(res))
			return nil
		},
	}
}
