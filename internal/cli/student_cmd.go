package cli

import (
	"fmt"

	"github.com/alexanderramin/coursepilot/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStudentCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "student",
		Short: "Inspect students and record completed courses",
	}

	cmd.AddCommand(
		newStudentListCmd(a),
		newStudentShowCmd(a),
		newStudentRecordCmd(a),
	)

	return cmd
}

func newStudentListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List students",
		RunE: func(cmd *cobra.Command, args []string) error {
			students, err := a.Students.List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(students) == 0 {
				fmt.Fprintln(out, "No students found.")
				return nil
			}
			fmt.Fprint(out, formatter.FormatStudentList(students))
			return nil
		},
	}
}

func newStudentShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [ID]",
		Short: "Show a student's profile and completed courses",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := studentArg(cmd.Context(), a, args, 0)
			if err != nil {
				return err
			}
			detail, err := a.Students.Show(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStudentDetail(detail))
			return nil
		},
	}
}

func newStudentRecordCmd(a *App) *cobra.Command {
	var term string

	cmd := &cobra.Command{
		Use:   "record STUDENT COURSE GRADE",
		Short: "Record a completed course (append-only)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.Students.RecordCompletion(cmd.Context(), args[0], args[1], args[2], term)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s %s for %s (%d credits)\n", rec.CourseCode, rec.Grade, rec.StudentID, rec.CreditHours)
			return nil
		},
	}

	cmd.Flags().StringVar(&term, "term", "", `Term the course was taken, e.g. "Fall 2025"`)

	return cmd
}
