package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/coursepilot/internal/app"
	"github.com/alexanderramin/coursepilot/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newEligibilityCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "eligibility [STUDENT] [COURSE]",
		Short: "Check whether a student may register for a course",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			studentID, err := studentArg(ctx, a, args, 0)
			if err != nil {
				return err
			}
			courseCode, err := courseArg(ctx, a, args, 1)
			if err != nil {
				return err
			}

			res, err := a.Eligibility.CheckEligibility(ctx, app.NewEligibilityRequest(studentID, courseCode))
			if err != nil {
				return err
			}
			if !res.Success {
				return failureError(res.Failure)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEligibility(res))
			return nil
		},
	}
}

func newRecommendCmd(a *App) *cobra.Command {
	var limit int
	var term termFlag

	cmd := &cobra.Command{
		Use:   "recommend [STUDENT]",
		Short: "Rank the courses a student could take next",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			studentID, err := studentArg(ctx, a, args, 0)
			if err != nil {
				return err
			}

			// Unset --limit leaves the configured default to the service.
			req := app.RecommendRequest{StudentID: studentID, Term: term.Term()}
			if cmd.Flags().Changed("limit") {
				if limit < 1 || limit > app.MaxRecommendLimit {
					return fmt.Errorf("--limit must be between 1 and %d", app.MaxRecommendLimit)
				}
				req.Limit = limit
			}

			res, err := a.Recommend.RecommendCourses(ctx, req)
			if err != nil {
				return err
			}
			if !res.Success {
				return failureError(res.Failure)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRecommendations(res))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", app.DefaultRecommendLimit, "Number of recommendations (1-50)")
	cmd.Flags().Var(&term, "term", "Only courses offered in this term (Fall, Spring, Summer)")

	return cmd
}

func newPredictCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "predict [STUDENT] [COURSE]",
		Short: "Estimate a student's chance of passing a course",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			studentID, err := studentArg(ctx, a, args, 0)
			if err != nil {
				return err
			}
			courseCode, err := courseArg(ctx, a, args, 1)
			if err != nil {
				return err
			}

			res, err := a.Predict.PredictSuccess(ctx, app.NewPredictRequest(studentID, courseCode))
			if err != nil {
				return err
			}
			if !res.Success {
				return failureError(res.Failure)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPrediction(res))
			return nil
		},
	}
}

func newPlanCmd(a *App) *cobra.Command {
	var credits int
	var asOf string
	var browse bool

	cmd := &cobra.Command{
		Use:   "plan [STUDENT]",
		Short: "Plan the remaining degree term by term",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if browse && !a.interactive() {
				return fmt.Errorf("--browse needs an interactive terminal")
			}

			ctx := cmd.Context()
			studentID, err := studentArg(ctx, a, args, 0)
			if err != nil {
				return err
			}

			req := app.PathwayRequest{StudentID: studentID}
			if cmd.Flags().Changed("credits") {
				if credits < 1 || credits > app.MaxCreditsPerTerm {
					return fmt.Errorf("--credits must be between 1 and %d", app.MaxCreditsPerTerm)
				}
				req.CreditsPerTerm = credits
			}
			if asOf != "" {
				t, err := time.Parse("2006-01-02", asOf)
				if err != nil {
					return fmt.Errorf("invalid --as-of date %q: %w", asOf, err)
				}
				req.Now = &t
			}

			res, err := a.Pathway.PlanPathway(ctx, req)
			if err != nil {
				return err
			}
			if !res.Success {
				return failureError(res.Failure)
			}

			if browse {
				return runPlanBrowser(res)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPathway(res))
			return nil
		},
	}

	cmd.Flags().IntVar(&credits, "credits", app.DefaultCreditsPerTerm, "Credit cap per term (1-24)")
	cmd.Flags().StringVar(&asOf, "as-of", "", "Plan from the term in session on this date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&browse, "browse", false, "Browse the plan interactively")

	return cmd
}
