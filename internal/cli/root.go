package cli

import (
	"fmt"

	"github.com/alexanderramin/coursepilot/internal/app"
	"github.com/alexanderramin/coursepilot/internal/service"
	"github.com/alexanderramin/coursepilot/internal/tool"
	"github.com/spf13/cobra"
)

// App holds the use cases and services the commands run against.
type App struct {
	Eligibility app.EligibilityUseCase
	Recommend   app.RecommendUseCase
	Predict     app.PredictUseCase
	Pathway     app.PathwayUseCase

	Catalog  service.CatalogService
	Students service.StudentService
	Import   service.ImportService

	Tools *tool.Registry

	// IsInteractive reports whether pickers and the plan browser may take
	// over the terminal. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "coursepilot" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "coursepilot",
		Short:         "Course eligibility, recommendations and degree pathway planning",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newEligibilityCmd(app),
		newRecommendCmd(app),
		newPredictCmd(app),
		newPlanCmd(app),
		newImportCmd(app),
		newCourseCmd(app),
		newStudentCmd(app),
		newToolCmd(app),
	)

	return root
}

// failureError turns a result failure into a command error carrying its code.
func failureError(f *app.Failure) error {
	if f == nil {
		return fmt.Errorf("%s: result reported failure without a reason", app.FailInternal)
	}
	return fmt.Errorf("%s: %s", f.Code, f.Message)
}
