package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/coursepilot/internal/cli"
	"github.com/alexanderramin/coursepilot/internal/config"
	"github.com/alexanderramin/coursepilot/internal/db"
	"github.com/alexanderramin/coursepilot/internal/repository"
	"github.com/alexanderramin/coursepilot/internal/service"
	"github.com/alexanderramin/coursepilot/internal/tool"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	courseRepo := repository.NewSQLiteCourseRepo(database)
	prereqRepo := repository.NewSQLitePrerequisiteRepo(database)
	studentRepo := repository.NewSQLiteStudentRepo(database)
	completedRepo := repository.NewSQLiteCompletedCourseRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogCalls {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	engineCfg := service.EngineConfig{
		Strictness:     cfg.Strictness,
		RecommendLimit: cfg.RecommendLimit,
		CreditsPerTerm: cfg.CreditsPerTerm,
	}
	loader := service.NewSnapshotLoader(courseRepo, prereqRepo, studentRepo, completedRepo)

	app := &cli.App{
		Eligibility: service.NewEligibilityService(loader, engineCfg, observers...),
		Recommend:   service.NewRecommendService(loader, engineCfg, observers...),
		Predict:     service.NewPredictService(loader, observers...),
		Pathway:     service.NewPathwayService(loader, engineCfg, observers...),
		Catalog:     service.NewCatalogService(courseRepo, prereqRepo),
		Students:    service.NewStudentService(studentRepo, completedRepo, uow, observers...),
		Import:      service.NewImportService(courseRepo, uow, observers...),
	}
	app.Tools = tool.NewRegistry(app.Eligibility, app.Recommend, app.Predict, app.Pathway)

	// Pickers and the plan browser need a terminal on both ends.
	app.IsInteractive = func() bool {
		in := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		out := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		return in && out
	}

	return cli.NewRootCmd(app).ExecuteContext(context.Background())
}
