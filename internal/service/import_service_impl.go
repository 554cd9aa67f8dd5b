package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/coursepilot/internal/db"
	"github.com/alexanderramin/coursepilot/internal/importer"
	"github.com/alexanderramin/coursepilot/internal/repository"
)

type importService struct {
	courses  repository.CourseRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(courses repository.CourseRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		courses:  courses,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportFile(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportSchema(ctx, schema)
}

// ImportSchema upserts courses and students, replaces the prerequisite set of
// every course the file lists edges for, and appends ledger entries not
// already recorded. Everything is written in one transaction.
func (s *importService) ImportSchema(ctx context.Context, schema *importer.ImportSchema) (result *ImportResult, err error) {
	event := newUseCaseEvent("import-catalog", map[string]any{
		"courses":       len(schema.Courses),
		"prerequisites": len(schema.Prerequisites),
		"students":      len(schema.Students),
	})
	defer func() {
		if result != nil {
			event.Fields["warnings"] = len(result.Warnings)
		}
		s.observer.ObserveUseCase(ctx, event.finish(nil, err))
	}()

	existing, err := s.courses.List(ctx, repository.CourseFilter{})
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	existingCodes := make(map[string]bool, len(existing))
	existingCredits := make(map[string]int, len(existing))
	for _, c := range existing {
		existingCodes[c.Code] = true
		existingCredits[c.Code] = c.CreditHours
	}

	if errs := importer.ValidateImportSchema(schema, existingCodes); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	catalog := importer.Convert(schema, existingCredits)
	result = &ImportResult{
		CourseCount:  len(catalog.Courses),
		StudentCount: len(catalog.Students),
		Warnings:     importer.DetectPrerequisiteCycles(schema.Prerequisites),
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCourses := repository.NewSQLiteCourseRepo(tx)
		txPrereqs := repository.NewSQLitePrerequisiteRepo(tx)
		txStudents := repository.NewSQLiteStudentRepo(tx)
		txCompleted := repository.NewSQLiteCompletedCourseRepo(tx)

		for _, c := range catalog.Courses {
			if err := txCourses.Upsert(ctx, c); err != nil {
				return fmt.Errorf("saving course %s: %w", c.Code, err)
			}
		}

		for _, code := range catalog.EdgeCourses {
			edges := catalog.Edges[code]
			if err := txPrereqs.ReplaceForCourse(ctx, code, edges); err != nil {
				return err
			}
			result.PrerequisiteCount += len(edges)
		}

		recorded := make(map[string]map[string]bool, len(catalog.Students))
		for _, st := range catalog.Students {
			if err := txStudents.Upsert(ctx, st); err != nil {
				return fmt.Errorf("saving student %s: %w", st.ID, err)
			}
			ledger, err := txCompleted.ListByStudent(ctx, st.ID)
			if err != nil {
				return fmt.Errorf("loading ledger for %s: %w", st.ID, err)
			}
			codes := make(map[string]bool, len(ledger))
			for _, r := range ledger {
				codes[r.CourseCode] = true
			}
			recorded[st.ID] = codes
		}

		// The ledger is append-only: entries already on file are left alone.
		for _, rec := range catalog.Completed {
			if recorded[rec.StudentID][rec.CourseCode] {
				result.SkippedCompleted++
				continue
			}
			if err := txCompleted.Create(ctx, rec); err != nil {
				return err
			}
			recorded[rec.StudentID][rec.CourseCode] = true
			result.CompletedCount++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
