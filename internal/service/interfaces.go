package service

import (
	"context"

	"github.com/alexanderramin/coursepilot/internal/domain"
	"github.com/alexanderramin/coursepilot/internal/importer"
	"github.com/alexanderramin/coursepilot/internal/repository"
)

// CourseDetail is one catalog course with its prerequisite edges in catalog
// order.
type CourseDetail struct {
	Course        *domain.Course
	Prerequisites []domain.PrerequisiteEdge
}

type CatalogService interface {
	List(ctx context.Context, filter repository.CourseFilter) ([]*domain.Course, error)
	Show(ctx context.Context, code string) (*CourseDetail, error)
}

// StudentDetail is a student with their ledger and derived totals.
type StudentDetail struct {
	Student          *domain.Student
	Completed        []domain.CompletedCourse
	CompletedCredits int
	LedgerGPA        *float64 // mean grade points over the ledger, nil when empty
}

type StudentService interface {
	List(ctx context.Context) ([]*domain.Student, error)
	Show(ctx context.Context, id string) (*StudentDetail, error)
	RecordCompletion(ctx context.Context, studentID, courseCode, grade, term string) (*domain.CompletedCourse, error)
}

// ImportResult holds the outcome of a catalog import.
type ImportResult struct {
	CourseCount       int
	PrerequisiteCount int
	StudentCount      int
	CompletedCount    int
	// SkippedCompleted counts ledger entries already recorded before the import.
	SkippedCompleted int
	// Warnings lists prerequisite cycles found in the imported edges. They do
	// not block the import.
	Warnings []string
}

type ImportService interface {
	ImportFile(ctx context.Context, filePath string) (*ImportResult, error)
	ImportSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
