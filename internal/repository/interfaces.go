package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/coursepilot/internal/domain"
)

// ErrNotFound is wrapped by repository lookups that match no row.
var ErrNotFound = errors.New("not found")

// CourseFilter narrows catalog listings. Zero values match everything.
type CourseFilter struct {
	Department string
	Type       domain.CourseType
	ActiveOnly bool
}

type CourseRepo interface {
	Upsert(ctx context.Context, c *domain.Course) error
	GetByCode(ctx context.Context, code string) (*domain.Course, error)
	List(ctx context.Context, filter CourseFilter) ([]*domain.Course, error)
}

type PrerequisiteRepo interface {
	// ReplaceForCourse deletes every edge of courseCode and inserts edges in
	// the given order.
	ReplaceForCourse(ctx context.Context, courseCode string, edges []domain.PrerequisiteEdge) error
	ListForCourse(ctx context.Context, courseCode string) ([]domain.PrerequisiteEdge, error)
	ListAll(ctx context.Context) ([]domain.PrerequisiteEdge, error)
}

type StudentRepo interface {
	Upsert(ctx context.Context, s *domain.Student) error
	GetByID(ctx context.Context, id string) (*domain.Student, error)
	List(ctx context.Context) ([]*domain.Student, error)
}

// CompletedCourseRepo is append-only: records are never updated.
type CompletedCourseRepo interface {
	Create(ctx context.Context, c *domain.CompletedCourse) error
	ListByStudent(ctx context.Context, studentID string) ([]domain.CompletedCourse, error)
}
