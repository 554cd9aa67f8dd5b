package service

import (
	"context"
	"errors"
	"strings"

	"github.com/alexanderramin/coursepilot/internal/app"
	"github.com/alexanderramin/coursepilot/internal/domain"
	"github.com/alexanderramin/coursepilot/internal/planner"
	"github.com/alexanderramin/coursepilot/internal/repository"
)

// SnapshotLoader reads everything an engine call evaluates against: the
// student, their ledger, the catalog and every prerequisite edge. Each call
// builds a fresh snapshot, so concurrent invocations never share state.
type SnapshotLoader struct {
	courses   repository.CourseRepo
	prereqs   repository.PrerequisiteRepo
	students  repository.StudentRepo
	completed repository.CompletedCourseRepo
}

func NewSnapshotLoader(
	courses repository.CourseRepo,
	prereqs repository.PrerequisiteRepo,
	students repository.StudentRepo,
	completed repository.CompletedCourseRepo,
) *SnapshotLoader {
	return &SnapshotLoader{
		courses:   courses,
		prereqs:   prereqs,
		students:  students,
		completed: completed,
	}
}

// Load returns a NOT_FOUND failure when the student does not exist. Any other
// repository failure is returned as an INTERNAL_ERROR EngineError.
func (l *SnapshotLoader) Load(ctx context.Context, studentID string) (*planner.Snapshot, *app.Failure, error) {
	student, err := l.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, app.NotFound("student %s not found", studentID), nil
		}
		return nil, nil, app.Internal("loading student", err)
	}

	ledger, err := l.completed.ListByStudent(ctx, student.ID)
	if err != nil {
		return nil, nil, app.Internal("loading completed courses", err)
	}

	courses, err := l.courses.List(ctx, repository.CourseFilter{})
	if err != nil {
		return nil, nil, app.Internal("loading course catalog", err)
	}
	catalog := make([]domain.Course, 0, len(courses))
	for _, c := range courses {
		catalog = append(catalog, *c)
	}

	edges, err := l.prereqs.ListAll(ctx)
	if err != nil {
		return nil, nil, app.Internal("loading prerequisites", err)
	}

	return planner.NewSnapshot(*student, ledger, catalog, edges), nil, nil
}

func normalizeCourseCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
