package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/coursepilot/internal/db"
	"github.com/alexanderramin/coursepilot/internal/domain"
	"github.com/alexanderramin/coursepilot/internal/repository"
	"github.com/google/uuid"
)

// ErrInvalidGrade is returned when a recorded grade is not on the letter scale.
var ErrInvalidGrade = errors.New("invalid grade")

type studentService struct {
	students  repository.StudentRepo
	completed repository.CompletedCourseRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewStudentService(
	students repository.StudentRepo,
	completed repository.CompletedCourseRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) StudentService {
	return &studentService{
		students:  students,
		completed: completed,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *studentService) List(ctx context.Context) ([]*domain.Student, error) {
	return s.students.List(ctx)
}

func (s *studentService) Show(ctx context.Context, id string) (*StudentDetail, error) {
	student, err := s.students.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	ledger, err := s.completed.ListByStudent(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("loading completed courses: %w", err)
	}
	detail := &StudentDetail{
		Student:          student,
		Completed:        ledger,
		CompletedCredits: domain.CompletedCredits(ledger),
	}
	if mean, ok := domain.MeanGradePoints(ledger); ok {
		detail.LedgerGPA = &mean
	}
	return detail, nil
}

// RecordCompletion appends one ledger entry. Credit hours are copied from the
// catalog so later catalog edits do not rewrite history.
func (s *studentService) RecordCompletion(ctx context.Context, studentID, courseCode, grade, term string) (record *domain.CompletedCourse, err error) {
	event := newUseCaseEvent("record-completion", map[string]any{
		"student_id":  studentID,
		"course_code": courseCode,
		"grade":       grade,
	})
	defer func() {
		s.observer.ObserveUseCase(ctx, event.finish(nil, err))
	}()

	grade = domain.NormalizeGrade(grade)
	if !domain.IsValidGrade(grade) {
		return nil, fmt.Errorf("%q: %w", grade, ErrInvalidGrade)
	}

	record = &domain.CompletedCourse{
		ID:         uuid.New().String(),
		StudentID:  strings.TrimSpace(studentID),
		CourseCode: normalizeCourseCode(courseCode),
		Grade:      grade,
		Term:       strings.TrimSpace(term),
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txStudents := repository.NewSQLiteStudentRepo(tx)
		txCourses := repository.NewSQLiteCourseRepo(tx)
		txCompleted := repository.NewSQLiteCompletedCourseRepo(tx)

		if _, err := txStudents.GetByID(ctx, record.StudentID); err != nil {
			return err
		}
		course, err := txCourses.GetByCode(ctx, record.CourseCode)
		if err != nil {
			return err
		}
		record.CourseCode = course.Code
		record.CreditHours = course.CreditHours

		return txCompleted.Create(ctx, record)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}
