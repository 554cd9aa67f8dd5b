package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/coursepilot/internal/app"
	"github.com/alexanderramin/coursepilot/internal/planner"
)

type eligibilityService struct {
	loader   *SnapshotLoader
	cfg      EngineConfig
	observer UseCaseObserver
}

func NewEligibilityService(loader *SnapshotLoader, cfg EngineConfig, observers ...UseCaseObserver) app.EligibilityUseCase {
	return &eligibilityService{
		loader:   loader,
		cfg:      cfg.withDefaults(),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *eligibilityService) CheckEligibility(ctx context.Context, req app.EligibilityRequest) (result *app.EligibilityResult, err error) {
	event := newUseCaseEvent("check-eligibility", map[string]any{
		"student_id":  req.StudentID,
		"course_code": req.CourseCode,
	})
	defer func() {
		var failure *app.Failure
		if result != nil {
			failure = result.Failure
			event.Fields["eligible"] = result.Eligible
		}
		s.observer.ObserveUseCase(ctx, event.finish(failure, err))
	}()

	studentID, failure := requireStudentID(req.StudentID)
	if failure != nil {
		return eligibilityFailure(req, failure), nil
	}
	courseCode, failure := requireCourseCode(req.CourseCode)
	if failure != nil {
		return eligibilityFailure(req, failure), nil
	}

	snap, failure, err := s.loader.Load(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if failure == nil {
		failure = validateStudent(snap.Student)
	}
	if failure != nil {
		return eligibilityFailure(req, failure), nil
	}

	result, err = planner.CheckEligibility(snap, courseCode, s.cfg.Strictness)
	if errors.Is(err, planner.ErrCourseNotFound) {
		return eligibilityFailure(req, app.NotFound("course %s not found", courseCode)), nil
	}
	if err != nil {
		return nil, app.Internal("checking eligibility", err)
	}
	return result, nil
}

func eligibilityFailure(req app.EligibilityRequest, f *app.Failure) *app.EligibilityResult {
	return &app.EligibilityResult{
		Success:    false,
		Failure:    f,
		StudentID:  req.StudentID,
		CourseCode: req.CourseCode,
	}
}
