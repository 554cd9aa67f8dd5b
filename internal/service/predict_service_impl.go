package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/coursepilot/internal/app"
	"github.com/alexanderramin/coursepilot/internal/planner"
)

type predictService struct {
	loader   *SnapshotLoader
	observer UseCaseObserver
}

func NewPredictService(loader *SnapshotLoader, observers ...UseCaseObserver) app.PredictUseCase {
	return &predictService{
		loader:   loader,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *predictService) PredictSuccess(ctx context.Context, req app.PredictRequest) (result *app.PredictionResult, err error) {
	event := newUseCaseEvent("predict-success", map[string]any{
		"student_id":  req.StudentID,
		"course_code": req.CourseCode,
	})
	defer func() {
		var failure *app.Failure
		if result != nil {
			failure = result.Failure
			if result.Success {
				event.Fields["probability"] = result.Probability
				event.Fields["insufficient_data"] = result.InsufficientData()
			}
		}
		s.observer.ObserveUseCase(ctx, event.finish(failure, err))
	}()

	studentID, failure := requireStudentID(req.StudentID)
	if failure != nil {
		return predictFailure(req, failure), nil
	}
	courseCode, failure := requireCourseCode(req.CourseCode)
	if failure != nil {
		return predictFailure(req, failure), nil
	}

	snap, failure, err := s.loader.Load(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if failure == nil {
		failure = validateStudent(snap.Student)
	}
	if failure != nil {
		return predictFailure(req, failure), nil
	}

	result, err = planner.PredictSuccess(snap, courseCode)
	if errors.Is(err, planner.ErrCourseNotFound) {
		return predictFailure(req, app.NotFound("course %s not found", courseCode)), nil
	}
	if err != nil {
		return nil, app.Internal("predicting success", err)
	}
	return result, nil
}

func predictFailure(req app.PredictRequest, f *app.Failure) *app.PredictionResult {
	return &app.PredictionResult{
		Success:    false,
		Failure:    f,
		StudentID:  req.StudentID,
		CourseCode: req.CourseCode,
	}
}
