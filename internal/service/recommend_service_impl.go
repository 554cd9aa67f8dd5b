package service

import (
	"context"

	"github.com/alexanderramin/coursepilot/internal/app"
	"github.com/alexanderramin/coursepilot/internal/planner"
)

type recommendService struct {
	loader   *SnapshotLoader
	cfg      EngineConfig
	observer UseCaseObserver
}

func NewRecommendService(loader *SnapshotLoader, cfg EngineConfig, observers ...UseCaseObserver) app.RecommendUseCase {
	return &recommendService{
		loader:   loader,
		cfg:      cfg.withDefaults(),
		observer: useCaseObserverOrNoop(observers),
	}
}

// RecommendCourses uses the configured limit when req.Limit is zero.
func (s *recommendService) RecommendCourses(ctx context.Context, req app.RecommendRequest) (result *app.RecommendationResult, err error) {
	fields := map[string]any{"student_id": req.StudentID, "limit": req.Limit}
	if req.Term != nil {
		fields["term"] = string(*req.Term)
	}
	event := newUseCaseEvent("recommend-courses", fields)
	defer func() {
		var failure *app.Failure
		if result != nil {
			failure = result.Failure
			event.Fields["candidates"] = result.CandidateCount
			event.Fields["returned"] = len(result.Recommendations)
		}
		s.observer.ObserveUseCase(ctx, event.finish(failure, err))
	}()

	studentID, failure := requireStudentID(req.StudentID)
	if failure != nil {
		return recommendFailure(req, failure), nil
	}
	limit := req.Limit
	if limit == 0 {
		limit = s.cfg.RecommendLimit
	}
	if failure := validateRange("limit", limit, 1, app.MaxRecommendLimit); failure != nil {
		return recommendFailure(req, failure), nil
	}

	snap, failure, err := s.loader.Load(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if failure == nil {
		failure = validateStudent(snap.Student)
	}
	if failure != nil {
		return recommendFailure(req, failure), nil
	}

	recs, candidates := planner.RecommendCourses(snap, planner.RecommendOptions{
		Limit:  limit,
		Term:   req.Term,
		Policy: s.cfg.Strictness,
	})
	if candidates == 0 {
		if req.Term != nil {
			return recommendFailure(req, app.NoEligibleCourses("no eligible courses offered in %s for student %s", *req.Term, studentID)), nil
		}
		return recommendFailure(req, app.NoEligibleCourses("no eligible courses remain for student %s", studentID)), nil
	}

	return &app.RecommendationResult{
		Success:         true,
		StudentID:       studentID,
		Term:            req.Term,
		CandidateCount:  candidates,
		Recommendations: recs,
	}, nil
}

func recommendFailure(req app.RecommendRequest, f *app.Failure) *app.RecommendationResult {
	return &app.RecommendationResult{
		Success:   false,
		Failure:   f,
		StudentID: req.StudentID,
		Term:      req.Term,
	}
}
