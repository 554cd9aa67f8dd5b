package service

import (
	"context"

	"github.com/alexanderramin/coursepilot/internal/app"
	"github.com/alexanderramin/coursepilot/internal/planner"
)

type pathwayService struct {
	loader   *SnapshotLoader
	cfg      EngineConfig
	observer UseCaseObserver
}

func NewPathwayService(loader *SnapshotLoader, cfg EngineConfig, observers ...UseCaseObserver) app.PathwayUseCase {
	return &pathwayService{
		loader:   loader,
		cfg:      cfg.withDefaults(),
		observer: useCaseObserverOrNoop(observers),
	}
}

// PlanPathway uses the configured credit cap when req.CreditsPerTerm is zero
// and the service clock when req.Now is nil.
func (s *pathwayService) PlanPathway(ctx context.Context, req app.PathwayRequest) (result *app.PathwayResult, err error) {
	event := newUseCaseEvent("plan-pathway", map[string]any{
		"student_id":       req.StudentID,
		"credits_per_term": req.CreditsPerTerm,
	})
	defer func() {
		var failure *app.Failure
		if result != nil {
			failure = result.Failure
			if result.Success {
				event.Fields["terms"] = len(result.Terms)
				event.Fields["unscheduled"] = len(result.Unscheduled)
				event.Fields["stop_reason"] = string(result.StopReason)
			}
		}
		s.observer.ObserveUseCase(ctx, event.finish(failure, err))
	}()

	studentID, failure := requireStudentID(req.StudentID)
	if failure != nil {
		return pathwayFailure(req, failure), nil
	}
	creditCap := req.CreditsPerTerm
	if creditCap == 0 {
		creditCap = s.cfg.CreditsPerTerm
	}
	if failure := validateRange("credits per term", creditCap, 1, app.MaxCreditsPerTerm); failure != nil {
		return pathwayFailure(req, failure), nil
	}

	snap, failure, err := s.loader.Load(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if failure == nil {
		failure = validateStudent(snap.Student)
	}
	if failure != nil {
		return pathwayFailure(req, failure), nil
	}

	now := s.cfg.now()
	if req.Now != nil {
		now = req.Now.UTC()
	}
	return planner.PlanPathway(snap, planner.PathwayOptions{
		CreditsPerTerm: creditCap,
		Now:            now,
		Policy:         s.cfg.Strictness,
	}), nil
}

func pathwayFailure(req app.PathwayRequest, f *app.Failure) *app.PathwayResult {
	return &app.PathwayResult{
		Success:        false,
		Failure:        f,
		StudentID:      req.StudentID,
		CreditsPerTerm: req.CreditsPerTerm,
	}
}
